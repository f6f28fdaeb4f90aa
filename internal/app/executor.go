package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/event-quote-service/internal/platform/logging"
)

// Quotation writes run in five steps: validate the request, perform the edit
// on a working copy, verify the committed value, archive it to the store and
// respond. Nothing is persisted unless the first three steps succeed.

// ExecutionStep names one step of an operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError records the step at which an operation stopped.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap exposes the cause so domain errors stay visible to errors.Is/As.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

func stepError(step ExecutionStep, message string, cause error) error {
	return &ExecutionError{Step: step, Message: message, Cause: cause}
}

// CompletionObserver is told about every finished operation.
type CompletionObserver func(operation string, err error)

// Executor runs operations step by step, logging each transition.
type Executor struct {
	logger   *slog.Logger
	observer CompletionObserver
}

// ExecutorConfig configures an Executor. Both fields are optional.
type ExecutorConfig struct {
	Logger   *slog.Logger
	Observer CompletionObserver
}

// NewExecutor creates an executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger, observer: cfg.Observer}
}

// Operation bundles the step functions. Nil steps are skipped; a nil Respond
// yields the zero output.
type Operation[I, P, V, O any] struct {
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Archive  func(ctx context.Context, input I, verified V) error
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

type run[I, P, V, O any] struct {
	logger *slog.Logger
	op     Operation[I, P, V, O]
	input  I
}

func (r *run[I, P, V, O]) validate(ctx context.Context) error {
	if r.op.Validate == nil {
		return nil
	}

	if err := r.op.Validate(ctx, r.input); err != nil {
		r.logger.WarnContext(ctx, "validation failed", slog.Any("error", err))

		return stepError(StepValidate, "invalid request", err)
	}

	r.logger.DebugContext(ctx, "validation passed")

	return nil
}

func (r *run[I, P, V, O]) perform(ctx context.Context) (P, error) {
	var zero P

	if r.op.Perform == nil {
		return zero, nil
	}

	performed, err := r.op.Perform(ctx, r.input)
	if err != nil {
		r.logger.WarnContext(ctx, "perform failed", slog.Any("error", err))

		return zero, stepError(StepPerform, "edit rejected", err)
	}

	r.logger.DebugContext(ctx, "operation performed")

	return performed, nil
}

func (r *run[I, P, V, O]) verify(ctx context.Context, performed P) (V, error) {
	var zero V

	if r.op.Verify == nil {
		return zero, nil
	}

	verified, err := r.op.Verify(ctx, r.input, performed)
	if err != nil {
		r.logger.ErrorContext(ctx, "verification failed", slog.Any("error", err))

		return zero, stepError(StepVerify, "result inconsistent", err)
	}

	r.logger.DebugContext(ctx, "result verified")

	return verified, nil
}

func (r *run[I, P, V, O]) archive(ctx context.Context, verified V) error {
	if r.op.Archive == nil {
		return nil
	}

	if err := r.op.Archive(ctx, r.input, verified); err != nil {
		r.logger.ErrorContext(ctx, "archive failed", slog.Any("error", err))

		return stepError(StepArchive, "persisting quotation", err)
	}

	r.logger.DebugContext(ctx, "state archived")

	return nil
}

func (r *run[I, P, V, O]) respond(ctx context.Context, verified V) (O, error) {
	var zero O

	if r.op.Respond == nil {
		return zero, nil
	}

	out, err := r.op.Respond(ctx, r.input, verified)
	if err != nil {
		return zero, stepError(StepRespond, "building response", err)
	}

	return out, nil
}

// Execute runs op against input and reports the outcome to the executor's
// observer.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (out O, err error) {
	logger := logging.FromContextOr(ctx, exec.logger).With(slog.String("operation", op.Name))
	start := time.Now()

	defer func() {
		if exec.observer != nil {
			exec.observer(op.Name, err)
		}
	}()

	r := &run[I, P, V, O]{logger: logger, op: op, input: input}

	var zero O

	if err = r.validate(ctx); err != nil {
		return zero, err
	}

	performed, err := r.perform(ctx)
	if err != nil {
		return zero, err
	}

	verified, err := r.verify(ctx, performed)
	if err != nil {
		return zero, err
	}

	if err = r.archive(ctx, verified); err != nil {
		return zero, err
	}

	out, err = r.respond(ctx, verified)
	if err != nil {
		return zero, err
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return out, nil
}

// IsExecutionError reports whether err came out of Execute.
func IsExecutionError(err error) bool {
	var execErr *ExecutionError

	return errors.As(err, &execErr)
}

// GetExecutionStep returns the step at which err stopped an operation.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
