package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func recordingOp(steps *[]ExecutionStep, failAt ExecutionStep) Operation[int, int, int, string] {
	fail := func(step ExecutionStep) error {
		*steps = append(*steps, step)
		if step == failAt {
			return errors.New("boom")
		}

		return nil
	}

	return Operation[int, int, int, string]{
		Name: "test",
		Validate: func(_ context.Context, _ int) error {
			return fail(StepValidate)
		},
		Perform: func(_ context.Context, in int) (int, error) {
			return in * 2, fail(StepPerform)
		},
		Verify: func(_ context.Context, _ int, performed int) (int, error) {
			return performed + 1, fail(StepVerify)
		},
		Archive: func(_ context.Context, _ int, _ int) error {
			return fail(StepArchive)
		},
		Respond: func(_ context.Context, _ int, verified int) (string, error) {
			if err := fail(StepRespond); err != nil {
				return "", err
			}

			return "ok", nil
		},
	}
}

func TestExecute_RunsStepsInOrder(t *testing.T) {
	var steps []ExecutionStep

	out, err := Execute(context.Background(), NewExecutor(ExecutorConfig{Logger: discardLogger()}), recordingOp(&steps, ""), 3)

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, []ExecutionStep{StepValidate, StepPerform, StepVerify, StepArchive, StepRespond}, steps)
}

func TestExecute_StopsAtFailingStep(t *testing.T) {
	all := []ExecutionStep{StepValidate, StepPerform, StepVerify, StepArchive, StepRespond}

	for i, failAt := range all {
		t.Run(string(failAt), func(t *testing.T) {
			var steps []ExecutionStep

			out, err := Execute(context.Background(), NewExecutor(ExecutorConfig{Logger: discardLogger()}), recordingOp(&steps, failAt), 1)

			require.Error(t, err)
			assert.Empty(t, out)
			assert.Equal(t, all[:i+1], steps)
			assert.True(t, IsExecutionError(err))

			step, ok := GetExecutionStep(err)
			require.True(t, ok)
			assert.Equal(t, failAt, step)
		})
	}
}

func TestExecute_NilStepsAreSkipped(t *testing.T) {
	op := Operation[string, string, string, string]{Name: "empty"}

	out, err := Execute(context.Background(), NewExecutor(ExecutorConfig{}), op, "in")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExecute_PreservesDomainErrors(t *testing.T) {
	op := Operation[string, string, string, string]{
		Name: "lookup",
		Perform: func(_ context.Context, id string) (string, error) {
			return "", domain.NewNotFoundError(domain.EntityQuotation, id)
		},
	}

	_, err := Execute(context.Background(), NewExecutor(ExecutorConfig{Logger: discardLogger()}), op, "q-1")

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "perform failed")
}

func TestExecute_NotifiesObserver(t *testing.T) {
	type outcome struct {
		name string
		err  error
	}

	var seen []outcome

	exec := NewExecutor(ExecutorConfig{
		Logger: discardLogger(),
		Observer: func(name string, err error) {
			seen = append(seen, outcome{name, err})
		},
	})

	var steps []ExecutionStep

	_, err := Execute(context.Background(), exec, recordingOp(&steps, ""), 1)
	require.NoError(t, err)

	_, err = Execute(context.Background(), exec, recordingOp(&steps, StepArchive), 1)
	require.Error(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "test", seen[0].name)
	require.NoError(t, seen[0].err)
	assert.Equal(t, err, seen[1].err)
}

func TestGetExecutionStep_PlainError(t *testing.T) {
	step, ok := GetExecutionStep(errors.New("plain"))

	assert.False(t, ok)
	assert.Empty(t, step)
	assert.False(t, IsExecutionError(errors.New("plain")))
}
