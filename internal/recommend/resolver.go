package recommend

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

// WarningKind classifies a catalog data-quality problem found while
// resolving rule fragments.
type WarningKind string

const (
	// WarningAmbiguous means a fragment is contained in more than one
	// service name.
	WarningAmbiguous WarningKind = "ambiguous"

	// WarningUnmatched means no service name contains the fragment.
	WarningUnmatched WarningKind = "unmatched"
)

// Warning records one fragment that did not resolve cleanly.
type Warning struct {
	Kind       WarningKind `json:"kind"`
	Table      string      `json:"table"`
	Fragment   string      `json:"fragment"`
	Chosen     string      `json:"chosen,omitempty"`
	Candidates []string    `json:"candidates,omitempty"`
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningAmbiguous:
		return fmt.Sprintf("%s: fragment %q matches %d services %v, using %q",
			w.Table, w.Fragment, len(w.Candidates), w.Candidates, w.Chosen)
	default:
		return fmt.Sprintf("%s: fragment %q matches no service", w.Table, w.Fragment)
	}
}

// ServiceSource supplies the services fragments are resolved against.
type ServiceSource interface {
	All() []domain.ServiceItem
}

// resolver maps name fragments to canonical catalog entries.
type resolver struct {
	services []domain.ServiceItem
	logger   *slog.Logger
	warnings []Warning
}

func newResolver(src ServiceSource, logger *slog.Logger) *resolver {
	return &resolver{services: src.All(), logger: logger}
}

// resolve finds the catalog entry for fragment. An exact name match wins;
// otherwise the first entry containing the fragment is used. Ambiguous and
// unmatched fragments are recorded under table.
func (r *resolver) resolve(table, fragment string) (domain.ServiceItem, bool) {
	var (
		candidates []string
		first      = -1
		exact      = -1
	)

	for i, s := range r.services {
		if !strings.Contains(s.Name, fragment) {
			continue
		}

		candidates = append(candidates, s.Name)

		if first < 0 {
			first = i
		}

		if exact < 0 && s.Name == fragment {
			exact = i
		}
	}

	if first < 0 {
		r.warn(Warning{Kind: WarningUnmatched, Table: table, Fragment: fragment})
		return domain.ServiceItem{}, false
	}

	chosen := first
	if exact >= 0 {
		chosen = exact
	}

	if len(candidates) > 1 {
		r.warn(Warning{
			Kind:       WarningAmbiguous,
			Table:      table,
			Fragment:   fragment,
			Chosen:     r.services[chosen].Name,
			Candidates: candidates,
		})
	}

	return r.services[chosen], true
}

// resolveAll resolves fragments in order, skipping any that do not match.
func (r *resolver) resolveAll(table string, fragments []string) []domain.ServiceItem {
	out := make([]domain.ServiceItem, 0, len(fragments))
	for _, f := range fragments {
		if s, ok := r.resolve(table, f); ok {
			out = append(out, s)
		}
	}

	return out
}

func (r *resolver) warn(w Warning) {
	r.warnings = append(r.warnings, w)
	r.logger.Warn("catalog resolution warning",
		slog.String("kind", string(w.Kind)),
		slog.String("table", w.Table),
		slog.String("fragment", w.Fragment),
		slog.String("chosen", w.Chosen),
		slog.Int("candidates", len(w.Candidates)),
	)
}
