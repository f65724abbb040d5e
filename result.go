package calc

import (
	"github.com/blueset/calc-sub004/internal/orchestrator"
	"github.com/blueset/calc-sub004/internal/preprocess"
	"github.com/blueset/calc-sub004/internal/value"
)

// Result contains the evaluation results and any diagnostics produced
// by one Eval call.
type Result struct {
	// Value is the last expression line's computed value. It is nil
	// when the input held no expression lines at all.
	Value value.Value

	// AllValues holds every expression line's computed value, in
	// document order, including error values.
	AllValues []value.Value

	// Lines holds the full per-line detail (heading/blank lines
	// included) behind AllValues, keyed by position rather than line
	// number since a document can contain blank and heading lines too.
	Lines []orchestrator.LineResult

	// Diagnostics lists every line that failed to evaluate, plus every
	// non-blocking hint a line produced.
	Diagnostics []Diagnostic
}

// Diagnostic reports one line's evaluation failure.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Line     int
}

// Severity classifies a Diagnostic.
type Severity int

const (
	// SeverityError marks a line that produced no usable value.
	SeverityError Severity = iota
	// SeverityWarning is reserved for future non-blocking diagnostics.
	SeverityWarning
	// SeverityHint marks a non-blocking hint attached to a line that
	// still produced its value.
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityHint:
		return "HINT"
	default:
		return "UNKNOWN"
	}
}

// buildResult turns a Document's per-line results into the public
// Result shape, the last resort for turning an internal/value.Error
// into a user-facing Diagnostic.
func buildResult(lines []orchestrator.LineResult) *Result {
	r := &Result{Lines: lines}
	for _, ln := range lines {
		if ln.Kind != preprocess.KindExpression {
			continue
		}
		r.AllValues = append(r.AllValues, ln.Value)
		r.Value = ln.Value
		if ln.HasError {
			if e, ok := value.IsError(ln.Value); ok {
				r.Diagnostics = append(r.Diagnostics, Diagnostic{
					Severity: SeverityError,
					Code:     string(e.Kind),
					Message:  e.Msg,
					Line:     ln.Number,
				})
			}
		}
		for _, h := range ln.Hints {
			r.Diagnostics = append(r.Diagnostics, Diagnostic{
				Severity: SeverityHint,
				Code:     string(h.Kind),
				Message:  h.Msg,
				Line:     ln.Number,
			})
		}
	}
	return r
}
