// Package eval walks a normalized internal/evalast tree bottom-up,
// producing internal/value results: dimensional algebra on arithmetic
// and conversion operators, variable assignment into the document
// scope, built-in functions, comparisons, and temporal arithmetic via
// internal/temporal.
package eval

import (
	"fmt"

	"github.com/blueset/calc-sub004/internal/config"
	"github.com/blueset/calc-sub004/internal/evalast"
	"github.com/blueset/calc-sub004/internal/rates"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/value"
)

// Scope is the document's cross-line variable bindings, owned by the
// orchestrator and mutated only by a successful VariableAssignmentNode
// evaluation (§3.5: a name defined on line k is visible only to lines
// after k, which the orchestrator enforces by calling Eval once per
// line in document order over the same Scope).
type Scope map[string]value.Value

// Defined satisfies internal/prune's Scope interface directly, so the
// orchestrator can pass a Session's own Env.Scope to Prune without
// keeping a second, shadow set of defined names in sync.
func (s Scope) Defined(name string) bool {
	_, ok := s[name]
	return ok
}

// Env bundles everything a line's evaluation needs beyond its own
// evalast.Node: the reference index, the installed exchange rate
// snapshot, presentation/evaluation settings, the document's variable
// scope, and the instant treated as "now" for this run (fixed once per
// document so every relative literal on every line agrees with every
// other, rather than drifting line to line).
type Env struct {
	Idx      *refdata.Index
	Rates    *rates.Table
	Settings *config.Settings
	Scope    Scope
	Now      value.Instant
}

// New builds an Env. rt may be rates.Empty() when no exchange rate
// snapshot has been installed yet.
func New(idx *refdata.Index, rt *rates.Table, settings *config.Settings, scope Scope, now value.Instant) *Env {
	return &Env{Idx: idx, Rates: rt, Settings: settings, Scope: scope, Now: now}
}

// evaluator closes over an Env for the duration of one line's walk.
type evaluator struct {
	env   *Env
	hints []value.Hint
}

// hint records a non-blocking diagnostic against the line currently
// being evaluated; it never affects the value the walk produces.
func (ev *evaluator) hint(kind value.HintKind, sp value.Span, format string, args ...any) {
	ev.hints = append(ev.hints, value.Hint{Kind: kind, Msg: fmt.Sprintf(format, args...), Span: sp})
}

// Eval evaluates one line's normalized tree against env, returning a
// value.Value — a value.Error on any typed failure, never a panic or
// Go error return, per §7's errors-as-values model — alongside any
// non-blocking hints accumulated along the way.
func Eval(n evalast.Node, env *Env) (value.Value, []value.Hint) {
	ev := &evaluator{env: env}
	v := ev.eval(n)
	return v, ev.hints
}

func spanOf(sp evalast.Span) value.Span {
	return value.Span{Start: sp.Start, End: sp.End, Column: sp.Column}
}
