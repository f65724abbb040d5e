// Package calc provides a clean, idiomatic Go API for evaluating the
// notebook-style calculator language: markdown headings interleaved
// with expression lines, cross-line variables, unit- and
// currency-aware arithmetic, and date/time arithmetic.
//
// Basic usage:
//
//	result, err := calc.Eval("1 + 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Value)
//
// Stateful sessions (for a REPL or a live editor):
//
//	session := calc.NewSession()
//	session.Eval("x = 10")
//	result, _ := session.Eval("x + 5")
//	fmt.Println(result.Value)
package calc

import (
	"time"

	"github.com/blueset/calc-sub004/internal/config"
	"github.com/blueset/calc-sub004/internal/eval"
	"github.com/blueset/calc-sub004/internal/orchestrator"
	"github.com/blueset/calc-sub004/internal/rates"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/value"
)

// Session maintains state across Eval calls: variable bindings, the
// installed exchange rate snapshot, and presentation/locale settings.
type Session struct {
	idx      *refdata.Index
	rates    *rates.Table
	settings *config.Settings
	scope    eval.Scope
}

// NewSession creates a session using the on-disk configuration (merged
// with compiled-in defaults) and no installed exchange rates.
func NewSession() *Session {
	settings, err := config.Load()
	if err != nil || settings == nil {
		settings = config.Default()
	}
	return &Session{
		idx:      refdata.DefaultIndex(),
		rates:    rates.Empty(),
		settings: settings,
		scope:    eval.Scope{},
	}
}

// Eval evaluates input in this session's context. Variable assignments
// persist across calls; a bare expression does not.
func (s *Session) Eval(input string) (*Result, error) {
	now := value.Instant{EpochMs: time.Now().UnixMilli()}
	doc := orchestrator.NewDocumentWithScope(s.idx, s.rates, s.settings, s.scope, now)
	lines := doc.Eval(input)
	s.scope = doc.Env().Scope
	return buildResult(lines), nil
}

// Reset clears all variables in this session.
func (s *Session) Reset() {
	s.scope = eval.Scope{}
}

// GetVariable retrieves a variable's value by name.
func (s *Session) GetVariable(name string) (value.Value, bool) {
	v, ok := s.scope[name]
	return v, ok
}

// LoadExchangeRates installs an exchange rate snapshot, replacing any
// previously installed snapshot, for currency conversion.
func (s *Session) LoadExchangeRates(data rates.Data) {
	s.rates = rates.Load(data)
}

// SetRegion changes the locale-dependent formatting defaults (digit
// grouping, decimal separator, date order) for this session.
func (s *Session) SetRegion(region string) {
	s.settings.SetRegion(region)
}

// SetAngleUnit changes which angle unit a bare (unitless) trig
// function argument is interpreted as: "deg" or "rad".
func (s *Session) SetAngleUnit(unit string) {
	s.settings.SetAngleUnit(unit)
}

// Eval evaluates a single input with a fresh, unshared session.
func Eval(input string) (*Result, error) {
	return NewSession().Eval(input)
}
