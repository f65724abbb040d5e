// Package orchestrator runs a document's lines through every pipeline
// stage in order — preprocess, lexer, parser, pruner, selector,
// normalizer, evaluator, formatter — threading a single variable scope
// across lines so a name assigned on one line is visible to every
// line after it, never before.
package orchestrator

import (
	"github.com/blueset/calc-sub004/internal/config"
	"github.com/blueset/calc-sub004/internal/eval"
	"github.com/blueset/calc-sub004/internal/format"
	"github.com/blueset/calc-sub004/internal/lexer"
	"github.com/blueset/calc-sub004/internal/normalize"
	"github.com/blueset/calc-sub004/internal/parser"
	"github.com/blueset/calc-sub004/internal/preprocess"
	"github.com/blueset/calc-sub004/internal/prune"
	"github.com/blueset/calc-sub004/internal/rates"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/selector"
	"github.com/blueset/calc-sub004/internal/value"
)

// LineResult is one line's outcome: a heading, a blank line, or an
// evaluated expression with its runtime value and rendered text.
type LineResult struct {
	Number   int
	Kind     preprocess.Kind
	Level    int
	Text     string
	Value    value.Value
	Rendered string
	HasError bool
	Hints    []value.Hint
}

// Document evaluates an entire notebook, line by line, over one
// persistent variable scope.
type Document struct {
	env *eval.Env
}

// NewDocument builds a Document ready to evaluate lines. now fixes the
// instant every relative literal ("now", "today", "3 days ago") on
// every line of this run resolves against, so a multi-line document
// never disagrees with itself about what "today" means.
func NewDocument(idx *refdata.Index, rt *rates.Table, settings *config.Settings, now value.Instant) *Document {
	return NewDocumentWithScope(idx, rt, settings, eval.Scope{}, now)
}

// NewDocumentWithScope builds a Document seeded with a pre-existing
// variable scope, letting a caller carry variables across otherwise
// separate documents (a REPL session evaluating one line at a time, or
// a session replaying prior input before accepting new lines).
func NewDocumentWithScope(idx *refdata.Index, rt *rates.Table, settings *config.Settings, scope eval.Scope, now value.Instant) *Document {
	return &Document{env: eval.New(idx, rt, settings, scope, now)}
}

// Env exposes the underlying evaluation environment, e.g. so a caller
// can read or seed Scope directly between documents.
func (doc *Document) Env() *eval.Env { return doc.env }

// Eval splits text into lines and evaluates each in order, returning
// one LineResult per line.
func (doc *Document) Eval(text string) []LineResult {
	lines := preprocess.Split(text)
	out := make([]LineResult, len(lines))
	for i, ln := range lines {
		out[i] = doc.evalLine(ln)
	}
	return out
}

func (doc *Document) evalLine(ln preprocess.Line) (result LineResult) {
	r := LineResult{Number: ln.Number, Kind: ln.Kind, Level: ln.Level, Text: ln.Text}
	switch ln.Kind {
	case preprocess.KindEmpty, preprocess.KindHeading:
		return r
	}

	fail := func(kind value.ErrorKind, sp value.Span, msg string, args ...any) LineResult {
		r.Value = value.Errorf(kind, sp, msg, args...)
		r.HasError = true
		r.Rendered = format.Render(r.Value, doc.env.Idx, doc.env.Settings)
		return r
	}

	// A panic anywhere in this line's pipeline (a malformed AST reaching
	// eval, an out-of-range slice in a stage) degrades to a per-line
	// RuntimeError instead of aborting the rest of the document.
	defer func() {
		if rec := recover(); rec != nil {
			result = fail(value.RuntimeError, value.Span{}, "internal error: %v", rec)
		}
	}()

	toks, lexErrs := lexer.Lex(ln.Text)
	if len(lexErrs) > 0 {
		e := lexErrs[0]
		return fail(value.DomainError, value.Span{Start: e.Offset, End: e.EndOffset, Column: e.Column}, "%s", e.Error())
	}

	candidates, perr := parser.New(toks).Parse()
	if perr != nil {
		return fail(value.DomainError, value.Span{Start: perr.Offset, Column: perr.Column}, "%s", perr.Message)
	}

	pruned, prerr := prune.Prune(candidates, doc.env.Scope)
	if prerr != nil {
		return fail(value.UnknownVariable, value.Span{}, "undefined variable %q", prerr.UndefinedName)
	}

	selected := selector.Select(pruned, doc.env.Idx)

	node, nerr := normalize.Normalize(selected, doc.env.Idx)
	if nerr != nil {
		return fail(value.DomainError, value.Span{Start: nerr.Start, End: nerr.End, Column: nerr.Column}, "%s", nerr.Message)
	}

	val, hints := eval.Eval(node, doc.env)
	r.Value = val
	r.Hints = hints
	_, r.HasError = value.IsError(val)
	r.Rendered = format.Render(val, doc.env.Idx, doc.env.Settings)
	return r
}
