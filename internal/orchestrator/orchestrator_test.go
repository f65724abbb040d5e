package orchestrator

import (
	"testing"

	"github.com/blueset/calc-sub004/internal/config"
	"github.com/blueset/calc-sub004/internal/preprocess"
	"github.com/blueset/calc-sub004/internal/rates"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/value"
)

func TestDocumentCrossLineVariables(t *testing.T) {
	doc := NewDocument(refdata.DefaultIndex(), rates.Empty(), config.Default(), value.Instant{})

	results := doc.Eval("# Rent\n\nrent = 1000\nrent * 12\n")
	if len(results) != 4 {
		t.Fatalf("got %d lines, want 4", len(results))
	}
	if results[0].Kind != preprocess.KindHeading {
		t.Errorf("line 1 kind = %v, want heading", results[0].Kind)
	}
	if results[1].Kind != preprocess.KindEmpty {
		t.Errorf("line 2 kind = %v, want empty", results[1].Kind)
	}
	if results[3].Rendered != "12 000" {
		t.Errorf("line 4 rendered = %q, want 12 000", results[3].Rendered)
	}
}

func TestDocumentUndefinedVariable(t *testing.T) {
	doc := NewDocument(refdata.DefaultIndex(), rates.Empty(), config.Default(), value.Instant{})
	results := doc.Eval("never_defined + 1\n")
	if !results[0].HasError {
		t.Errorf("expected an error for undefined variable, got %q", results[0].Rendered)
	}
}

func TestPercentOfSugar(t *testing.T) {
	doc := NewDocument(refdata.DefaultIndex(), rates.Empty(), config.Default(), value.Instant{})
	results := doc.Eval("50% of 200\n")
	if results[0].HasError {
		t.Fatalf("50%% of 200 errored: %q", results[0].Rendered)
	}
	if results[0].Rendered != "100" {
		t.Errorf("50%% of 200 rendered = %q, want 100", results[0].Rendered)
	}
}

func TestFahrenheitToCelsiusEndToEnd(t *testing.T) {
	doc := NewDocument(refdata.DefaultIndex(), rates.Empty(), config.Default(), value.Instant{})
	results := doc.Eval("100 degF to degC\n")
	if results[0].HasError {
		t.Fatalf("100 degF to degC errored: %q", results[0].Rendered)
	}
	n, ok := results[0].Value.(value.Number)
	if !ok {
		t.Fatalf("100 degF to degC = %v, want Number", results[0].Value)
	}
	if diff := n.X - 37.7778; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("100 degF to degC = %v, want ~37.7778", n.X)
	}
}
