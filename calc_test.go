package calc

import "testing"

func TestEvalSimple(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "addition", input: "1 + 1", want: "2"},
		{name: "multiplication", input: "5 * 3", want: "15"},
		{name: "unit conversion", input: "1 km to m", want: "1000 meter"},
		{name: "division by zero", input: "1 / 0", want: "Error: division by zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Eval(tt.input)
			if err != nil {
				t.Fatalf("Eval() error = %v", err)
			}
			if result.Value == nil {
				t.Fatal("Eval() returned no value")
			}
			got := result.Value.String()
			if got != tt.want {
				t.Errorf("Eval(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSessionPersistsVariables(t *testing.T) {
	session := NewSession()

	if _, err := session.Eval("x = 10"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	result, err := session.Eval("x + 5")
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	if got := result.Value.String(); got != "15" {
		t.Errorf("x + 5 = %q, want 15", got)
	}

	v, ok := session.GetVariable("x")
	if !ok {
		t.Fatal("GetVariable(x) not found")
	}
	if got := v.String(); got != "10" {
		t.Errorf("GetVariable(x) = %q, want 10", got)
	}
}

func TestSessionResetClearsVariables(t *testing.T) {
	session := NewSession()
	if _, err := session.Eval("y = 42"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	session.Reset()

	result, err := session.Eval("y")
	if err != nil {
		t.Fatalf("eval after reset: %v", err)
	}
	if !result.Lines[0].HasError {
		t.Error("expected undefined-variable error after Reset")
	}
}

func TestEvalDocumentWithHeadingsAndBlanks(t *testing.T) {
	doc := "# Budget\n\nrent = 1000\nrent * 12\n"
	result, err := Eval(doc)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	if len(result.AllValues) != 2 {
		t.Fatalf("expected 2 expression values, got %d", len(result.AllValues))
	}
	if got := result.Value.String(); got != "12000" {
		t.Errorf("last value = %q, want 12000", got)
	}
}
