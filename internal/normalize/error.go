package normalize

import "fmt"

// Error is a normalization failure: a unit, date, or timezone name the
// normalizer could not make sense of structurally (as opposed to a
// runtime evaluation failure, which the evaluator reports instead).
type Error struct {
	Message string
	Start   int
	End     int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("normalize: %s at column %d", e.Message, e.Column)
}
