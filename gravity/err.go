package gravity

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNotFound = errors.New(f("no noun and verb reach the goal"))
)

// ErrGoal is returned when a goal expression does not compile, or does not
// evaluate to a boolean or an integer.
type ErrGoal struct {
	Expr string
	Err  error
}

func (err *ErrGoal) Error() string {
	if err.Err == nil {
		return f("goal '%v' is not a boolean or integer", err.Expr)
	}
	return f("goal '%v' %v", err.Expr, err.Err)
}

func (err *ErrGoal) Unwrap() error {
	return err.Err
}
