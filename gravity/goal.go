package gravity

import (
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/intcode"
)

// goalPredeclared are the names visible to a goal expression.
var goalPredeclared = []string{"mem", "noun", "verb"}

// Goal is a compiled Starlark expression over the final memory of a run.
//
// The expression sees 'mem' (a tuple of the final cells), 'noun' and 'verb'.
// A boolean result is the verdict. An integer result N is shorthand for
// 'mem[0] == N'.
type Goal struct {
	Expr    string
	program *starlark.Program
}

// Compile compiles a goal expression, ie: "19690720" or "mem[0] > 1000 and verb == 2".
func Compile(expr string) (goal Goal, err error) {
	opts := syntax.FileOptions{}
	src := "rc=" + expr + "\n"
	isPredeclared := func(name string) bool {
		return slices.Contains(goalPredeclared, name)
	}

	_, prog, err := starlark.SourceProgramOptions(&opts, "goal", src, isPredeclared)
	if err != nil {
		err = &ErrGoal{Expr: expr, Err: err}
		return
	}

	goal = Goal{Expr: expr, program: prog}
	return
}

// MustCompile is like Compile but panics if the expression does not compile.
func MustCompile(expr string) Goal {
	goal, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return goal
}

// Reached evaluates the goal against the final memory of a run.
func (goal Goal) Reached(final intcode.Memory, noun, verb int64) (ok bool, err error) {
	if goal.program == nil {
		err = &ErrGoal{Expr: goal.Expr}
		return
	}

	cells := make(starlark.Tuple, len(final))
	for n, value := range final {
		cells[n] = starlark.MakeInt64(value)
	}

	thread := &starlark.Thread{Name: "goal"}
	pred := starlark.StringDict{
		"mem":  cells,
		"noun": starlark.MakeInt64(noun),
		"verb": starlark.MakeInt64(verb),
	}

	dict, err := goal.program.Init(thread, pred)
	if err != nil {
		err = &ErrGoal{Expr: goal.Expr, Err: err}
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.Bool:
		ok = bool(rc)
	case starlark.Int:
		want, exact := rc.Int64()
		if !exact {
			err = &ErrGoal{Expr: goal.Expr}
			return
		}
		ok = len(final) > 0 && final[0] == want
	default:
		err = &ErrGoal{Expr: goal.Expr}
	}

	return
}
