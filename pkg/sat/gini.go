package sat

import (
	"context"
	"errors"
	"time"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// pollSlice bounds how long a cancellable solve runs between context checks.
const pollSlice = 50 * time.Millisecond

// Gini is an Oracle backed by the gini solver.
type Gini struct {
	g      *gini.Gini
	maxVar int
}

var _ Oracle = (*Gini)(nil)

// NewGini creates a fresh gini-backed oracle session.
func NewGini() *Gini {
	return &Gini{g: gini.New()}
}

// AddClause implements Oracle.
func (o *Gini) AddClause(lits ...int) {
	for _, lit := range lits {
		if lit == 0 {
			panic("sat: zero literal in clause")
		}
		v := lit
		if v < 0 {
			v = -v
		}
		if v > o.maxVar {
			o.maxVar = v
		}
		o.g.Add(z.Dimacs2Lit(lit))
	}
	o.g.Add(z.LitNull)
}

// Solve implements Oracle.
func (o *Gini) Solve(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &OracleError{Op: "solve", Err: err}
	}

	// Without a deadline a blocking solve suffices; gini always returns a
	// determinate result from Solve.
	deadline, ok := ctx.Deadline()
	if !ok && ctx.Done() == nil {
		return o.g.Solve() == 1, nil
	}

	// Run the solve in gini's own goroutine and poll in slices so both
	// deadlines and plain cancellation interrupt long solves.
	hdl := o.g.GoSolve()
	for {
		slice := pollSlice
		if ok {
			remain := time.Until(deadline)
			if remain <= 0 {
				hdl.Stop()
				return false, &OracleError{Op: "solve", Err: context.DeadlineExceeded}
			}
			if remain < slice {
				slice = remain
			}
		}
		switch r := hdl.Try(slice); r {
		case 1:
			return true, nil
		case -1:
			return false, nil
		}
		if err := ctx.Err(); err != nil {
			hdl.Stop()
			return false, &OracleError{Op: "solve", Err: err}
		}
	}
}

// Model implements Oracle.
func (o *Gini) Model() []int {
	model := make([]int, 0, o.maxVar)
	for v := 1; v <= o.maxVar; v++ {
		if o.g.Value(z.Var(v).Pos()) {
			model = append(model, v)
		} else {
			model = append(model, -v)
		}
	}
	return model
}

// IsOracleError reports whether err originated in the solving engine.
func IsOracleError(err error) bool {
	var oe *OracleError
	return errors.As(err, &oe)
}
