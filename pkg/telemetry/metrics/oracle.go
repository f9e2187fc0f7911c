package metrics

import (
	"context"

	"mercator-hq/callisto/pkg/sat"
)

// instrumentedOracle counts every solve outcome on the collector's
// solver_solves_total counter.
type instrumentedOracle struct {
	sat.Oracle
	collector *Collector
}

// NewOracle creates a fresh gini-backed oracle session whose solve calls are
// recorded by the collector. Suitable as analysis.Options.NewOracle.
func (c *Collector) NewOracle() sat.Oracle {
	return c.InstrumentOracle(sat.NewGini())
}

// InstrumentOracle wraps an existing oracle session with solve counting.
func (c *Collector) InstrumentOracle(o sat.Oracle) sat.Oracle {
	return &instrumentedOracle{Oracle: o, collector: c}
}

func (o *instrumentedOracle) Solve(ctx context.Context) (bool, error) {
	ok, err := o.Oracle.Solve(ctx)
	switch {
	case err != nil:
		o.collector.RecordSolve("error")
	case ok:
		o.collector.RecordSolve("sat")
	default:
		o.collector.RecordSolve("unsat")
	}
	return ok, err
}
