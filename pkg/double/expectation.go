package double

// State tracks the lifecycle of one method's expectation.
type State int

const (
	// StateUnconfigured means no expectation was ever registered.
	StateUnconfigured State = iota
	// StateConfigured means the expectation is programmed but not yet called.
	StateConfigured
	// StateConsuming means at least one call has consumed a canned value.
	StateConsuming
	// StateSatisfied means the expected call count was met exactly.
	StateSatisfied
	// StateViolated means an over-call, under-call, or exhausted value queue
	// was detected.
	StateViolated
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfigured:
		return "configured"
	case StateConsuming:
		return "consuming"
	case StateSatisfied:
		return "satisfied"
	case StateViolated:
		return "violated"
	default:
		return "unknown"
	}
}

// anyTimes marks an expectation with no call-count ceiling.
const anyTimes = -1

// Expectation is the scripted contract for one method: an ordered queue of
// canned return-value sets, an expected call count, and optional argument
// matchers. Zero value is unusable; obtain one through Double.On.
type Expectation struct {
	method   string
	matchers []Matcher
	queue    []Values
	queued   int    // total sets ever queued, the implicit expected count
	repeat   Values // fallback once the queue is drained; nil means none
	expected int
	explicit bool // Times or AnyTimes was called
	callCount int
	state     State
}

// Return queues one set of canned return values, consumed by a single call.
// Successive Return calls script successive invocations.
func (e *Expectation) Return(vals ...interface{}) *Expectation {
	e.queue = append(e.queue, Values(vals))
	e.queued++
	return e
}

// ReturnAlways sets the values handed out once the queue is drained, for
// expectations that allow repeated calls.
func (e *Expectation) ReturnAlways(vals ...interface{}) *Expectation {
	e.repeat = Values(vals)
	return e
}

// Times sets the exact number of calls expected. Without Times the expected
// count defaults to the number of queued Return sets, or any number of
// times when only ReturnAlways is configured.
func (e *Expectation) Times(n int) *Expectation {
	e.expected = n
	e.explicit = true
	return e
}

// AnyTimes removes the call-count ceiling: any number of calls, including
// zero, satisfies the expectation.
func (e *Expectation) AnyTimes() *Expectation {
	e.expected = anyTimes
	e.explicit = true
	return e
}

// State returns the expectation's current lifecycle state.
func (e *Expectation) State() State {
	return e.state
}

// limit returns the expected call count, or anyTimes for uncapped
// expectations.
func (e *Expectation) limit() int {
	if e.explicit {
		return e.expected
	}
	if e.queued == 0 && e.repeat != nil {
		return anyTimes
	}
	return e.queued
}

// satisfiable reports whether the expectation is currently met: the exact
// count reached with the queue drained, or an uncapped expectation.
func (e *Expectation) satisfiable() bool {
	if e.state == StateViolated {
		return false
	}
	limit := e.limit()
	if limit == anyTimes {
		return true
	}
	return e.callCount == limit && len(e.queue) == 0
}

// consume records one call against the expectation and returns the next
// canned values. Argument mismatches and over-calls are reported through
// the double's TestReporter but never abort the caller.
func (e *Expectation) consume(d *Double, args []interface{}) Values {
	if e.state == StateConfigured {
		e.state = StateConsuming
	}
	e.callCount++

	e.checkArgs(d, args)

	if limit := e.limit(); limit != anyTimes && e.callCount > limit {
		e.state = StateViolated
		d.t.Errorf("%s: %s called %d time(s), expected %d",
			d.name, e.method, e.callCount, limit)
	}

	var vals Values
	switch {
	case len(e.queue) > 0:
		vals = e.queue[0]
		e.queue = e.queue[1:]
	case e.repeat != nil:
		vals = e.repeat
	default:
		if e.state != StateViolated {
			e.state = StateViolated
			d.t.Errorf("%s: no return values left for %s (call %d)",
				d.name, e.method, e.callCount)
		}
	}

	if e.state == StateConsuming && e.satisfiable() && e.limit() != anyTimes {
		e.state = StateSatisfied
	}
	return vals
}

// checkArgs validates the call's arguments against the configured matchers.
func (e *Expectation) checkArgs(d *Double, args []interface{}) {
	if len(e.matchers) == 0 {
		return
	}
	if len(args) != len(e.matchers) {
		d.t.Errorf("%s: %s called with %d argument(s), expected %d",
			d.name, e.method, len(args), len(e.matchers))
		return
	}
	for i, m := range e.matchers {
		if !m.Matches(args[i]) {
			d.t.Errorf("%s: %s argument %d = %v, want %s",
				d.name, e.method, i, args[i], m)
		}
	}
}
