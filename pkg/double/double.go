// Package double implements scripted test doubles. A Double stands in for a
// capability interface in tests: each method is programmed with an ordered
// queue of canned return values and an expected call count, calls consume
// the queue first-in-first-out, and Verify reports any expectation left
// unsatisfied at teardown.
//
// A Double is exclusively owned by the test that configures it and is not
// safe for concurrent use; construct a fresh one per test.
package double

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/godouble/godouble/pkg/logger"
)

// TestReporter is the subset of testing.T used to report expectation
// violations and argument mismatches. *testing.T satisfies it, as does
// harness.T.
type TestReporter interface {
	Errorf(format string, args ...interface{})
}

// Call is one recorded invocation of a method on a Double.
type Call struct {
	Method string
	Args   []interface{}
}

// Values holds the return values consumed for one call. Accessors return
// zero values for out-of-range indices or type mismatches rather than
// panicking, so a violated expectation still lets the test body run to
// completion.
type Values []interface{}

// Get returns the i-th value, or nil if absent.
func (v Values) Get(i int) interface{} {
	if i < 0 || i >= len(v) {
		return nil
	}
	return v[i]
}

// String returns the i-th value as a string.
func (v Values) String(i int) string {
	s, _ := v.Get(i).(string)
	return s
}

// Int returns the i-th value as an int.
func (v Values) Int(i int) int {
	n, _ := v.Get(i).(int)
	return n
}

// Bool returns the i-th value as a bool.
func (v Values) Bool(i int) bool {
	b, _ := v.Get(i).(bool)
	return b
}

// Error returns the i-th value as an error.
func (v Values) Error(i int) error {
	e, _ := v.Get(i).(error)
	return e
}

// Double is a scripted stand-in for a capability interface. Typed wrappers
// implement the interface and delegate each method to Called.
type Double struct {
	id      uuid.UUID
	t       TestReporter
	log     *logger.Logger
	name    string
	methods map[string]*Expectation
	calls   []Call

	// stray is set when a method with no expectation at all was invoked;
	// there is no Expectation to carry the violated state in that case.
	stray bool
}

// Option configures a Double.
type Option func(*Double)

// WithLogger enables call tracing through the given logger.
func WithLogger(log *logger.Logger) Option {
	return func(d *Double) {
		d.log = log
	}
}

// WithName labels the double in violation messages and log entries. Useful
// when a test wires more than one double.
func WithName(name string) Option {
	return func(d *Double) {
		d.name = name
	}
}

// New creates an empty Double reporting violations to t.
func New(t TestReporter, opts ...Option) *Double {
	d := &Double{
		id:      uuid.New(),
		t:       t,
		log:     logger.Nop(),
		name:    "double",
		methods: make(map[string]*Expectation),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With("double", d.name, "double_id", d.id.String())
	return d
}

// ID returns the unique identifier assigned at construction.
func (d *Double) ID() uuid.UUID {
	return d.id
}

// On registers (or retrieves) the expectation for method and returns it for
// further configuration. Matchers, when given, constrain the arguments of
// every subsequent call; a later On for the same method replaces them.
func (d *Double) On(method string, matchers ...Matcher) *Expectation {
	exp, ok := d.methods[method]
	if !ok {
		exp = &Expectation{method: method, state: StateConfigured}
		d.methods[method] = exp
	}
	if len(matchers) > 0 {
		exp.matchers = matchers
	}
	return exp
}

// Called records one invocation of method, checks it against the configured
// expectation, and returns the next canned values. Calls to methods never
// configured with On, and calls beyond the expected count, are reported
// immediately as violations.
func (d *Double) Called(method string, args ...interface{}) Values {
	d.calls = append(d.calls, Call{Method: method, Args: args})

	exp, ok := d.methods[method]
	if !ok {
		d.stray = true
		d.log.Debug("unexpected call", "method", method, "args", fmt.Sprint(args...))
		d.t.Errorf("%s: unexpected call to unconfigured method %s", d.name, method)
		return nil
	}

	vals := exp.consume(d, args)
	d.log.Debug("call",
		"method", method,
		"call_count", exp.callCount,
		"state", exp.state.String(),
	)
	return vals
}

// CallCount returns how many times method has been invoked.
func (d *Double) CallCount(method string) int {
	if exp, ok := d.methods[method]; ok {
		return exp.callCount
	}
	n := 0
	for _, c := range d.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Calls returns a copy of every recorded invocation in call order, across
// all methods.
func (d *Double) Calls() []Call {
	out := make([]Call, len(d.calls))
	copy(out, d.calls)
	return out
}

// State returns the expectation state for method. Methods never configured
// report StateUnconfigured.
func (d *Double) State(method string) State {
	if exp, ok := d.methods[method]; ok {
		return exp.state
	}
	return StateUnconfigured
}

// Satisfied reports whether the expectation for method has been fully met.
func (d *Double) Satisfied(method string) bool {
	exp, ok := d.methods[method]
	if !ok {
		return false
	}
	return exp.satisfiable()
}

// Verify checks every configured expectation at teardown: under-called
// methods and unconsumed canned values under an exact count are reported as
// violations. It returns true when every expectation ended satisfied.
// Violations detected earlier (over-calls, unconfigured calls) also count
// against the result.
func (d *Double) Verify() bool {
	ok := !d.stray

	names := make([]string, 0, len(d.methods))
	for name := range d.methods {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		exp := d.methods[name]
		switch {
		case exp.state == StateViolated:
			ok = false
		case exp.satisfiable():
			exp.state = StateSatisfied
		case exp.callCount == exp.limit():
			exp.state = StateViolated
			ok = false
			d.t.Errorf("%s: %s left %d queued return value(s) unconsumed",
				d.name, name, len(exp.queue))
		default:
			exp.state = StateViolated
			ok = false
			d.t.Errorf("%s: %s called %d time(s), expected %d",
				d.name, name, exp.callCount, exp.limit())
		}
	}

	d.log.Debug("verify", "ok", ok, "methods", len(names), "calls", len(d.calls))
	return ok
}
