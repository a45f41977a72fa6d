// Package checks registers the scenario checks executed by the runner
// binary. Each check builds its fixtures fresh; nothing is shared between
// checks.
package checks

import (
	"fmt"

	"github.com/godouble/godouble/internal/greeting"
	"github.com/godouble/godouble/internal/harness"
	"github.com/godouble/godouble/internal/person"
	"github.com/godouble/godouble/pkg/logger"
)

// All returns every registered check, in execution order.
func All() []harness.Check {
	return []harness.Check{
		{Name: "greeting/match-hello", Fn: greetingMatchHello},
		{Name: "greeting/match-subject", Fn: greetingMatchSubject},
		{Name: "person/set-then-get", Fn: personSetThenGet},
		{Name: "person/index-independence", Fn: personIndexIndependence},
		{Name: "person/overwrite", Fn: personOverwrite},
		{Name: "person/missing-index-empty", Fn: personMissingIndexEmpty},
		{Name: "person/scripted-collaborator", Fn: personScriptedCollaborator},
		{Name: "double/over-call-detected", Fn: doubleOverCallDetected},
		{Name: "double/under-call-detected", Fn: doubleUnderCallDetected},
	}
}

func greetingMatchHello(t *harness.T) {
	t.Equal("Hello", greeting.Greeting(), "greeting")
}

func greetingMatchSubject(t *harness.T) {
	t.Equal("Hello World", greeting.GreetingTo("World"), "greeting to subject")
}

func personSetThenGet(t *harness.T) {
	wp := person.NewWorking(person.NewBasic("Ada", "Lovelace"), logger.Nop())

	t.Equal(person.SetOK, wp.SetEmployerName(0, "Microsoft"), "set result code")
	t.Equal("Microsoft", wp.EmployerName(0), "employer at 0")
}

func personIndexIndependence(t *harness.T) {
	wp := person.NewWorking(person.NewBasic("Ada", "Lovelace"), logger.Nop())

	wp.SetEmployerName(1, "Microsoft")
	wp.SetEmployerName(2, "Contoso")

	t.Equal("Microsoft", wp.EmployerName(1), "employer at 1")
	t.Equal("Contoso", wp.EmployerName(2), "employer at 2")
}

func personOverwrite(t *harness.T) {
	wp := person.NewWorking(person.NewBasic("Ada", "Lovelace"), logger.Nop())

	wp.SetEmployerName(0, "Microsoft")
	wp.SetEmployerName(0, "Contoso")

	t.Equal("Contoso", wp.EmployerName(0), "employer after overwrite")
}

func personMissingIndexEmpty(t *harness.T) {
	wp := person.NewWorking(person.NewBasic("Ada", "Lovelace"), logger.Nop())

	t.Equal("", wp.EmployerName(99), "employer at unset index")
}

// personScriptedCollaborator is the canonical double scenario: FirstName is
// scripted to return "Jack" then "Tom" across exactly two calls, one made
// internally by the entity's diagnostic and one made directly.
func personScriptedCollaborator(t *harness.T) {
	d := person.NewDouble(t)
	d.On(person.MethodFirstName).Return("Jack").Return("Tom").Times(2)
	t.Cleanup(func() { d.Verify() })

	wp := person.NewWorking(d, logger.Nop())

	t.Equal(person.SetOK, wp.SetEmployerName(0, "Microsoft"), "set result code")
	t.Equal("Microsoft", wp.EmployerName(0), "employer at 0")
	t.Equal("Tom", d.FirstName(), "second scripted first name")
	t.Equal(2, d.CallCount(person.MethodFirstName), "FirstName call count")
}

// quietReporter absorbs expected violations from doubles that the check
// drives into a violated state on purpose.
type quietReporter struct {
	failures []string
}

func (r *quietReporter) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func doubleOverCallDetected(t *harness.T) {
	rep := &quietReporter{}
	d := person.NewDouble(rep)
	d.On(person.MethodFirstName).Return("Jack").Return("Tom").Times(2)

	d.FirstName()
	d.FirstName()
	d.FirstName() // beyond the configured count

	t.Equal(false, d.Verify(), "verify after over-call")
	if len(rep.failures) == 0 {
		t.Errorf("over-call was not reported")
	}
}

func doubleUnderCallDetected(t *harness.T) {
	rep := &quietReporter{}
	d := person.NewDouble(rep)
	d.On(person.MethodFirstName).Return("Jack").Return("Tom").Times(2)

	d.FirstName()

	t.Equal(false, d.Verify(), "verify after under-call")
	if len(rep.failures) == 0 {
		t.Errorf("under-call was not reported")
	}
}
