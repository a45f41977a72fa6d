package person

import (
	"github.com/godouble/godouble/pkg/double"
)

// Method names scriptable on a Double.
const (
	MethodFirstName       = "FirstName"
	MethodLastName        = "LastName"
	MethodEmployerName    = "EmployerName"
	MethodSetEmployerName = "SetEmployerName"
)

// Double is a scripted implementation of Person. Tests program it through
// the embedded double.Double:
//
//	d := person.NewDouble(t)
//	d.On(person.MethodFirstName).Return("Jack").Return("Tom").Times(2)
//
// and verify consumption at teardown with d.Verify().
type Double struct {
	*double.Double
}

// NewDouble creates an unprogrammed Person double reporting violations to t.
func NewDouble(t double.TestReporter, opts ...double.Option) *Double {
	return &Double{Double: double.New(t, append([]double.Option{double.WithName("person")}, opts...)...)}
}

// FirstName consumes the next scripted first name.
func (d *Double) FirstName() string {
	return d.Called(MethodFirstName).String(0)
}

// LastName consumes the next scripted last name.
func (d *Double) LastName() string {
	return d.Called(MethodLastName).String(0)
}

// EmployerName consumes the next scripted employer for idx.
func (d *Double) EmployerName(idx int) string {
	return d.Called(MethodEmployerName, idx).String(0)
}

// SetEmployerName consumes the next scripted result code.
func (d *Double) SetEmployerName(idx int, name string) int {
	return d.Called(MethodSetEmployerName, idx, name).Int(0)
}
