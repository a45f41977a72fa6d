// Package person contains the example entity pair the double library is
// demonstrated on: a Person capability interface, a plain record
// implementation, and a WorkingPerson entity that keeps per-index employer
// names and delegates name lookups to an injected collaborator.
package person

import (
	"github.com/godouble/godouble/pkg/logger"
)

// SetOK is the result code returned by a successful SetEmployerName. The
// operation cannot fail; the code exists so every implementation of the
// capability shares one signature.
const SetOK = 0

// Person is the capability contract for a named person with indexed
// employer associations. It carries no state of its own.
type Person interface {
	FirstName() string
	LastName() string
	// EmployerName returns the employer stored at idx, or "" when idx was
	// never set. A missing index is not an error.
	EmployerName(idx int) string
	// SetEmployerName stores name at idx, overwriting any prior value, and
	// returns SetOK.
	SetEmployerName(idx int, name string) int
}

// BasicPerson is the plain record implementation of Person.
type BasicPerson struct {
	first     string
	last      string
	employers map[int]string
}

// NewBasic creates a BasicPerson with the given names and no employers.
func NewBasic(first, last string) *BasicPerson {
	return &BasicPerson{
		first:     first,
		last:      last,
		employers: make(map[int]string),
	}
}

// FirstName returns the person's first name.
func (p *BasicPerson) FirstName() string { return p.first }

// LastName returns the person's last name.
func (p *BasicPerson) LastName() string { return p.last }

// EmployerName returns the employer stored at idx, or "" when absent.
func (p *BasicPerson) EmployerName(idx int) string {
	return p.employers[idx]
}

// SetEmployerName stores name at idx and returns SetOK.
func (p *BasicPerson) SetEmployerName(idx int, name string) int {
	p.employers[idx] = name
	return SetOK
}

// WorkingPerson owns an index-to-employer mapping and borrows its names
// from an injected Person collaborator. The collaborator is the reason the
// capability abstraction exists: tests substitute a scripted double for it.
type WorkingPerson struct {
	names     Person
	employers map[int]string
	log       *logger.Logger
}

// NewWorking creates a WorkingPerson with no employer associations. The
// names collaborator supplies FirstName and LastName; log receives one
// diagnostic line per employer lookup (pass logger.Nop to silence it).
func NewWorking(names Person, log *logger.Logger) *WorkingPerson {
	if log == nil {
		log = logger.Nop()
	}
	return &WorkingPerson{
		names:     names,
		employers: make(map[int]string),
		log:       log,
	}
}

// FirstName delegates to the names collaborator.
func (p *WorkingPerson) FirstName() string { return p.names.FirstName() }

// LastName delegates to the names collaborator.
func (p *WorkingPerson) LastName() string { return p.names.LastName() }

// EmployerName returns the employer stored at idx, or "" when idx was never
// set. It emits one diagnostic line pairing the collaborator's first name
// with the looked-up employer.
func (p *WorkingPerson) EmployerName(idx int) string {
	name := p.employers[idx]
	p.log.Info("employer lookup",
		"first_name", p.names.FirstName(),
		"idx", idx,
		"employer", name,
	)
	return name
}

// SetEmployerName stores name at idx, overwriting unconditionally, and
// returns SetOK.
func (p *WorkingPerson) SetEmployerName(idx int, name string) int {
	p.employers[idx] = name
	return SetOK
}
