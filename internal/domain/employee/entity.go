package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID
	Name         string
	Role         string
	Skills       []string
	Seniority    *string
	Availability *string
	CreatedAt    time.Time
}

// Clone returns a copy that shares no slices or pointers with e.
func (e Employee) Clone() Employee {
	out := e
	out.Skills = make([]string, len(e.Skills))
	copy(out.Skills, e.Skills)
	if e.Seniority != nil {
		s := *e.Seniority
		out.Seniority = &s
	}
	if e.Availability != nil {
		a := *e.Availability
		out.Availability = &a
	}
	return out
}
