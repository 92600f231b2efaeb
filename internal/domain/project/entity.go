package project

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	Skills      []string
	CreatedAt   time.Time
}

// Clone returns a copy that shares no slices with p.
func (p Project) Clone() Project {
	out := p
	out.Skills = make([]string, len(p.Skills))
	copy(out.Skills, p.Skills)
	return out
}
