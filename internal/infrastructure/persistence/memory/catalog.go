package memory

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/project"

	"github.com/google/uuid"
)

// Catalog is an in-process project and employee store used when no database is
// configured. Reads return copies, so callers always work on a snapshot.
type Catalog struct {
	mu        sync.RWMutex
	projects  map[uuid.UUID]project.Project
	employees map[uuid.UUID]employee.Employee
	now       func() time.Time
}

func NewCatalog() *Catalog {
	return &Catalog{
		projects:  map[uuid.UUID]project.Project{},
		employees: map[uuid.UUID]employee.Employee{},
		now:       time.Now,
	}
}

// PutProject inserts or replaces p. A nil id is assigned a new one.
func (c *Catalog) PutProject(p project.Project) project.Project {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if prev, ok := c.projects[p.ID]; ok {
		p.CreatedAt = prev.CreatedAt
	} else if p.CreatedAt.IsZero() {
		p.CreatedAt = c.now().UTC()
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	c.projects[p.ID] = p.Clone()
	return p.Clone()
}

// PutEmployee inserts or replaces e. A nil id is assigned a new one.
func (c *Catalog) PutEmployee(e employee.Employee) employee.Employee {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if prev, ok := c.employees[e.ID]; ok {
		e.CreatedAt = prev.CreatedAt
	} else if e.CreatedAt.IsZero() {
		e.CreatedAt = c.now().UTC()
	}
	if e.Skills == nil {
		e.Skills = []string{}
	}
	c.employees[e.ID] = e.Clone()
	return e.Clone()
}

func (c *Catalog) DeleteEmployee(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.employees, id)
}

func (c *Catalog) DeleteProject(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.projects, id)
}

func (c *Catalog) Projects() project.Repository { return projectView{c} }

func (c *Catalog) Employees() employee.Repository { return employeeView{c} }

type projectView struct{ c *Catalog }

func (v projectView) List(ctx context.Context) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v.c.mu.RLock()
	out := make([]project.Project, 0, len(v.c.projects))
	for _, p := range v.c.projects {
		out = append(out, p.Clone())
	}
	v.c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return lessByName(out[i].Name, out[j].Name, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (v projectView) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}
	v.c.mu.RLock()
	defer v.c.mu.RUnlock()

	p, ok := v.c.projects[id]
	if !ok {
		return project.Project{}, project.ErrNotFound
	}
	return p.Clone(), nil
}

type employeeView struct{ c *Catalog }

func (v employeeView) List(ctx context.Context) ([]employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v.c.mu.RLock()
	out := make([]employee.Employee, 0, len(v.c.employees))
	for _, e := range v.c.employees {
		out = append(out, e.Clone())
	}
	v.c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return lessByName(out[i].Name, out[j].Name, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (v employeeView) GetByID(ctx context.Context, id uuid.UUID) (employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return employee.Employee{}, err
	}
	v.c.mu.RLock()
	defer v.c.mu.RUnlock()

	e, ok := v.c.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrNotFound
	}
	return e.Clone(), nil
}

// lessByName orders case-insensitively, then by exact name, then by id, so names that
// differ only in case still sort deterministically.
func lessByName(a, b string, aID, bID uuid.UUID) bool {
	if la, lb := strings.ToLower(a), strings.ToLower(b); la != lb {
		return la < lb
	}
	if a != b {
		return a < b
	}
	return bytes.Compare(aID[:], bID[:]) < 0
}
