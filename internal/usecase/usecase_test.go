package usecase

import (
	"context"
	"errors"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/project"
	"talent-match/internal/infrastructure/persistence/memory"

	"github.com/google/uuid"
)

type mockProjectRepo struct {
	items []project.Project
	err   error
}

func (m mockProjectRepo) List(context.Context) ([]project.Project, error) { return m.items, m.err }
func (m mockProjectRepo) GetByID(_ context.Context, id uuid.UUID) (project.Project, error) {
	if m.err != nil {
		return project.Project{}, m.err
	}
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, project.ErrNotFound
}

type mockEmployeeRepo struct {
	items   []employee.Employee
	listErr error
	getErr  error
	// missing ids are listed but not resolvable by GetByID
	missing map[uuid.UUID]bool
}

func (m mockEmployeeRepo) List(context.Context) ([]employee.Employee, error) {
	return m.items, m.listErr
}
func (m mockEmployeeRepo) GetByID(_ context.Context, id uuid.UUID) (employee.Employee, error) {
	if m.getErr != nil {
		return employee.Employee{}, m.getErr
	}
	if m.missing[id] {
		return employee.Employee{}, employee.ErrNotFound
	}
	for _, e := range m.items {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrNotFound
}

var errBoom = errors.New("boom")

type scenario struct {
	catalog *memory.Catalog
	p1      project.Project
	e1      employee.Employee
	e2      employee.Employee
}

// newScenario builds P1{React,Python}, E1{React,Node}, E2{React,Python,Docker}.
func newScenario() scenario {
	c := memory.NewCatalog()
	s := scenario{catalog: c}
	s.p1 = c.PutProject(project.Project{Name: "P1", Skills: []string{"React", "Python"}})
	s.e1 = c.PutEmployee(employee.Employee{Name: "E1", Role: "Frontend", Skills: []string{"React", "Node"}})
	s.e2 = c.PutEmployee(employee.Employee{Name: "E2", Role: "Fullstack", Skills: []string{"React", "Python", "Docker"}})
	return s
}
