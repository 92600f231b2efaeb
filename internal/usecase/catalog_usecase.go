package usecase

import (
	"context"
	"errors"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/project"

	"github.com/google/uuid"
)

type CatalogUsecase interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (project.Project, error)
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (employee.Employee, error)
}

type Catalog struct {
	projects  project.Repository
	employees employee.Repository
}

func NewCatalogUsecase(projects project.Repository, employees employee.Repository) *Catalog {
	return &Catalog{projects: projects, employees: employees}
}

func (u *Catalog) ListProjects(ctx context.Context) ([]project.Project, error) {
	items, err := u.projects.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return items, nil
}

func (u *Catalog) GetProject(ctx context.Context, id uuid.UUID) (project.Project, error) {
	return getProject(ctx, u.projects, id)
}

func (u *Catalog) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	items, err := u.employees.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return items, nil
}

func (u *Catalog) GetEmployee(ctx context.Context, id uuid.UUID) (employee.Employee, error) {
	if id == uuid.Nil {
		return employee.Employee{}, ErrEmployeeNotFound
	}
	e, err := u.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, internalError(err)
	}
	return e, nil
}

func getProject(ctx context.Context, repo project.Repository, id uuid.UUID) (project.Project, error) {
	if id == uuid.Nil {
		return project.Project{}, ErrProjectNotFound
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, internalError(err)
	}
	return p, nil
}
