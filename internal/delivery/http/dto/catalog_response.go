package dto

import (
	"time"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/project"

	"github.com/google/uuid"
)

type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
}

type EmployeeResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Skills       []string  `json:"skills"`
	Seniority    *string   `json:"seniority,omitempty"`
	Availability *string   `json:"availability,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewProjectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Skills:      nonNil(p.Skills),
		CreatedAt:   p.CreatedAt,
	}
}

func NewProjectListResponse(items []project.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

func NewEmployeeResponse(e employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Role:         e.Role,
		Skills:       nonNil(e.Skills),
		Seniority:    e.Seniority,
		Availability: e.Availability,
		CreatedAt:    e.CreatedAt,
	}
}

func NewEmployeeListResponse(items []employee.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(items))
	for _, e := range items {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
