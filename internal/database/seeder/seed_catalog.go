package seeder

import (
	"context"

	"talent-match/internal/database"
)

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

func (ProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "projects", "id", "name", "description", "skills", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range DemoProjects() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO projects (id, name, description, skills) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				skills = EXCLUDED.skills`,
			p.ID, p.Name, p.Description, p.Skills,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

type EmployeesSeeder struct{}

func (EmployeesSeeder) Name() string { return "employees" }

func (EmployeesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "employees", "id", "name", "role", "skills", "seniority", "availability", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, e := range DemoEmployees() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO employees (id, name, role, skills, seniority, availability) VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				role = EXCLUDED.role,
				skills = EXCLUDED.skills,
				seniority = EXCLUDED.seniority,
				availability = EXCLUDED.availability`,
			e.ID, e.Name, e.Role, e.Skills, e.Seniority, e.Availability,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
