package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("project not found")

type Repository interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (Project, error)
}
