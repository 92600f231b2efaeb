package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/project"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: want %d dest, got %d", len(r.values), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		case *string:
			*p = r.values[i].(string)
		case *[]string:
			v, _ := r.values[i].([]string)
			*p = v
		case **string:
			v, _ := r.values[i].(*string)
			*p = v
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported dest %T", d)
		}
	}
	return nil
}

type fakeRows struct {
	rows []fakeRow
	idx  int
	err  error
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Next() bool { r.idx++; return r.idx <= len(r.rows) }
func (r *fakeRows) Scan(dest ...any) error {
	return r.rows[r.idx-1].Scan(dest...)
}
func (r *fakeRows) Err() error { return r.err }

type fakeDB struct {
	database.DB
	rows     *fakeRows
	queryErr error
	row      fakeRow
	lastSQL  string
	lastArgs []any
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.lastSQL, f.lastArgs = query, args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	f.lastSQL, f.lastArgs = query, args
	return f.row
}

func TestPostgresProjectRepository_List(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()
	db := &fakeDB{rows: &fakeRows{rows: []fakeRow{
		{values: []any{id, "Alpha", "desc", []string{"Go"}, now}},
		{values: []any{uuid.New(), "Beta", "", nil, now}},
	}}}

	got, err := NewPostgresProjectRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, project.Project{ID: id, Name: "Alpha", Description: "desc", Skills: []string{"Go"}, CreatedAt: now}, got[0])
	assert.Equal(t, []string{}, got[1].Skills)
	assert.Contains(t, db.lastSQL, "ORDER BY name ASC, id ASC")
}

func TestPostgresProjectRepository_ListErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewPostgresProjectRepository(&fakeDB{queryErr: boom}).List(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = NewPostgresProjectRepository(&fakeDB{rows: &fakeRows{err: boom}}).List(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestPostgresProjectRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	_, err := NewPostgresProjectRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}}).GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, project.ErrNotFound)

	_, err = NewPostgresProjectRepository(&fakeDB{}).GetByID(ctx, uuid.Nil)
	assert.ErrorIs(t, err, project.ErrNotFound)

	boom := errors.New("boom")
	_, err = NewPostgresProjectRepository(&fakeDB{row: fakeRow{err: boom}}).GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, boom)
}

func TestPostgresEmployeeRepository_GetByID(t *testing.T) {
	id := uuid.New()
	senior := "senior"
	now := time.Now().UTC()
	db := &fakeDB{row: fakeRow{values: []any{id, "Alice", "Dev", []string{"React"}, &senior, nil, now}}}

	got, err := NewPostgresEmployeeRepository(db).GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	require.NotNil(t, got.Seniority)
	assert.Equal(t, "senior", *got.Seniority)
	assert.Nil(t, got.Availability)
	assert.Equal(t, []any{id}, db.lastArgs)

	_, err = NewPostgresEmployeeRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}}).GetByID(context.Background(), id)
	assert.ErrorIs(t, err, employee.ErrNotFound)
}

func TestPostgresEmployeeRepository_List(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{rows: []fakeRow{
		{values: []any{uuid.New(), "Alice", "Dev", []string{"React"}, nil, nil, time.Now()}},
	}}}

	got, err := NewPostgresEmployeeRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Name)
}
