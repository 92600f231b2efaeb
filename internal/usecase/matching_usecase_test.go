package usecase

import (
	"context"
	"testing"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/project"
	"talent-match/internal/infrastructure/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMatching(projects project.Repository, employees employee.Repository, opts MatchingOptions) *Matching {
	return NewMatchingUsecase(projects, employees, opts, zap.NewNop())
}

func TestMatching_MatchProject_Scenario(t *testing.T) {
	s := newScenario()
	uc := newMatching(s.catalog.Projects(), s.catalog.Employees(), MatchingOptions{})

	got, err := uc.MatchProject(context.Background(), s.p1.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, s.e2.ID, got[0].EmployeeID)
	assert.Equal(t, 1.0, got[0].Score)
	assert.Equal(t, s.e1.ID, got[1].EmployeeID)
	assert.Equal(t, 0.5, got[1].Score)
	assert.Equal(t, []string{"Python"}, got[1].MissingSkills)
}

func TestMatching_MatchProject_EmptyCatalog(t *testing.T) {
	c := memory.NewCatalog()
	p := c.PutProject(project.Project{Name: "P1", Skills: []string{"React"}})
	uc := newMatching(c.Projects(), c.Employees(), MatchingOptions{})

	got, err := uc.MatchProject(context.Background(), p.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatching_MatchProject_NotFound(t *testing.T) {
	s := newScenario()
	uc := newMatching(s.catalog.Projects(), s.catalog.Employees(), MatchingOptions{})

	_, err := uc.MatchProject(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProjectNotFound)

	_, err = uc.MatchProjectDetailed(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestMatching_MatchProject_EmptyRequirements(t *testing.T) {
	c := memory.NewCatalog()
	p := c.PutProject(project.Project{Name: "no skills"})
	uc := newMatching(c.Projects(), c.Employees(), MatchingOptions{})

	_, err := uc.MatchProject(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, matching.ErrEmptyRequirements)
}

func TestMatching_MatchProject_TiesOrderedByID(t *testing.T) {
	c := memory.NewCatalog()
	p := c.PutProject(project.Project{Name: "P", Skills: []string{"Go"}})
	ids := []uuid.UUID{
		uuid.MustParse("00000000-0000-0000-0000-000000000003"),
		uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		uuid.MustParse("00000000-0000-0000-0000-000000000002"),
	}
	for _, id := range ids {
		c.PutEmployee(employee.Employee{ID: id, Name: "same", Skills: []string{"Go"}})
	}
	uc := newMatching(c.Projects(), c.Employees(), MatchingOptions{})

	for i := 0; i < 10; i++ {
		got, err := uc.MatchProject(context.Background(), p.ID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, ids[1], got[0].EmployeeID)
		assert.Equal(t, ids[2], got[1].EmployeeID)
		assert.Equal(t, ids[0], got[2].EmployeeID)
	}
}

func TestMatching_MatchProject_MinScore(t *testing.T) {
	s := newScenario()
	s.catalog.PutEmployee(employee.Employee{Name: "E3", Skills: []string{"Java"}})

	all := newMatching(s.catalog.Projects(), s.catalog.Employees(), MatchingOptions{})
	got, err := all.MatchProject(context.Background(), s.p1.ID)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, 0.0, got[2].Score)

	filtered := newMatching(s.catalog.Projects(), s.catalog.Employees(), MatchingOptions{MinScore: 0.75})
	got, err = filtered.MatchProject(context.Background(), s.p1.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, s.e2.ID, got[0].EmployeeID)
}

func TestMatching_MatchProject_Cancelled(t *testing.T) {
	p := project.Project{ID: uuid.New(), Skills: []string{"Go"}}
	uc := newMatching(
		mockProjectRepo{items: []project.Project{p}},
		mockEmployeeRepo{items: []employee.Employee{{ID: uuid.New(), Skills: []string{"Go"}}}},
		MatchingOptions{},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.MatchProject(ctx, p.ID)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatching_MatchProject_RepositoryErrors(t *testing.T) {
	p := project.Project{ID: uuid.New(), Skills: []string{"Go"}}

	uc := newMatching(mockProjectRepo{err: errBoom}, mockEmployeeRepo{}, MatchingOptions{})
	_, err := uc.MatchProject(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrInternal)

	uc = newMatching(mockProjectRepo{items: []project.Project{p}}, mockEmployeeRepo{listErr: errBoom}, MatchingOptions{})
	_, err = uc.MatchProject(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestMatching_DetailedAgreesWithPlain(t *testing.T) {
	s := newScenario()
	s.catalog.PutEmployee(employee.Employee{Name: "E3", Skills: []string{"python"}})
	uc := newMatching(s.catalog.Projects(), s.catalog.Employees(), MatchingOptions{DetailConcurrency: 2})

	plain, err := uc.MatchProject(context.Background(), s.p1.ID)
	require.NoError(t, err)
	detailed, err := uc.MatchProjectDetailed(context.Background(), s.p1.ID)
	require.NoError(t, err)

	require.Len(t, detailed, len(plain))
	for i := range plain {
		assert.Equal(t, plain[i].EmployeeID, detailed[i].EmployeeID)
		assert.Equal(t, plain[i].Score, detailed[i].Score)
		assert.Equal(t, plain[i].EmployeeID, detailed[i].Employee.ID)
	}
	assert.Equal(t, "E2", detailed[0].Employee.Name)
}

func TestMatching_DetailedSkipsVanishedEmployee(t *testing.T) {
	p := project.Project{ID: uuid.New(), Skills: []string{"Go"}}
	keep := employee.Employee{ID: uuid.New(), Name: "keep", Skills: []string{"Go"}}
	gone := employee.Employee{ID: uuid.New(), Name: "gone", Skills: []string{"Go"}}

	uc := newMatching(
		mockProjectRepo{items: []project.Project{p}},
		mockEmployeeRepo{items: []employee.Employee{keep, gone}, missing: map[uuid.UUID]bool{gone.ID: true}},
		MatchingOptions{DetailConcurrency: 4},
	)

	got, err := uc.MatchProjectDetailed(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, keep.ID, got[0].Employee.ID)
}

func TestMatching_DetailedFailsOnLookupError(t *testing.T) {
	p := project.Project{ID: uuid.New(), Skills: []string{"Go"}}
	uc := newMatching(
		mockProjectRepo{items: []project.Project{p}},
		mockEmployeeRepo{items: []employee.Employee{{ID: uuid.New(), Skills: []string{"Go"}}}, getErr: errBoom},
		MatchingOptions{},
	)

	_, err := uc.MatchProjectDetailed(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, errBoom)
}

func TestMatching_MatchStats(t *testing.T) {
	s := newScenario()
	s.catalog.PutProject(project.Project{Name: "empty"})
	uc := newMatching(s.catalog.Projects(), s.catalog.Employees(), MatchingOptions{})

	st, err := uc.MatchStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalProjects)
	assert.Equal(t, 1, st.ScoredProjects)
	assert.Equal(t, 1, st.SkippedProjects)
	assert.Equal(t, 2, st.TotalEmployees)
	assert.Equal(t, 2, st.ScoredPairs)
	assert.Equal(t, 0.75, st.AverageScore)
	assert.Equal(t, 1, st.FullMatches)
}

func TestMatching_MatchStats_EmptyCatalog(t *testing.T) {
	c := memory.NewCatalog()
	uc := newMatching(c.Projects(), c.Employees(), MatchingOptions{})

	st, err := uc.MatchStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.TotalProjects)
	assert.Zero(t, st.TotalEmployees)
	assert.Zero(t, st.ScoredPairs)
	assert.Zero(t, st.AverageScore)
}

func TestMatching_MatchStats_RepositoryError(t *testing.T) {
	uc := newMatching(mockProjectRepo{err: errBoom}, mockEmployeeRepo{}, MatchingOptions{})
	_, err := uc.MatchStats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
