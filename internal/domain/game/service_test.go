package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vgm/internal/domain"
	"vgm/internal/pkg/href"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context, q ListQuery) ([]domain.GameRaw, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.GameRaw), args.Error(1)
}

func (m *mockRepo) ListExpanded(ctx context.Context, q ListQuery) ([]domain.Game, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Game), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.GameRaw, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*domain.GameRaw)
	return g, args.Error(1)
}

func (m *mockRepo) GetExpandedByID(ctx context.Context, id int64) (*domain.Game, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*domain.Game)
	return g, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, g *domain.GameRaw) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *mockRepo) Update(ctx context.Context, g *domain.GameRaw) (bool, error) {
	args := m.Called(ctx, g)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) CountByPlatform(ctx context.Context, platformID int64) (int64, error) {
	args := m.Called(ctx, platformID)
	return args.Get(0).(int64), args.Error(1)
}

var testOrigin = href.Origin{Scheme: "http", Host: "localhost", Port: "5000"}

func TestService_ListAddsHref(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("List", ctx, ListQuery{}).Return([]domain.GameRaw{{ID: 4, Name: "Tetris"}}, nil)

	games, err := svc.List(ctx, ListQuery{}, testOrigin)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "http://localhost:5000/api/games/4", games[0].Href)
	repo.AssertExpectations(t)
}

func TestService_CreateAppliesDefaults(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(g *domain.GameRaw) bool {
		return g.Status == domain.StatusNotStarted && g.Rating == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.GameRaw).ID = 12
	}).Return(nil)

	id, err := svc.Create(ctx, &GameRequest{Name: "Doom", Year: 1993, Platform: 1, Genre: domain.GenreAction})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	repo.AssertExpectations(t)
}

func TestService_GetMissing(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(9)).Return(nil, nil)

	_, err := svc.Get(ctx, 9, testOrigin)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestService_UpdateMissing(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Update", ctx, mock.Anything).Return(false, nil)

	err := svc.Update(ctx, 9, &GameRequest{Name: "X", Year: 2000, Platform: 1, Genre: domain.GenreRPG})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestService_DeleteMissingIsNotAnError(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(9)).Return(false, nil)
	assert.NoError(t, svc.Delete(ctx, 9))

	repo.On("Delete", ctx, int64(10)).Return(false, errors.New("database is locked"))
	assert.EqualError(t, svc.Delete(ctx, 10), "database is locked")
}
