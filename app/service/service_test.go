package service

import (
	"context"
	"path/filepath"
	"testing"

	"tour-insight/app/auth"
	"tour-insight/app/config"
	"tour-insight/app/database"
	"tour-insight/app/logger"
	"tour-insight/app/model"
	"tour-insight/app/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver:   "sqlite",
		DSN:      filepath.Join(t.TempDir(), "service.db"),
		LogLevel: "silent",
	}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func testHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasher(bcrypt.MinCost)
}

func ptr[T any](v T) *T {
	return &v
}

// mockTourRepository 基于 testify/mock 的 TourRepository
type mockTourRepository struct {
	mock.Mock
}

var _ repository.TourRepository = (*mockTourRepository)(nil)

func (m *mockTourRepository) TopByComments(ctx context.Context, limit int) ([]model.Tour, error) {
	args := m.Called(ctx, limit)
	tours, _ := args.Get(0).([]model.Tour)
	return tours, args.Error(1)
}

func (m *mockTourRepository) TopByScore(ctx context.Context, minComments, limit int) ([]model.Tour, error) {
	args := m.Called(ctx, minComments, limit)
	tours, _ := args.Get(0).([]model.Tour)
	return tours, args.Error(1)
}

func (m *mockTourRepository) CountByCity(ctx context.Context) ([]model.ChartData, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.ChartData)
	return rows, args.Error(1)
}

func (m *mockTourRepository) Search(ctx context.Context, title string, offset, limit int) ([]model.Tour, int64, error) {
	args := m.Called(ctx, title, offset, limit)
	tours, _ := args.Get(0).([]model.Tour)
	return tours, args.Get(1).(int64), args.Error(2)
}

func (m *mockTourRepository) FindByID(ctx context.Context, id uint) (*model.Tour, error) {
	args := m.Called(ctx, id)
	tour, _ := args.Get(0).(*model.Tour)
	return tour, args.Error(1)
}

func (m *mockTourRepository) Create(ctx context.Context, tour *model.Tour) error {
	return m.Called(ctx, tour).Error(0)
}

func (m *mockTourRepository) Save(ctx context.Context, tour *model.Tour) error {
	return m.Called(ctx, tour).Error(0)
}

func (m *mockTourRepository) Delete(ctx context.Context, tour *model.Tour) error {
	return m.Called(ctx, tour).Error(0)
}

// countingInvalidator 记录失效次数
type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate() {
	c.calls++
}
