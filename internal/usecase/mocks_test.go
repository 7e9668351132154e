package usecase_test

import (
	"context"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) FilterIDs(ctx context.Context, filter domain.PlaceFilter) ([]int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockPlaceRepository) ToggleLike(ctx context.Context, placeID int64, deviceID string) (bool, int, error) {
	args := m.Called(ctx, placeID, deviceID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockPlaceRepository) IsLikedBy(ctx context.Context, placeID int64, deviceID string) (bool, error) {
	args := m.Called(ctx, placeID, deviceID)
	return args.Bool(0), args.Error(1)
}

// MockDefinitionRepository is a mock of DefinitionRepository
type MockDefinitionRepository struct {
	mock.Mock
}

func (m *MockDefinitionRepository) ListExpectations(ctx context.Context) ([]*domain.ExpectationDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ExpectationDefinition), args.Error(1)
}

func (m *MockDefinitionRepository) ListSortTags(ctx context.Context, types ...domain.SortTagType) ([]*domain.SortTagDefinition, error) {
	callArgs := make([]interface{}, 0, len(types)+1)
	callArgs = append(callArgs, ctx)
	for _, t := range types {
		callArgs = append(callArgs, t)
	}
	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SortTagDefinition), args.Error(1)
}

// MockLanguageRepository is a mock of LanguageRepository
type MockLanguageRepository struct {
	mock.Mock
}

func (m *MockLanguageRepository) List(ctx context.Context) ([]*domain.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Language), args.Error(1)
}

func (m *MockLanguageRepository) GetByCode(ctx context.Context, code string) (*domain.Language, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Language), args.Error(1)
}

// MockCategoryRepository is a mock of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
