package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RocksBot_Go/internal/domain"
)

// MockRepository implements repository.Progression for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetOrCreate(ctx context.Context, key domain.UserKey) (*domain.UserProgression, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// hand out a copy, as real stores do
	u := *args.Get(0).(*domain.UserProgression)
	return &u, args.Error(1)
}

func (m *MockRepository) PartialUpdate(ctx context.Context, key domain.UserKey, patch domain.ProgressionPatch) error {
	args := m.Called(ctx, key, patch)
	return args.Error(0)
}

// scriptedRand always picks the same band and offset
type scriptedRand struct {
	roll   float64
	offset int
}

func (r scriptedRand) Float64() float64 { return r.roll }
func (r scriptedRand) IntN(n int) int   { return min(r.offset, n-1) }
