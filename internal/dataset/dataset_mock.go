package dataset

import (
	"context"

	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"
	"github.com/stretchr/testify/mock"
)

// MockSource is a mock implementation of DataSource for testing.
type MockSource struct {
	mock.Mock
}

var _ contract.DataSource = &MockSource{} // Compile-time check

// Load implements the DataSource interface.
func (m *MockSource) Load(ctx context.Context) ([]schema.RawRecord, error) {
	ret := m.Called(ctx)
	records, _ := ret.Get(0).([]schema.RawRecord)
	return records, ret.Error(1)
}
