package canvas

import (
	"github.com/huangsam/housescope/internal/contract"
	"github.com/huangsam/housescope/schema"
	"github.com/stretchr/testify/mock"
)

// MockSurface is a mock implementation of Surface for testing.
type MockSurface struct {
	mock.Mock
}

var _ contract.Surface = &MockSurface{} // Compile-time check

// AppendCanvas implements the Surface interface.
func (m *MockSurface) AppendCanvas(container string, width, height int) error {
	args := m.Called(container, width, height)
	return args.Error(0)
}

// DrawPoint implements the Surface interface.
func (m *MockSurface) DrawPoint(mark schema.Mark) error {
	args := m.Called(mark)
	return args.Error(0)
}

// DrawAxis implements the Surface interface.
func (m *MockSurface) DrawAxis(axis schema.Axis) error {
	args := m.Called(axis)
	return args.Error(0)
}

// DrawLabel implements the Surface interface.
func (m *MockSurface) DrawLabel(label schema.Label) error {
	args := m.Called(label)
	return args.Error(0)
}

// Clear implements the Surface interface.
func (m *MockSurface) Clear(container string) error {
	args := m.Called(container)
	return args.Error(0)
}
