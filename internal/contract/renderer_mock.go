package contract

import (
	"github.com/huangsam/dashviz/schema"
	"github.com/stretchr/testify/mock"
)

// MockRenderer is a mock implementation of Renderer for testing.
type MockRenderer struct {
	mock.Mock
}

var _ Renderer = &MockRenderer{} // Compile-time check

// MountChart implements the Renderer interface.
func (m *MockRenderer) MountChart(elementID string, cfg *schema.ChartConfig) error {
	args := m.Called(elementID, cfg)
	return args.Error(0)
}

// MountWordCloud implements the Renderer interface.
func (m *MockRenderer) MountWordCloud(elementID string, cfg *schema.WordCloudConfig) error {
	args := m.Called(elementID, cfg)
	return args.Error(0)
}

// ShowText implements the Renderer interface.
func (m *MockRenderer) ShowText(elementID string, message string) error {
	args := m.Called(elementID, message)
	return args.Error(0)
}
