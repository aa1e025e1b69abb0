package mocks

import (
	"github.com/brettbedarf/dirforest"
	"github.com/brettbedarf/dirforest/forest"
	"github.com/stretchr/testify/mock"
)

// MockSink implements forest.Sink for testing across packages
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Notify(n forest.Notice) {
	m.Called(n)
}

var _ forest.Sink = (*MockSink)(nil)

// MockOperator implements dirforest.Operator for testing across packages
type MockOperator struct {
	mock.Mock
}

func (m *MockOperator) Create(path string, opts ...forest.CallOption) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockOperator) List() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockOperator) Move(origin, destination string, opts ...forest.CallOption) error {
	args := m.Called(origin, destination)
	return args.Error(0)
}

func (m *MockOperator) Delete(path string, opts ...forest.CallOption) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockOperator) Forest() *forest.Forest {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*forest.Forest)
}

var _ dirforest.Operator = (*MockOperator)(nil)
