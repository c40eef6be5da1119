package mocks

import (
	"github.com/brettbedarf/buildfs"
	"github.com/stretchr/testify/mock"
)

// MockDirectoryEntryConsumer implements buildfs.DirectoryEntryConsumer for
// testing across packages
type MockDirectoryEntryConsumer struct {
	mock.Mock
}

func (m *MockDirectoryEntryConsumer) Consume(path string, isDir bool) {
	m.Called(path, isDir)
}

var _ buildfs.DirectoryEntryConsumer = (*MockDirectoryEntryConsumer)(nil)
