// Package testutil provides mock implementations for interfaces defined
// in the count core library. These mocks facilitate unit testing by
// isolating components from the filesystem and from real hook consumers.
package testutil

import (
	"io/fs"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/countwise/count/pkg/count"
)

// MockFileReader provides a mock implementation of the count.FileReader
// interface. Configure expectations using testify/mock methods
// (e.g. .On("Read", "a.txt").Return([]byte("hi"), nil)).
type MockFileReader struct {
	mock.Mock
}

// Read mocks the Read method.
func (m *MockFileReader) Read(path string) ([]byte, error) {
	args := m.Called(path)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// MockHooks provides a mock implementation of the count.Hooks interface.
type MockHooks struct {
	mock.Mock
}

// OnFileDiscovered mocks the OnFileDiscovered method.
func (m *MockHooks) OnFileDiscovered(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// OnFileMeasured mocks the OnFileMeasured method.
func (m *MockHooks) OnFileMeasured(path string, result uint64, duration time.Duration) error {
	args := m.Called(path, result, duration)
	return args.Error(0)
}

// OnRunComplete mocks the OnRunComplete method.
func (m *MockHooks) OnRunComplete(report count.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

// MapFileReader is a simple in-memory count.FileReader backed by a map
// of path to content. Paths absent from the map fail like a missing
// file. Useful when full testify/mock expectation tracking is overkill.
type MapFileReader struct {
	Files map[string]string
	// Reads records every requested path, in order.
	Reads []string
}

// Read implements count.FileReader.
func (r *MapFileReader) Read(path string) ([]byte, error) {
	r.Reads = append(r.Reads, path)
	content, ok := r.Files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}
