package count

import (
	"fmt"
	"log/slog"
	"os"
)

// FileReader abstracts whole-file reads so the engine can be tested
// without touching the filesystem.
type FileReader interface {
	// Read returns the complete content of the named file.
	Read(path string) ([]byte, error)
}

// OSFileReader is the default FileReader backed by the local filesystem.
type OSFileReader struct{}

// Read implements FileReader using os.ReadFile.
func (OSFileReader) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// File is one fully loaded file: the name it was loaded under and its
// exact content. Data holds exactly the bytes read.
type File struct {
	Filename string
	Data     []byte
}

// Len returns the content length in bytes.
func (f File) Len() int { return len(f.Data) }

// Text returns the content as an immutable string. The conversion copies,
// so the returned text is independent of the File's buffer.
func (f File) Text() string { return string(f.Data) }

// Loader reads named files fully into memory through an injected
// FileReader, reporting each load to the event hooks.
type Loader struct {
	reader FileReader
	hooks  Hooks
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil reader falls back to OSFileReader.
func NewLoader(reader FileReader, hooks Hooks, logger *slog.Logger) *Loader {
	if reader == nil {
		reader = OSFileReader{}
	}
	if hooks == nil {
		hooks = &NoOpHooks{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		reader: reader,
		hooks:  hooks,
		logger: logger.With(slog.String("component", "loader")),
	}
}

// Load reads the entire named file into one File. There is no retry and
// no partial read: any open or read failure is returned as ErrReadFailed
// naming the path, and aborts the run it happens in.
func (l *Loader) Load(path string) (File, error) {
	if hookErr := l.hooks.OnFileDiscovered(path); hookErr != nil {
		l.logger.Warn("Error reported by OnFileDiscovered hook",
			slog.String("path", path), slog.String("hookError", hookErr.Error()))
	}
	data, err := l.reader.Read(path)
	if err != nil {
		l.logger.Error("Failed to read file", slog.String("path", path), slog.Any("error", err))
		return File{}, fmt.Errorf("%w: '%s': %v", ErrReadFailed, path, err)
	}
	l.logger.Debug("File loaded", slog.String("path", path), slog.Int("bytes", len(data)))
	return File{Filename: path, Data: data}, nil
}
