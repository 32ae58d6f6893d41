package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tartampluch/go-greeter/internal/config"
)

// SourceOpener defines the contract for retrieving a user list stream.
// The CLI reads local files; tests substitute in-memory readers.
type SourceOpener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// FileSource implements SourceOpener for local files.
type FileSource struct {
	// MaxSize caps the number of bytes read from a file.
	MaxSize int64
}

// NewFileSource creates a FileSource with the default size cap.
func NewFileSource() *FileSource {
	return &FileSource{MaxSize: config.MaxSourceSize}
}

// Open returns a reader over a regular file, truncated at MaxSize bytes.
func (s *FileSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompSource),
		slog.String(config.LogKeyFile, path),
	)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrOpenSource, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", config.ErrOpenSource, err)
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %s", config.ErrOpenSource, config.ErrNotRegular)
	}

	if info.Size() > s.MaxSize {
		log.Warn(config.MsgSourceTrunc,
			slog.Int64(config.LogKeySize, info.Size()),
			slog.Int64(config.LogKeyMax, s.MaxSize),
		)
	} else {
		log.Debug(config.MsgSourceOpen, slog.Int64(config.LogKeySize, info.Size()))
	}

	return &limitedReadCloser{
		Reader: io.LimitReader(f, s.MaxSize),
		Closer: f,
	}, nil
}

// limitedReadCloser pairs a limited reader with the underlying file's Close.
type limitedReadCloser struct {
	io.Reader
	io.Closer
}
