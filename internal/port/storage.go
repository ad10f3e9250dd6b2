package port

import (
	"context"
	"io"
)

// ObjectStorage archives generated export files.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
}
