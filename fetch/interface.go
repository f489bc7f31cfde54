//go:generate mockgen -package mocks -destination mocks/interface.go -source=interface.go
package fetch

import (
	"context"
	"errors"

	"github.com/relloyd/mtgpipe/mtgjson"
)

// ErrDocumentNotFound is returned when an archive holds no .json entry.
var ErrDocumentNotFound = errors.New("no JSON document found in archive")

// Fetcher retrieves and decodes one MTGJSON document.
type Fetcher interface {
	Fetch(ctx context.Context) (*mtgjson.Document, error)
}

// ArchiveSource returns the raw bytes of a zip archive.
type ArchiveSource interface {
	ReadArchive(ctx context.Context) ([]byte, error)
	String() string
}
