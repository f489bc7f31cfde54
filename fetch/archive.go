package fetch

import (
	"bytes"
	"context"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
	"github.com/relloyd/mtgpipe/constants"
	"github.com/relloyd/mtgpipe/logger"
	"github.com/relloyd/mtgpipe/mtgjson"
)

// ArchiveFetcher implements Fetcher by reading a zip archive from an ArchiveSource
// and decoding its first JSON entry.
type ArchiveFetcher struct {
	Log    logger.Logger
	Source ArchiveSource
}

func (f *ArchiveFetcher) Fetch(ctx context.Context) (*mtgjson.Document, error) {
	f.Log.Info("Downloading MTGJSON: ", f.Source)
	data, err := f.Source.ReadArchive(ctx)
	if err != nil {
		return nil, err
	}
	f.Log.Debug("Read archive of ", len(data), " bytes")
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	return ExtractDocument(f.Log, data)
}

// ExtractDocument opens data as a zip archive and decodes the first entry whose name ends
// in .json, ignoring case. ErrDocumentNotFound is returned if there is no such entry.
func ExtractDocument(log logger.Logger, data []byte) (*mtgjson.Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(err, "error opening zip archive")
	}
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), constants.ArchiveDocumentExt) {
			continue
		}
		log.Debug("Decoding archive entry ", f.Name)
		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "error opening archive entry %v", f.Name)
		}
		doc, err := mtgjson.Decode(rc)
		_ = rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "error reading archive entry %v", f.Name)
		}
		return doc, nil
	}
	return nil, ErrDocumentNotFound
}
