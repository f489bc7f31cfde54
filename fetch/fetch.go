package fetch

import (
	"fmt"
	"net/url"
	"time"

	"github.com/relloyd/mtgpipe/constants"
	"github.com/relloyd/mtgpipe/helper"
	"github.com/relloyd/mtgpipe/logger"
)

// Options configures NewFetcher.
type Options struct {
	SourceUrl   string        `errorTxt:"source URL" mandatory:"yes"`
	HttpTimeout time.Duration // zero means no timeout
	S3Region    string
}

// NewSource picks an ArchiveSource based on the scheme of the source URL.
// A URL without a scheme is treated as a local file path.
func NewSource(o Options) (ArchiveSource, error) {
	u, err := url.Parse(o.SourceUrl)
	if err != nil {
		return nil, fmt.Errorf("error parsing source URL %q: %v", o.SourceUrl, err)
	}
	switch u.Scheme {
	case constants.SourceSchemeHttp, constants.SourceSchemeHttps:
		return NewHttpSource(o.SourceUrl, o.HttpTimeout), nil
	case constants.SourceSchemeS3:
		return NewS3Source(o.SourceUrl, o.S3Region)
	case constants.SourceSchemeFile:
		return &FileSource{Path: u.Path}, nil
	case "":
		return &FileSource{Path: o.SourceUrl}, nil
	default:
		return nil, fmt.Errorf("unsupported source URL scheme %q", u.Scheme)
	}
}

// NewFetcher returns a Fetcher reading from the source named in o.
func NewFetcher(log logger.Logger, o Options) (Fetcher, error) {
	if err := helper.ValidateStructIsPopulated(o); err != nil {
		return nil, err
	}
	src, err := NewSource(o)
	if err != nil {
		return nil, err
	}
	return &ArchiveFetcher{Log: log, Source: src}, nil
}
