package fetch

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// HttpSource downloads the archive with a single GET.
type HttpSource struct {
	Url    string
	Client *http.Client
}

func NewHttpSource(url string, timeout time.Duration) *HttpSource {
	return &HttpSource{Url: url, Client: &http.Client{Timeout: timeout}}
}

func (s *HttpSource) String() string {
	return s.Url
}

func (s *HttpSource) ReadArchive(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error building request for %v", s.Url)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "error downloading %v", s.Url)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("error downloading %v: unexpected status %v", s.Url, resp.Status)
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading response body from %v", s.Url)
	}
	return data, nil
}
