package fetch

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zip"
)

type testEntry struct {
	name string
	body string
}

// newTestArchive returns a zip archive holding the given entries in order.
func newTestArchive(t *testing.T, entries ...testEntry) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err = w.Write([]byte(e.body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const testDocument = `{"meta": {"version": "5.2.2", "date": "2024-01-02"}, "data": {"AAA": {"name": "Set A", "cards": [{"uuid": "u1"}]}}}`
