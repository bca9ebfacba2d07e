package ooxml

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// zipEntry is one entry to place in a test archive. A name ending in "/"
// becomes a directory entry (data is ignored). Entries are written in
// slice order so tests can assert on archive directory order.
type zipEntry struct {
	name string
	data []byte
}

// buildZip assembles an in-memory zip archive from entries and returns
// its raw bytes. It calls t.Fatal on any error.
func buildZip(t *testing.T, entries []zipEntry) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		fw, err := zw.Create(e.name)
		if err != nil {
			t.Fatalf("buildZip: create %s: %v", e.name, err)
		}
		if len(e.data) > 0 {
			if _, err := fw.Write(e.data); err != nil {
				t.Fatalf("buildZip: write %s: %v", e.name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("buildZip: close writer: %v", err)
	}
	return buf.Bytes()
}

// buildZipStored is like buildZip but stores entries uncompressed, so the
// payload bytes appear verbatim in the archive. Tests use it to corrupt
// a payload at a known location.
func buildZipStored(t *testing.T, entries []zipEntry) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:   e.name,
			Method: zip.Store,
		})
		if err != nil {
			t.Fatalf("buildZipStored: create %s: %v", e.name, err)
		}
		if len(e.data) > 0 {
			if _, err := fw.Write(e.data); err != nil {
				t.Fatalf("buildZipStored: write %s: %v", e.name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("buildZipStored: close writer: %v", err)
	}
	return buf.Bytes()
}

// buildZipFile writes a zip archive to a temporary file and returns its
// path. This variant is for testing InspectFile, which needs a path.
func buildZipFile(t *testing.T, entries []zipEntry) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "test.docx")
	if err := os.WriteFile(fp, buildZip(t, entries), 0644); err != nil {
		t.Fatalf("buildZipFile: write file: %v", err)
	}
	return fp
}

// oneZipFile builds a single-entry archive and returns the parsed
// *zip.File for it, for exercising entry-level helpers directly.
func oneZipFile(t *testing.T, name string, data []byte) *zip.File {
	t.Helper()
	raw := buildZip(t, []zipEntry{{name: name, data: data}})
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		t.Fatalf("oneZipFile: open reader: %v", err)
	}
	if len(zr.File) != 1 {
		t.Fatalf("oneZipFile: got %d entries; want 1", len(zr.File))
	}
	return zr.File[0]
}
