package ooxml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Option configures an inspection. The zero configuration reproduces the
// default behavior: no size limits, full materialization of every entry.
type Option func(*options)

type options struct {
	maxEntrySize int64
}

// WithMaxEntrySize caps the decompressed size of any single entry at n
// bytes. Entries over the cap fail the inspection with ErrEntryTooLarge.
// A value <= 0 (the default) disables the cap; callers handling untrusted
// input should set one, since a zip bomb is otherwise fully materialized.
func WithMaxEntrySize(n int64) Option {
	return func(o *options) {
		o.maxEntrySize = n
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Inspect decodes data as a zip container and summarizes every entry in
// archive directory order. It fails fast: a malformed container, an
// unreadable entry record, or a decompression failure aborts the whole
// call with no partial summary.
//
// Each call builds a fresh Summary from the input bytes alone, so
// concurrent calls are safe and repeated calls are deterministic.
func Inspect(data []byte, opts ...Option) (*Summary, error) {
	return InspectReader(bytes.NewReader(data), int64(len(data)), opts...)
}

// InspectReader is like Inspect but reads the container through an
// io.ReaderAt, avoiding a copy when the archive is already accessible
// at rest. The caller is responsible for the lifetime of r.
func InspectReader(r io.ReaderAt, size int64, opts ...Option) (*Summary, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenContainer, err)
	}
	return inspectZip(zr, applyOptions(opts))
}

// InspectFile opens the zip container at path and inspects it.
func InspectFile(path string, opts ...Option) (*Summary, error) {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenContainer, path, err)
	}
	defer zrc.Close()

	return inspectZip(&zrc.Reader, applyOptions(opts))
}

// inspectZip performs the single synchronous pass over the zip directory.
func inspectZip(zr *zip.Reader, o options) (*Summary, error) {
	logger().Debug("inspecting container", "entries", len(zr.File))

	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		// Directory entries are marked by a trailing separator. Exactly
		// one is stripped; "a//" stays "a/".
		if strings.HasSuffix(f.Name, "/") {
			entries = append(entries, Entry{
				Path:  strings.TrimSuffix(f.Name, "/"),
				IsDir: true,
			})
			continue
		}

		data, err := readZipEntry(f, o.maxEntrySize)
		if err != nil {
			return nil, err
		}

		e := Entry{
			Path: f.Name,
			Size: uint64(len(data)),
		}
		if isTextualEntry(f.Name) {
			text := decodeLossy(data)
			e.Content = &text
		}
		entries = append(entries, e)
	}

	logger().Debug("inspection complete", "entries", len(entries))
	return &Summary{Entries: entries}, nil
}
