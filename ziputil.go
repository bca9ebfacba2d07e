package ooxml

import (
	"archive/zip"
	"fmt"
	"io"
)

// readZipEntry fully decompresses a zip entry into memory. A limit <= 0
// means unlimited; otherwise entries whose decompressed payload exceeds
// limit fail with ErrEntryTooLarge. The declared size in the central
// directory is checked first, but the actual decompressed length is
// enforced too since the declared size might be wrong or forged.
func readZipEntry(f *zip.File, limit int64) ([]byte, error) {
	if limit > 0 && f.UncompressedSize64 > uint64(limit) {
		return nil, fmt.Errorf("%w: %s: %d bytes (max %d)", ErrEntryTooLarge, f.Name, f.UncompressedSize64, limit)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadEntry, f.Name, err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if limit > 0 {
		// Read up to limit+1 so an undeclared overrun is detectable.
		r = io.LimitReader(rc, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadEntry, f.Name, err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s: decompressed payload exceeds %d bytes", ErrEntryTooLarge, f.Name, limit)
	}

	return data, nil
}
