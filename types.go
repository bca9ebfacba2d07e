package ooxml

// Entry describes a single directory entry of an inspected archive.
//
// The JSON field names form the stable wire shape consumed by hosts:
// {"path": ..., "is_dir": ..., "size": ..., "content": ...}, with
// "content" omitted entirely when no text was materialized.
type Entry struct {
	// Path is the entry name as stored in the archive. For directory
	// entries a single trailing "/" is stripped; inner separators and
	// any further trailing separators are kept as-is.
	Path string `json:"path"`

	// IsDir reports whether the entry represents a directory.
	// Directory entries carry no content and a Size of 0.
	IsDir bool `json:"is_dir"`

	// Size is the uncompressed byte length of the entry's payload.
	// It is independent of Content: a binary entry (e.g. a .png) has a
	// nonzero Size and a nil Content.
	Size uint64 `json:"size"`

	// Content holds the entry's payload decoded as text, and is non-nil
	// only for file entries whose extension is recognized as textual
	// (.xml, .rels, .txt, compared case-insensitively). Ill-formed byte
	// sequences are replaced with U+FFFD rather than failing inspection.
	Content *string `json:"content,omitempty"`
}

// Summary is the result of inspecting an archive: one Entry per zip
// directory record, in the archive's own directory order.
//
// The order is the container's on-disk order, not alphabetical, and
// duplicate paths are preserved as separate entries (a zip may legally
// contain the same name twice).
type Summary struct {
	Entries []Entry `json:"entries"`
}
