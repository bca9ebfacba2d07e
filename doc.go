// Package ooxml inspects OOXML-style containers (the zip archives behind
// .docx and .pptx files) and reports a structured summary of their
// contents: every entry's path, whether it is a directory, its
// uncompressed size, and — for markup entries — the decoded text.
//
// # Inspecting a container
//
// Use [Inspect] on a byte buffer, [InspectReader] on an [io.ReaderAt], or
// [InspectFile] on a path:
//
//	summary, err := ooxml.Inspect(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range summary.Entries {
//	    fmt.Println(e.Path, e.Size)
//	}
//
// Entries appear in the archive's own directory order, one [Entry] per
// zip directory record, duplicates included. Inspection is a single
// synchronous pass and fails fast: any malformed record or decompression
// failure aborts the whole call with no partial result.
//
// # Text content
//
// File entries whose extension is .xml, .rels, or .txt (case-insensitive)
// get their payload decoded as UTF-8 and attached as [Entry.Content].
// Ill-formed byte sequences are replaced with U+FFFD rather than failing
// the call, so legacy non-UTF-8 markup still yields usable text. No
// semantic parsing of the XML is performed.
//
// # Host boundary
//
// [InspectJSON] produces the summary in its serialized wire shape for
// hosts that consume JSON instead of Go values. [Init] idempotently hooks
// up diagnostic logging and has no effect on results.
//
// # Error handling
//
// Failures wrap one of three sentinel kinds while keeping the underlying
// reader's diagnostic text in the message:
//   - [ErrOpenContainer] – the input is not a well-formed zip
//   - [ErrReadEntry] – an entry could not be read or decompressed
//   - [ErrEntryTooLarge] – an entry exceeds the [WithMaxEntrySize] cap
//
// By default nothing limits decompressed sizes; callers inspecting
// untrusted input should set [WithMaxEntrySize].
package ooxml
