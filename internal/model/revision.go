package model

import "time"

// Revision is one published version of the guide document. It is a pure
// domain model with no database or storage tags, usable across layers.
//
// SourcePath and HTMLPath are object-storage keys for the Markdown snapshot
// and the rendered HTML. ContentSHA256 identifies the source bytes; two
// revisions never share it.
type Revision struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ContentSHA256 string    `json:"content_sha256"`
	SourcePath    string    `json:"source_path"`
	HTMLPath      string    `json:"html_path"`
	SizeBytes     int64     `json:"size_bytes"`
	SectionCount  int       `json:"section_count"`
	SnippetCount  int       `json:"snippet_count"`
	WarningCount  int       `json:"warning_count"`
	PublishedAt   time.Time `json:"published_at"`
}
