package guide

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Render converts the guide source to HTML with GFM extensions and stable
// heading anchors. Rendering does not verify; callers that need the
// structural contract enforced run Verify first.
func Render(src []byte) ([]byte, error) {
	if !utf8.Valid(src) {
		return nil, ErrInvalidEncoding
	}
	var buf bytes.Buffer
	if err := newMarkdown().Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}
