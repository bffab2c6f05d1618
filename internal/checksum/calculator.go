package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Calculator computes document checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum that ignores comments, case
	// and formatting whitespace.
	CalculateNormalized(content []byte) string
}

// SHA256 implements Calculator with SHA-256. It is a zero-size value type.
type SHA256 struct{}

// New creates a SHA-256 calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of the raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of the normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(c.normalize(string(content))))
	return hex.EncodeToString(hash[:])
}

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// normalize strips comments, lower-cases, collapses whitespace and drops
// whitespace that touches a tag boundary.
func (c SHA256) normalize(content string) string {
	cleaned := removeComments(content)

	var b strings.Builder
	b.Grow(len(cleaned))

	pendingSpace := false
	var last rune
	for _, r := range cleaned {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 && last != '>' && r != '<' {
			b.WriteByte(' ')
		}
		pendingSpace = false
		r = unicode.ToLower(r)
		b.WriteRune(r)
		last = r
	}

	return b.String()
}

// removeComments replaces every <!-- ... --> block with a space. An
// unterminated comment runs to the end of the document.
func removeComments(content string) string {
	if !strings.Contains(content, commentOpen) {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))

	rest := content
	for {
		start := strings.Index(rest, commentOpen)
		if start < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])
		b.WriteByte(' ')

		end := strings.Index(rest[start+len(commentOpen):], commentClose)
		if end < 0 {
			break
		}
		rest = rest[start+len(commentOpen)+end+len(commentClose):]
	}

	return b.String()
}
