// Package plantext holds the pure text transforms applied to generated plan
// HTML: fence stripping while streaming, and the markdown and plain-text
// exports offered once a plan is complete.
package plantext

import (
	"regexp"
	"strings"
)

const (
	// ExportFilename is the name offered for the plain-text download.
	ExportFilename = "plan.txt"
	// ExportContentType is the MIME type of the plain-text download.
	ExportContentType = "text/plain"
)

var (
	fencePattern = regexp.MustCompile("```html|```")
	tagPattern   = regexp.MustCompile(`<[^>]*>?`)
)

// markdownReplacements run in order; a later pair may match text exposed by
// an earlier one.
var markdownReplacements = [][2]string{
	{"<h4>", "### "},
	{"</h4>", ""},
	{"<ul>", ""},
	{"</ul>", ""},
	{"<li>", "- "},
	{"</li>", ""},
	{"<body>", ""},
	{"</body>", ""},
}

// StripFences removes code fence markers ("```html" and "```") the model
// sometimes wraps its HTML in. Everything else is left as is, and applying it
// twice gives the same result as applying it once.
func StripFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	return fencePattern.ReplaceAllLiteralString(s, "")
}

// ToMarkdownish turns the plan HTML into light markdown: h4 headings become
// "### ", list items become "- ", and list and body wrappers are dropped.
// Any other tag passes through untouched.
func ToMarkdownish(html string) string {
	out := html
	for _, r := range markdownReplacements {
		out = strings.ReplaceAll(out, r[0], r[1])
	}
	return out
}

// ToPlainText removes every tag-like substring, keeping text and line breaks.
// Entities are not decoded.
func ToPlainText(html string) string {
	return tagPattern.ReplaceAllLiteralString(html, "")
}
