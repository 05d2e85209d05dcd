package plantext

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", "<h4>Lunch</h4>", "<h4>Lunch</h4>"},
		{"html fence", "```html\n<h4>Lunch</h4>\n```", "\n<h4>Lunch</h4>\n"},
		{"bare fence", "```<ul></ul>```", "<ul></ul>"},
		{"single backtick kept", "use `salt`", "use `salt`"},
		{"four backticks", "````", "`"},
		{"six backticks", "``````", ""},
		{"html word kept", "html is fine", "html is fine"},
		{"fence then html word", "````html", "`html"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

// fenceyString maps random bytes onto fragments that are likely to build or
// break fence markers.
func fenceyString(seed []byte) string {
	parts := []string{"`", "``", "```", "```html", "html", "h", "tml", "<h4>", "x", "\n"}
	var b strings.Builder
	for _, c := range seed {
		b.WriteString(parts[int(c)%len(parts)])
	}
	return b.String()
}

func TestStripFencesIdempotent(t *testing.T) {
	for _, s := range []string{"```html```", "``" + "```html" + "`", "a``````html`b", "`````html`"} {
		once := StripFences(s)
		assert.Equal(t, once, StripFences(once), "input %q", s)
	}

	prop := func(seed []byte) bool {
		s := fenceyString(seed)
		once := StripFences(s)
		return StripFences(once) == once
	}
	if err := quick.Check(prop, &quick.Config{MaxCount: 2000}); err != nil {
		t.Fatal(err)
	}
}

func TestStripFencesOnlyTouchesFences(t *testing.T) {
	prop := func(s string) bool {
		if strings.Contains(s, "`") {
			return true
		}
		return StripFences(s) == s
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

func TestToMarkdownish(t *testing.T) {
	assert.Equal(t, "### Breakfast- Eggs", ToMarkdownish("<h4>Breakfast</h4><ul><li>Eggs</li></ul>"))

	in := "<body>\n<h4>Lunch</h4>\n<ul>\n<li>Quinoa <b>salad</b></li>\n</ul>\n</body>"
	want := "\n### Lunch\n\n- Quinoa <b>salad</b>\n\n"
	assert.Equal(t, want, ToMarkdownish(in))
}

func TestToMarkdownishReplacesInOrder(t *testing.T) {
	// Dropping <ul> exposes an <li> which the later step still rewrites.
	assert.Equal(t, "- ", ToMarkdownish("<li<ul>>"))
}

func TestToPlainText(t *testing.T) {
	assert.Equal(t, "Breakfast\nEggs", ToPlainText("<h4>Breakfast</h4>\n<ul><li>Eggs</li></ul>"))
	assert.Equal(t, "a &amp; b", ToPlainText("<p>a &amp; b</p>"))
	assert.Equal(t, "text ", ToPlainText("text <unterminated"))
}

func TestToPlainTextIdentityWithoutTags(t *testing.T) {
	prop := func(s string) bool {
		if strings.Contains(s, "<") {
			return true
		}
		return ToPlainText(s) == s
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "a > b\nc", ToPlainText("a > b\nc"))
}
