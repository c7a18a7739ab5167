package htmlmerge_test

import (
	"testing"

	"github.com/fwojciec/htmlmerge"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "lowercases and trims", text: "  Apple ", want: "apple"},
		{name: "whitespace runs become one dash", text: "Apple \t\n Pie", want: "apple-pie"},
		{name: "drops punctuation", text: "Hello, World!", want: "hello-world"},
		{name: "keeps dash underscore and dot", text: "file_name.v2-final", want: "file_name.v2-final"},
		{name: "drops non-ascii letters", text: "Café", want: "caf"},
		{name: "symbols collapse around dashes", text: "C++ & Go", want: "c--go"},
		{name: "control separators count as whitespace", text: "\x1cApple\vPie\u0085Tart\x1f", want: "apple-pie-tart"},
		{name: "unicode spaces count as whitespace", text: "Apple\u00a0Pie\u2028Tart", want: "apple-pie-tart"},
		{name: "empty", text: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, htmlmerge.Slugify(tt.text))
		})
	}
}

func TestSlugify_Stable(t *testing.T) {
	t.Parallel()

	text := "Quick Start Guide"

	assert.Equal(t, htmlmerge.Slugify(text), htmlmerge.Slugify(text))
	assert.Equal(t,
		htmlmerge.LookupKeys(htmlmerge.Slugify(text)),
		htmlmerge.LookupKeys(htmlmerge.Slugify(text)),
	)
}

func TestLookupKeys(t *testing.T) {
	t.Parallel()

	t.Run("multi-segment slug yields four variants", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			[]string{"apple-pie", "apple_pie", "applepie", "apple"},
			htmlmerge.LookupKeys("apple-pie"),
		)
	})

	t.Run("single segment collapses to one key", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"apple"}, htmlmerge.LookupKeys("apple"))
	})

	t.Run("empty keys are dropped", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"-x", "_x", "x"}, htmlmerge.LookupKeys("-x"))
		assert.Empty(t, htmlmerge.LookupKeys(""))
	})
}

func TestStemKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "simple stem", path: "icons/a.svg", want: []string{"a"}},
		{name: "lowercases and sanitizes", path: "icons/My Icon.PNG", want: []string{"my icon", "my-icon"}},
		{name: "collapses runs", path: "x/foo__bar.png", want: []string{"foo__bar", "foo-bar"}},
		{name: "only last extension removed", path: "a.b.svg", want: []string{"a.b", "a-b"}},
		{name: "dotfile is its own stem", path: "dir/.hidden", want: []string{".hidden", "-hidden"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, htmlmerge.StemKeys(tt.path))
		})
	}
}

func TestSafeStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain stem unchanged", path: "assets/quick_start.png", want: "quick_start"},
		{name: "case preserved", path: "Apple.svg", want: "Apple"},
		{name: "fragment marker replaced", path: "img/a#b.png", want: "a-b"},
		{name: "query marker replaced", path: "img/what?.svg", want: "what"},
		{name: "spaces and percent replaced", path: "My Icon 100%.png", want: "My-Icon-100"},
		{name: "leading dot trimmed", path: "dir/.hidden", want: "hidden"},
		{name: "nothing left falls back", path: "#?.png", want: "icon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, htmlmerge.SafeStem(tt.path))
		})
	}
}
