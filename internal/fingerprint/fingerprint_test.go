package fingerprint

import "testing"

func TestClassify(t *testing.T) {
	rs := DefaultRuleset()
	cases := []struct {
		input string
		want  Kind
	}{
		{"notes.md", KindMarkdown},
		{"docs/deep/nested.md", KindMarkdown},
		{"page.html", KindHTML},
		{"page.htm", KindHTML},
		{"image.png", KindUnknown},
		{"no-extension", KindUnknown},
		{".md", KindUnknown},
		{"README.MD", KindUnknown},
	}
	for _, tc := range cases {
		got := rs.Classify(tc.input)
		if got.Kind != tc.want {
			t.Errorf("Classify(%q).Kind = %q, want %q", tc.input, got.Kind, tc.want)
		}
		if got.Input != tc.input {
			t.Errorf("Classify(%q).Input = %q", tc.input, got.Input)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// A name matching the markdown rule must not fall through to later
	// rules even if they could also match.
	rs := DefaultRuleset()
	if got := rs.Classify("page.html.md"); got.Kind != KindMarkdown {
		t.Errorf("kind = %q, want %q", got.Kind, KindMarkdown)
	}
}
