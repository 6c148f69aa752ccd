package llm

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"code fence", "```html\n<p>Hi</p>\n```", "<p>Hi</p>"},
		{"bare fence", "```\n<p>Hi</p>\n```", "<p>Hi</p>"},
		{"citations", "Plumbing matters [1] a lot [12].", "Plumbing matters  a lot ."},
		{"escaped angle brackets", "&lt;h1&gt;Title&lt;/h1&gt;", "<h1>Title</h1>"},
		{"bold markers", "This is **important** text", "This is important text"},
		{"wrapping div", `<div class="content"><p>Hi</p></div>`, "<p>Hi</p>"},
		{"trailing breaks", "<p>Hi</p><br><br/>", "<p>Hi</p>"},
		{"clean passes through", "<p>Already clean</p>", "<p>Already clean</p>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	in := "```html\n<div><p>Text **bold** [3]</p></div>\n```"
	once := Sanitize(in)
	twice := Sanitize(once)
	if once != twice {
		t.Errorf("Sanitize not idempotent: %q vs %q", once, twice)
	}
}
