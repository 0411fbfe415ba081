package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Sanitize(t *testing.T) {
	policy := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "script removed",
			in:   `<p>A</p><script>bad()</script>`,
			want: `<p>A</p>`,
		},
		{
			name: "allowed formatting kept",
			in:   `<h2>Judul</h2><ul><li><strong>satu</strong></li><li><em>dua</em></li></ul>`,
			want: `<h2>Judul</h2><ul><li><strong>satu</strong></li><li><em>dua</em></li></ul>`,
		},
		{
			name: "disallowed attributes stripped",
			in:   `<p style="color:red" onclick="x()">teks</p>`,
			want: `<p>teks</p>`,
		},
		{
			name: "link attributes",
			in:   `<a href="https://cabdin.example/berita" target="_blank" class="btn">baca</a>`,
			want: `<a href="https://cabdin.example/berita" target="_blank">baca</a>`,
		},
		{
			name: "javascript scheme dropped",
			in:   `<a href="javascript:alert(1)">x</a>`,
			want: `x`,
		},
		{
			name: "inline data image kept",
			in:   `<img src="data:image/png;base64,iVBORw0KGgo=" alt="logo" width="20">`,
			want: `<img src="data:image/png;base64,iVBORw0KGgo=" alt="logo">`,
		},
		{
			name: "unknown tags unwrapped",
			in:   `<div><span>isi</span></div>`,
			want: `isi`,
		},
		{
			name: "empty input",
			in:   ``,
			want: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Sanitize(tt.in))
		})
	}
}

func TestPolicy_SanitizeIsIdempotent(t *testing.T) {
	policy := New()

	inputs := []string{
		`<p>A</p><script>bad()</script>`,
		`<p><b>tebal</b> <i>miring</i><br></p><iframe src="https://evil"></iframe>`,
		`<a href="http://x.test/a?b=1&c=2" name="n">tautan</a>`,
		`<h1 id="x">H</h1><img src="https://cdn.test/a.png" title="t" onerror="x()">`,
	}

	for _, in := range inputs {
		once := policy.Sanitize(in)
		assert.Equal(t, once, policy.Sanitize(once), in)
	}
}
