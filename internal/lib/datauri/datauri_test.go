package datauri

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantMIME string
		wantExt  string
		wantData string
		wantErr  bool
	}{
		{
			name:     "png image",
			in:       "data:image/png;base64,aGVsbG8=",
			wantMIME: "image/png",
			wantExt:  "png",
			wantData: "hello",
		},
		{
			name:     "jpeg maps to jpg",
			in:       "data:image/jpeg;base64,aGVsbG8=",
			wantMIME: "image/jpeg",
			wantExt:  "jpg",
			wantData: "hello",
		},
		{
			name:     "pdf document",
			in:       "data:application/pdf;base64,JVBERi0=",
			wantMIME: "application/pdf",
			wantExt:  "pdf",
			wantData: "%PDF-",
		},
		{
			name:    "plain url",
			in:      "https://cdn.test/a.png",
			wantErr: true,
		},
		{
			name:    "broken base64",
			in:      "data:image/png;base64,@@@",
			wantErr: true,
		},
		{
			name:    "empty payload",
			in:      "data:image/png;base64,",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				assert.Nil(t, f)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, f.MIME)
			assert.Equal(t, tt.wantExt, f.Ext)
			assert.Equal(t, tt.wantData, string(f.Data))
			assert.Equal(t, int64(len(tt.wantData)), f.Size())
		})
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"application/msword": "doc",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       "xlsx",
		"application/vnd.ms-excel": "xls",
		"image/webp":               "webp",
		"IMAGE/PNG":                "png",
		"application/x-unknown-kind": "x-unknown-kind",
		"garbage":                    "bin",
	}

	for mime, want := range tests {
		assert.Equal(t, want, Extension(mime), mime)
	}
}

func TestFileName(t *testing.T) {
	now := time.UnixMilli(1718000000123)

	assert.Equal(t, "berita-1718000000123-00000z.png", fileName("berita", "png", now, 35))

	re := regexp.MustCompile(`^layanan-\d{13}-[0-9a-z]{6}\.pdf$`)
	assert.Regexp(t, re, NewFileName("layanan", "pdf"))
	assert.NotEqual(t, NewFileName("a", "png"), NewFileName("a", "png"))
}

func TestBlobName(t *testing.T) {
	tests := map[string]string{
		"https://x.supabase.co/storage/v1/object/public/berita/berita-1-abc.png": "berita-1-abc.png",
		"http://localhost:8080/storage/layanan/layanan-1-x.pdf?download=1":       "layanan-1-x.pdf",
		"berita-2-zzz.jpg": "berita-2-zzz.jpg",
		"":                 "",
		"https://host/":    "",
	}

	for in, want := range tests {
		assert.Equal(t, want, BlobName(in), in)
	}
}

func TestIsRemoteURL(t *testing.T) {
	assert.True(t, IsRemoteURL("https://cdn.test/a.png"))
	assert.True(t, IsRemoteURL("http://cdn.test/a.png"))
	assert.False(t, IsRemoteURL("ftp://cdn.test/a.png"))
	assert.False(t, IsRemoteURL("javascript:alert(1)"))
	assert.False(t, IsRemoteURL("/relative/a.png"))
	assert.False(t, IsRemoteURL("data:image/png;base64,aGVsbG8="))
}
