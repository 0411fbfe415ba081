// Package datauri decodes base64 data URIs sent by the admin panel and
// names the blobs they are stored under.
package datauri

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/vincent-petithory/dataurl"
)

var ErrInvalid = errors.New("invalid data uri")

// 36^6, six base36 characters
const randomSpace = 2176782336

var knownExtensions = map[string]string{
	"application/pdf":    "pdf",
	"image/png":          "png",
	"image/jpeg":         "jpg",
	"image/jpg":          "jpg",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       "xlsx",
	"application/vnd.ms-excel": "xls",
}

type File struct {
	MIME string
	Ext  string
	Data []byte
}

func (f *File) Size() int64 {
	return int64(len(f.Data))
}

// IsDataURI reports whether s looks like `data:<mime>;...`.
func IsDataURI(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "data:")
}

func Decode(s string) (*File, error) {
	const op = "datauri.Decode"

	s = strings.TrimSpace(s)
	if !IsDataURI(s) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalid)
	}

	du, err := dataurl.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalid, err)
	}

	if len(du.Data) == 0 {
		return nil, fmt.Errorf("%s: %w: empty payload", op, ErrInvalid)
	}

	mime := strings.ToLower(du.MediaType.ContentType())

	return &File{
		MIME: mime,
		Ext:  Extension(mime),
		Data: du.Data,
	}, nil
}

// Extension maps a MIME type to a file extension without the dot.
func Extension(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))

	if ext, ok := knownExtensions[mime]; ok {
		return ext
	}

	if m := mimetype.Lookup(mime); m != nil && m.Extension() != "" {
		return strings.TrimPrefix(m.Extension(), ".")
	}

	if _, sub, ok := strings.Cut(mime, "/"); ok && sub != "" {
		return sub
	}

	return "bin"
}

// NewFileName returns `{prefix}-{unixMillis}-{random base36}.{ext}`.
func NewFileName(prefix, ext string) string {
	return fileName(prefix, ext, time.Now(), rand.Int64N(randomSpace))
}

func fileName(prefix, ext string, now time.Time, n int64) string {
	random := strconv.FormatInt(n, 36)
	if len(random) < 6 {
		random = strings.Repeat("0", 6-len(random)) + random
	}

	return fmt.Sprintf("%s-%d-%s.%s", prefix, now.UnixMilli(), random, ext)
}

// BlobName returns the object name a public URL points to, its last path segment.
func BlobName(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}

	name := path.Base(p)
	if name == "." || name == "/" {
		return ""
	}

	return name
}

// IsRemoteURL reports whether s is an absolute http(s) URL.
func IsRemoteURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
