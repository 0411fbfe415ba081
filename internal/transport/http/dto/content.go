package dto

// ImageRequest.URL is a base64 data URI or an http(s) URL.
type ImageRequest struct {
	URL     string `json:"url_gambar"`
	Caption string `json:"keterangan"`
}

// ContentRequest is the body of berita, inovasi, cerita praktik baik and
// seputar cabdin. Only the first image is managed.
type ContentRequest struct {
	Title       string         `json:"judul" validate:"required,max=255"`
	Author      string         `json:"penulis" validate:"required,max=255"`
	Body        string         `json:"isi"`
	PublishedAt string         `json:"tanggal_diterbitkan"`
	Images      []ImageRequest `json:"gambar" validate:"omitempty,dive"`
}

type ContentUpdateRequest struct {
	Title       string         `json:"judul" validate:"max=255"`
	Author      string         `json:"penulis" validate:"max=255"`
	Body        string         `json:"isi"`
	PublishedAt string         `json:"tanggal_diterbitkan"`
	Images      []ImageRequest `json:"gambar" validate:"omitempty,dive"`
}
