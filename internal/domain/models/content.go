package models

import "time"

// ContentRecord is an article of one of the content modules
// (berita, inovasi, cerita praktik baik, seputar cabdin).
type ContentRecord struct {
	ID          int64      `db:"id" json:"id"`
	Title       string     `db:"judul" json:"judul"`
	Author      string     `db:"penulis" json:"penulis"`
	Body        string     `db:"isi" json:"isi"`
	PublishedAt *time.Time `db:"tanggal_diterbitkan" json:"tanggal_diterbitkan,omitempty"`
	CreatedAt   time.Time  `db:"dibuat_pada" json:"dibuat_pada"`
	UpdatedAt   time.Time  `db:"diperbarui_pada" json:"diperbarui_pada"`
}

type ImageRef struct {
	ID        int64     `db:"id" json:"id"`
	OwnerID   int64     `json:"-"`
	URL       string    `db:"url_gambar" json:"url_gambar"`
	Caption   *string   `db:"keterangan" json:"keterangan"`
	CreatedAt time.Time `db:"dibuat_pada" json:"dibuat_pada"`
}

type ContentJoined struct {
	ContentRecord
	Images []ImageRef `json:"gambar"`
}

// FirstImage returns the managed image of the record, if any.
func (c *ContentJoined) FirstImage() *ImageRef {
	if len(c.Images) == 0 {
		return nil
	}
	return &c.Images[0]
}

type ContentFilter struct {
	Title  string
	Author string
	// From and To bound tanggal_diterbitkan, [From, To)
	From *time.Time
	To   *time.Time
}
