package models

import "time"

type Prakata struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"judul" json:"judul"`
	Subtitle  *string   `db:"sub_judul" json:"sub_judul"`
	Body      string    `db:"isi" json:"isi"`
	Closing   *string   `db:"penutup" json:"penutup"`
	CreatedAt time.Time `db:"dibuat_pada" json:"dibuat_pada"`
	UpdatedAt time.Time `db:"diperbarui_pada" json:"diperbarui_pada"`
}
