package models

import "time"

type SchoolStatus string

const (
	SchoolNegeri SchoolStatus = "Negeri"
	SchoolSwasta SchoolStatus = "Swasta"
)

type Location struct {
	ID         int64  `db:"id" json:"id"`
	Kelurahan  string `db:"kelurahan" json:"kelurahan"`
	Kecamatan  string `db:"kecamatan" json:"kecamatan"`
	Kabupaten  string `db:"kabupaten" json:"kabupaten"`
	Provinsi   string `db:"provinsi" json:"provinsi"`
	StreetName string `db:"nama_jalan" json:"nama_jalan"`
}

type SchoolKind struct {
	ID    int64            `db:"id" json:"id"`
	Name  string           `db:"nama_jenis" json:"nama_jenis"`
	Icons []SchoolKindIcon `json:"gambar,omitempty"`
}

type SchoolKindIcon struct {
	ID        int64     `db:"id" json:"id"`
	KindID    int64     `db:"id_jenis" json:"id_jenis"`
	URL       string    `db:"url_gambar" json:"url_gambar"`
	CreatedAt time.Time `db:"dibuat_pada" json:"dibuat_pada"`
	UpdatedAt time.Time `db:"diperbarui_pada" json:"diperbarui_pada"`
}

// School is a satuan pendidikan, keyed by its NPSN.
type School struct {
	NPSN       string       `db:"npsn" json:"npsn"`
	Name       string       `db:"nama" json:"nama"`
	KindID     int64        `db:"jenis_id" json:"jenis_id"`
	Status     SchoolStatus `db:"status" json:"status"`
	Address    string       `db:"alamat" json:"alamat"`
	LocationID *int64       `db:"lokasi_id" json:"lokasi_id"`
}

type SchoolView struct {
	School
	KindName string    `json:"nama_jenis"`
	Location *Location `json:"lokasi,omitempty"`
}

type SchoolFilter struct {
	Name string
	Kind string
}
