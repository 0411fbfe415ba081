package dto

import "cabdin/internal/domain/models"

type SchoolRequest struct {
	NPSN       string              `json:"npsn" validate:"required,numeric,max=20"`
	Name       string              `json:"nama" validate:"required,max=255"`
	KindID     int64               `json:"jenis_id" validate:"required,min=1"`
	Status     models.SchoolStatus `json:"status" validate:"required,oneof=Negeri Swasta"`
	Address    string              `json:"alamat"`
	LocationID *int64              `json:"lokasi_id" validate:"omitempty,min=1"`
}

type SchoolUpdateRequest struct {
	Name       string              `json:"nama" validate:"max=255"`
	KindID     int64               `json:"jenis_id" validate:"omitempty,min=1"`
	Status     models.SchoolStatus `json:"status" validate:"omitempty,oneof=Negeri Swasta"`
	Address    string              `json:"alamat"`
	LocationID *int64              `json:"lokasi_id" validate:"omitempty,min=1"`
}

type LocationRequest struct {
	Kelurahan  string `json:"kelurahan"`
	Kecamatan  string `json:"kecamatan"`
	Kabupaten  string `json:"kabupaten"`
	Provinsi   string `json:"provinsi"`
	StreetName string `json:"nama_jalan"`
}

type KindRequest struct {
	Name string `json:"nama_jenis" validate:"required,max=100"`
}

// KindIconRequest.Image is a base64 data URI or an http(s) URL.
type KindIconRequest struct {
	KindID int64  `json:"id_jenis" validate:"omitempty,min=1"`
	Image  string `json:"url_gambar"`
}
