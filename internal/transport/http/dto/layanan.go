package dto

import "cabdin/internal/domain/models"

// LayananRequest.File is a base64 data URI.
type LayananRequest struct {
	Title    string             `json:"judul" validate:"required,max=255"`
	Kind     models.ServiceKind `json:"jenis_layanan" validate:"required"`
	FileName string             `json:"nama_file"`
	File     string             `json:"url_file" validate:"required"`
}

type LayananUpdateRequest struct {
	Title    string             `json:"judul" validate:"max=255"`
	Kind     models.ServiceKind `json:"jenis_layanan"`
	FileName string             `json:"nama_file"`
	File     string             `json:"url_file"`
}
