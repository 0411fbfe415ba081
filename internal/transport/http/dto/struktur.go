package dto

type StrukturRequest struct {
	StructureImage     string `json:"gambar_struktur" validate:"required"`
	DocumentationImage string `json:"gambar_dokumentasi" validate:"required"`
}

type StrukturUpdateRequest struct {
	StructureImage     string `json:"gambar_struktur"`
	DocumentationImage string `json:"gambar_dokumentasi"`
}
