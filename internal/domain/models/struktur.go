package models

import "time"

type OrgStructure struct {
	ID               int64     `db:"id" json:"id"`
	StructureImage   string    `db:"gambar_struktur" json:"gambar_struktur"`
	DocumentationImg string    `db:"gambar_dokumentasi" json:"gambar_dokumentasi"`
	CreatedAt        time.Time `db:"dibuat_pada" json:"dibuat_pada"`
	UpdatedAt        time.Time `db:"diperbarui_pada" json:"diperbarui_pada"`
}
