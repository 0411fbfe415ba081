package models

import "time"

type ServiceKind string

const (
	KindRekomendasiPenelitian     ServiceKind = "Rekomendasi_Penelitian"
	KindRekomendasiPindahSekolah  ServiceKind = "Rekomendasi_Pindah_Sekolah"
	KindLegalisirIjazahSKHU       ServiceKind = "Legalisir_Ijazah_SKHU"
	KindPerbaikanIjazahSKHU       ServiceKind = "Perbaikan_Ijzah_SKHU"
	KindKehilanganIjazah          ServiceKind = "Kehilangan_Ijazah"
	KindUsulanKarpeg              ServiceKind = "Usulan_Karpeg"
	KindUsulanKaris               ServiceKind = "Usulan_Karis"
	KindUsulanKarsu               ServiceKind = "Usulan_Karsu"
	KindKenaikanPangkatFungsional ServiceKind = "Kenaikan_Pangkat_Fungsional"
	KindPensiun                   ServiceKind = "Pensiun"
	KindTabelBasis                ServiceKind = "Tabel_Basis"
	KindKenaikanPangkatReguler    ServiceKind = "Kenaikan_Pangkat_Reguler"
)

var ServiceKinds = []ServiceKind{
	KindRekomendasiPenelitian,
	KindRekomendasiPindahSekolah,
	KindLegalisirIjazahSKHU,
	KindPerbaikanIjazahSKHU,
	KindKehilanganIjazah,
	KindUsulanKarpeg,
	KindUsulanKaris,
	KindUsulanKarsu,
	KindKenaikanPangkatFungsional,
	KindPensiun,
	KindTabelBasis,
	KindKenaikanPangkatReguler,
}

func (k ServiceKind) Valid() bool {
	for _, v := range ServiceKinds {
		if v == k {
			return true
		}
	}
	return false
}

// ServiceDocument is a layanan record backed by one stored file.
type ServiceDocument struct {
	ID        int64       `db:"id" json:"id"`
	Title     string      `db:"judul" json:"judul"`
	FileName  string      `db:"nama_file" json:"nama_file"`
	FileURL   string      `db:"url_file" json:"url_file"`
	FileSize  int64       `db:"ukuran_file" json:"ukuran_file"`
	FileType  string      `db:"jenis_file" json:"jenis_file"`
	Kind      ServiceKind `db:"jenis_layanan" json:"jenis_layanan"`
	CreatedAt time.Time   `db:"dibuat_pada" json:"dibuat_pada"`
	UpdatedAt time.Time   `db:"diperbarui_pada" json:"diperbarui_pada"`
}

type ServiceFilter struct {
	ID       *int64
	Kind     ServiceKind
	FileType string
	From     *time.Time
	To       *time.Time
}
