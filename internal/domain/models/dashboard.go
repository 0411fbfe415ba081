package models

type NamedCount struct {
	Name  string `json:"name"`
	Count int64  `json:"jumlah"`
}

type MonthlyCount struct {
	Month string `json:"bulan"`
	Count int64  `json:"jumlah"`
}

type SchoolCounts struct {
	Data []NamedCount `json:"sekolahData"`
}
