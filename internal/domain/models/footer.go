package models

type Footer struct {
	ID      int64  `db:"id" json:"id"`
	Email   string `db:"email" json:"email"`
	Phone   string `db:"no_telp" json:"no_telp"`
	Address string `db:"alamat" json:"alamat"`
}
