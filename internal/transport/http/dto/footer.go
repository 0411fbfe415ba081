package dto

type FooterRequest struct {
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"no_telp" validate:"max=30"`
	Address string `json:"alamat"`
}
