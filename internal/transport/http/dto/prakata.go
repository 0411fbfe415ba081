package dto

type PrakataRequest struct {
	Title    string `json:"judul" validate:"required,max=255"`
	Subtitle string `json:"sub_judul"`
	Body     string `json:"isi" validate:"required"`
	Closing  string `json:"penutup"`
}
