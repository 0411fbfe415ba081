package response

var (
	ErrAuthenticationRequired = ErrorResponse{
		Status:  "error",
		Error:   "unauthorized",
		Details: "autentikasi diperlukan",
	}

	ErrTooManyRequests = ErrorResponse{
		Status:  "error",
		Error:   "too_many_requests",
		Details: "terlalu banyak permintaan, coba lagi nanti",
	}
)
