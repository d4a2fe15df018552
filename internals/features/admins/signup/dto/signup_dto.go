package dto

// bcrypt menolak password > 72 byte
type SignupRequestPayload struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

type SignupResponse struct {
	Username string `json:"username"`
	Status   string `json:"status"`
	Notified bool   `json:"notified"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
