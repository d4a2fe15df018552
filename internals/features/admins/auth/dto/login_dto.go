package dto

import "strings"

// LoginRequest: form lama mengirim "sharedPassword", form baru "sharedSecret".
type LoginRequest struct {
	Username       string `json:"username" form:"username"`
	Password       string `json:"password" form:"password"`
	SharedSecret   string `json:"sharedSecret" form:"sharedSecret"`
	SharedPassword string `json:"sharedPassword" form:"sharedPassword"`
}

func (r *LoginRequest) Secret() string {
	if r.SharedSecret != "" {
		return r.SharedSecret
	}
	return r.SharedPassword
}

// Missing mengembalikan nama field kredensial yang kosong; shared secret dicek terpisah.
func (r *LoginRequest) Missing() []string {
	var out []string
	if strings.TrimSpace(r.Username) == "" {
		out = append(out, "username")
	}
	if r.Password == "" {
		out = append(out, "password")
	}
	return out
}
