package helper

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash dipakai saat username tidak ditemukan supaya durasi login tetap mirip.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// ComparePassword mengembalikan nil kalau cocok.
func ComparePassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// BurnCompare menjalankan bcrypt terhadap hash palsu; hasilnya selalu mismatch.
func BurnCompare(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
