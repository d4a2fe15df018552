package helper

import (
	"crypto/sha256"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/securecookie"
)

// CookieCodec menandatangani (dan opsional mengenkripsi) nilai cookie sesi.
type CookieCodec struct {
	Name   string
	Secure bool
	sc     *securecookie.SecureCookie
}

// NewCookieCodec: hashKey kosong → diturunkan dari fallbackSecret.
func NewCookieCodec(name, hashKey, blockKey, fallbackSecret string, secure bool) *CookieCodec {
	hk := []byte(hashKey)
	if len(hk) == 0 {
		sum := sha256.Sum256([]byte("session-cookie:" + fallbackSecret))
		hk = sum[:]
	}
	var bk []byte
	if n := len(blockKey); n == 16 || n == 24 || n == 32 {
		bk = []byte(blockKey)
	}
	sc := securecookie.New(hk, bk)
	sc.MaxAge(0)
	return &CookieCodec{Name: name, Secure: secure, sc: sc}
}

func (cc *CookieCodec) Encode(token string) (string, error) {
	return cc.sc.Encode(cc.Name, token)
}

func (cc *CookieCodec) Decode(value string) (string, error) {
	var token string
	if err := cc.sc.Decode(cc.Name, value, &token); err != nil {
		return "", err
	}
	return token, nil
}

// Read mengambil token dari cookie request; "" kalau tidak ada / tidak valid.
func (cc *CookieCodec) Read(c *fiber.Ctx) string {
	raw := c.Cookies(cc.Name)
	if raw == "" {
		return ""
	}
	token, err := cc.Decode(raw)
	if err != nil {
		return ""
	}
	return token
}

func (cc *CookieCodec) Write(c *fiber.Ctx, token string) error {
	value, err := cc.Encode(token)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     cc.Name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func (cc *CookieCodec) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     cc.Name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
