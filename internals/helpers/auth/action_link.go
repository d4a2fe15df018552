package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidActionLink = errors.New("invalid or expired action link")

type ActionClaims struct {
	Username string `json:"username"`
	Action   string `json:"action"`
	jwt.RegisteredClaims
}

// ActionLinkSigner membuat token untuk link approve/reject di notifikasi operator.
// Secret kosong → link tanpa token (tidak diverifikasi).
type ActionLinkSigner struct {
	Secret []byte
	TTL    time.Duration
	now    func() time.Time
}

func NewActionLinkSigner(secret string, ttl time.Duration) *ActionLinkSigner {
	return &ActionLinkSigner{Secret: []byte(secret), TTL: ttl, now: time.Now}
}

func (s *ActionLinkSigner) Enabled() bool { return len(s.Secret) > 0 }

func (s *ActionLinkSigner) Sign(username, action string) (string, error) {
	if !s.Enabled() {
		return "", nil
	}
	now := s.now()
	claims := ActionClaims{
		Username: username,
		Action:   action,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

func (s *ActionLinkSigner) Verify(token, username, action string) error {
	if !s.Enabled() {
		return nil
	}
	if token == "" {
		return ErrInvalidActionLink
	}
	var claims ActionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidActionLink
	}
	if claims.Username != username || claims.Action != action {
		return ErrInvalidActionLink
	}
	return nil
}
