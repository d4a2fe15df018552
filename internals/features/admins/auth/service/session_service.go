package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"schoolsite_backend/internals/features/admins/auth/model"
	helper "schoolsite_backend/internals/helpers"
	"schoolsite_backend/internals/helpers/apperror"
	authHelper "schoolsite_backend/internals/helpers/auth"
	"schoolsite_backend/internals/helpers/repository"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore adalah penyimpanan sesi (db, redis, memory). Key = hash token.
// Set hanya dipakai saat login; Touch tidak boleh membuat ulang sesi yang sudah dihapus
// dan mengembalikan ErrSessionNotFound kalau key sudah tidak ada.
type SessionStore interface {
	Get(ctx context.Context, tokenHash string) (*model.AdminSessionModel, error)
	Set(ctx context.Context, s *model.AdminSessionModel) error
	Touch(ctx context.Context, s *model.AdminSessionModel) error
	Destroy(ctx context.Context, tokenHash string) error
}

type AdminFinder interface {
	FindByUsername(ctx context.Context, username string) (*model.AdminModel, error)
}

type AdminIdentity struct {
	Username string `json:"username"`
}

// SessionAuthority satu-satunya yang boleh membuat / memperpanjang sesi.
type SessionAuthority struct {
	admins       AdminFinder
	store        SessionStore
	sharedSecret string
	idleTimeout  time.Duration
	now          func() time.Time
	log          *zap.Logger
}

func NewSessionAuthority(admins AdminFinder, store SessionStore, sharedSecret string, idleTimeout time.Duration, log *zap.Logger) *SessionAuthority {
	return &SessionAuthority{
		admins:       admins,
		store:        store,
		sharedSecret: sharedSecret,
		idleTimeout:  idleTimeout,
		now:          time.Now,
		log:          log.Named("session"),
	}
}

// WithClock dipakai test untuk mengatur waktu.
func (a *SessionAuthority) WithClock(now func() time.Time) *SessionAuthority {
	a.now = now
	return a
}

// VerifySharedSecret dicek paling awal, sebelum field lain (kosong = salah).
func (a *SessionAuthority) VerifySharedSecret(ctx context.Context, sharedSecret string) error {
	if subtle.ConstantTimeCompare([]byte(sharedSecret), []byte(a.sharedSecret)) != 1 {
		a.log.Info("session#login rejected", zap.String("reqid", helper.RequestID(ctx)), zap.String("reason", "shared_secret"))
		return apperror.New(apperror.ErrInvalidSharedSecret, "Invalid shared password")
	}
	return nil
}

func (a *SessionAuthority) Login(ctx context.Context, username, password, sharedSecret string) (string, error) {
	rid := helper.RequestID(ctx)
	if err := a.VerifySharedSecret(ctx, sharedSecret); err != nil {
		return "", err
	}

	username = strings.TrimSpace(username)
	admin, err := a.admins.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		authHelper.BurnCompare(password)
		a.log.Info("session#login rejected", zap.String("reqid", rid), zap.String("reason", "credentials"))
		return "", apperror.New(apperror.ErrInvalidCredentials, "Invalid username or password")
	case err != nil:
		a.log.Error("session#login lookup failed", zap.String("reqid", rid), zap.Error(err))
		return "", apperror.Persistence("load", err)
	}

	if err := authHelper.ComparePassword(admin.AdminPasswordHash, password); err != nil {
		a.log.Info("session#login rejected", zap.String("reqid", rid), zap.String("reason", "credentials"))
		return "", apperror.New(apperror.ErrInvalidCredentials, "Invalid username or password")
	}

	token, err := authHelper.NewSessionToken()
	if err != nil {
		return "", err
	}
	now := a.now()
	sess := &model.AdminSessionModel{
		AdminSessionTokenHash:      authHelper.HashSessionToken(token),
		AdminSessionUsername:       admin.AdminUsername,
		AdminSessionLastActivityAt: now,
		AdminSessionCreatedAt:      now,
	}
	if err := a.store.Set(ctx, sess); err != nil {
		a.log.Error("session#login store failed", zap.String("reqid", rid), zap.Error(err))
		return "", apperror.Persistence("create", err)
	}

	a.log.Info("session#login ok", zap.String("reqid", rid), zap.String("username", admin.AdminUsername))
	return token, nil
}

// Authorize memvalidasi token dan menggeser idle clock ke "sekarang".
// Sesi yang idle melewati timeout dihapus dan dianggap tidak ada.
func (a *SessionAuthority) Authorize(ctx context.Context, token string) (*AdminIdentity, error) {
	if token == "" {
		return nil, apperror.ErrUnauthenticated
	}
	hash := authHelper.HashSessionToken(token)

	sess, err := a.store.Get(ctx, hash)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, apperror.ErrUnauthenticated
	}
	if err != nil {
		// fail closed
		a.log.Error("session#authorize store failed", zap.String("reqid", helper.RequestID(ctx)), zap.Error(err))
		return nil, apperror.Wrap(apperror.ErrUnauthenticated, "", err)
	}

	now := a.now()
	if now.Sub(sess.AdminSessionLastActivityAt) > a.idleTimeout {
		if err := a.store.Destroy(ctx, hash); err != nil {
			a.log.Warn("session#authorize destroy expired failed", zap.String("reqid", helper.RequestID(ctx)), zap.Error(err))
		}
		a.log.Info("session#expired", zap.String("reqid", helper.RequestID(ctx)), zap.String("username", sess.AdminSessionUsername))
		return nil, apperror.ErrUnauthenticated
	}

	// logout / sweeper bisa menghapus sesi di antara Get dan Touch
	sess.AdminSessionLastActivityAt = now
	if err := a.store.Touch(ctx, sess); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, apperror.ErrUnauthenticated
		}
		a.log.Error("session#authorize touch failed", zap.String("reqid", helper.RequestID(ctx)), zap.Error(err))
		return nil, apperror.Wrap(apperror.ErrUnauthenticated, "", err)
	}
	return &AdminIdentity{Username: sess.AdminSessionUsername}, nil
}

// Logout idempotent: token kosong / tidak dikenal bukan error.
func (a *SessionAuthority) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := a.store.Destroy(ctx, authHelper.HashSessionToken(token))
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		a.log.Error("session#logout failed", zap.String("reqid", helper.RequestID(ctx)), zap.Error(err))
		return apperror.Persistence("delete", err)
	}
	return nil
}
