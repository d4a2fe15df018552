package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.NoError(t, ComparePassword(hash, "pw1"))
	err = ComparePassword(hash, "pw2")
	assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
}

func TestSessionTokenIsRandomAndHashed(t *testing.T) {
	a, err := NewSessionToken()
	require.NoError(t, err)
	b, err := NewSessionToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, HashSessionToken(a), 64)
	assert.Equal(t, HashSessionToken(a), HashSessionToken(a))
}

func TestCookieCodecRejectsTampering(t *testing.T) {
	cc := NewCookieCodec("admin_sid", "", "", "shared", false)
	enc, err := cc.Encode("tok-123")
	require.NoError(t, err)

	got, err := cc.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got)

	_, err = cc.Decode(enc + "x")
	assert.Error(t, err)

	other := NewCookieCodec("admin_sid", "", "", "different", false)
	_, err = other.Decode(enc)
	assert.Error(t, err)
}

func TestActionLinkSigner(t *testing.T) {
	s := NewActionLinkSigner("link-secret", time.Hour)
	tok, err := s.Sign("alice", "approve")
	require.NoError(t, err)

	assert.NoError(t, s.Verify(tok, "alice", "approve"))
	assert.ErrorIs(t, s.Verify(tok, "alice", "reject"), ErrInvalidActionLink)
	assert.ErrorIs(t, s.Verify(tok, "mallory", "approve"), ErrInvalidActionLink)
	assert.ErrorIs(t, s.Verify("", "alice", "approve"), ErrInvalidActionLink)

	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := s.Sign("alice", "approve")
	require.NoError(t, err)
	assert.ErrorIs(t, NewActionLinkSigner("link-secret", time.Hour).Verify(expired, "alice", "approve"), ErrInvalidActionLink)
}

func TestActionLinkSignerDisabled(t *testing.T) {
	s := NewActionLinkSigner("", time.Hour)
	tok, err := s.Sign("alice", "approve")
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.NoError(t, s.Verify("", "alice", "approve"))
}
