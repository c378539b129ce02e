package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/sahils38/gripinvest-winter-internship/internal/errors"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name          string
		secret        string
		expiryMinutes int
	}{
		{
			name:          "valid parameters",
			secret:        "access-secret-key",
			expiryMinutes: 60,
		},
		{
			name:          "empty secret",
			secret:        "",
			expiryMinutes: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.expiryMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.Secret)
			assert.Equal(t, time.Duration(tt.expiryMinutes)*time.Minute, ts.Expiry)
		})
	}
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret", 60)

	token, err := ts.Generate("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := &TokenService{Secret: "test-secret", Expiry: -time.Minute}

	token, err := ts.Generate("a@x.com")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Verify_ZeroTTL(t *testing.T) {
	ts := NewTokenService("test-secret", 0)

	token, err := ts.Generate("a@x.com")
	require.NoError(t, err)

	// The expiry instant is already reached by verification time.
	time.Sleep(time.Second)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Verify_TamperedSignature(t *testing.T) {
	ts := NewTokenService("test-secret", 60)

	token, err := ts.Generate("a@x.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = ts.Verify(tampered)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("issuer-secret", 60)
	verifier := NewTokenService("other-secret", 60)

	token, err := issuer.Generate("a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	ts := NewTokenService("test-secret", 60)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "two segments", token: "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Verify(tt.token)
			assert.ErrorIs(t, err, autherror.ErrInvalidToken)
		})
	}
}

func TestTokenService_Verify_RejectsUnsignedToken(t *testing.T) {
	ts := NewTokenService("test-secret", 60)

	claims := jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(unsigned)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}
