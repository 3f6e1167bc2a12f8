package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIdentityToken_Roundtrip(t *testing.T) {
	token, err := NewIdentityToken("secret", "64f1c0ffee0000000000abcd", "admin")
	require.NoError(t, err)

	uid, role, err := VerifyIdentityToken("secret", token)
	require.NoError(t, err)
	require.Equal(t, "64f1c0ffee0000000000abcd", uid)
	require.Equal(t, "admin", role)
}

func TestIdentityToken_WrongSecret(t *testing.T) {
	token, err := NewIdentityToken("secret", "64f1c0ffee0000000000abcd", "user")
	require.NoError(t, err)

	_, _, err = VerifyIdentityToken("other-secret", token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityToken_Malformed(t *testing.T) {
	_, _, err := VerifyIdentityToken("secret", "not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityToken_Expired(t *testing.T) {
	// Forge a token that expired an hour ago with the correct secret.
	claims := IdentityClaims{
		UserID: "64f1c0ffee0000000000abcd",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, _, err = VerifyIdentityToken("secret", signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := IdentityClaims{UserID: "64f1c0ffee0000000000abcd", Role: "admin"}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = VerifyIdentityToken("secret", unsigned)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityToken_ExpirySevenDays(t *testing.T) {
	token, err := NewIdentityToken("secret", "64f1c0ffee0000000000abcd", "user")
	require.NoError(t, err)

	claims := &IdentityClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(IdentityTTL), claims.ExpiresAt.Time, time.Minute)
}
