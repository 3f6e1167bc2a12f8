package utils // package utils provides helper functions for token creation and hashing

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// IdentityTTL is how long an issued identity token stays valid.  Tokens are
// stateless; once issued they can only be invalidated by expiry or by
// rotating the signing secret.
const IdentityTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned by VerifyIdentityToken for any token that is
// malformed, carries a bad signature, uses an unexpected algorithm or has
// expired.
var ErrInvalidToken = errors.New("invalid token")

// IdentityClaims is the payload carried by an identity token: the subject
// user id, the user's role, and the standard issued-at/expiry claims.
type IdentityClaims struct {
    UserID string `json:"userId"`
    Role   string `json:"role"`
    jwt.RegisteredClaims
}

// NewIdentityToken builds and signs an HS256 JWT asserting the given user
// id and role.  The token expires IdentityTTL after issuance.
func NewIdentityToken(secret, userID, role string) (string, error) {
    now := time.Now().UTC()
    claims := IdentityClaims{
        UserID: userID,
        Role:   role,
        RegisteredClaims: jwt.RegisteredClaims{
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(IdentityTTL)),
        },
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return t.SignedString([]byte(secret))
}

// VerifyIdentityToken checks the signature and expiry of a token and
// returns the subject user id and role it asserts.  Verification is
// synchronous and has no side effects.
func VerifyIdentityToken(secret, token string) (userID, role string, err error) {
    claims := &IdentityClaims{}
    tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return "", "", ErrInvalidToken
    }
    return claims.UserID, claims.Role, nil
}
