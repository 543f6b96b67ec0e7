// Package token implements the signed-token codec used for both access and
// refresh credentials. The codec is stateless: minting and verification need
// only the signing secret and the current time, never the database.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nsavelyev/viewtube/internal/common"
)

// Claims is the payload carried by signed tokens. Access tokens fill both
// UserID and Role; refresh tokens carry only UserID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Role   string `json:"role,omitempty"`
}

// Codec mints and verifies HS256-signed tokens with a fixed clock-skew
// leeway applied symmetrically at verification time.
type Codec struct {
	leeway time.Duration
}

func NewCodec(leeway time.Duration) *Codec {
	return &Codec{leeway: leeway}
}

// Mint signs a token for the given subject. Role may be empty (refresh
// tokens carry no role claim). Each token gets a unique jti so that two
// mints within the same second still produce distinct byte strings.
func (c *Codec) Mint(userID, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Role:   role,
	})

	signed, err := t.SignedString(secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Verify parses and validates a signed token, returning its claims.
// Failures map onto the shared sentinels: common.ErrTokenMalformed,
// common.ErrTokenSignatureInvalid, common.ErrTokenExpired.
func (c *Codec) Verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(c.leeway),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, common.ErrTokenSignatureInvalid
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !t.Valid {
		return nil, common.ErrTokenSignatureInvalid
	}

	return claims, nil
}
