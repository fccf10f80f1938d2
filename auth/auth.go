package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated caller of a booking operation.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 tokens issued by the identity service.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(tokenStr string) (Actor, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Actor{}, ErrInvalidToken
	}

	if claims.Subject == "" || !claims.Role.Valid() {
		return Actor{}, fmt.Errorf("%w: missing subject or role", ErrInvalidToken)
	}

	return Actor{ID: claims.Subject, Role: claims.Role}, nil
}

// Issue signs a token for actor. Token issuance belongs to the identity
// service; this is used by tests and local tooling.
func (v *Verifier) Issue(actor Actor, ttl time.Duration) (string, error) {
	claims := Claims{
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
