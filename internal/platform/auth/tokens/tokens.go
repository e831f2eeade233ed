// Package tokens issues and verifies signed, time-limited identity tokens.
//
// Tokens are stateless: verification reconstructs the identity from the token
// itself and performs no database lookup. There is no revocation list; the
// short TTL bounds the blast radius of a leaked token.
package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskboard-hq/taskboard-api/internal/domain"
	clockport "github.com/taskboard-hq/taskboard-api/internal/ports/out/clock"
)

var (
	// ErrMalformed covers unparseable tokens and signature mismatches.
	ErrMalformed = errors.New("token is malformed")
	// ErrExpired is returned for structurally valid tokens past their expiry.
	ErrExpired = errors.New("token has expired")
)

type claims struct {
	UserID int64 `json:"UsuarioID"`
	jwt.RegisteredClaims
}

// Service signs and verifies identity tokens with a process-wide symmetric
// secret. Construct it once at startup and inject it; the secret is never
// package-level state.
type Service struct {
	secret []byte
	ttl    time.Duration
	clk    clockport.Clock
}

func NewService(secret string, ttl time.Duration, clk clockport.Clock) *Service {
	return &Service{secret: []byte(secret), ttl: ttl, clk: clk}
}

// Issue produces an HS256-signed token carrying the user's identifier and an
// expiry of issue-time + TTL.
func (s *Service) Issue(id domain.UserID) (string, error) {
	now := s.clk.Now()
	c := claims{
		UserID: int64(id),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify decodes and checks the token, returning the embedded user identifier.
// Expired tokens fail with ErrExpired; everything else that is not a valid
// token signed with the current secret fails with ErrMalformed.
func (s *Service) Verify(raw string) (domain.UserID, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clk.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrMalformed
	}
	if !token.Valid || c.UserID == 0 {
		return 0, ErrMalformed
	}
	return domain.UserID(c.UserID), nil
}
