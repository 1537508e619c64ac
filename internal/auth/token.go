package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/baladia/fuel-service/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Manager issues and parses HS256 access tokens carrying the caller identity.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

type claims struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	ReadOnly bool   `json:"read_only"`
	jwt.RegisteredClaims
}

func (m *Manager) Issue(p model.Principal) (string, error) {
	now := time.Now()
	c := &claims{
		Username: p.Username,
		FullName: p.FullName,
		ReadOnly: p.ReadOnly,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "fuel-service",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(m.secret)
}

func (m *Manager) Parse(tokenString string) (*model.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &model.Principal{
		ID:       id,
		Username: c.Username,
		FullName: c.FullName,
		Active:   true,
		ReadOnly: c.ReadOnly,
	}, nil
}
