package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrNoSecret     = errors.New("JWT secret is required")
)

// AdminCollection is the auth collection whose members are administrators
// regardless of their role claim.
const AdminCollection = "_superusers"

// Claims are the claims carried by session tokens issued by the record store.
type Claims struct {
	UserID         string `json:"id"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role,omitempty"`
	CollectionName string `json:"collectionName,omitempty"`
	Type           string `json:"type,omitempty"`

	jwt.RegisteredClaims
}

// Session identifies the caller of a request. The zero value is an
// anonymous session.
type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
	Admin  bool   `json:"admin"`
}

// Authenticated reports whether the session belongs to a user.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// Owns reports whether the session may act on a record owned by owner.
func (s Session) Owns(owner string) bool {
	return s.Authenticated() && s.UserID == owner
}

// Service validates session tokens.
type Service struct {
	secret         []byte
	adminRole      string
	devAuthEnabled bool
	devAuthToken   string
	devUserID      string
}

// NewService creates a session service for HS256 tokens signed with secret.
func NewService(secret, adminRole string) (*Service, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if adminRole == "" {
		adminRole = "admin"
	}
	return &Service{secret: []byte(secret), adminRole: adminRole}, nil
}

// SetDevAuth configures development authentication bypass
func (s *Service) SetDevAuth(enabled bool, token, userID string) {
	s.devAuthEnabled = enabled
	s.devAuthToken = token
	s.devUserID = userID
}

// ValidateToken verifies signature and expiry and returns the claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if s.devAuthEnabled && s.devAuthToken != "" &&
		subtle.ConstantTimeCompare([]byte(tokenString), []byte(s.devAuthToken)) == 1 {
		return s.devClaims(), nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate turns a bearer token into a Session.
func (s *Service) Authenticate(tokenString string) (Session, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return Session{}, err
	}
	return s.SessionFromClaims(claims), nil
}

// SessionFromClaims builds the session passed to services.
func (s *Service) SessionFromClaims(c *Claims) Session {
	return Session{
		UserID: c.UserID,
		Email:  c.Email,
		Admin:  c.Role == s.adminRole || c.CollectionName == AdminCollection,
	}
}

// IssueToken signs a token for session, valid for ttl.
func (s *Service) IssueToken(session Session, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: session.UserID,
		Email:  session.Email,
		Type:   "auth",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if session.Admin {
		claims.Role = s.adminRole
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func (s *Service) devClaims() *Claims {
	userID := s.devUserID
	if userID == "" {
		userID = "dev-user"
	}
	return &Claims{
		UserID: userID,
		Email:  "dev@localhost",
		Role:   s.adminRole,
		Type:   "auth",
	}
}
