package services

import (
	"errors"
	"time"

	"github.com/Vareni4/daggybot/internal/telegram"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidInitData = errors.New("invalid telegram data")
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrInvalidToken covers bad signature, malformed structure and expiry
	// alike; callers cannot tell which check failed.
	ErrInvalidToken = errors.New("invalid or expired token")
)

type AuthService struct {
	botToken  string
	jwtSecret []byte
	ttl       time.Duration
	policy    *AccessPolicy
}

func NewAuthService(botToken, jwtSecret string, ttlMinutes int, policy *AccessPolicy) *AuthService {
	return &AuthService{
		botToken:  botToken,
		jwtSecret: []byte(jwtSecret),
		ttl:       time.Duration(ttlMinutes) * time.Minute,
		policy:    policy,
	}
}

// Claims carries the verified Telegram identity inside the session token.
type Claims struct {
	User telegram.WebAppUser `json:"user"`
	jwt.RegisteredClaims
}

// IssueToken signs a short-lived session token for the given user.
func (s *AuthService) IssueToken(user *telegram.WebAppUser) (string, error) {
	now := time.Now()
	claims := Claims{
		User: *user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken verifies the signature and expiry of a session token.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// LaunchResult is the outcome of a mini-app launch. Token is empty when the
// user verified but is not on the authorized list; such users may view but
// not act.
type LaunchResult struct {
	Authenticated bool
	IsAdmin       bool
	Token         string
	User          *telegram.WebAppUser
}

// Launch runs the mini-app entry workflow: verify the signed initData,
// extract the Telegram user, and issue a token to authorized users.
func (s *AuthService) Launch(initData string) (*LaunchResult, error) {
	if !telegram.Verify(initData, s.botToken) {
		return nil, ErrInvalidInitData
	}

	user, err := telegram.ParseUser(initData)
	if err != nil {
		return nil, ErrInvalidUserData
	}
	if user.ID == 0 {
		return nil, ErrInvalidUserData
	}

	result := &LaunchResult{
		Authenticated: s.policy.IsAuthorized(user.ID),
		IsAdmin:       s.policy.IsAdmin(user.ID),
		User:          user,
	}
	if result.Authenticated {
		token, err := s.IssueToken(user)
		if err != nil {
			return nil, err
		}
		result.Token = token
	}
	return result, nil
}
