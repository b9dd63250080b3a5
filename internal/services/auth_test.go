package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/Vareni4/daggybot/internal/telegram"
)

const testBotToken = "123456:TEST-TOKEN"

func testUser() *telegram.WebAppUser {
	return &telegram.WebAppUser{
		ID:        42,
		FirstName: "Dag",
		LastName:  "Bot",
		Username:  "daggy",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := NewAuthService(testBotToken, "test-secret", 15, NewAccessPolicy(nil, nil))

	token, err := s.IssueToken(testUser())
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.User != *testUser() {
		t.Errorf("claims user = %+v, want %+v", claims.User, *testUser())
	}
}

func TestTokenExpired(t *testing.T) {
	s := NewAuthService(testBotToken, "test-secret", 15, NewAccessPolicy(nil, nil))
	s.ttl = -time.Second // issue already-expired tokens

	token, err := s.IssueToken(testUser())
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := s.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenTampered(t *testing.T) {
	s := NewAuthService(testBotToken, "test-secret", 15, NewAccessPolicy(nil, nil))

	token, err := s.IssueToken(testUser())
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	// Flip one byte in the payload segment.
	tampered := []byte(token)
	i := len(tampered) / 2
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}

	if _, err := s.ValidateToken(string(tampered)); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService(testBotToken, "secret-a", 15, NewAccessPolicy(nil, nil))
	validator := NewAuthService(testBotToken, "secret-b", 15, NewAccessPolicy(nil, nil))

	token, err := issuer.IssueToken(testUser())
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := validator.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	s := NewAuthService(testBotToken, "test-secret", 15, NewAccessPolicy(nil, nil))
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := s.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

// signedInitData builds a launch payload signed with the given bot token.
func signedInitData(botToken string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+data[k])
	}
	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))
	hash := hex.EncodeToString(mac.Sum(nil))

	pairs := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		pairs = append(pairs, k+"="+strings.ReplaceAll(url.QueryEscape(data[k]), "+", "%20"))
	}
	pairs = append(pairs, "hash="+hash)
	return strings.Join(pairs, "&")
}

func TestLaunchAuthorizedUser(t *testing.T) {
	policy := NewAccessPolicy([]int64{42}, []int64{42})
	s := NewAuthService(testBotToken, "test-secret", 15, policy)

	initData := signedInitData(testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":42,"first_name":"Dag"}`,
	})

	result, err := s.Launch(initData)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if !result.Authenticated {
		t.Error("expected authenticated=true for authorized user")
	}
	if !result.IsAdmin {
		t.Error("expected is_admin=true")
	}
	if result.Token == "" {
		t.Fatal("expected a token for an authorized user")
	}

	claims, err := s.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("issued token did not validate: %v", err)
	}
	if claims.User.ID != 42 {
		t.Errorf("token user id = %d, want 42", claims.User.ID)
	}
}

func TestLaunchUnauthorizedUser(t *testing.T) {
	policy := NewAccessPolicy([]int64{1}, nil)
	s := NewAuthService(testBotToken, "test-secret", 15, policy)

	initData := signedInitData(testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":42,"first_name":"Dag"}`,
	})

	result, err := s.Launch(initData)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if result.Authenticated {
		t.Error("expected authenticated=false for unauthorized user")
	}
	if result.IsAdmin {
		t.Error("expected is_admin=false")
	}
	if result.Token != "" {
		t.Error("unauthorized user must not receive a token")
	}
	if result.User == nil || result.User.ID != 42 {
		t.Error("user data should still be returned for display")
	}
}

func TestLaunchBadSignature(t *testing.T) {
	s := NewAuthService(testBotToken, "test-secret", 15, NewAccessPolicy(nil, nil))

	initData := signedInitData("wrong:token", map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":42,"first_name":"Dag"}`,
	})

	if _, err := s.Launch(initData); !errors.Is(err, ErrInvalidInitData) {
		t.Fatalf("expected ErrInvalidInitData, got %v", err)
	}
}

func TestLaunchMissingUser(t *testing.T) {
	s := NewAuthService(testBotToken, "test-secret", 15, NewAccessPolicy(nil, nil))

	initData := signedInitData(testBotToken, map[string]string{
		"auth_date": "1700000000",
	})

	if _, err := s.Launch(initData); !errors.Is(err, ErrInvalidUserData) {
		t.Fatalf("expected ErrInvalidUserData, got %v", err)
	}
}

func TestLaunchUserWithoutID(t *testing.T) {
	s := NewAuthService(testBotToken, "test-secret", 15, NewAccessPolicy(nil, nil))

	initData := signedInitData(testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"first_name":"Dag"}`,
	})

	if _, err := s.Launch(initData); !errors.Is(err, ErrInvalidUserData) {
		t.Fatalf("expected ErrInvalidUserData, got %v", err)
	}
}
