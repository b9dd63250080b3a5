package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"sort"
	"strings"
	"testing"
)

const testBotToken = "123456:TEST-TOKEN"

// computeHash mirrors the signing side: sorted key=value lines, secret
// derived from the bot token with the "WebAppData" constant.
func computeHash(botToken string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+data[k])
	}
	checkString := strings.Join(lines, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}

func encodeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

func TestVerifyValidPayload(t *testing.T) {
	userJSON := `{"id":42,"first_name":"Dag"}`
	data := map[string]string{
		"auth_date": "1700000000",
		"user":      userJSON,
	}
	initData := "auth_date=1700000000&user=" + encodeValue(userJSON) +
		"&hash=" + computeHash(testBotToken, data)

	if !Verify(initData, testBotToken) {
		t.Fatal("expected valid payload to verify")
	}
	if Verify(initData, "other:token") {
		t.Fatal("expected verification to fail with a different bot token")
	}
}

func TestVerifyOrderIndependent(t *testing.T) {
	userJSON := `{"id":42,"first_name":"Dag"}`
	data := map[string]string{
		"auth_date": "1700000000",
		"user":      userJSON,
	}
	hash := computeHash(testBotToken, data)

	// Same pairs, reversed order relative to how the hash was computed.
	initData := "user=" + encodeValue(userJSON) + "&auth_date=1700000000&hash=" + hash

	if !Verify(initData, testBotToken) {
		t.Fatal("expected reordered payload to verify")
	}
}

func TestVerifyTamperedHash(t *testing.T) {
	data := map[string]string{"auth_date": "1700000000"}
	hash := computeHash(testBotToken, data)

	flipped := []byte(hash)
	if flipped[len(flipped)-1] == 'a' {
		flipped[len(flipped)-1] = 'b'
	} else {
		flipped[len(flipped)-1] = 'a'
	}

	initData := "auth_date=1700000000&hash=" + string(flipped)
	if Verify(initData, testBotToken) {
		t.Fatal("expected tampered hash to fail verification")
	}
}

func TestVerifyTamperedField(t *testing.T) {
	data := map[string]string{"auth_date": "1700000000"}
	hash := computeHash(testBotToken, data)

	initData := "auth_date=1700000001&hash=" + hash
	if Verify(initData, testBotToken) {
		t.Fatal("expected tampered field to fail verification")
	}
}

func TestVerifyValueContainingEquals(t *testing.T) {
	// Only the first "=" splits key from value; the rest stays in the value.
	data := map[string]string{
		"auth_date":   "1700000000",
		"start_param": "ref=abc",
	}
	initData := "auth_date=1700000000&start_param=ref=abc&hash=" +
		computeHash(testBotToken, data)

	if !Verify(initData, testBotToken) {
		t.Fatal("expected value containing '=' to verify")
	}
}

func TestVerifyMalformedInput(t *testing.T) {
	cases := []struct {
		name     string
		initData string
	}{
		{"pair without equals", "auth_date&hash=deadbeef"},
		{"missing hash", "auth_date=1700000000"},
		{"bad percent encoding", "user=%zz&hash=deadbeef"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if Verify(tc.initData, testBotToken) {
				t.Fatalf("expected %q to fail verification", tc.initData)
			}
		})
	}
}

func TestParseUser(t *testing.T) {
	initData := "user=%7B%22id%22%3A42%2C%22first_name%22%3A%22Dag%22%2C%22last_name%22%3A%22Bot%22%7D&auth_date=1700000000"

	user, err := ParseUser(initData)
	if err != nil {
		t.Fatalf("ParseUser: %v", err)
	}
	if user.ID != 42 {
		t.Errorf("expected id 42, got %d", user.ID)
	}
	if got := user.DisplayName(); got != "Dag Bot" {
		t.Errorf("expected display name %q, got %q", "Dag Bot", got)
	}
}

func TestParseUserMissing(t *testing.T) {
	_, err := ParseUser("auth_date=1700000000")
	if !errors.Is(err, ErrNoUser) {
		t.Fatalf("expected ErrNoUser, got %v", err)
	}
}

func TestParseUserBadJSON(t *testing.T) {
	_, err := ParseUser("user=not-json&auth_date=1700000000")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParseUserMalformedPayload(t *testing.T) {
	_, err := ParseUser("user")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
