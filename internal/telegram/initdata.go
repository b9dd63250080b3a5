package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/url"
	"sort"
	"strings"
)

// WebAppUser is the user object Telegram embeds in a mini-app's initData.
type WebAppUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

// DisplayName joins the profile name fields for the persisted user record.
func (u *WebAppUser) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

var (
	ErrNoUser    = errors.New("no user field in init data")
	ErrMalformed = errors.New("malformed init data")
)

var webAppDataKey = []byte("WebAppData")

// parseInitData splits initData into decoded key-value pairs. Pairs split
// on the first "=" only, so values may themselves contain "=".
func parseInitData(initData string) (map[string]string, error) {
	data := make(map[string]string)
	for _, pair := range strings.Split(initData, "&") {
		key, rawValue, found := strings.Cut(pair, "=")
		if !found {
			return nil, ErrMalformed
		}
		value, err := url.PathUnescape(rawValue)
		if err != nil {
			return nil, ErrMalformed
		}
		data[key] = value
	}
	return data, nil
}

// Verify checks the initData signature against the bot token using
// Telegram's WebApp scheme: the check string is the sorted key=value pairs
// (hash removed) joined by newlines, and the HMAC key is derived by signing
// the bot token with the constant "WebAppData". Any malformation yields
// false, never an error.
func Verify(initData, botToken string) bool {
	data, err := parseInitData(initData)
	if err != nil {
		log.Printf("telegram: init data verification failed: %v", err)
		return false
	}

	receivedHash := data["hash"]
	delete(data, "hash")

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var checkString strings.Builder
	for i, k := range keys {
		if i > 0 {
			checkString.WriteByte('\n')
		}
		checkString.WriteString(k)
		checkString.WriteByte('=')
		checkString.WriteString(data[k])
	}

	secret := hmac.New(sha256.New, webAppDataKey)
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString.String()))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(receivedHash)) {
		log.Println("telegram: init data verification failed: hash mismatch")
		return false
	}
	return true
}

// ParseUser extracts the Telegram user from initData. It re-parses the
// payload on its own; callers must run Verify first. A missing or
// unparseable user field yields a nil user.
func ParseUser(initData string) (*WebAppUser, error) {
	data, err := parseInitData(initData)
	if err != nil {
		return nil, err
	}

	raw, ok := data["user"]
	if !ok {
		return nil, ErrNoUser
	}

	var user WebAppUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, ErrMalformed
	}
	return &user, nil
}
