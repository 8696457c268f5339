package introspect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "key" {
			http.Error(w, "bad key", http.StatusForbidden)
			return
		}
		var in struct {
			Token string `json:"token"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		switch in.Token {
		case "good":
			_ = json.NewEncoder(w).Encode(map[string]string{"user_id": " u-1 ", "email": "a@b.c"})
		case "anon":
			_ = json.NewEncoder(w).Encode(map[string]string{})
		case "boom":
			http.Error(w, "down", http.StatusBadGateway)
		default:
			http.Error(w, "invalid", http.StatusUnauthorized)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestVerify(t *testing.T) {
	ts := identityServer(t)
	v := NewVerifier(Config{URL: ts.URL + "/v1/tokens/verify", APIKey: "key"})

	c, err := v.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.UserID)
	assert.Equal(t, "a@b.c", c.Email)

	_, err = v.Verify(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = v.Verify(context.Background(), "boom")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = v.Verify(context.Background(), "anon")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = v.Verify(context.Background(), " ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestVerify_WrongAPIKey(t *testing.T) {
	ts := identityServer(t)
	v := NewVerifier(Config{URL: ts.URL, APIKey: "other"})

	_, err := v.Verify(context.Background(), "good")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_NotConfigured(t *testing.T) {
	_, err := NewVerifier(Config{}).Verify(context.Background(), "good")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
