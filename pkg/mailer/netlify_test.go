package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetlifySend(t *testing.T) {
	var got *http.Request
	var payload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"em_01"}`))
	}))
	defer srv.Close()

	n := NewNetlify("tok-secret", srv.URL)
	id, err := n.Send(context.Background(), Message{
		From:    "dev@howapped.com",
		To:      []string{"jon@howapped.com"},
		Subject: "New Contact Form Submission",
		Text:    "body",
		ReplyTo: "a@b.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "em_01", id)

	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/.netlify/functions/emails", got.URL.Path)
	assert.Equal(t, "Bearer tok-secret", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))

	assert.Equal(t, "dev@howapped.com", payload["from"])
	assert.Equal(t, []interface{}{"jon@howapped.com"}, payload["to"])
	assert.Equal(t, "a@b.com", payload["reply_to"])
	assert.Equal(t, "New Contact Form Submission", payload["subject"])
	assert.Equal(t, "body", payload["text"])
}

func TestNetlifySendOmitsEmptyReplyTo(t *testing.T) {
	var payload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		w.WriteHeader(http.StatusAccepted) // no body
	}))
	defer srv.Close()

	n := NewNetlify("tok", srv.URL)
	id, err := n.Send(context.Background(), Message{
		From:    "dev@howapped.com",
		To:      []string{"jon@howapped.com"},
		Subject: "s",
		Text:    "t",
	})

	require.NoError(t, err)
	assert.Empty(t, id)
	_, present := payload["reply_to"]
	assert.False(t, present)
}

func TestNetlifySendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("token expired"))
	}))
	defer srv.Close()

	n := NewNetlify("stale", srv.URL)
	_, err := n.Send(context.Background(), Message{To: []string{"x@y.com"}})

	var pErr *ProviderError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "netlify", pErr.Provider)
	assert.Equal(t, http.StatusForbidden, pErr.StatusCode)
	assert.Equal(t, "token expired", pErr.Body)
}
