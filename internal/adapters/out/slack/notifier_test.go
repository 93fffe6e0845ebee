package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNotifier_Notify_PostsFormattedText(t *testing.T) {
	var payload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := New(srv.URL)

	err := n.Notify(context.Background(), ports.Notification{
		Kind:        "substitution",
		Message:     "Oat Milk 1L replaced with Soy Milk 1L",
		OrderNumber: "#1001",
		Roles:       []string{"admin"},
	})
	require.NoError(t, err)
	require.Equal(t, "[substitution] Oat Milk 1L replaced with Soy Milk 1L (order #1001) @admin", payload["text"])
}

func TestNotifier_Notify_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	n := New(srv.URL)

	err := n.Notify(context.Background(), ports.Notification{Message: "hello"})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrExternalDependency)
	require.Contains(t, err.Error(), "http 400")
}
