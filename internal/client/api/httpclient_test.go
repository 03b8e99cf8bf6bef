package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindwell/mindwell/internal/client/models"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/server/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "dana@example.org", body["email"])
		require.Equal(t, "secret", body["password"])

		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  map[string]string{"_id": "u1", "name": "Dana", "email": "dana@example.org"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	creds, err := c.Login(context.Background(), "dana@example.org", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-1", creds.Token)
	require.Equal(t, "u1", creds.User.ID)
	require.Equal(t, "Dana", creds.User.Name)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "wrong password"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "dana@example.org", "nope")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Contains(t, err.Error(), "wrong password")
}

func TestSignup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/server/signup", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Dana", body["name"])

		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-2",
			"user":  map[string]string{"_id": "u2", "name": "Dana", "email": "dana@example.org"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	creds, err := c.Signup(context.Background(), "Dana", "dana@example.org", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-2", creds.Token)
}

func TestServerDown_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "a@b.c", "x")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestListEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/server/entries", r.URL.Path)
		require.Equal(t, "u1", r.URL.Query().Get("ID"))
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "e1", "ID": "u1", "journalentry": "older", "datetime": "2025-06-01T10:00:00Z"},
			{"_id": "e2", "ID": "u1", "journalentry": "newer", "datetime": "2025-06-02T10:00:00Z"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	c.SetToken("tok-1")

	entries, err := c.ListEntries(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "e1", entries[0].ID)
	require.Equal(t, "older", entries[0].Text)
	require.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), entries[0].CreatedAt)
}

func TestCreateEntry(t *testing.T) {
	at := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/server/entries", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "u1", body["ID"])
		require.Equal(t, "today was fine", body["journalentry"])

		json.NewEncoder(w).Encode(map[string]any{
			"_id": "e3", "ID": "u1", "journalentry": "today was fine", "datetime": at,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	entry, err := c.CreateEntry(context.Background(), "u1", "today was fine", at)
	require.NoError(t, err)
	require.Equal(t, "e3", entry.ID)
}

func TestDeleteEntry(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, c.DeleteEntry(context.Background(), "e1"))
	require.Equal(t, "/server/entries/e1", gotPath)
}

func TestDeleteEntry_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	err := c.DeleteEntry(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListLevels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/server/levels", r.URL.Path)
		require.Equal(t, "u1", r.URL.Query().Get("ID"))

		json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "r1", "ID": "u1", "anxiety": 40, "depression": 10, "stress": 55, "happiness": 20, "anger": 5, "datetime": "2025-06-02T10:00:00Z"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	levels, err := c.ListLevels(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, levels, 1)
	require.Equal(t, models.EmotionScores{Anxiety: 40, Depression: 10, Stress: 55, Happiness: 20, Anger: 5}, levels[0].EmotionScores)
}

func TestCreateLevel(t *testing.T) {
	at := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "u1", body["ID"])
		require.Equal(t, float64(55), body["stress"])

		json.NewEncoder(w).Encode(map[string]any{"_id": "r2", "ID": "u1", "stress": 55, "datetime": at})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	record, err := c.CreateLevel(context.Background(), "u1", models.EmotionScores{Stress: 55}, at)
	require.NoError(t, err)
	require.Equal(t, "r2", record.ID)
	require.Equal(t, 55, record.Stress)
}

func TestDeleteLevel_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "db down"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	err := c.DeleteLevel(context.Background(), "r1")

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	require.Equal(t, http.StatusInternalServerError, serverErr.Status)
	require.Equal(t, "db down", serverErr.Message)
}

func TestClearToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.JournalEntry{})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	c.SetToken("tok-1")
	c.ClearToken()

	_, err := c.ListEntries(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}
