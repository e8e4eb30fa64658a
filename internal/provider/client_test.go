package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Current(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{"q": q.Get("q"), "units": q.Get("units"), "appid": q.Get("appid")}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"New York"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "secret")
	body, err := c.Current(context.Background(), "  New York ")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if string(body) != `{"name":"New York"}` {
		t.Errorf("body = %s", body)
	}
	if gotQuery["q"] != "New York" {
		t.Errorf("q = %q, want trimmed city", gotQuery["q"])
	}
	if gotQuery["units"] != "metric" {
		t.Errorf("units = %q, want metric", gotQuery["units"])
	}
	if gotQuery["appid"] != "secret" {
		t.Errorf("appid = %q", gotQuery["appid"])
	}
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
		wantMsg string
	}{
		{"not found", http.StatusNotFound, ErrNotFound, "City not found."},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized, "Invalid API key (401)."},
		{"server error", http.StatusInternalServerError, nil, "Failed to fetch weather."},
		{"rate limited", http.StatusTooManyRequests, nil, "Failed to fetch weather."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "key").Current(context.Background(), "Nowhere")
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				var te *TransportError
				if !errors.As(err, &te) || te.StatusCode != tt.status {
					t.Errorf("err = %#v, want TransportError{%d}", err, tt.status)
				}
			}
			if got := Message(err); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestClient_Validation(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "key").Current(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyQuery) || !IsValidation(err) {
		t.Errorf("err = %v, want ErrEmptyQuery", err)
	}
	if Message(err) != "Please enter a city name." {
		t.Errorf("Message() = %q", Message(err))
	}

	c := NewClient(srv.URL, "")
	if c.HasKey() {
		t.Error("HasKey() = true, want false")
	}
	_, err = c.Current(context.Background(), "Chennai")
	if !errors.Is(err, ErrMissingKey) || !IsValidation(err) {
		t.Errorf("err = %v, want ErrMissingKey", err)
	}
	if called {
		t.Error("validation errors must not reach the network")
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "key").Current(context.Background(), "Chennai")
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want TransportError", err)
	}
	if te.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0", te.StatusCode)
	}
	if Message(err) != "Failed to fetch weather." {
		t.Errorf("Message() = %q", Message(err))
	}
}

func TestMessage_Unknown(t *testing.T) {
	if Message(nil) != "" {
		t.Error("Message(nil) should be empty")
	}
	if Message(errors.New("boom")) != "Something went wrong." {
		t.Errorf("Message() = %q", Message(errors.New("boom")))
	}
}
