package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/openai/openai-go/v3/option"

	"github.com/lox/weathercard/internal/theme"
)

func TestCache(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "banners"))

	if _, ok := c.Get(theme.Rain, theme.Dark); ok {
		t.Fatal("expected miss on empty cache")
	}
	if err := c.Set(theme.Rain, theme.Dark, []byte("png")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok := c.Get(theme.Rain, theme.Dark)
	if !ok || string(data) != "png" {
		t.Errorf("Get = %q, %v", data, ok)
	}
	if _, ok := c.Get(theme.Rain, theme.Light); ok {
		t.Error("light banner should be a separate entry")
	}

	keys := c.List()
	if len(keys) != 1 || keys[0] != "rain_dark" {
		t.Errorf("List() = %v, want [rain_dark]", keys)
	}
}

func TestCache_Stale(t *testing.T) {
	c := NewCache(t.TempDir())
	if err := c.Set(theme.Snow, theme.Light, []byte("old")); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-8 * 24 * time.Hour)
	if err := os.Chtimes(c.path(theme.Snow, theme.Light), old, old); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(theme.Snow, theme.Light); ok {
		t.Error("expected stale banner to miss")
	}
}

func TestBuildPrompt(t *testing.T) {
	for _, tag := range theme.Tags() {
		prompt := BuildPrompt(tag, theme.Light)
		if len(prompt) < 100 {
			t.Errorf("BuildPrompt(%s) unexpectedly short", tag)
		}
	}
	if !strings.Contains(BuildPrompt(theme.Thunder, theme.Dark), "Night-time") {
		t.Error("dark prompt should mention night")
	}
	if BuildPrompt(theme.Tag("hail"), theme.Light) != BuildPrompt(theme.Mist, theme.Light) {
		t.Error("unknown tag should fall back to mist prompt")
	}
}

func TestRenderShareCard(t *testing.T) {
	data, err := RenderShareCard(ShareData{
		Location:    "Chennai, IN",
		Temperature: "28",
		Description: "light rain",
		Palette:     theme.PaletteFor(theme.Rain, theme.Dark),
	})
	if err != nil {
		t.Fatalf("RenderShareCard: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != CardWidth || b.Dy() != CardHeight {
		t.Errorf("size = %dx%d", b.Dx(), b.Dy())
	}
}

func TestParseHex(t *testing.T) {
	c := parseHex("#0d1620")
	if c.R != 0x0d || c.G != 0x16 || c.B != 0x20 || c.A != 255 {
		t.Errorf("parseHex = %+v", c)
	}
	if g := parseHex("nope"); g.R != 128 {
		t.Errorf("invalid hex = %+v, want grey", g)
	}
}

func TestGenerator_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	b64 := base64.StdEncoding.EncodeToString([]byte("fake-png"))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/images/generations") {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"message":"busy","type":"server_error"}}`))
			return
		}
		w.Write([]byte(`{"created":1,"data":[{"b64_json":"` + b64 + `"}]}`))
	}))
	defer srv.Close()

	g, err := NewGenerator("test-key", option.WithBaseURL(srv.URL+"/"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := g.Generate(context.Background(), theme.Rain, theme.Light)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(data) != "fake-png" {
		t.Errorf("data = %q", data)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestGenerator_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"bad prompt","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	g, err := NewGenerator("test-key", option.WithBaseURL(srv.URL+"/"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate(context.Background(), theme.Sunny, theme.Dark); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestNewGenerator_RequiresKey(t *testing.T) {
	if _, err := NewGenerator(""); err == nil {
		t.Error("expected error without api key")
	}
}
