// Package card holds the state of the weather search card: the current
// search, its result or error, the applied theme and the dark-mode flag.
package card

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/lox/weathercard/internal/metrics"
	"github.com/lox/weathercard/internal/prefs"
	"github.com/lox/weathercard/internal/provider"
	"github.com/lox/weathercard/internal/theme"
	"github.com/lox/weathercard/internal/weather"
)

// Status is the card's lookup state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// QuickPicks are the one-click city suggestions shown under the search box.
var QuickPicks = []string{"Chennai", "London", "New York"}

// errEmptyPayload marks a 2xx response with nothing to display.
var errEmptyPayload = &provider.TransportError{Err: errors.New("empty payload")}

// Snapshot is a point-in-time copy of the card for rendering.
type Snapshot struct {
	Status  Status
	City    string
	Weather *weather.ViewModel
	Error   string
	Theme   theme.Tag
	Dark    bool
	HasKey  bool
}

// Mode is the display mode for the snapshot.
func (s Snapshot) Mode() theme.Mode {
	return theme.ModeFor(s.Dark)
}

// Palette is the colour scheme for the snapshot's theme and mode.
func (s Snapshot) Palette() theme.Palette {
	return theme.PaletteFor(s.Theme, s.Mode())
}

// Loading reports whether a search is in flight.
func (s Snapshot) Loading() bool {
	return s.Status == StatusLoading
}

type keyChecker interface {
	HasKey() bool
}

// Widget is a single card instance. It is safe for concurrent use; when
// searches overlap, only the most recently started one publishes its result.
type Widget struct {
	fetcher provider.Fetcher
	kv      prefs.KV

	prefMu sync.Mutex // held across a mode change and its write

	mu    sync.Mutex
	seq   uint64
	state Snapshot
}

// New creates a card and reads the dark-mode preference once. A preference
// that cannot be read is logged and treated as light mode.
func New(ctx context.Context, fetcher provider.Fetcher, kv prefs.KV) *Widget {
	dark, err := prefs.LoadDark(ctx, kv)
	if err != nil {
		log.Printf("card: load dark mode preference: %v", err)
	}

	hasKey := true
	if kc, ok := fetcher.(keyChecker); ok {
		hasKey = kc.HasKey()
	}

	return &Widget{
		fetcher: fetcher,
		kv:      kv,
		state: Snapshot{
			Status: StatusIdle,
			Theme:  theme.Mist,
			Dark:   dark,
			HasKey: hasKey,
		},
	}
}

// Snapshot returns the current state.
func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Search looks up city and returns the resulting state. Validation failures
// leave any displayed result in place; lookups clear it while loading.
// Cancelling ctx does not abort the lookup.
func (w *Widget) Search(ctx context.Context, city string) Snapshot {
	city = strings.TrimSpace(city)

	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.state.City = city

	var invalid error
	switch {
	case city == "":
		invalid = provider.ErrEmptyQuery
	case !w.state.HasKey:
		invalid = provider.ErrMissingKey
	}
	if invalid != nil {
		w.state.Status = StatusError
		w.state.Error = provider.Message(invalid)
		snap := w.state
		w.mu.Unlock()
		metrics.SearchesTotal.WithLabelValues("invalid").Inc()
		return snap
	}

	w.state.Status = StatusLoading
	w.state.Error = ""
	w.state.Weather = nil
	w.mu.Unlock()

	// lookups settle even if the caller goes away
	raw, err := w.fetcher.Current(context.WithoutCancel(ctx), city)
	var vm weather.ViewModel
	if err == nil {
		vm = weather.Normalize(raw)
		if vm.Empty() {
			err = errEmptyPayload
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if seq != w.seq {
		metrics.SearchesTotal.WithLabelValues("superseded").Inc()
		return w.state
	}

	if err != nil {
		if !provider.IsValidation(err) {
			log.Printf("card: search %q: %v", city, err)
		}
		w.state.Status = StatusError
		w.state.Error = provider.Message(err)
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return w.state
	}

	w.state.Status = StatusSuccess
	w.state.Weather = &vm
	w.state.Theme = theme.Classify(vm.ThemeLabel())
	metrics.SearchesTotal.WithLabelValues("success").Inc()
	metrics.ThemesApplied.WithLabelValues(string(w.state.Theme)).Inc()
	return w.state
}

// SetDark changes the display mode and persists it. The in-memory mode
// changes even if persisting fails. Writes land in the order changes are made.
func (w *Widget) SetDark(ctx context.Context, dark bool) error {
	w.prefMu.Lock()
	defer w.prefMu.Unlock()

	w.mu.Lock()
	w.state.Dark = dark
	w.mu.Unlock()

	return prefs.SaveDark(context.WithoutCancel(ctx), w.kv, dark)
}

// ToggleDark flips the display mode and returns the new value.
func (w *Widget) ToggleDark(ctx context.Context) (bool, error) {
	w.prefMu.Lock()
	defer w.prefMu.Unlock()

	w.mu.Lock()
	w.state.Dark = !w.state.Dark
	dark := w.state.Dark
	w.mu.Unlock()

	return dark, prefs.SaveDark(context.WithoutCancel(ctx), w.kv, dark)
}
