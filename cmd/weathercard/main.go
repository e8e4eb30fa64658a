package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/lox/weathercard/internal/api"
	"github.com/lox/weathercard/internal/card"
	"github.com/lox/weathercard/internal/imagegen"
	"github.com/lox/weathercard/internal/prefs"
	"github.com/lox/weathercard/internal/provider"
	"github.com/lox/weathercard/internal/store"
)

type CLI struct {
	EnvFile kongdotenv.ENVFileConfig `kong:"optional,name=env-file,default='.env',help='Path to .env file.'"`

	APIKey  string `name:"api-key" env:"OPENWEATHER_API_KEY" help:"OpenWeatherMap API key."`
	BaseURL string `name:"base-url" env:"OPENWEATHER_BASE_URL" default:"${default_base_url}" help:"OpenWeatherMap API base URL."`
	DB      string `name:"db" env:"WEATHERCARD_DB" default:"data/weathercard.db" help:"Path to SQLite preferences database."`

	Serve  ServeCmd  `cmd:"" default:"1" help:"Serve the weather card over HTTP."`
	Lookup LookupCmd `cmd:"" help:"Look up a city and print the card."`
	Dark   DarkCmd   `cmd:"" help:"Show or set the dark mode preference."`
}

type ServeCmd struct {
	Port      string `default:"8080" env:"PORT" help:"HTTP server port."`
	Images    string `default:"data/images" help:"Directory for cached theme banners."`
	OpenAIKey string `name:"openai-key" env:"OPENAI_API_KEY" help:"OpenAI API key for theme banners (optional)."`
}

func (c *ServeCmd) Run(cli *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kv, closeDB, err := openPrefs(cli.DB)
	if err != nil {
		return err
	}
	defer closeDB()

	client := provider.NewClient(cli.BaseURL, cli.APIKey)
	if !client.HasKey() {
		log.Println("OPENWEATHER_API_KEY not set; searches will fail until it is configured")
	}
	widget := card.New(ctx, client, kv)

	var banners api.BannerGenerator
	if gen, err := imagegen.NewGenerator(c.OpenAIKey); err != nil {
		log.Printf("banner generation disabled: %v", err)
	} else {
		banners = gen
	}

	server := api.NewServer(widget, c.Port, imagegen.NewCache(c.Images), banners)
	server.SetSchema(kv)
	log.Printf("starting server on :%s", c.Port)
	return server.Run(ctx)
}

type LookupCmd struct {
	City string `arg:"" help:"City to look up, e.g. Chennai."`
}

func (c *LookupCmd) Run(cli *CLI) error {
	kv, closeDB, err := openPrefs(cli.DB)
	if err != nil {
		return err
	}
	defer closeDB()

	widget := card.New(context.Background(), provider.NewClient(cli.BaseURL, cli.APIKey), kv)
	snap := widget.Search(context.Background(), c.City)
	return printCard(os.Stdout, snap)
}

type DarkCmd struct {
	Value string `arg:"" optional:"" enum:"on,off,status" default:"status" help:"on, off or status."`
}

func (c *DarkCmd) Run(cli *CLI) error {
	ctx := context.Background()
	kv, closeDB, err := openPrefs(cli.DB)
	if err != nil {
		return err
	}
	defer closeDB()

	switch c.Value {
	case "on", "off":
		if err := prefs.SaveDark(ctx, kv, c.Value == "on"); err != nil {
			return err
		}
	}

	dark, err := prefs.LoadDark(ctx, kv)
	if err != nil {
		return err
	}
	if dark {
		fmt.Println("dark")
	} else {
		fmt.Println("light")
	}
	return nil
}

// openPrefs opens the SQLite preference store, creating its directory.
func openPrefs(path string) (*store.Store, func(), error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	st, db, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return st, func() { db.Close() }, nil
}

// printCard writes a plain-text rendering of the card. A failed lookup is
// returned as an error so the command exits non-zero.
func printCard(w io.Writer, snap card.Snapshot) error {
	if snap.Status == card.StatusError {
		return fmt.Errorf("%s", snap.Error)
	}
	vm := snap.Weather
	if vm == nil {
		return fmt.Errorf("no weather for %q", snap.City)
	}

	fmt.Fprintln(w, vm.Location())
	fmt.Fprintf(w, "%s°C (feels like %s°C)\n", vm.Temp(), vm.FeelsLike())
	fmt.Fprintln(w, vm.Desc())
	fmt.Fprintf(w, "Humidity %s  Wind %s  Condition %s\n", vm.Humidity(), vm.Wind(), vm.Condition())
	fmt.Fprintf(w, "Theme %s (%s)\n", snap.Theme, snap.Mode())
	if icon := vm.IconURL(); icon != "" {
		fmt.Fprintf(w, "Icon %s\n", icon)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("weathercard"),
		kong.Description("City weather search card."),
		kong.UsageOnError(),
		kong.Vars{"default_base_url": provider.DefaultBaseURL},
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}
