package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/lox/weathercard/internal/theme"
)

var (
	fontLarge   font.Face
	fontRegular font.Face
	fontOnce    sync.Once
	fontErr     error
)

func loadFonts() {
	fontOnce.Do(func() {
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse goregular: %w", err)
			return
		}
		fontRegular, err = opentype.NewFace(regular, &opentype.FaceOptions{
			Size:    36,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fontErr = fmt.Errorf("create regular face: %w", err)
			return
		}

		medium, err := opentype.Parse(gomedium.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse gomedium: %w", err)
			return
		}
		fontLarge, err = opentype.NewFace(medium, &opentype.FaceOptions{
			Size:    120,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fontErr = fmt.Errorf("create large face: %w", err)
		}
	})
}

// Share card dimensions match the Open Graph image size.
const (
	CardWidth  = 1200
	CardHeight = 630
)

// ShareData is the text drawn on a share card.
type ShareData struct {
	Location    string // "Chennai, IN"
	Temperature string // rounded, without unit; "—" when absent
	Description string
	Palette     theme.Palette
}

// RenderShareCard draws a PNG summary of a search result on the theme's
// palette.
func RenderShareCard(data ShareData) ([]byte, error) {
	loadFonts()
	if fontErr != nil {
		return nil, fmt.Errorf("load fonts: %w", fontErr)
	}

	bg := parseHex(data.Palette.Background)
	card := parseHex(data.Palette.Card)
	img := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))

	// vertical blend from background to card colour
	for y := 0; y < CardHeight; y++ {
		p := float64(y) / float64(CardHeight)
		c := color.RGBA{
			R: blend(bg.R, card.R, p),
			G: blend(bg.G, card.G, p),
			B: blend(bg.B, card.B, p),
			A: 255,
		}
		for x := 0; x < CardWidth; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	text := parseHex(data.Palette.Text)
	muted := parseHex(data.Palette.TextMuted)
	accent := parseHex(data.Palette.Accent)

	drawText(img, data.Temperature+"°C", 60, CardHeight-220, accent, fontLarge)
	if data.Description != "" {
		drawText(img, data.Description, 60, CardHeight-130, text, fontRegular)
	}
	drawText(img, data.Location, 60, 90, text, fontRegular)
	drawText(img, "weathercard", 60, CardHeight-40, muted, fontRegular)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode share card: %w", err)
	}
	return buf.Bytes(), nil
}

func drawText(img *image.RGBA, text string, x, y int, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func blend(a, b uint8, p float64) uint8 {
	return uint8(float64(a)*(1-p) + float64(b)*p)
}

// parseHex converts "#rrggbb" to a colour; anything else is mid grey.
func parseHex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{128, 128, 128, 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{128, 128, 128, 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
