package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/lox/weathercard/internal/metrics"
	"github.com/lox/weathercard/internal/theme"
)

// Generator renders theme banners with OpenAI's image API.
type Generator struct {
	client  openai.Client
	model   string
	maxWait time.Duration
}

// NewGenerator creates a banner generator. Extra options are passed to the
// OpenAI client (e.g. a base URL in tests).
func NewGenerator(apiKey string, opts ...option.RequestOption) (*Generator, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}

	client := openai.NewClient(append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)...)

	return &Generator{
		client:  client,
		model:   "gpt-image-1",
		maxWait: 2 * time.Minute,
	}, nil
}

// Generate returns PNG bytes for the banner of tag in mode. Rate limits and
// server errors are retried with exponential backoff.
func (g *Generator) Generate(ctx context.Context, tag theme.Tag, mode theme.Mode) ([]byte, error) {
	prompt := BuildPrompt(tag, mode)
	log.Printf("generating banner for: %s/%s", tag, mode)

	var b64 string
	operation := func() error {
		resp, err := g.client.Images.Generate(ctx, openai.ImageGenerateParams{
			Model:        g.model,
			Prompt:       prompt,
			Size:         openai.ImageGenerateParamsSize1536x1024,
			Quality:      openai.ImageGenerateParamsQualityLow,
			OutputFormat: openai.ImageGenerateParamsOutputFormatPNG,
		})
		if err != nil {
			var apiErr *openai.Error
			if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500) {
				return fmt.Errorf("image generation: %w", err)
			}
			return backoff.Permanent(fmt.Errorf("image generation: %w", err))
		}
		if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
			return backoff.Permanent(errors.New("no image data returned"))
		}
		b64 = resp.Data[0].B64JSON
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = g.maxWait
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		metrics.BannersGenerated.WithLabelValues(string(tag), "error").Inc()
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		metrics.BannersGenerated.WithLabelValues(string(tag), "error").Inc()
		return nil, fmt.Errorf("decode image data: %w", err)
	}

	metrics.BannersGenerated.WithLabelValues(string(tag), "ok").Inc()
	log.Printf("generated banner for: %s/%s (%d bytes)", tag, mode, len(data))
	return data, nil
}
