package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/vesto-learn/vesto-api/config"
	"google.golang.org/api/option"
)

// ErrMalformedResponse means the model returned text that does not parse as
// JSON even after code-fence stripping.
var ErrMalformedResponse = errors.New("malformed structured response")

// ErrEmptyResponse means the model returned no usable text content.
var ErrEmptyResponse = errors.New("model returned no text content")

// GenerativeClient wraps the external text/JSON completion service. Every
// call is a fresh round-trip: no retry, no caching, no request coalescing.
type GenerativeClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateStructured requests JSON output and decodes it into out.
	GenerateStructured(ctx context.Context, prompt string, out any) error
}

type geminiClient struct {
	client        *genai.Client
	primaryModel  string
	fallbackModel string
	timeout       time.Duration
}

// NewGeminiClient builds the Gemini-backed client. A missing API key is a
// startup failure, not a degraded mode.
func NewGeminiClient(cfg *config.Config) (GenerativeClient, error) {
	if cfg.Gemini.ApiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	timeout := time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &geminiClient{
		client:        client,
		primaryModel:  cfg.Gemini.Model,
		fallbackModel: cfg.Gemini.FallbackModel,
		timeout:       timeout,
	}, nil
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, false)
}

func (c *geminiClient) GenerateStructured(ctx context.Context, prompt string, out any) error {
	raw, err := c.generate(ctx, prompt, true)
	if err != nil {
		return err
	}
	return decodeStructured(raw, out)
}

// generate runs one completion against the primary model, falling through to
// the configured fallback model once if the primary call fails (model
// identifiers get deprecated out from under deployments).
func (c *geminiClient) generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.callModel(ctx, c.primaryModel, prompt, jsonOutput)
	if err == nil {
		return text, nil
	}
	if c.fallbackModel == "" || c.fallbackModel == c.primaryModel {
		return "", err
	}

	log.Warn().Err(err).
		Str("model", c.primaryModel).
		Str("fallback_model", c.fallbackModel).
		Msg("Primary model failed, retrying with fallback model")
	return c.callModel(ctx, c.fallbackModel, prompt, jsonOutput)
}

func (c *geminiClient) callModel(ctx context.Context, modelName, prompt string, jsonOutput bool) (string, error) {
	model := c.client.GenerativeModel(modelName)
	if jsonOutput {
		model.GenerationConfig.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("model", modelName).Int("prompt_len", len(prompt)).Msg("Gemini API call failed")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}

// decodeStructured strips a surrounding fenced code block, if present, and
// unmarshals the remainder into out.
func decodeStructured(raw string, out any) error {
	clean := stripCodeFence(raw)
	if err := json.Unmarshal([]byte(clean), out); err != nil {
		snippet := clean
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return fmt.Errorf("%w: %v (raw: %s)", ErrMalformedResponse, err, snippet)
	}
	return nil
}

// stripCodeFence removes a leading ``` marker (with optional language tag)
// and a trailing ``` marker. Unfenced input passes through untouched.
func stripCodeFence(s string) string {
	clean := strings.TrimSpace(s)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	clean = strings.TrimPrefix(clean, "```")
	// drop the language tag on the opening fence line, e.g. ```json
	if idx := strings.Index(clean, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(clean[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{[") {
			clean = clean[idx+1:]
		}
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
