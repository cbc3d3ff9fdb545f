package genai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // decoders for generated images
	_ "image/png"
	"net/http"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
	gemini "google.golang.org/genai"

	"github.com/gogpu/thumbkit"
)

// Defaults for Client.
const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultModel      = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image"
	DefaultTimeout    = 2 * time.Minute
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBaseURL points the client at another endpoint, such as a test
// server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithModel sets the text model used for vectors, prompts and
// descriptions.
func WithModel(m string) ClientOption {
	return func(c *Client) {
		c.model = m
	}
}

// WithImageModel sets the model used for raster generation.
func WithImageModel(m string) ClientOption {
	return func(c *Client) {
		c.imageModel = m
	}
}

// WithTimeout bounds each call. Zero or less disables the bound.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// Client implements Service with the Gemini API through the official
// Go SDK. It is safe for concurrent use.
type Client struct {
	key        string
	http       *http.Client
	baseURL    string
	model      string
	imageModel string
	timeout    time.Duration

	sdk    *gemini.Client
	sdkErr error
}

var _ Service = (*Client)(nil)

// NewClient creates a client authenticated with apiKey. An empty key is
// accepted; every call then fails with KindInvalidCredential without a
// request being sent.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		key:        apiKey,
		http:       &http.Client{},
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		imageModel: DefaultImageModel,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.key != "" {
		// The backend is fixed so that the GOOGLE_GENAI_USE_VERTEXAI
		// environment variable cannot redirect calls.
		c.sdk, c.sdkErr = gemini.NewClient(context.Background(), &gemini.ClientConfig{
			APIKey:      c.key,
			Backend:     gemini.BackendGeminiAPI,
			HTTPClient:  c.http,
			HTTPOptions: gemini.HTTPOptions{BaseURL: c.baseURL},
		})
	}
	return c
}

const vectorSystemPrompt = `You are an expert graphic designer and SVG artist.
Your task is to generate a high-quality, colorful, and professional YouTube Thumbnail using ONLY raw SVG code.

Rules:
1. Return ONLY the XML SVG code starting with <svg and ending with </svg>. Do NOT wrap in markdown blocks.
2. The SVG MUST have a viewBox="0 0 %[1]d %[2]d" and preserveAspectRatio="xMidYMid slice".
3. Use width="%[1]d" and height="%[2]d" in the svg tag.
4. Use rich gradients, shadows, and distinct vector shapes.
5. Do NOT use external images (<image href="...">) as they will not load. Draw everything with vectors (paths, rects, circles).
6. Style request: Professional, vibrant, high click-through rate.
7. Do NOT add any text outside of the SVG tags.`

// GenerateVector asks the text model for SVG markup.
func (c *Client) GenerateVector(ctx context.Context, prompt string, a AspectRatio) ([]byte, error) {
	const op = "generate vector"
	size := a.Dimensions()
	contents := gemini.Text(fmt.Sprintf(
		"Create a thumbnail visual description based on this idea: %s.\nRender the result directly as SVG code.", prompt))
	config := &gemini.GenerateContentConfig{
		SystemInstruction: gemini.NewContentFromText(fmt.Sprintf(vectorSystemPrompt, size.X, size.Y), gemini.RoleUser),
	}
	resp, err := c.generate(ctx, op, c.model, contents, config)
	if err != nil {
		return nil, err
	}
	markup, err := ExtractSVG(responseText(resp))
	if err != nil {
		return nil, &Error{Op: op, Kind: KindMalformedResponse, Err: err}
	}
	return markup, nil
}

// GenerateImage asks the image model for a raster image.
func (c *Client) GenerateImage(ctx context.Context, prompt string, a AspectRatio) (image.Image, error) {
	const op = "generate image"
	config := &gemini.GenerateContentConfig{
		ResponseModalities: []string{string(gemini.ModalityImage)},
		ImageConfig:        &gemini.ImageConfig{AspectRatio: string(a)},
	}
	resp, err := c.generate(ctx, op, c.imageModel, gemini.Text(prompt), config)
	if err != nil {
		return nil, err
	}
	data, ok := inlineData(resp)
	if !ok {
		return nil, &Error{Op: op, Kind: KindMalformedResponse, Err: ErrNoPayload}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Op: op, Kind: KindMalformedResponse, Err: err}
	}
	return img, nil
}

// EnhancePrompt asks the text model for a better prompt. Any failure,
// including an empty answer, returns prompt unchanged.
func (c *Client) EnhancePrompt(ctx context.Context, prompt string) string {
	contents := gemini.Text(fmt.Sprintf(
		"Melhore este prompt para criação de arte vetorial/SVG para thumbnail: %q. Retorne apenas o prompt melhorado em inglês.", prompt))
	resp, err := c.generate(ctx, "enhance prompt", c.model, contents, nil)
	if err != nil {
		thumbkit.Logger().Warn("genai: prompt enhancement failed", "err", err)
		return prompt
	}
	if s := strings.TrimSpace(responseText(resp)); s != "" {
		return s
	}
	return prompt
}

// DescribeImage asks the text model to describe an image. Every failure
// has KindAnalysisError.
func (c *Client) DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	const op = "describe image"
	contents := []*gemini.Content{gemini.NewContentFromParts([]*gemini.Part{
		gemini.NewPartFromBytes(data, mimeType),
		gemini.NewPartFromText("Descreva esta imagem visualmente para que eu possa recriá-la como uma arte vetorial SVG. Retorne apenas a descrição."),
	}, gemini.RoleUser)}
	resp, err := c.generate(ctx, op, c.model, contents, nil)
	if err != nil {
		return "", &Error{Op: op, Kind: KindAnalysisError, Err: err}
	}
	return strings.TrimSpace(responseText(resp)), nil
}

// generate performs one generateContent call and classifies failures.
func (c *Client) generate(ctx context.Context, op, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
	if c.key == "" {
		return nil, &Error{Op: op, Kind: KindInvalidCredential, Err: ErrNoCredential}
	}
	if c.sdkErr != nil {
		return nil, &Error{Op: op, Kind: KindServiceError, Err: c.sdkErr}
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	thumbkit.Logger().Info("genai: request", "op", op, "model", model)
	resp, err := c.sdk.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		var apiErr gemini.APIError
		if errors.As(err, &apiErr) {
			kind := classify(apiErr.Code, apiErr.Message)
			thumbkit.Logger().Warn("genai: request failed", "op", op, "status", apiErr.Code, "kind", kind)
			return nil, &Error{Op: op, Kind: kind, Err: err}
		}
		return nil, &Error{Op: op, Kind: classify(0, err.Error()), Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, &Error{Op: op, Kind: KindMalformedResponse, Err: errors.New("no candidates")}
	}
	thumbkit.Logger().Info("genai: response", "op", op, "elapsed", time.Since(start))
	return resp, nil
}

// responseText concatenates the text parts of the first candidate,
// leaving out thoughts.
func responseText(resp *gemini.GenerateContentResponse) string {
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && !p.Thought {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// inlineData returns the first inline payload of the first candidate.
func inlineData(resp *gemini.GenerateContentResponse) ([]byte, bool) {
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && p.InlineData != nil && len(p.InlineData.Data) > 0 {
			return p.InlineData.Data, true
		}
	}
	return nil, false
}
