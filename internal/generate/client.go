package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ai-image-generator/internal/imaging"
	"github.com/ytget/ai-image-generator/internal/model"
)

// Endpoint defaults
const (
	DefaultBaseURL = "https://image.pollinations.ai/prompt/"
	DefaultModel   = "flux"
	DefaultTimeout = 30 * time.Second

	// MaxImageBytes bounds the response body read into memory
	MaxImageBytes = 32 << 20

	errorExcerptLen = 200
)

// ClientConfig configures the endpoint client. Zero values use the defaults,
// except Enhance and NoLogo which are taken as given.
type ClientConfig struct {
	BaseURL string
	Model   string
	Enhance bool
	NoLogo  bool
	Timeout time.Duration
}

// DefaultClientConfig returns the configuration used when nothing is overridden
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
		Enhance: true,
		NoLogo:  true,
		Timeout: DefaultTimeout,
	}
}

// Client talks to the text-to-image endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	enhance    bool
	noLogo     bool
}

type generateRequest struct {
	Prompt  string `json:"prompt"`
	Model   string `json:"model"`
	Enhance bool   `json:"enhance"`
	NoLogo  bool   `json:"nologo"`
}

// NewClient creates a new endpoint client
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		enhance: cfg.Enhance,
		noLogo:  cfg.NoLogo,
	}
}

// Generate requests one image for prompt and returns it decoded and validated.
// Transport and status failures are network errors; an unusable body is a
// decode error.
func (c *Client) Generate(ctx context.Context, prompt string) (*model.GeneratedImage, error) {
	payload, err := json.Marshal(generateRequest{
		Prompt:  prompt,
		Model:   c.model,
		Enhance: c.enhance,
		NoLogo:  c.noLogo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := c.baseURL + url.PathEscape(prompt)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, model.NewError(model.KindNetwork, "failed to create request", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "image/*")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, model.NewError(model.KindNetwork, "failed to send request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, errorExcerptLen))
		return nil, model.Errorf(model.KindNetwork, "unexpected status code: %d, body: %s",
			resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, model.NewError(model.KindNetwork, "failed to read response", err)
	}
	if len(data) > MaxImageBytes {
		return nil, model.Errorf(model.KindDecode, "invalid image data: response larger than %d bytes", MaxImageBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	kind, err := InferImageKind(contentType, data)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(data, kind)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	return &model.GeneratedImage{
		Data:        data,
		Kind:        kind,
		ContentType: contentType,
		Width:       b.Dx(),
		Height:      b.Dy(),
		Decoded:     img,
	}, nil
}

// InferImageKind picks the decoder for a response. A missing Content-Type
// means PNG. Generic types are resolved by sniffing the body, falling back to
// PNG. Any other non-image type is rejected.
func InferImageKind(contentType string, data []byte) (model.ImageKind, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if ct == "" {
		return model.DefaultImageKind, nil
	}

	if kind, ok := kindFromMediaType(ct); ok {
		return kind, nil
	}

	if isAmbiguousMediaType(ct) {
		if kind, ok := kindFromMediaType(http.DetectContentType(data)); ok {
			return kind, nil
		}
		return model.DefaultImageKind, nil
	}

	return "", model.Errorf(model.KindDecode, "unsupported image format: %s", contentType)
}

func kindFromMediaType(ct string) (model.ImageKind, bool) {
	switch {
	case strings.Contains(ct, "png"):
		return model.ImageKindPNG, true
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "jpg"):
		return model.ImageKindJPEG, true
	case strings.Contains(ct, "bmp"):
		return model.ImageKindBMP, true
	}
	return "", false
}

func isAmbiguousMediaType(ct string) bool {
	mediaType := ct
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	switch mediaType {
	case "image/*", "application/octet-stream", "binary/octet-stream":
		return true
	}
	return false
}
