package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ytget/ai-image-generator/internal/model"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("jpeg.Encode failed: %v", err)
	}
	return buf.Bytes()
}

func newTestClient(url string) *Client {
	cfg := DefaultClientConfig()
	cfg.BaseURL = url
	cfg.Timeout = 5 * time.Second
	return NewClient(cfg)
}

func TestClientGenerate_SendsRequest(t *testing.T) {
	body := pngBytes(t, 16, 8)

	var (
		gotMethod  string
		gotPath    string
		gotHeaders http.Header
		gotPayload generateRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		gotHeaders = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotPayload)

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer server.Close()

	client := newTestClient(server.URL + "/prompt")
	img, err := client.Generate(context.Background(), "a red fox/at dawn")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotPath != "/prompt/a%20red%20fox%2Fat%20dawn" {
		t.Errorf("Unexpected request path %q", gotPath)
	}
	if ct := gotHeaders.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	if accept := gotHeaders.Get("Accept"); accept != "image/*" {
		t.Errorf("Expected Accept image/*, got %q", accept)
	}

	expected := generateRequest{Prompt: "a red fox/at dawn", Model: "flux", Enhance: true, NoLogo: true}
	if gotPayload != expected {
		t.Errorf("Payload = %+v, expected %+v", gotPayload, expected)
	}

	if img.Kind != model.ImageKindPNG {
		t.Errorf("Expected PNG, got %s", img.Kind)
	}
	if w, h := img.Size(); w != 16 || h != 8 {
		t.Errorf("Expected 16x8, got %dx%d", w, h)
	}
	if !bytes.Equal(img.Data, body) {
		t.Error("Expected raw bytes to be kept")
	}
	if img.Decoded == nil {
		t.Error("Expected decoded image")
	}
}

func TestClientGenerate_ContentTypes(t *testing.T) {
	pngData := pngBytes(t, 4, 4)
	jpegData := jpegBytes(t, 4, 4)

	tests := []struct {
		name        string
		contentType string
		body        []byte
		expectKind  model.ImageKind
		expectErr   model.ErrorKind
	}{
		{"missing header means png", "", pngData, model.ImageKindPNG, model.KindUnknown},
		{"jpeg", "image/jpeg", jpegData, model.ImageKindJPEG, model.KindUnknown},
		{"jpg alias", "image/jpg; charset=binary", jpegData, model.ImageKindJPEG, model.KindUnknown},
		{"octet stream is sniffed", "application/octet-stream", jpegData, model.ImageKindJPEG, model.KindUnknown},
		{"wildcard is sniffed", "image/*", pngData, model.ImageKindPNG, model.KindUnknown},
		{"html is rejected", "text/html", []byte("<html></html>"), "", model.KindDecode},
		{"declared png with garbage", "image/png", []byte("definitely not a png"), "", model.KindDecode},
		{"declared jpeg with png body", "image/jpeg", pngData, "", model.KindDecode},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if test.contentType == "" {
					// Suppress Go's automatic sniffing of the Content-Type header
					w.Header()["Content-Type"] = nil
				} else {
					w.Header().Set("Content-Type", test.contentType)
				}
				_, _ = w.Write(test.body)
			}))
			defer server.Close()

			img, err := newTestClient(server.URL).Generate(context.Background(), "test")
			if test.expectErr != model.KindUnknown {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if kind := model.KindOf(err); kind != test.expectErr {
					t.Errorf("Expected %s error, got %s (%v)", test.expectErr, kind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if img.Kind != test.expectKind {
				t.Errorf("Expected %s, got %s", test.expectKind, img.Kind)
			}
		})
	}
}

func TestClientGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Generate(context.Background(), "test")
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
	if model.KindOf(err) != model.KindNetwork {
		t.Errorf("Expected network error, got %v", err)
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("Expected status and body excerpt in error, got %q", err.Error())
	}
}

func TestClientGenerate_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url).Generate(context.Background(), "test")
	if model.KindOf(err) != model.KindNetwork {
		t.Errorf("Expected network error, got %v", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{})

	if client.baseURL != DefaultBaseURL {
		t.Errorf("Expected base URL %s, got %s", DefaultBaseURL, client.baseURL)
	}
	if client.model != DefaultModel {
		t.Errorf("Expected model %s, got %s", DefaultModel, client.model)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("Expected timeout %v, got %v", DefaultTimeout, client.httpClient.Timeout)
	}
}

func TestInferImageKind(t *testing.T) {
	if kind, err := InferImageKind("IMAGE/BMP", nil); err != nil || kind != model.ImageKindBMP {
		t.Errorf("Expected bmp, got %s (%v)", kind, err)
	}
	if kind, err := InferImageKind("binary/octet-stream", []byte("???")); err != nil || kind != model.ImageKindPNG {
		t.Errorf("Expected png fallback, got %s (%v)", kind, err)
	}
	if _, err := InferImageKind("image/gif", nil); model.KindOf(err) != model.KindDecode {
		t.Errorf("Expected decode error for gif, got %v", err)
	}
}
