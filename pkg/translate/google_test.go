package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"site-chatbot-be/internal/config"
	"site-chatbot-be/internal/constant"
	"site-chatbot-be/internal/pkg/logger"
)

func testLanguageConfig() config.LanguageConfig {
	return config.LanguageConfig{
		Default:          "en",
		Supported:        []string{"en", "hi", "mr", "kn", "bn", "gu"},
		DetectMinLength:  5,
		TranslateTimeout: 2 * time.Second,
	}
}

// fakeTranslateServer answers /detect with detectLang and the translate
// endpoint with translatedText, recording every request path it sees.
func fakeTranslateServer(t *testing.T, detectLang, translatedText string, calls *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls = append(*calls, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/detect") {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{
					"detections": [][]map[string]interface{}{
						{{"language": detectLang}},
					},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"translations": []map[string]interface{}{
					{"translatedText": translatedText},
				},
			},
		})
	}))
}

func newTestTranslator(serverURL string) *GoogleTranslator {
	tr := NewGoogleTranslator("test-key", testLanguageConfig(), logger.NewNopLogger())
	tr.baseURL = serverURL
	return tr
}

func TestDetect(t *testing.T) {
	t.Run("should skip detection for short text", func(t *testing.T) {
		var calls []string
		server := fakeTranslateServer(t, "hi", "", &calls)
		defer server.Close()

		tr := newTestTranslator(server.URL)
		lang := tr.Detect(context.Background(), "hey")

		assert.Equal(t, "en", lang)
		assert.Empty(t, calls, "short text must not reach the API")
	})

	t.Run("should return supported detected language", func(t *testing.T) {
		var calls []string
		server := fakeTranslateServer(t, "hi", "", &calls)
		defer server.Close()

		tr := newTestTranslator(server.URL)
		lang := tr.Detect(context.Background(), "नमस्ते, आप कैसे हैं?")

		assert.Equal(t, "hi", lang)
	})

	t.Run("should fall back to default for unsupported language", func(t *testing.T) {
		var calls []string
		server := fakeTranslateServer(t, "fr", "", &calls)
		defer server.Close()

		tr := newTestTranslator(server.URL)
		lang := tr.Detect(context.Background(), "bonjour tout le monde")

		assert.Equal(t, "en", lang)
	})

	t.Run("should fall back to default when the API is unreachable", func(t *testing.T) {
		tr := newTestTranslator("http://127.0.0.1:1")
		lang := tr.Detect(context.Background(), "some longer text here")

		assert.Equal(t, "en", lang)
	})
}

func TestToPivot(t *testing.T) {
	t.Run("should pass default-language text through untranslated", func(t *testing.T) {
		var calls []string
		server := fakeTranslateServer(t, "en", "should not be used", &calls)
		defer server.Close()

		tr := newTestTranslator(server.URL)
		result := tr.ToPivot(context.Background(), "what services do you offer?")

		assert.False(t, result.Failed)
		assert.Equal(t, "en", result.Lang)
		assert.Equal(t, "what services do you offer?", result.Text)
	})

	t.Run("should translate supported language into pivot", func(t *testing.T) {
		var calls []string
		server := fakeTranslateServer(t, "hi", "what services do you offer?", &calls)
		defer server.Close()

		tr := newTestTranslator(server.URL)
		result := tr.ToPivot(context.Background(), "आप कौन सी सेवाएँ देते हैं?")

		assert.False(t, result.Failed)
		assert.Equal(t, "hi", result.Lang)
		assert.Equal(t, "what services do you offer?", result.Text)
		assert.Equal(t, "hi", result.Sentinel())
	})

	t.Run("should tag failure and keep original text when translation fails", func(t *testing.T) {
		var calls []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, r.URL.Path)
			if strings.HasSuffix(r.URL.Path, "/detect") {
				json.NewEncoder(w).Encode(map[string]interface{}{
					"data": map[string]interface{}{
						"detections": [][]map[string]interface{}{{{"language": "hi"}}},
					},
				})
				return
			}
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		tr := newTestTranslator(server.URL)
		result := tr.ToPivot(context.Background(), "आप कौन सी सेवाएँ देते हैं?")

		assert.True(t, result.Failed)
		assert.Equal(t, "hi", result.Lang)
		assert.Equal(t, "ERROR-hi", result.Sentinel())
		assert.Equal(t, "आप कौन सी सेवाएँ देते हैं?", result.Text)
	})
}

func TestFromPivot(t *testing.T) {
	t.Run("should return text unchanged for default language", func(t *testing.T) {
		var calls []string
		server := fakeTranslateServer(t, "en", "should not be used", &calls)
		defer server.Close()

		tr := newTestTranslator(server.URL)
		out := tr.FromPivot(context.Background(), "Hello there!", "en")

		assert.Equal(t, "Hello there!", out)
		assert.Empty(t, calls)
	})

	t.Run("should translate into destination language", func(t *testing.T) {
		var calls []string
		server := fakeTranslateServer(t, "en", "नमस्ते!", &calls)
		defer server.Close()

		tr := newTestTranslator(server.URL)
		out := tr.FromPivot(context.Background(), "Hello there!", "hi")

		assert.Equal(t, "नमस्ते!", out)
	})

	t.Run("should degrade to the language failure message on error", func(t *testing.T) {
		tr := newTestTranslator("http://127.0.0.1:1")
		out := tr.FromPivot(context.Background(), "Hello there!", "hi")

		assert.Equal(t, constant.LanguageFailMessage, out)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("should compose decomposed characters and trim spaces", func(t *testing.T) {
		decomposed := "  café  "
		assert.Equal(t, "café", Normalize(decomposed))
	})
}
