package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"site-chatbot-be/internal/config"
	"site-chatbot-be/internal/constant"
	"site-chatbot-be/internal/pkg/logger"
)

const translateBaseURL = "https://translation.googleapis.com/language/translate/v2"

// GoogleTranslator implements Bridge over the Google Translate v2 REST API.
type GoogleTranslator struct {
	apiKey    string
	baseURL   string
	cfg       config.LanguageConfig
	supported map[string]bool
	client    *http.Client
	log       logger.ILogger
}

func NewGoogleTranslator(apiKey string, cfg config.LanguageConfig, log logger.ILogger) *GoogleTranslator {
	supported := make(map[string]bool, len(cfg.Supported))
	for _, code := range cfg.Supported {
		supported[code] = true
	}
	return &GoogleTranslator{
		apiKey:    apiKey,
		baseURL:   translateBaseURL,
		cfg:       cfg,
		supported: supported,
		client:    &http.Client{Timeout: cfg.TranslateTimeout},
		log:       log,
	}
}

// Detect returns the supported language code of text, falling back to the
// default code when the text is too short to classify reliably, the detected
// language is unsupported, or the API call fails.
func (t *GoogleTranslator) Detect(ctx context.Context, text string) string {
	normalized := Normalize(text)
	if len([]rune(normalized)) < t.cfg.DetectMinLength {
		return t.cfg.Default
	}

	code, err := t.callDetect(ctx, normalized)
	if err != nil {
		t.log.Warn("Translate", "Language detection failed, assuming default", map[string]interface{}{
			"error": err.Error(),
		})
		return t.cfg.Default
	}
	if !t.supported[code] {
		return t.cfg.Default
	}
	return code
}

// ToPivot detects the language of text and translates it into the pivot
// language. A failed translation keeps the original text and sets the tag.
func (t *GoogleTranslator) ToPivot(ctx context.Context, text string) PivotResult {
	normalized := Normalize(text)
	lang := t.Detect(ctx, normalized)
	if lang == t.cfg.Default {
		return PivotResult{Text: normalized, Lang: lang}
	}

	translated, err := t.callTranslate(ctx, normalized, lang, t.cfg.Default)
	if err != nil {
		t.log.Error("Translate", "Pivot translation failed", map[string]interface{}{
			"source_lang": lang,
			"error":       err.Error(),
		})
		return PivotResult{Text: normalized, Lang: lang, Failed: true}
	}
	return PivotResult{Text: translated, Lang: lang}
}

// FromPivot translates pivot-language text back into destLang. Failures
// degrade to a fixed apology so the visitor never sees raw pivot text
// presented as their own language.
func (t *GoogleTranslator) FromPivot(ctx context.Context, text, destLang string) string {
	if destLang == "" || destLang == t.cfg.Default {
		return text
	}

	translated, err := t.callTranslate(ctx, text, t.cfg.Default, destLang)
	if err != nil {
		t.log.Error("Translate", "Reverse translation failed", map[string]interface{}{
			"dest_lang": destLang,
			"error":     err.Error(),
		})
		return constant.LanguageFailMessage
	}
	return translated
}

type detectResponse struct {
	Data struct {
		Detections [][]struct {
			Language string `json:"language"`
		} `json:"detections"`
	} `json:"data"`
}

func (t *GoogleTranslator) callDetect(ctx context.Context, text string) (string, error) {
	payload := map[string]interface{}{"q": text}
	body, err := t.post(ctx, t.baseURL+"/detect", payload)
	if err != nil {
		return "", err
	}

	var parsed detectResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse detect response: %w", err)
	}
	if len(parsed.Data.Detections) == 0 || len(parsed.Data.Detections[0]) == 0 {
		return "", fmt.Errorf("detect response contained no detections")
	}
	return parsed.Data.Detections[0][0].Language, nil
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

func (t *GoogleTranslator) callTranslate(ctx context.Context, text, source, target string) (string, error) {
	payload := map[string]interface{}{
		"q":      text,
		"source": source,
		"target": target,
		"format": "text",
	}
	body, err := t.post(ctx, t.baseURL, payload)
	if err != nil {
		return "", err
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse translate response: %w", err)
	}
	if len(parsed.Data.Translations) == 0 {
		return "", fmt.Errorf("translate response contained no translations")
	}
	return parsed.Data.Translations[0].TranslatedText, nil
}

func (t *GoogleTranslator) post(ctx context.Context, endpoint string, payload map[string]interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := endpoint + "?key=" + url.QueryEscape(t.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translate API returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
