package services

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/startovate/server/internal/config"
)

var (
	// ErrUnrecognized means the backend parsed the audio but found no words.
	ErrUnrecognized = errors.New("could not understand audio")
	// ErrServiceUnavailable means the recognition backend could not be reached
	// or refused the request.
	ErrServiceUnavailable = errors.New("speech recognition service unavailable")
)

const defaultRecognizeEndpoint = "http://www.google.com/speech-api/v2/recognize"

// Recognizer transcribes one uploaded utterance through the Google speech
// recognition HTTP API (the same backend the original form used).
type Recognizer struct {
	client   *http.Client
	endpoint string
	apiKey   string
	language string
}

func NewRecognizer(cfg config.SpeechConfig) *Recognizer {
	return &Recognizer{
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: defaultRecognizeEndpoint,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
	}
}

// Recognize sends the audio body upstream and returns the best transcript.
// contentType describes the audio encoding; empty defaults to 16 kHz FLAC.
func (r *Recognizer) Recognize(ctx context.Context, audio io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = "audio/x-flac; rate=16000"
	}

	query := url.Values{}
	query.Set("client", "chromium")
	query.Set("lang", r.language)
	query.Set("key", r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+"?"+query.Encode(), audio)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	// The backend streams one JSON document per line; the first lines may
	// carry empty result sets before the final transcript arrives.
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var body struct {
			Result []struct {
				Alternative []struct {
					Transcript string `json:"transcript"`
				} `json:"alternative"`
			} `json:"result"`
		}
		if err := json.Unmarshal(line, &body); err != nil {
			continue
		}
		for _, result := range body.Result {
			if len(result.Alternative) > 0 && result.Alternative[0].Transcript != "" {
				return result.Alternative[0].Transcript, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return "", ErrUnrecognized
}
