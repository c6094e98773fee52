package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// HTTPClassifierImpl implements domain.Classifier against the model server.
// The server accepts raw image bytes and answers with the predicted class
// label and a confidence in [0,1].
type HTTPClassifierImpl struct {
	url    string
	client *http.Client
}

type predictResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// NewHTTPClassifier creates a classifier client for the given endpoint
func NewHTTPClassifier(url string, timeout time.Duration) domain.Classifier {
	return &HTTPClassifierImpl{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Classify implements domain.Classifier
func (c *HTTPClassifierImpl) Classify(ctx context.Context, image []byte) (*domain.Prediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var pred predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	return &domain.Prediction{Label: pred.Label, Confidence: pred.Confidence}, nil
}
