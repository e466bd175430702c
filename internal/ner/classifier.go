// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ner supplements pattern detection with an external named-entity
// model. It is an enhancement, never a required dependency: when the model
// is unreachable, misconfigured or slow, the detector contributes zero
// findings and the pattern-only pipeline proceeds.
package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Classifier scores a single token against one entity type. Implementations
// must respect the context deadline.
type Classifier interface {
	// ClassifyToken returns the model's confidence that token is an entity
	// of entityType. A returned error means "no answer", not "not an entity".
	ClassifyToken(ctx context.Context, token, entityType string) (float64, error)
}

// HTTPClassifier calls an external inference endpoint. The request body and
// response are minimal JSON: {"text","entity"} in, {"score"} out.
type HTTPClassifier struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClassifier creates a classifier for the given endpoint with a
// bounded per-call timeout.
func NewHTTPClassifier(endpoint string, timeout time.Duration) *HTTPClassifier {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HTTPClassifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type classifyRequest struct {
	Text   string `json:"text"`
	Entity string `json:"entity"`
}

type classifyResponse struct {
	Score float64 `json:"score"`
}

// ClassifyToken implements Classifier.
func (c *HTTPClassifier) ClassifyToken(ctx context.Context, token, entityType string) (float64, error) {
	if c.endpoint == "" {
		return 0, fmt.Errorf("ner endpoint not configured")
	}

	body, err := json.Marshal(classifyRequest{Text: token, Entity: entityType})
	if err != nil {
		return 0, fmt.Errorf("failed to encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("classify call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("classify call returned status %d", resp.StatusCode)
	}

	var result classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode classify response: %w", err)
	}

	return result.Score, nil
}
