package geolocation

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

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/generated/servers"
)

const defaultSinkTimeout = 10 * time.Second

// HTTPSink writes positions to the API with PUT /api/v1/agents/{id}/position.
type HTTPSink struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPSink returns a sink for the API at baseURL that authenticates with a bearer token.
// A nil client means a client with a 10 second timeout.
func NewHTTPSink(baseURL, token string, client *http.Client) *HTTPSink {
	if client == nil {
		client = &http.Client{Timeout: defaultSinkTimeout}
	}
	return &HTTPSink{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

func (s *HTTPSink) Put(ctx context.Context, position agent.Position) error {
	recordedAt := position.RecordedAt
	body, err := json.Marshal(servers.PositionUpdate{
		Lat:        position.Point.Lat(),
		Lng:        position.Point.Lng(),
		RecordedAt: &recordedAt,
	})
	if err != nil {
		return fmt.Errorf("encode position: %w", err)
	}

	endpoint := s.baseURL + "/api/v1/agents/" + url.PathEscape(position.AgentID.String()) + "/position"
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build position request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send position: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr servers.Error
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("position rejected: %d %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("position rejected: %d", resp.StatusCode)
	}
	return nil
}
