package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/clonelens/clonelens/internal/models"
	"github.com/rs/zerolog/log"
)

// EtherscanClient fetches verified contract ABIs from an
// Etherscan-compatible explorer API.
type EtherscanClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewEtherscanClient creates a new explorer API client.
func NewEtherscanClient(baseURL, apiKey string) *EtherscanClient {
	return &EtherscanClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchABI retrieves the ABI document for a verified contract. The returned
// bytes are the explorer's full response body, which is one of the accepted
// loader shapes ({"result": "<json string>"}).
func (c *EtherscanClient) FetchABI(ctx context.Context, address string) ([]byte, error) {
	u := fmt.Sprintf("%s?module=contract&action=getabi&address=%s", c.baseURL, url.QueryEscape(address))
	if c.apiKey != "" {
		u += "&apikey=" + url.QueryEscape(c.apiKey)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var envelope models.EtherscanResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	// Edge Case: the explorer reports failures inside a 200 response with
	// status "0" and the reason in result.
	if envelope.Status != "1" {
		return nil, fmt.Errorf("explorer API error: %s - %s", envelope.Message, envelope.Result)
	}

	log.Debug().Str("address", address).Msg("Fetched contract ABI")

	return body, nil
}
