package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"nftcatalog/internal/app/client/config"
	"nftcatalog/internal/domain/record"
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "NFTCatalog-Client/1.0",
	}
}

// HealthCheck verifies the server is reachable
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}

// CreateRecord creates a record on the server and returns it with the
// assigned id and timestamps
func (h *httpClient) CreateRecord(ctx context.Context, req CreateRequest) (*record.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/records", req)
	if err != nil {
		return nil, err
	}

	var rec record.Record
	if err := h.parseResponse(resp, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecords returns all records, ordered by descending rarity
func (h *httpClient) ListRecords(ctx context.Context) ([]record.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/records", nil)
	if err != nil {
		return nil, err
	}

	var records []record.Record
	if err := h.parseResponse(resp, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetRecord fetches one record by id
func (h *httpClient) GetRecord(ctx context.Context, id string) (*record.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/records/"+id, nil)
	if err != nil {
		return nil, err
	}

	var rec record.Record
	if err := h.parseResponse(resp, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateRecord merge-updates a record and returns the merged result
func (h *httpClient) UpdateRecord(ctx context.Context, id string, req UpdateRequest) (*record.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, "/records/"+id, req)
	if err != nil {
		return nil, err
	}

	var rec record.Record
	if err := h.parseResponse(resp, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteRecord deletes a record and returns the removed value
func (h *httpClient) DeleteRecord(ctx context.Context, id string) (*record.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/records/"+id, nil)
	if err != nil {
		return nil, err
	}

	var rec record.Record
	if err := h.parseResponse(resp, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Detail != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Detail)
		}
		return fmt.Errorf("server error (%d)", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
