package client

import (
	"context"
	"encoding/json"
	"fmt"

	"entrycheck/pkg/model"
)

// EntriesClient talks to the entries service.
type EntriesClient struct {
	http *HttpClient
}

func NewEntriesClient(baseURL string) *EntriesClient {
	return &EntriesClient{http: NewHttpClient(baseURL)}
}

func (c *EntriesClient) ParseCode(ctx context.Context, field string, value any) (*model.EntryResponse, error) {
	return c.parseKind(ctx, "/api/v1/codes/parse", field, value)
}

func (c *EntriesClient) ParsePhone(ctx context.Context, field string, value any) (*model.EntryResponse, error) {
	return c.parseKind(ctx, "/api/v1/phones/parse", field, value)
}

func (c *EntriesClient) Parse(ctx context.Context, req model.EntryRequest) (*model.EntryResponse, error) {
	switch req.Kind {
	case model.KindCode:
		return c.ParseCode(ctx, req.Field, req.Value)
	case model.KindPhone:
		return c.ParsePhone(ctx, req.Field, req.Value)
	default:
		return nil, fmt.Errorf("unsupported entry kind %q", req.Kind)
	}
}

func (c *EntriesClient) ParseEntries(ctx context.Context, entries []model.EntryRequest) (*model.BatchResponse, error) {
	var out model.BatchResponse
	if err := c.post(ctx, "/api/v1/entries/parse", model.BatchRequest{Entries: entries}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *EntriesClient) WaitForHealthy(ctx context.Context) error {
	return c.http.WaitForHealthy(ctx, c.http.HTTPClient.Timeout)
}

func (c *EntriesClient) parseKind(ctx context.Context, path, field string, value any) (*model.EntryResponse, error) {
	var out model.EntryResponse
	if err := c.post(ctx, path, model.ValueRequest{Field: field, Value: value}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *EntriesClient) post(ctx context.Context, path string, body, dst any) error {
	resp, err := c.http.POST(ctx, path, body)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, dst); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
