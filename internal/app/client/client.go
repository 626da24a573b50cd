package client

import (
	"context"

	"golang.org/x/exp/slog"

	"nftcatalog/internal/app/client/config"
	"nftcatalog/internal/domain/record"
)

// App is the catalog CLI application: a thin online client of the
// HTTP API.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

// CreateRequest carries caller fields for a new record; the server
// assigns id and createdAt.
type CreateRequest struct {
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	RarityScore float64 `json:"rarityScore,omitempty"`
}

// UpdateRequest is a partial record; absent fields keep their values.
type UpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	RarityScore *float64 `json:"rarityScore,omitempty"`
}

func New(cfg *config.Config, log *slog.Logger) *App {
	return &App{
		config:     cfg,
		log:        log,
		httpClient: newHTTPClient(cfg, log),
	}
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) CreateRecord(ctx context.Context, req CreateRequest) (*record.Record, error) {
	return a.httpClient.CreateRecord(ctx, req)
}

func (a *App) ListRecords(ctx context.Context) ([]record.Record, error) {
	return a.httpClient.ListRecords(ctx)
}

func (a *App) GetRecord(ctx context.Context, id string) (*record.Record, error) {
	return a.httpClient.GetRecord(ctx, id)
}

func (a *App) UpdateRecord(ctx context.Context, id string, req UpdateRequest) (*record.Record, error) {
	return a.httpClient.UpdateRecord(ctx, id, req)
}

func (a *App) DeleteRecord(ctx context.Context, id string) (*record.Record, error) {
	return a.httpClient.DeleteRecord(ctx, id)
}
