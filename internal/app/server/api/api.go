//POST   /records      # Create a record
//GET    /records      # List records, descending rarity
//GET    /records/{id} # Fetch a record
//PUT    /records/{id} # Merge-update a record
//DELETE /records/{id} # Delete a record
//GET    /health       # Liveness probe

package api

import (
	healthAPI "nftcatalog/internal/app/server/api/http/health"
	"nftcatalog/internal/app/server/api/http/middleware"
	"nftcatalog/internal/app/server/api/http/middleware/logger"
	recordAPI "nftcatalog/internal/app/server/api/http/record"
	"nftcatalog/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Record *recordAPI.Handler
}

// New builds a *chi.Mux with all operations registered through huma.Register
func New(repo record.Repository, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("NFT Catalog API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(repo, log)
	h.Health.SetupRoutes(API)
	h.Record.SetupRoutes(API)

	return mux
}

func handlers(repo record.Repository, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	recordService := record.NewService(repo, record.SystemClock(), record.UUIDGenerator(), log)
	middlewares.Add(loggerMW.Middleware())
	recordHandler := recordAPI.NewHandler(recordService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Record: recordHandler,
	}
}
