package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"nftcatalog/internal/domain/record"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	records, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: records}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*recordOutput, error) {
	rec, err := h.service.Create(ctx, record.CreateInput{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		ImageURL:    input.Body.ImageURL,
		RarityScore: input.Body.RarityScore,
	})
	if err != nil {
		return nil, err
	}

	return &recordOutput{Body: *rec}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*recordOutput, error) {
	rec, err := h.service.Find(ctx, input.ID)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("The record with id=%s not found", input.ID))
		}
		return nil, err
	}

	return &recordOutput{Body: *rec}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*recordOutput, error) {
	rec, err := h.service.Update(ctx, input.ID, record.Patch{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		ImageURL:    input.Body.ImageURL,
		RarityScore: input.Body.RarityScore,
	})
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, huma.Error400BadRequest(fmt.Sprintf("Couldn't update a record with id=%s. Record not found", input.ID))
		}
		return nil, err
	}

	return &recordOutput{Body: *rec}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*recordOutput, error) {
	rec, err := h.service.Delete(ctx, input.ID)
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return nil, huma.Error400BadRequest(fmt.Sprintf("Couldn't delete a record with id=%s. Record not found", input.ID))
		}
		return nil, err
	}

	return &recordOutput{Body: *rec}, nil
}
