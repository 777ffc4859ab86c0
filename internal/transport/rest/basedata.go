package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/petcare-basedata/internal/config"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
	"github.com/heartmarshall/petcare-basedata/internal/service/basedata"
)

type baseDataService interface {
	Create(ctx context.Context, input basedata.CreateInput, actor string) (*domain.BaseData, error)
	Update(ctx context.Context, id int64, input basedata.UpdateInput, actor string) (*domain.BaseData, error)
	Disable(ctx context.Context, id int64, actor string) (*domain.BaseData, error)
	Delete(ctx context.Context, id int64, actor string) error
	Rollback(ctx context.Context, id int64, targetVersion int, actor string) (*domain.BaseData, error)
	Get(ctx context.Context, id int64) (*domain.BaseData, error)
	List(ctx context.Context) ([]*domain.BaseData, error)
	ListByType(ctx context.Context, typ string) ([]*domain.BaseData, error)
	GetVersions(ctx context.Context, id int64) ([]*domain.BaseDataVersion, error)
	GetLogs(ctx context.Context, id int64) ([]*domain.BaseDataLog, error)
}

// BaseDataHandler serves the /base-data endpoints.
type BaseDataHandler struct {
	svc   baseDataService
	actor actorResolver
	log   *slog.Logger
}

// NewBaseDataHandler creates a BaseDataHandler.
func NewBaseDataHandler(svc baseDataService, cfg config.BaseDataConfig, logger *slog.Logger) *BaseDataHandler {
	return &BaseDataHandler{
		svc:   svc,
		actor: newActorResolver(cfg),
		log:   logger.With("handler", "basedata"),
	}
}

type baseDataRequest struct {
	Type            string `json:"type"`
	Value           string `json:"value"`
	Description     string `json:"description"`
	Remark          string `json:"remark"`
	ExpectedVersion *int   `json:"expectedVersion,omitempty"`
}

// List handles GET /base-data.
func (h *BaseDataHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBaseDataList(items))
}

// ListByType handles GET /base-data/type/{type}.
func (h *BaseDataHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListByType(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBaseDataList(items))
}

// Get handles GET /base-data/{id}.
func (h *BaseDataHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBaseDataResponse(rec))
}

// Create handles POST /base-data.
func (h *BaseDataHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req baseDataRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Create(r.Context(), basedata.CreateInput{
		Type:        req.Type,
		Value:       req.Value,
		Description: req.Description,
		Remark:      req.Remark,
	}, h.actor.resolve(r))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBaseDataResponse(rec))
}

// Update handles PUT /base-data/{id}.
func (h *BaseDataHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req baseDataRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Update(r.Context(), id, basedata.UpdateInput{
		Type:            req.Type,
		Value:           req.Value,
		Description:     req.Description,
		Remark:          req.Remark,
		ExpectedVersion: req.ExpectedVersion,
	}, h.actor.resolve(r))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBaseDataResponse(rec))
}

// Disable handles POST /base-data/{id}/disable.
func (h *BaseDataHandler) Disable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	rec, err := h.svc.Disable(r.Context(), id, h.actor.resolve(r))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBaseDataResponse(rec))
}

// Delete handles DELETE /base-data/{id}. Deleting an absent record succeeds.
func (h *BaseDataHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id, h.actor.resolve(r)); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Versions handles GET /base-data/{id}/versions.
func (h *BaseDataHandler) Versions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	items, err := h.svc.GetVersions(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVersionList(items))
}

// Logs handles GET /base-data/{id}/logs.
func (h *BaseDataHandler) Logs(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	items, err := h.svc.GetLogs(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLogList(items))
}

// Rollback handles POST /base-data/{id}/rollback?version=N.
func (h *BaseDataHandler) Rollback(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	version, err := strconv.Atoi(r.URL.Query().Get("version"))
	if err != nil || version <= 0 {
		writeDomainError(w, r, h.log, domain.NewValidationError("version", "must be a positive integer"))
		return
	}

	rec, err := h.svc.Rollback(r.Context(), id, version, h.actor.resolve(r))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBaseDataResponse(rec))
}
