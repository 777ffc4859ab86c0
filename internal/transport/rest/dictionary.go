package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/petcare-basedata/internal/config"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
	"github.com/heartmarshall/petcare-basedata/internal/service/dictionary"
)

type dictionaryService interface {
	GetValues(ctx context.Context, dictCode string) ([]*domain.DictValue, error)
	GetValuesByParent(ctx context.Context, dictCode, parent string) ([]*domain.DictValue, error)
	GetValue(ctx context.Context, dictCode, valueCode string) (*domain.DictValue, error)
	IsValid(ctx context.Context, dictCode, valueCode string) (bool, error)
	GetAllCommon(ctx context.Context) (map[string][]*domain.DictValue, error)
	ListTypes(ctx context.Context) ([]*domain.DictType, error)
	CreateValue(ctx context.Context, input dictionary.CreateValueInput, actor string) (*domain.DictValue, error)
	UpdateValue(ctx context.Context, dictCode, valueCode string, input dictionary.UpdateValueInput, actor string) (*domain.DictValue, error)
	SetValueStatus(ctx context.Context, dictCode, valueCode string, enabled bool, reason, actor string) (*domain.DictValue, error)
	GetValueHistory(ctx context.Context, dictCode, valueCode string) ([]*domain.DictValueVersion, error)
}

// DictionaryHandler serves the /base-dict endpoints.
type DictionaryHandler struct {
	svc   dictionaryService
	actor actorResolver
	log   *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler. Writes are attributed
// the same way as base-data writes.
func NewDictionaryHandler(svc dictionaryService, cfg config.BaseDataConfig, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{
		svc:   svc,
		actor: newActorResolver(cfg),
		log:   logger.With("handler", "dictionary"),
	}
}

type dictValueRequest struct {
	ValueCode       string         `json:"valueCode"`
	ValueName       string         `json:"valueName"`
	Order           int            `json:"order"`
	ExtraData       map[string]any `json:"extraData,omitempty"`
	ColorTag        *string        `json:"colorTag,omitempty"`
	Icon            *string        `json:"icon,omitempty"`
	Reason          string         `json:"reason"`
	ExpectedVersion *int           `json:"expectedVersion,omitempty"`
}

type dictStatusRequest struct {
	Enabled *bool  `json:"enabled"`
	Reason  string `json:"reason"`
}

// Values handles GET /base-dict/values/{dictCode}.
func (h *DictionaryHandler) Values(w http.ResponseWriter, r *http.Request) {
	vals, err := h.svc.GetValues(r.Context(), chi.URLParam(r, "dictCode"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDictValueList(vals))
}

// ValuesByParent handles GET /base-dict/values/{dictCode}/by-parent/{parent}.
func (h *DictionaryHandler) ValuesByParent(w http.ResponseWriter, r *http.Request) {
	vals, err := h.svc.GetValuesByParent(r.Context(), chi.URLParam(r, "dictCode"), chi.URLParam(r, "parent"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDictValueList(vals))
}

// Value handles GET /base-dict/value/{dictCode}/{valueCode}.
func (h *DictionaryHandler) Value(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetValue(r.Context(), chi.URLParam(r, "dictCode"), chi.URLParam(r, "valueCode"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDictValueResponse(v))
}

// Validate handles GET /base-dict/validate/{dictCode}/{valueCode}.
func (h *DictionaryHandler) Validate(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.IsValid(r.Context(), chi.URLParam(r, "dictCode"), chi.URLParam(r, "valueCode"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": ok})
}

// AllCommon handles GET /base-dict/all-common.
func (h *DictionaryHandler) AllCommon(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.svc.GetAllCommon(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	out := make(map[string][]dictValueResponse, len(bundle))
	for name, vals := range bundle {
		out[name] = toDictValueList(vals)
	}
	writeJSON(w, http.StatusOK, out)
}

// Types handles GET /base-dict/types.
func (h *DictionaryHandler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListTypes(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDictTypeList(types))
}

// CreateValue handles POST /base-dict/values/{dictCode}.
func (h *DictionaryHandler) CreateValue(w http.ResponseWriter, r *http.Request) {
	var req dictValueRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	v, err := h.svc.CreateValue(r.Context(), dictionary.CreateValueInput{
		DictCode:  chi.URLParam(r, "dictCode"),
		ValueCode: req.ValueCode,
		ValueName: req.ValueName,
		Order:     req.Order,
		ExtraData: req.ExtraData,
		ColorTag:  req.ColorTag,
		Icon:      req.Icon,
		Reason:    req.Reason,
	}, h.actor.resolve(r))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDictValueResponse(v))
}

// UpdateValue handles PUT /base-dict/values/{dictCode}/{valueCode}.
func (h *DictionaryHandler) UpdateValue(w http.ResponseWriter, r *http.Request) {
	var req dictValueRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	v, err := h.svc.UpdateValue(r.Context(), chi.URLParam(r, "dictCode"), chi.URLParam(r, "valueCode"),
		dictionary.UpdateValueInput{
			ValueName:       req.ValueName,
			Order:           req.Order,
			ExtraData:       req.ExtraData,
			ColorTag:        req.ColorTag,
			Icon:            req.Icon,
			Reason:          req.Reason,
			ExpectedVersion: req.ExpectedVersion,
		}, h.actor.resolve(r))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDictValueResponse(v))
}

// SetStatus handles POST /base-dict/values/{dictCode}/{valueCode}/status.
func (h *DictionaryHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req dictStatusRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if req.Enabled == nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("enabled", "required"))
		return
	}

	v, err := h.svc.SetValueStatus(r.Context(), chi.URLParam(r, "dictCode"), chi.URLParam(r, "valueCode"),
		*req.Enabled, req.Reason, h.actor.resolve(r))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDictValueResponse(v))
}

// History handles GET /base-dict/values/{dictCode}/{valueCode}/history.
func (h *DictionaryHandler) History(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.GetValueHistory(r.Context(), chi.URLParam(r, "dictCode"), chi.URLParam(r, "valueCode"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDictHistoryList(rows))
}
