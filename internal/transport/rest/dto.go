package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
	"github.com/heartmarshall/petcare-basedata/internal/service/basedata"
)

type baseDataResponse struct {
	ID          int64      `json:"id"`
	Type        string     `json:"type"`
	Value       string     `json:"value"`
	Description string     `json:"description"`
	Version     *int       `json:"version"`
	DisabledAt  *time.Time `json:"disabledAt,omitempty"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedBy   string     `json:"updatedBy"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toBaseDataResponse(b *domain.BaseData) baseDataResponse {
	resp := baseDataResponse{
		ID:          b.ID,
		Type:        b.Type,
		Value:       b.Value,
		Description: b.Description,
		DisabledAt:  b.DisabledAt,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
		UpdatedBy:   b.UpdatedBy,
		UpdatedAt:   b.UpdatedAt,
	}
	// Legacy rows without a version are reported as null.
	if b.Version > 0 {
		v := b.Version
		resp.Version = &v
	}
	return resp
}

func toBaseDataList(items []*domain.BaseData) []baseDataResponse {
	out := make([]baseDataResponse, len(items))
	for i, b := range items {
		out[i] = toBaseDataResponse(b)
	}
	return out
}

type versionResponse struct {
	ID            int64             `json:"id"`
	RecordID      int64             `json:"recordId"`
	Version       int               `json:"version"`
	SchemaVersion int               `json:"schemaVersion"`
	Action        string            `json:"action"`
	OperatedBy    string            `json:"operatedBy"`
	OperatedAt    time.Time         `json:"operatedAt"`
	Remark        string            `json:"remark"`
	Record        *baseDataResponse `json:"record"`
}

// toVersionList decodes each snapshot for display. Rows that cannot be
// decoded are still listed, with a null record.
func toVersionList(items []*domain.BaseDataVersion) []versionResponse {
	out := make([]versionResponse, len(items))
	for i, v := range items {
		out[i] = versionResponse{
			ID:            v.ID,
			RecordID:      v.RecordID,
			Version:       v.Version,
			SchemaVersion: v.SchemaVersion,
			Action:        v.Action.String(),
			OperatedBy:    v.OperatedBy,
			OperatedAt:    v.OperatedAt,
			Remark:        v.Remark,
		}
		if rec, _, err := basedata.DecodeVersion(v); err == nil {
			r := toBaseDataResponse(rec)
			out[i].Record = &r
		}
	}
	return out
}

type logResponse struct {
	ID         int64     `json:"id"`
	RecordID   int64     `json:"recordId"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	OperatedBy string    `json:"operatedBy"`
	OperatedAt time.Time `json:"operatedAt"`
}

func toLogList(items []*domain.BaseDataLog) []logResponse {
	out := make([]logResponse, len(items))
	for i, l := range items {
		out[i] = logResponse{
			ID:         l.ID,
			RecordID:   l.RecordID,
			Action:     l.Action.String(),
			Detail:     l.Detail,
			OperatedBy: l.OperatedBy,
			OperatedAt: l.OperatedAt,
		}
	}
	return out
}

type dictValueResponse struct {
	DictCode  string         `json:"dictCode"`
	ValueCode string         `json:"valueCode"`
	ValueName string         `json:"valueName"`
	Order     int            `json:"order"`
	ExtraData map[string]any `json:"extraData,omitempty"`
	ColorTag  *string        `json:"colorTag,omitempty"`
	Icon      *string        `json:"icon,omitempty"`
	Status    int            `json:"status"`
	Version   int            `json:"version"`
	UpdatedBy string         `json:"updatedBy,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func toDictValueResponse(v *domain.DictValue) dictValueResponse {
	return dictValueResponse{
		DictCode:  v.DictCode,
		ValueCode: v.ValueCode,
		ValueName: v.ValueName,
		Order:     v.Order,
		ExtraData: v.ExtraData,
		ColorTag:  v.ColorTag,
		Icon:      v.Icon,
		Status:    int(v.Status),
		Version:   v.Version,
		UpdatedBy: v.UpdatedBy,
		UpdatedAt: v.UpdatedAt,
	}
}

func toDictValueList(items []*domain.DictValue) []dictValueResponse {
	out := make([]dictValueResponse, len(items))
	for i, v := range items {
		out[i] = toDictValueResponse(v)
	}
	return out
}

type dictTypeResponse struct {
	DictCode    string  `json:"dictCode"`
	DictName    string  `json:"dictName"`
	DictLevel   int     `json:"dictLevel"`
	ParentCode  *string `json:"parentCode,omitempty"`
	IsFixed     bool    `json:"isFixed"`
	Description string  `json:"description,omitempty"`
	Status      int     `json:"status"`
}

func toDictTypeList(items []*domain.DictType) []dictTypeResponse {
	out := make([]dictTypeResponse, len(items))
	for i, t := range items {
		out[i] = dictTypeResponse{
			DictCode:    t.DictCode,
			DictName:    t.DictName,
			DictLevel:   t.DictLevel,
			ParentCode:  t.ParentCode,
			IsFixed:     t.IsFixed,
			Description: t.Description,
			Status:      int(t.Status),
		}
	}
	return out
}

type dictHistoryResponse struct {
	Version    int             `json:"version"`
	Action     string          `json:"action"`
	Reason     string          `json:"reason,omitempty"`
	OperatedBy string          `json:"operatedBy"`
	OperatedAt time.Time       `json:"operatedAt"`
	Snapshot   json.RawMessage `json:"snapshot,omitempty"`
}

func toDictHistoryList(items []*domain.DictValueVersion) []dictHistoryResponse {
	out := make([]dictHistoryResponse, len(items))
	for i, h := range items {
		out[i] = dictHistoryResponse{
			Version:    h.Version,
			Action:     h.Action.String(),
			Reason:     h.OperationReason,
			OperatedBy: h.OperatedBy,
			OperatedAt: h.OperatedAt,
		}
		if json.Valid(h.Snapshot) {
			out[i].Snapshot = h.Snapshot
		}
	}
	return out
}
