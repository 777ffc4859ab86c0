package domain

import "time"

// DictType describes one dictionary (e.g. pet_species). ParentCode names the
// dictionary this one cascades from, if any.
type DictType struct {
	ID          int64
	DictCode    string
	DictName    string
	DictLevel   int
	ParentCode  *string
	IsFixed     bool
	Description string
	Status      DictStatus
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DictValue is one entry of a dictionary. (DictCode, ValueCode) is unique.
type DictValue struct {
	ID        int64
	DictCode  string
	ValueCode string
	ValueName string
	Order     int
	ExtraData map[string]any
	ColorTag  *string
	Icon      *string
	Status    DictStatus
	Version   int
	CreatedBy string
	CreatedAt time.Time
	UpdatedBy string
	UpdatedAt time.Time
}

// IsActive reports whether the value is enabled.
func (v DictValue) IsActive() bool {
	return v.Status == DictStatusEnabled
}

// ExtraString returns extraData[key] when it holds a string.
func (v DictValue) ExtraString(key string) (string, bool) {
	if v.ExtraData == nil {
		return "", false
	}
	s, ok := v.ExtraData[key].(string)
	return s, ok
}

// DictKey identifies a dictionary value.
type DictKey struct {
	DictCode  string
	ValueCode string
}

func (k DictKey) String() string {
	return k.DictCode + "/" + k.ValueCode
}

// DictValueVersion is a history row for a dictionary value mutation.
type DictValueVersion struct {
	ID              int64
	DictCode        string
	ValueCode       string
	Version         int
	Snapshot        []byte
	Action          DictAction
	OperationReason string
	OperatedBy      string
	OperatedAt      time.Time
}
