package dictionary

import (
	"strings"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

const (
	maxCodeLen   = 64
	maxNameLen   = 128
	maxReasonLen = 500
	maxActorLen  = 128
)

// CreateValueInput holds the parameters for adding a value to a dictionary.
type CreateValueInput struct {
	DictCode  string
	ValueCode string
	ValueName string
	Order     int
	ExtraData map[string]any
	ColorTag  *string
	Icon      *string
	Reason    string
}

// Validate checks all fields and collects all errors.
func (i CreateValueInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateCode("dict_code", i.DictCode)...)
	errs = append(errs, validateCode("value_code", i.ValueCode)...)
	errs = append(errs, validateName(i.ValueName)...)
	if len(i.Reason) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateValueInput holds the mutable fields of a value. Every field is
// overwritten.
type UpdateValueInput struct {
	ValueName string
	Order     int
	ExtraData map[string]any
	ColorTag  *string
	Icon      *string
	Reason    string

	// ExpectedVersion, when set, must equal the stored version.
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i UpdateValueInput) Validate() error {
	errs := validateName(i.ValueName)
	if len(i.Reason) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 500 characters"})
	}
	if i.ExpectedVersion != nil && *i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "expected_version", Message: "must be >= 1"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateCode(field, code string) []domain.FieldError {
	code = strings.TrimSpace(code)
	if code == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if len(code) > maxCodeLen {
		return []domain.FieldError{{Field: field, Message: "max 64 characters"}}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "value_name", Message: "required"}}
	}
	if len(name) > maxNameLen {
		return []domain.FieldError{{Field: "value_name", Message: "max 128 characters"}}
	}
	return nil
}

func validateActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return domain.NewValidationError("actor", "required")
	}
	if len(actor) > maxActorLen {
		return domain.NewValidationError("actor", "max 128 characters")
	}
	return nil
}
