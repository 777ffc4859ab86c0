package basedata

import (
	"strings"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

const (
	maxTypeLen        = 64
	maxValueLen       = 255
	maxDescriptionLen = 2000
	maxActorLen       = 128
)

// CreateInput holds the parameters for creating a record.
type CreateInput struct {
	Type        string
	Value       string
	Description string
	Remark      string // empty = "manual create"
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	errs := validateFields(i.Type, i.Value, i.Description)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a record. Every field is
// overwritten.
type UpdateInput struct {
	Type        string
	Value       string
	Description string
	Remark      string // empty = "manual edit"

	// ExpectedVersion, when set, must equal the stored version.
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	errs := validateFields(i.Type, i.Value, i.Description)
	if i.ExpectedVersion != nil && *i.ExpectedVersion < 0 {
		errs = append(errs, domain.FieldError{Field: "expectedVersion", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateFields(typ, value, description string) []domain.FieldError {
	var errs []domain.FieldError

	typ = strings.TrimSpace(typ)
	if typ == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if len(typ) > maxTypeLen {
		errs = append(errs, domain.FieldError{Field: "type", Message: "max 64 characters"})
	}

	value = strings.TrimSpace(value)
	if value == "" {
		errs = append(errs, domain.FieldError{Field: "value", Message: "required"})
	}
	if len(value) > maxValueLen {
		errs = append(errs, domain.FieldError{Field: "value", Message: "max 255 characters"})
	}

	if len(description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	return errs
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

func validateID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	return nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
