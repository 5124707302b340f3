package incident

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	appErrors "incidentdesk/internal/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Normalize trims every field and lowercases status and priority.
func (r CreateRequest) Normalize() CreateRequest {
	return CreateRequest{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Service:     strings.TrimSpace(r.Service),
		Status:      strings.ToLower(strings.TrimSpace(r.Status)),
		Priority:    strings.ToLower(strings.TrimSpace(r.Priority)),
	}
}

// Validate checks the normalized request. Whitespace-only values count as
// missing.
func (r CreateRequest) Validate() error {
	return ValidateStruct(r.Normalize())
}

// ValidateStruct runs the `validate` tags on any struct and returns an
// invalid_request error naming the offending json fields.
func ValidateStruct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErrors.New(appErrors.CodeInvalidRequest, err.Error(), err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "oneof":
			parts = append(parts, fe.Field()+" must be one of "+fe.Param())
		default:
			parts = append(parts, fe.Field()+" is invalid")
		}
	}
	return appErrors.New(appErrors.CodeInvalidRequest, strings.Join(parts, "; "), err)
}

// InvalidFields lists the json names of the fields that failed validation,
// sorted. It returns nil for errors that did not come from ValidateStruct.
func InvalidFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	sort.Strings(fields)
	return fields
}
