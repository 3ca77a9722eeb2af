package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the reporting rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates s against its `validate` tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// BudgetSortFields lists the columns budget analysis may be ordered by.
var BudgetSortFields = []string{"name", "budget", "spent", "created_at"}

func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("report_sort", validateReportSort)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// validateReportSort accepts a sortable field name, optionally prefixed with
// "-" for descending order.
func validateReportSort(fl validator.FieldLevel) bool {
	field := strings.TrimPrefix(strings.TrimSpace(fl.Field().String()), "-")
	for _, allowed := range BudgetSortFields {
		if field == allowed {
			return true
		}
	}
	return false
}
