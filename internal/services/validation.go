package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

// validate is shared by every service. Field errors carry json names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs the validate tags of a create request.
func checkStruct(req any) error {
	return validationError(validate.Struct(req), "")
}

// validationError converts the first validator failure into a
// ValidationError. field overrides the reported name when set.
func validationError(err error, field string) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	if field == "" {
		field = fe.Field()
	}
	return &ValidationError{Field: field, Message: describe(fe)}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "required_if":
		return "is required if is_graded=1"
	case "gt":
		return "must be positive"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	}
	return "failed " + fe.Tag() + " check"
}

type columnKind int

const (
	textColumn columnKind = iota
	nullableTextColumn
	integerColumn
	numberColumn
	nullableNumberColumn
)

// columnRule pairs a patchable column with its value type and validate tag.
type columnRule struct {
	column string
	kind   columnKind
	tag    string
}

// checkFields type-checks every column present in fields, then runs the
// column tags through the validator. Failures are reported in rule order.
func checkFields(fields models.Fields, rules []columnRule) error {
	data := map[string]any{}
	tags := map[string]any{}
	for _, r := range rules {
		if !fields.Has(r.column) {
			continue
		}
		v, err := columnValue(fields, r)
		if err != nil {
			return err
		}
		data[r.column] = v
		if r.tag != "" {
			tags[r.column] = r.tag
		}
	}

	errs := validate.ValidateMap(data, tags)
	for _, r := range rules {
		if err, ok := errs[r.column].(error); ok {
			return validationError(err, r.column)
		}
	}
	return nil
}

func columnValue(fields models.Fields, r columnRule) (any, error) {
	switch r.kind {
	case integerColumn:
		if v, ok := fields.Int64(r.column); ok {
			return v, nil
		}
		return nil, invalid(r.column, "must be an integer")
	case numberColumn, nullableNumberColumn:
		if r.kind == nullableNumberColumn && fields.IsNull(r.column) {
			return nil, nil
		}
		if v, ok := fields.Float64(r.column); ok {
			return v, nil
		}
		if r.kind == nullableNumberColumn {
			return nil, invalid(r.column, "must be a number or null")
		}
		return nil, invalid(r.column, "must be a number")
	case nullableTextColumn:
		if fields.IsNull(r.column) {
			return nil, nil
		}
		if v, ok := fields.String(r.column); ok {
			return v, nil
		}
		return nil, invalid(r.column, "must be a string or null")
	default:
		if v, ok := fields.String(r.column); ok {
			return v, nil
		}
		return nil, invalid(r.column, "must be a string")
	}
}
