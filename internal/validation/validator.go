// Package validation evaluates the declarative field rules carried by request
// structs (`validate:"..."` tags) and turns failures into apperr field errors.
//
// Rules for a field run in tag order and stop at the first failure, so each
// field reports at most one violation while every field is still checked.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"sakila-backend/internal/apperr"
	"sakila-backend/internal/models"
)

// Custom rule tags usable in request structs.
const (
	TagActorNameMin   = "actor_name_min"
	TagActorNameMax   = "actor_name_max"
	TagFilmRating     = "film_rating"
	TagSpecialFeature = "special_feature"
)

type Options struct {
	ActorNameMin int
	ActorNameMax int
}

func DefaultOptions() Options {
	return Options{ActorNameMin: 10, ActorNameMax: 45}
}

type Validator struct {
	validate *validator.Validate
	opts     Options
}

func New(opts Options) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(TagActorNameMin, func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) >= opts.ActorNameMin
	})
	_ = v.RegisterValidation(TagActorNameMax, func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) <= opts.ActorNameMax
	})
	_ = v.RegisterValidation(TagFilmRating, func(fl validator.FieldLevel) bool {
		return models.FilmRating(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation(TagSpecialFeature, func(fl validator.FieldLevel) bool {
		return models.IsSpecialFeature(fl.Field().String())
	})

	return &Validator{validate: v, opts: opts}
}

// Validate checks payload (a pointer to a tagged struct). preset carries
// violations found earlier, such as JSON type mismatches; a field listed there
// is not reported again. The result is nil or an *apperr.AppError whose details
// follow the struct's field order.
func (v *Validator) Validate(payload interface{}, preset ...apperr.FieldError) error {
	seen := make(map[string]bool, len(preset))
	violations := make([]apperr.FieldError, 0, len(preset))
	for _, p := range preset {
		if !seen[p.Field] {
			seen[p.Field] = true
			violations = append(violations, p)
		}
	}

	if err := v.validate.Struct(payload); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return apperr.Internal(err)
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return apperr.Internal(err)
		}

		for _, fe := range fieldErrs {
			field := baseField(fe.Field())
			if seen[field] {
				continue
			}
			seen[field] = true
			violations = append(violations, apperr.FieldError{
				Field:   field,
				Message: v.message(field, fe),
			})
		}
	}

	if len(violations) == 0 {
		return nil
	}

	order := fieldOrder(payload)
	sort.SliceStable(violations, func(i, j int) bool {
		return order[violations[i].Field] < order[violations[j].Field]
	})
	return apperr.Validation(violations...)
}

// TypeMismatch describes a JSON value whose type cannot populate the target field.
func TypeMismatch(field string, target reflect.Type) apperr.FieldError {
	field = baseField(field)
	for target != nil && target.Kind() == reflect.Ptr {
		target = target.Elem()
	}

	var msg string
	switch kindOf(target) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		msg = field + " must be an integer number"
	case reflect.Float32, reflect.Float64:
		msg = field + " must be a number conforming to the specified constraints"
	case reflect.Slice, reflect.Array:
		msg = field + " must be an array"
	case reflect.String:
		msg = field + " must be a string"
	default:
		msg = field + " has an invalid type"
	}
	return apperr.FieldError{Field: field, Message: msg}
}

func kindOf(t reflect.Type) reflect.Kind {
	if t == nil {
		return reflect.Invalid
	}
	return t.Kind()
}

var fieldMessages = map[string]string{
	"first_name.required":           "The first name is required",
	"first_name." + TagActorNameMin: "The first name is too short",
	"first_name." + TagActorNameMax: "The first name is too long",
	"last_name.required":            "The last name is required",
	"last_name." + TagActorNameMin:  "The last name is too short",
	"last_name." + TagActorNameMax:  "The last name is too long",
}

func (v *Validator) message(field string, fe validator.FieldError) string {
	if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Minimum: %s characters", fe.Param())
		}
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Maximum: %s characters", fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	case TagActorNameMin:
		return fmt.Sprintf("Minimum: %d characters", v.opts.ActorNameMin)
	case TagActorNameMax:
		return fmt.Sprintf("Maximum: %d characters", v.opts.ActorNameMax)
	case TagFilmRating:
		return field + " must be one of the following values: " + joinRatings()
	case TagSpecialFeature:
		return "each value in " + field + " must be one of the following values: " +
			strings.Join(models.SpecialFeatureValues, ", ")
	}
	return field + " is invalid"
}

func joinRatings() string {
	parts := make([]string, len(models.FilmRatings))
	for i, r := range models.FilmRatings {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// baseField strips element indexes: "special_features[1]" -> "special_features".
func baseField(field string) string {
	name, _, _ := strings.Cut(field, "[")
	return name
}

// fieldOrder maps json field names to their declaration index in payload's struct.
func fieldOrder(payload interface{}) map[string]int {
	t := reflect.TypeOf(payload)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	order := make(map[string]int)
	if t == nil || t.Kind() != reflect.Struct {
		return order
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name = f.Name
		}
		order[name] = i
	}
	return order
}
