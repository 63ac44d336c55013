package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/voll-fit/voll-api/pkg/errors"
)

// optionalText trims the input and maps an empty result to NULL.
func optionalText(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// defaultText trims the input and substitutes the fallback when empty.
func defaultText(raw, fallback string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// validationError maps the first failing field to its API message. The
// validator walks fields in struct order, which keeps messages deterministic.
func validationError(err error, message func(field string) string) error {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message(fieldErrs[0].Field()))
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
}

// coerceAmount accepts the shapes a JSON body can carry an amount in: a
// number, a numeric string, or a json.Number. The second return reports
// whether the value was numeric at all.
func coerceAmount(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
