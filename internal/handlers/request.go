package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"sakila-backend/internal/apperr"
	"sakila-backend/internal/utils"
	"sakila-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// parseID reads the :id path parameter. Ids are int4 keys, so anything but an
// integer in [1, 2147483647] is malformed.
func parseID(c *fiber.Ctx, idField string) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 31)
	if err != nil || id == 0 {
		return 0, apperr.MalformedID(idField)
	}
	return uint(id), nil
}

// bindJSON decodes the request body into a fresh T and validates it. Every
// member whose JSON value has the wrong type is reported as a violation on
// that field; any other decoding failure is a plain bad request.
func bindJSON[T any](c *fiber.Ctx, v *validation.Validator) (*T, error) {
	if !c.Is("json") {
		return nil, apperr.BadRequest("Invalid request body")
	}

	cfg := c.App().Config()
	var members map[string]json.RawMessage
	if err := cfg.JSONDecoder(c.Body(), &members); err != nil {
		return nil, apperr.BadRequest("Invalid request body")
	}

	// encoding/json stops reporting after the first type mismatch, so drop the
	// offending member and decode again until the rest fits.
	var preset []apperr.FieldError
	for {
		body, err := cfg.JSONEncoder(members)
		if err != nil {
			return nil, apperr.BadRequest("Invalid request body")
		}

		var dst T
		err = cfg.JSONDecoder(body, &dst)
		if err == nil {
			if err := v.Validate(&dst, preset...); err != nil {
				return nil, err
			}
			return &dst, nil
		}

		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return nil, apperr.BadRequest("Invalid request body")
		}
		mismatch := validation.TypeMismatch(typeErr.Field, typeErr.Type)
		if !dropMember(members, mismatch.Field) {
			return nil, apperr.BadRequest("Invalid request body")
		}
		preset = append(preset, mismatch)
	}
}

// dropMember removes every key encoding/json would bind to field (matching is
// case-insensitive) and reports whether any was present.
func dropMember(members map[string]json.RawMessage, field string) bool {
	dropped := false
	for key := range members {
		if strings.EqualFold(key, field) {
			delete(members, key)
			dropped = true
		}
	}
	return dropped
}

// respondError renders err with the fail envelope. Errors outside the apperr
// taxonomy are treated as internal.
func respondError(c *fiber.Ctx, err error) error {
	ae := apperr.As(err)
	if ae == nil {
		ae = apperr.Internal(err)
	}
	return utils.AppErrorResponse(c, ae)
}
