package handler // handler defines http handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avelhart/crewcall/internal/repository"
	"github.com/avelhart/crewcall/internal/service"
)

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric :id path parameter.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// serviceError maps the engine's sentinel errors onto HTTP statuses:
// missing references are 404, duplicate pairs 409, empty updates 400
// and business-rule violations 422. Anything else is a 500 with the
// detail kept out of the response body.
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrEventNotFound),
		errors.Is(err, repository.ErrCrewMemberNotFound),
		errors.Is(err, repository.ErrEquipmentNotFound),
		errors.Is(err, repository.ErrPositionNotFound),
		errors.Is(err, repository.ErrAssignmentNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": "assignment already exists for this event and resource"})
	case errors.Is(err, repository.ErrCrewEmailExists),
		errors.Is(err, repository.ErrPositionExists):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNoFields):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// The PATCH payloads distinguish three states per field: an omitted
// key keeps the stored value, an empty string clears the column, and
// anything else is the new value. The helpers below translate bound
// pointer fields into the repository's three-state types.

func optFromString(v *string) repository.OptString {
	if v == nil {
		return repository.OptString{}
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return repository.OptString{Set: true, Null: true}
	}
	return repository.OptString{Set: true, Value: s}
}

// optFromRate parses a decimal string field; an empty string clears.
// Returns false for an unparseable or negative value.
func optFromRate(v *string) (repository.OptFloat, bool) {
	if v == nil {
		return repository.OptFloat{}, true
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return repository.OptFloat{Set: true, Null: true}, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return repository.OptFloat{}, false
	}
	return repository.OptFloat{Set: true, Value: f}, true
}

// optFromRateRaw interprets a nullable rate that may arrive as a JSON
// number (the same shape the create endpoints take), a decimal string,
// or null. An absent key keeps the stored value; null or an empty
// string clears it. Returns false for an unparseable or negative rate.
func optFromRateRaw(raw json.RawMessage) (repository.OptFloat, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return repository.OptFloat{}, true
	}
	if s == "null" {
		return repository.OptFloat{Set: true, Null: true}, true
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return repository.OptFloat{}, false
		}
		return optFromRate(&str)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || f < 0 {
		return repository.OptFloat{}, false
	}
	return repository.OptFloat{Set: true, Value: f}, true
}

// optFromID treats a zero id as clear, since valid ids start at one.
func optFromID(v *uint64) repository.OptUint {
	if v == nil {
		return repository.OptUint{}
	}
	if *v == 0 {
		return repository.OptUint{Set: true, Null: true}
	}
	return repository.OptUint{Set: true, Value: *v}
}
