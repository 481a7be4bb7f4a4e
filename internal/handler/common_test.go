package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelhart/crewcall/internal/repository"
	"github.com/avelhart/crewcall/internal/service"
)

func strp(s string) *string { return &s }

func TestOptFromString(t *testing.T) {
	assert.Equal(t, repository.OptString{}, optFromString(nil))
	assert.Equal(t, repository.OptString{Set: true, Null: true}, optFromString(strp("")))
	assert.Equal(t, repository.OptString{Set: true, Null: true}, optFromString(strp("   ")))
	assert.Equal(t, repository.OptString{Set: true, Value: "confirmed"}, optFromString(strp(" confirmed ")))
}

func TestOptFromRate(t *testing.T) {
	got, ok := optFromRate(nil)
	require.True(t, ok)
	assert.Equal(t, repository.OptFloat{}, got)

	got, ok = optFromRate(strp(""))
	require.True(t, ok)
	assert.Equal(t, repository.OptFloat{Set: true, Null: true}, got)

	got, ok = optFromRate(strp("42.50"))
	require.True(t, ok)
	assert.Equal(t, repository.OptFloat{Set: true, Value: 42.5}, got)

	_, ok = optFromRate(strp("-1"))
	assert.False(t, ok)
	_, ok = optFromRate(strp("abc"))
	assert.False(t, ok)
}

func TestOptFromRateRaw(t *testing.T) {
	cases := []struct {
		raw  string
		want repository.OptFloat
		ok   bool
	}{
		{"", repository.OptFloat{}, true},
		{"null", repository.OptFloat{Set: true, Null: true}, true},
		{`""`, repository.OptFloat{Set: true, Null: true}, true},
		{"42.5", repository.OptFloat{Set: true, Value: 42.5}, true},
		{`"42.50"`, repository.OptFloat{Set: true, Value: 42.5}, true},
		{"-1", repository.OptFloat{}, false},
		{`"-1"`, repository.OptFloat{}, false},
		{`"abc"`, repository.OptFloat{}, false},
		{"{}", repository.OptFloat{}, false},
	}
	for _, tc := range cases {
		got, ok := optFromRateRaw([]byte(tc.raw))
		assert.Equal(t, tc.ok, ok, "raw %q", tc.raw)
		if tc.ok {
			assert.Equal(t, tc.want, got, "raw %q", tc.raw)
		}
	}
}

func TestOptFromID(t *testing.T) {
	assert.Equal(t, repository.OptUint{}, optFromID(nil))
	zero := uint64(0)
	assert.Equal(t, repository.OptUint{Set: true, Null: true}, optFromID(&zero))
	seven := uint64(7)
	assert.Equal(t, repository.OptUint{Set: true, Value: 7}, optFromID(&seven))
}

func TestServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{repository.ErrEventNotFound, http.StatusNotFound},
		{repository.ErrCrewMemberNotFound, http.StatusNotFound},
		{repository.ErrAssignmentNotFound, http.StatusNotFound},
		{repository.ErrConflict, http.StatusConflict},
		{repository.ErrCrewEmailExists, http.StatusConflict},
		{service.ErrNoFields, http.StatusBadRequest},
		{fmt.Errorf("%w: quantity must be at least 1", service.ErrValidation), http.StatusUnprocessableEntity},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	e := echo.New()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, serviceError(c, tc.err))
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
	}
}
