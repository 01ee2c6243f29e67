package ctx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	appctx "github.com/shashiranjanraj/mrvrecords/pkg/ctx"
)

func TestWrapAndOK(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	appctx.Wrap(func(c *appctx.Context) {
		c.OK(map[string]any{"Id": 1})
	})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Id":1}`, rec.Body.String())
}

func TestParamInt(t *testing.T) {
	r := chi.NewRouter()
	var (
		got int
		ok  bool
	)
	r.Get("/items/{id}", appctx.Wrap(func(c *appctx.Context) {
		got, ok = c.ParamInt("id")
	}))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	assert.False(t, ok)
}

func TestDecodeJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Milk"}`))

	appctx.Wrap(func(c *appctx.Context) {
		var in struct {
			Name string `json:"name" validate:"required"`
		}
		assert.True(t, c.DecodeJSON(&in))
		assert.Equal(t, "Milk", in.Name)
	})(rec, req)
}

func TestDecodeJSONLeavesValidationToCaller(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

	appctx.Wrap(func(c *appctx.Context) {
		var in struct {
			Name string `json:"name" validate:"required"`
		}
		assert.True(t, c.DecodeJSON(&in))
	})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSONMalformedSends400(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))

	appctx.Wrap(func(c *appctx.Context) {
		var in struct{}
		assert.False(t, c.DecodeJSON(&in))
	})(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	appctx.Wrap(func(c *appctx.Context) {
		c.ValidationError(map[string]string{"name": "The name field is required."})
	})(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name"`)
}

func TestMessageAndNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	appctx.Wrap(func(c *appctx.Context) { c.Message("Item deleted") })(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.JSONEq(t, `{"message":"Item deleted"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	appctx.Wrap(func(c *appctx.Context) { c.NotFound("Item not found") })(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
