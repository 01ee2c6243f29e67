package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/mrvrecords/pkg/response"
)

func TestOKWritesBareBody(t *testing.T) {
	rec := httptest.NewRecorder()
	response.OK(rec, map[string]any{"Id": 1, "Name": "Milk"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"Id":1,"Name":"Milk"}`, rec.Body.String())
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Message(rec, "Item deleted")
	assert.JSONEq(t, `{"message":"Item deleted"}`, rec.Body.String())
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	response.ValidationError(rec, map[string]string{"name": "The name field is required."})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"status":400,"message":"Validation failed","errors":{"name":"The name field is required."}}`,
		rec.Body.String())
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	response.NotFound(rec, "Item not found")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"message":"Item not found"}`, rec.Body.String())
}
