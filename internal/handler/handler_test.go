package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSON(t *testing.T) {
	t.Run("Encodes the value with a json content type", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeJSON(rr, map[string]int{"n": 1})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"n":1}`, rr.Body.String())
	})

	t.Run("Encode failure does not corrupt the response", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeJSON(rr, make(chan int))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "Internal server error")
		assert.Empty(t, rr.Body.String())
	})
}
