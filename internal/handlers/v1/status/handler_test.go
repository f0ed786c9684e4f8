package status

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func TestHandler_ReportsOK(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler().Register(api)

	resp := api.Get("/v1/status")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body StatusBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}
