package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/interfaces/http/dto"
)

type createProductPayload struct {
	SKU  string `json:"sku" binding:"required,min=3"`
	Name string `json:"name" binding:"required"`
}

func TestHandleValidationError_ReportsJSONFieldNames(t *testing.T) {
	SetupValidator()

	r := gin.New()
	r.Use(RequestID())
	r.POST("/products", func(c *gin.Context) {
		var payload createProductPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"sku":"ab"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 2)

	fields := map[string]string{}
	for _, d := range resp.Error.Details {
		fields[d.Field] = d.Message
	}
	assert.Contains(t, fields["sku"], "at least 3")
	assert.Equal(t, "this field is required", fields["name"])
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	details := FormatValidationErrors(assert.AnError)
	require.Len(t, details, 1)
	assert.Equal(t, "request", details[0].Field)
	assert.Equal(t, assert.AnError.Error(), details[0].Message)
}
