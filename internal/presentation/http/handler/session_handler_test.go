package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pospoint/terminal-api/internal/application/service"
	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContext_IncludesOperator(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessions := service.NewSessionService(service.NewOutletResolver())
	sessions.SelectBusiness(&entity.Business{ID: "b-1", Type: "retail"})
	h := NewSessionHandler(sessions, service.NewOutletResolver(), nil)

	router := gin.New()
	router.Use(operatorStamp(uuid.New(), "ada", enum.RoleManager))
	router.GET("/session", h.GetContext)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Operator map[string]string `json:"operator"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "ada", envelope.Data.Operator["username"])
	assert.Equal(t, "manager", envelope.Data.Operator["role"])
}

func TestGetContext_AnonymousOmitsOperator(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSessionHandler(service.NewSessionService(service.NewOutletResolver()), service.NewOutletResolver(), nil)

	router := gin.New()
	router.GET("/session", h.GetContext)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotContains(t, envelope.Data, "operator")
}
