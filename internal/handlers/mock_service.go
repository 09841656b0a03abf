package handlers

import (
	"context"

	"solartherm/internal/models"
	"solartherm/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockStatus struct {
	status models.Status
	err    error
	calls  int
}

func (m *mockStatus) Poll(ctx context.Context) (models.Status, error) {
	m.calls++
	return m.status, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
