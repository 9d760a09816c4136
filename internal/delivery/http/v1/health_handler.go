package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/usecase"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r *gin.Engine, api *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	r.GET("/", handler.Welcome)
	api.GET("/health", handler.Health)
}

// Welcome godoc
// @Summary      Welcome message
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.MessageBody
// @Router       / [get]
func (h *HealthHandler) Welcome(c *gin.Context) {
	response.Message(c, http.StatusOK, "Welcome to the Job Board API")
}

// Health godoc
// @Summary      Health check
// @Description  Reports whether the API can reach its database
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  response.ErrorBody
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status, err := h.healthUC.Check(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, status)
}
