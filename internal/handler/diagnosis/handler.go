package diagnosis

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/handler"
	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/service/diagnosis"
)

type Handler struct {
	service *diagnosis.Service
}

func NewHandler(service *diagnosis.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	diagnoses := r.Group("/diagnosticos-secundarios")
	{
		diagnoses.POST("", h.Create)
		diagnoses.GET("", h.List)
		diagnoses.GET("/:id", h.Get)
		diagnoses.GET("/admision/:id", h.ListByAdmission)
		diagnoses.PUT("/:id", h.Update)
		diagnoses.DELETE("/:id", h.Deactivate)
		diagnoses.PATCH("/:id/activar", h.Reactivate)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateSecondaryDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid diagnosis ID"))
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) List(c *gin.Context) {
	var filter model.SecondaryDiagnosisFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	diagnoses, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(diagnoses))
}

func (h *Handler) ListByAdmission(c *gin.Context) {
	admissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid admission ID"))
		return
	}

	diagnoses, err := h.service.ListByAdmission(c.Request.Context(), admissionID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(diagnoses))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid diagnosis ID"))
		return
	}

	var req model.UpdateSecondaryDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid diagnosis ID"))
		return
	}

	deactivated, err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(deactivated))
}

func (h *Handler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid diagnosis ID"))
		return
	}

	reactivated, err := h.service.Reactivate(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(reactivated))
}
