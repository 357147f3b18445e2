package file

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/handler"
	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/service/file"
)

type Handler struct {
	service *file.Service
}

func NewHandler(service *file.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group("/archivos")
	{
		files.POST("/upload", h.Upload)
		files.GET("", h.List)
		files.GET("/:id", h.Get)
		files.GET("/download/:id", h.Download)
		files.PUT("/:id", h.Update)
		files.PATCH("/desactivar/:id", h.Deactivate)
		files.PATCH("/activar/:id", h.Reactivate)
		files.DELETE("/:id", h.Delete)
	}
}

// Upload receives the document as multipart form field "archivo" with an
// optional "subido_por" uploader identifier.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("missing form file 'archivo'"))
		return
	}

	var uploadedBy *uuid.UUID
	if raw := c.PostForm("subido_por"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid subido_por"))
			return
		}
		uploadedBy = &id
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("could not read uploaded file"))
		return
	}
	defer src.Close()

	created, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, uploadedBy, src)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid file ID"))
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
	var filter model.FileFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	files, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(files))
}

// Download streams the stored bytes back as an attachment under the original
// client filename.
func (h *Handler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid file ID"))
		return
	}

	found, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.Header("Content-Type", "application/octet-stream")
	c.FileAttachment(found.StoragePath, found.Name)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid file ID"))
		return
	}

	var req model.UpdateFileRequest
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
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid file ID"))
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
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid file ID"))
		return
	}

	reactivated, err := h.service.Reactivate(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(reactivated))
}

// Delete removes both the stored bytes and the database record.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid file ID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"id_archivo": id}))
}
