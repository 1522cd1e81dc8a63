package platform

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vgm/internal/domain/events"
	"vgm/internal/pkg/href"
	"vgm/internal/pkg/response"
	"vgm/internal/pkg/validator"
)

type Handler struct {
	service *Service
	events  events.Publisher
	port    string
}

func NewHandler(service *Service, publisher events.Publisher, port string) *Handler {
	return &Handler{
		service: service,
		events:  publisher,
		port:    port,
	}
}

// ListPlatforms handles GET /api/platforms
// @Summary List platforms
// @Tags Platforms
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 400 {object} map[string]string
// @Router /platforms [get]
func (h *Handler) ListPlatforms(c *gin.Context) {
	platforms, err := h.service.List(c.Request.Context(), href.FromRequest(c.Request, h.port))
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, ListResponse{Platforms: platforms})
}

// GetPlatform handles GET /api/platforms/:id
func (h *Handler) GetPlatform(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id, href.FromRequest(c.Request, h.port))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"platform": p})
}

// CountGames handles GET /api/platforms/:id/games/count
// @Summary Count games referencing a platform
// @Tags Platforms
// @Produce json
// @Param id path int true "Platform ID"
// @Success 200 {object} CountResponse
// @Router /platforms/{id}/games/count [get]
func (h *Handler) CountGames(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := h.service.GameCount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, CountResponse{Count: n})
}

// CreatePlatform handles POST /api/platforms
func (h *Handler) CreatePlatform(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	h.publish(events.TypeCreated, id)
	response.Created(c, http.StatusCreated, "Platform added successfully!", id)
}

// UpdatePlatform handles PUT /api/platforms/:id
func (h *Handler) UpdatePlatform(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		h.writeError(c, err)
		return
	}

	h.publish(events.TypeUpdated, id)
	response.Message(c, http.StatusOK, "Platform updated successfully!")
}

// DeletePlatform handles DELETE /api/platforms/:id
// @Summary Delete a platform
// @Description Refused with 409 while any game references the platform.
// @Tags Platforms
// @Produce json
// @Param id path int true "Platform ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /platforms/{id} [delete]
func (h *Handler) DeletePlatform(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	h.publish(events.TypeDeleted, id)
	response.Message(c, http.StatusOK, "Platform deleted successfully!")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPlatformNotFound):
		response.Error(c, http.StatusNotFound, "Platform not found")
	case errors.Is(err, ErrPlatformInUse):
		response.Error(c, http.StatusConflict, err.Error())
	default:
		response.Error(c, http.StatusBadRequest, err.Error())
	}
}

func (h *Handler) publish(typ string, id int64) {
	if h.events == nil {
		return
	}
	h.events.Publish(events.Event{Type: typ, Resource: events.ResourcePlatforms, ID: id})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid platform ID")
		return 0, false
	}
	return id, true
}

func bindRequest(c *gin.Context) (*PlatformRequest, bool) {
	var req PlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}
	if errs := validator.Validate(&req); errs != nil {
		response.Error(c, http.StatusBadRequest, validator.Summary(errs))
		return nil, false
	}
	return &req, true
}
