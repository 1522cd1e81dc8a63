package game

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

// NewHandler wires the games endpoints. port is used for hrefs when the
// request does not carry the local address; publisher may be nil.
func NewHandler(service *Service, publisher events.Publisher, port string) *Handler {
	return &Handler{
		service: service,
		events:  publisher,
		port:    port,
	}
}

// ListGames handles GET /api/games
// @Summary List games
// @Tags Games
// @Produce json
// @Param $expand query string false "platform"
// @Param $filter query string false "<field> eq <value>; field is platform, genre, status or year"
// @Param $search query string false "Case-insensitive substring of the name"
// @Success 200 {object} ListResponse
// @Failure 400 {object} map[string]string
// @Router /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	q, err := ParseListQuery(c.Query("$expand"), c.Query("$filter"), c.Query("$search"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	origin := href.FromRequest(c.Request, h.port)
	if q.ExpandPlatform {
		games, err := h.service.ListExpanded(c.Request.Context(), q, origin)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.JSON(c, http.StatusOK, ExpandedListResponse{Games: games})
		return
	}

	games, err := h.service.List(c.Request.Context(), q, origin)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, ListResponse{Games: games})
}

// GetGame handles GET /api/games/:id
// @Summary Get game by ID
// @Tags Games
// @Produce json
// @Param id path int true "Game ID"
// @Param $expand query string false "platform"
// @Success 200 {object} map[string]domain.GameRaw
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{id} [get]
func (h *Handler) GetGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	expand, err := ParseExpand(c.Query("$expand"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	origin := href.FromRequest(c.Request, h.port)
	var game any
	if expand {
		game, err = h.service.GetExpanded(c.Request.Context(), id, origin)
	} else {
		game, err = h.service.Get(c.Request.Context(), id, origin)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"game": game})
}

// CreateGame handles POST /api/games
// @Summary Add a game
// @Tags Games
// @Accept json
// @Produce json
// @Param request body GameRequest true "Game"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
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
	response.Created(c, http.StatusCreated, "Game added successfully!", id)
}

// UpdateGame handles PUT /api/games/:id
// @Summary Replace a game
// @Tags Games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param request body GameRequest true "Game"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
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
	response.Message(c, http.StatusOK, "Game updated successfully!")
}

// DeleteGame handles DELETE /api/games/:id
// @Summary Delete a game
// @Description Succeeds whether or not the game exists.
// @Tags Games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	h.publish(events.TypeDeleted, id)
	response.Message(c, http.StatusOK, "Game deleted successfully!")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrGameNotFound) {
		response.Error(c, http.StatusNotFound, "Game not found")
		return
	}
	response.Error(c, http.StatusBadRequest, err.Error())
}

func (h *Handler) publish(typ string, id int64) {
	if h.events == nil {
		return
	}
	h.events.Publish(events.Event{Type: typ, Resource: events.ResourceGames, ID: id})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid game ID")
		return 0, false
	}
	return id, true
}

func bindRequest(c *gin.Context) (*GameRequest, bool) {
	var req GameRequest
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
