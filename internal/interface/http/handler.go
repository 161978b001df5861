package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
	"github.com/wvwild/adventure-hub/internal/domain/filter"
	"github.com/wvwild/adventure-hub/internal/domain/hub"
	apperrors "github.com/wvwild/adventure-hub/pkg/errors"
)

// Handler wires the HTTP transport to the hub service.
type Handler struct {
	hubSvc hub.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(hubSvc hub.Service, logger *slog.Logger) *Handler {
	return &Handler{
		hubSvc: hubSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Health reports liveness and the size of the loaded catalog.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "adventures": h.hubSvc.Count()})
}

// SearchAdventures filters the catalog with the state encoded in the query string.
func (h *Handler) SearchAdventures(c *gin.Context) {
	state, err := stateFromQuery(c)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, errMessage(err), err))
		return
	}

	view, err := h.hubSvc.Search(c.Request.Context(), state)
	if err != nil {
		abortWithError(c, fromAppError(err, "search_failed"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetAdventure returns a single adventure.
func (h *Handler) GetAdventure(c *gin.Context) {
	item, err := h.hubSvc.Adventure(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, fromAppError(err, "adventure_failed"))
		return
	}
	c.JSON(http.StatusOK, item)
}

// Facets returns the option metadata for the filter controls.
func (h *Handler) Facets(c *gin.Context) {
	facets, err := h.hubSvc.Facets(c.Request.Context())
	if err != nil {
		abortWithError(c, fromAppError(err, "facets_failed"))
		return
	}
	c.JSON(http.StatusOK, facets)
}

// OpenSession mounts a new filter session at the default state.
func (h *Handler) OpenSession(c *gin.Context) {
	view, err := h.hubSvc.OpenSession(c.Request.Context())
	if err != nil {
		abortWithError(c, fromAppError(err, "session_failed"))
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession returns the current view of a session.
func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.hubSvc.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, fromAppError(err, "session_failed"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// DispatchAction applies an action envelope to a session.
func (h *Handler) DispatchAction(c *gin.Context) {
	var envelope filter.ActionEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	action, err := envelope.Action()
	if err != nil {
		abortWithError(c, fromAppError(err, "dispatch_failed"))
		return
	}

	view, err := h.hubSvc.Dispatch(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		abortWithError(c, fromAppError(err, "dispatch_failed"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleFilter applies one control click to a session.
func (h *Handler) ToggleFilter(c *gin.Context) {
	var req hub.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	view, err := h.hubSvc.Toggle(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithError(c, fromAppError(err, "toggle_failed"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// CloseSession discards a session.
func (h *Handler) CloseSession(c *gin.Context) {
	if err := h.hubSvc.CloseSession(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, fromAppError(err, "session_failed"))
		return
	}
	c.Status(http.StatusNoContent)
}

// stateFromQuery reads repeatable season, gear and suitability params, a
// single difficulty and optional elevationMin/elevationMax bounds.
func stateFromQuery(c *gin.Context) (filter.State, error) {
	state := filter.DefaultState()
	state.Season = filter.NewTagSet(c.QueryArray("season")...)
	state.Gear = filter.NewTagSet(c.QueryArray("gear")...)
	state.Suitability = filter.NewTagSet(c.QueryArray("suitability")...)
	state.Difficulty = adventure.Difficulty(c.Query("difficulty"))

	if raw := c.Query("elevationMin"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter.State{}, apperrors.Wrap(apperrors.CodeInvalidInput, "elevationMin must be an integer", err)
		}
		state.Elevation.Min = v
	}
	if raw := c.Query("elevationMax"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter.State{}, apperrors.Wrap(apperrors.CodeInvalidInput, "elevationMax must be an integer", err)
		}
		state.Elevation.Max = v
	}
	return state, nil
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
