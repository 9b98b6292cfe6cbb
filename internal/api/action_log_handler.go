package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/pkg/utils"
)

//go:generate mockery --name ActionLogService --output ../mocks
type ActionLogService interface {
	List(ctx context.Context, caller domain.Caller, query dto.ActionLogQuery) ([]dto.ActionLogResponse, error)
	AuthorizeStream(ctx context.Context, caller domain.Caller) (domain.Principal, error)
}

type ActionLogHandler struct {
	*BaseHandler
	service ActionLogService
}

func NewActionLogHandler(service ActionLogService) *ActionLogHandler {
	return &ActionLogHandler{service: service}
}

// ListActionLog godoc
// @Summary List action log entries
// @Description Newest first. Brand admins only see entries of their brand.
// @Tags action-log
// @Produce json
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Param action_type query string false "Filter by action type"
// @Param actor_email query string false "Filter by actor email"
// @Param since query string false "Only entries at or after this time (RFC3339, YYYY-MM-DD or unix ms)"
// @Success 200 {array} dto.ActionLogResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router /action-log [get]
func (h *ActionLogHandler) ListActionLog(c *gin.Context) {
	query, err := actionLogQueryFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error(), Code: string(domain.KindInvalidArgument)})
		return
	}

	entries, err := h.service.List(h.RequestCtx(c), h.Caller(c), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func actionLogQueryFromRequest(c *gin.Context) (dto.ActionLogQuery, error) {
	var query dto.ActionLogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return query, err
	}

	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return query, errors.New("limit must be an integer")
		}
		query.Limit = n
	}

	if since := c.Query("since"); since != "" {
		t, err := utils.ParseSince(since)
		if err != nil {
			return query, err
		}
		query.Since = t
	}

	if query.ActionType != "" && !domain.IsValidActionType(query.ActionType) {
		return query, errors.New("unknown action_type")
	}

	return query, nil
}
