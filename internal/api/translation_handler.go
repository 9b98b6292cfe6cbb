package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/domain"
)

//go:generate mockery --name TranslationService --output ../mocks
type TranslationService interface {
	TranslateHouseRules(ctx context.Context, caller domain.Caller, req dto.TranslateHouseRulesRequest) (*dto.TranslationResponse, error)
	TranslateNotification(ctx context.Context, caller domain.Caller, req dto.TranslateNotificationRequest) (*dto.TranslationResponse, error)
}

type TranslationHandler struct {
	*BaseHandler
	service TranslationService
}

func NewTranslationHandler(service TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

// TranslateHouseRules godoc
// @Summary Translate house rules
// @Description Languages that fail are listed in failedLanguages
// @Tags translations
// @Accept json
// @Produce json
// @Param body body dto.TranslateHouseRulesRequest true "Text and languages"
// @Success 200 {object} dto.TranslationResponse
// @Failure 400 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Security BearerAuth
// @Router /translations/house-rules [post]
func (h *TranslationHandler) TranslateHouseRules(c *gin.Context) {
	var req dto.TranslateHouseRulesRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.TranslateHouseRules(h.RequestCtx(c), h.Caller(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TranslateNotification godoc
// @Summary Translate a broadcast notification
// @Tags translations
// @Accept json
// @Produce json
// @Param body body dto.TranslateNotificationRequest true "Text and languages"
// @Success 200 {object} dto.TranslationResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Security BearerAuth
// @Router /translations/notification [post]
func (h *TranslationHandler) TranslateNotification(c *gin.Context) {
	var req dto.TranslateNotificationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.TranslateNotification(h.RequestCtx(c), h.Caller(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
