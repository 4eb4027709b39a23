package handler

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ln-sentinel/internal/core/ports"
	"ln-sentinel/internal/service"
	"ln-sentinel/pkg/apperror"
	"ln-sentinel/pkg/response"
)

// HeaderAdminToken authenticates administrative requests.
const HeaderAdminToken = "X-Admin-Token"

// AdminHandler serves the forbidden-word administration endpoints.
type AdminHandler struct {
	sanitizer *service.Sanitizer
	donations ports.DonationStore
	token     string
	log       zerolog.Logger
}

// NewAdminHandler creates an AdminHandler. An empty token disables every
// admin route; the router skips registration in that case.
func NewAdminHandler(sanitizer *service.Sanitizer, donations ports.DonationStore, token string, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		sanitizer: sanitizer,
		donations: donations,
		token:     token,
		log:       log,
	}
}

// Authorize verifies the admin token header.
func (h *AdminHandler) Authorize(c *gin.Context) {
	provided := c.GetHeader(HeaderAdminToken)
	if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(h.token)) != 1 {
		response.Error(c, apperror.ErrUnauthorizedAdmin())
		c.Abort()
		return
	}
	c.Next()
}

type forbiddenWordsRequest struct {
	Words []string `json:"words" binding:"required"`
}

type forbiddenWordsResponse struct {
	Added int      `json:"added"`
	Words []string `json:"words"`
}

// AddForbiddenWords handles POST /api/admin/forbidden-words. New words take
// effect immediately for future memos and the stored donation memos are
// re-sanitized in the same request.
func (h *AdminHandler) AddForbiddenWords(c *gin.Context) {
	var req forbiddenWordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	added := h.sanitizer.AddWords(req.Words...)
	if added > 0 {
		if err := h.donations.Resanitize(h.sanitizer.Sanitize); err != nil {
			response.Error(c, apperror.ErrStoreFailure("donations", err))
			return
		}
		h.log.Info().Int("added", added).Msg("forbidden word list extended, donations re-sanitized")
	}

	response.OK(c, forbiddenWordsResponse{
		Added: added,
		Words: h.sanitizer.Words(),
	})
}

// ListForbiddenWords handles GET /api/admin/forbidden-words.
func (h *AdminHandler) ListForbiddenWords(c *gin.Context) {
	response.OK(c, forbiddenWordsResponse{Words: h.sanitizer.Words()})
}
