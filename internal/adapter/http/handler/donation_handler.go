package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ln-sentinel/internal/core/domain"
	"ln-sentinel/internal/core/ports"
	"ln-sentinel/pkg/apperror"
	"ln-sentinel/pkg/response"
)

const (
	voterCookie  = "voter_id"
	voterHeader  = "X-Voter-Token"
	voteGuardTTL = 30 * 24 * time.Hour
)

// DonationHandler serves the public donation endpoints.
type DonationHandler struct {
	donations ports.DonationStore
	client    ports.WalletClient
	voteGuard ports.VoteGuard // nil = duplicate-vote protection disabled
	apiKey    string
	linkID    string
	host      string // upstream host, forms the lightning address
	log       zerolog.Logger
}

// NewDonationHandler creates a DonationHandler. voteGuard may be nil.
func NewDonationHandler(
	donations ports.DonationStore,
	client ports.WalletClient,
	voteGuard ports.VoteGuard,
	apiKey, linkID, host string,
	log zerolog.Logger,
) *DonationHandler {
	return &DonationHandler{
		donations: donations,
		client:    client,
		voteGuard: voteGuard,
		apiKey:    apiKey,
		linkID:    linkID,
		host:      host,
		log:       log,
	}
}

type donationsResponse struct {
	TotalDonations   int64             `json:"total_donations"`
	Donations        []domain.Donation `json:"donations"`
	LightningAddress string            `json:"lightning_address"`
	LNURL            string            `json:"lnurl"`
}

// ListDonations handles GET /api/donations. Pay-link enrichment is best
// effort: an unreachable upstream degrades the address fields, never the
// donation list itself.
func (h *DonationHandler) ListDonations(c *gin.Context) {
	total, donations := h.donations.Snapshot()
	resp := donationsResponse{
		TotalDonations:   total,
		Donations:        donations,
		LightningAddress: "Unavailable",
		LNURL:            "Unavailable",
	}

	if h.linkID != "" {
		link, err := h.client.PayLink(c.Request.Context(), h.apiKey, h.linkID)
		if err != nil {
			h.log.Warn().Err(err).Str("link_id", h.linkID).Msg("pay link enrichment failed")
		} else {
			resp.LightningAddress = link.LightningAddress(h.host)
			if link.LNURL != "" {
				resp.LNURL = link.LNURL
			}
		}
	}
	response.OK(c, resp)
}

type voteRequest struct {
	Vote string `json:"vote" binding:"required"`
}

// Vote handles POST /api/donations/:id/vote.
func (h *DonationHandler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	kind, ok := domain.ParseVoteKind(req.Vote)
	if !ok {
		response.Error(c, apperror.ErrInvalidVote())
		return
	}

	donationID := c.Param("id")
	if h.voteGuard != nil {
		voter := h.voterToken(c)
		fresh, err := h.voteGuard.CheckAndSet(c.Request.Context(), voter, donationID, voteGuardTTL)
		if err != nil {
			h.log.Warn().Err(err).Msg("vote guard error, allowing vote")
		} else if !fresh {
			response.Error(c, apperror.ErrDuplicateVote())
			return
		}
	}

	donation, err := h.donations.Vote(donationID, kind)
	if err != nil {
		response.Error(c, apperror.ErrStoreFailure("donations", err))
		return
	}
	if donation == nil {
		response.Error(c, apperror.ErrDonationNotFound())
		return
	}
	response.OK(c, donation)
}

type updatesResponse struct {
	LastUpdate time.Time `json:"last_update"`
}

// Updates handles GET /donations/updates, the cheap change probe a frontend
// polls before refetching the full list.
func (h *DonationHandler) Updates(c *gin.Context) {
	response.OK(c, updatesResponse{LastUpdate: h.donations.LastChanged()})
}

// voterToken identifies a voter across requests. Prefers an explicit header,
// falls back to a cookie, and mints a new cookie for first-time voters.
func (h *DonationHandler) voterToken(c *gin.Context) string {
	if token := c.GetHeader(voterHeader); token != "" {
		return token
	}
	if token, err := c.Cookie(voterCookie); err == nil && token != "" {
		return token
	}
	token := uuid.NewString()
	c.SetCookie(voterCookie, token, int(voteGuardTTL.Seconds()), "/", "", false, true)
	return token
}
