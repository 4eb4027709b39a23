package handler

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ln-sentinel/internal/core/domain"
	"ln-sentinel/pkg/apperror"
	"ln-sentinel/pkg/response"
)

// commandTimeout bounds one command's upstream fetches and reply delivery.
const commandTimeout = 30 * time.Second

// CommandResponder renders chat-command replies.
type CommandResponder interface {
	ReplyBalance(ctx context.Context, chatID int64, balanceSats int64) error
	ReplyTransactions(ctx context.Context, chatID int64, result *domain.TickResult) error
	ReplyInfo(ctx context.Context, chatID int64) error
	ReplyHelp(ctx context.Context, chatID int64) error
	ReplyUnknown(ctx context.Context, chatID int64) error
	Acknowledge(ctx context.Context, callbackID string) error
}

// WalletReader is the read-only view the command handlers pull data from.
type WalletReader interface {
	Recent(ctx context.Context, wallet domain.WalletDescriptor) (*domain.TickResult, error)
	Summarize(ctx context.Context, wallet domain.WalletDescriptor) (*domain.WalletSummary, error)
}

// WebhookHandler receives bot updates and dispatches chat commands.
type WebhookHandler struct {
	responder CommandResponder
	reader    WalletReader
	wallet    domain.WalletDescriptor // commands operate on the primary wallet
	log       zerolog.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(responder CommandResponder, reader WalletReader, wallet domain.WalletDescriptor, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		responder: responder,
		reader:    reader,
		wallet:    wallet,
		log:       log,
	}
}

type webhookUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		Text string `json:"text"`
	} `json:"message"`
	CallbackQuery *struct {
		ID   string `json:"id"`
		Data string `json:"data"`
		From struct {
			ID int64 `json:"id"`
		} `json:"from"`
	} `json:"callback_query"`
}

// HandleUpdate handles POST /webhook. The update is acknowledged immediately
// and the command runs detached, so a slow upstream never makes the bot
// platform retry the delivery.
func (h *WebhookHandler) HandleUpdate(c *gin.Context) {
	var update webhookUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if update.Message == nil && update.CallbackQuery == nil {
		response.Error(c, apperror.ErrEmptyUpdate())
		return
	}

	go h.dispatch(update)
	response.OK(c, gin.H{"status": "accepted"})
}

func (h *WebhookHandler) dispatch(update webhookUpdate) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if update.CallbackQuery != nil {
		h.handleCallback(ctx, update.CallbackQuery.ID, update.CallbackQuery.Data, update.CallbackQuery.From.ID)
		return
	}

	chatID := update.Message.Chat.ID
	command := strings.TrimSpace(update.Message.Text)

	var err error
	switch {
	case strings.HasPrefix(command, "/balance"):
		err = h.replyBalance(ctx, chatID)
	case strings.HasPrefix(command, "/transactions"):
		err = h.replyTransactions(ctx, chatID)
	case strings.HasPrefix(command, "/info"):
		err = h.responder.ReplyInfo(ctx, chatID)
	case strings.HasPrefix(command, "/help"):
		err = h.responder.ReplyHelp(ctx, chatID)
	default:
		err = h.responder.ReplyUnknown(ctx, chatID)
	}
	if err != nil {
		h.log.Error().Err(err).Str("command", command).Int64("chat_id", chatID).Msg("command reply failed")
	}
}

func (h *WebhookHandler) handleCallback(ctx context.Context, callbackID, data string, chatID int64) {
	if err := h.responder.Acknowledge(ctx, callbackID); err != nil {
		h.log.Warn().Err(err).Msg("callback acknowledgement failed")
	}
	if data != "view_transactions" {
		h.log.Debug().Str("data", data).Msg("unknown callback action ignored")
		return
	}
	if err := h.replyTransactions(ctx, chatID); err != nil {
		h.log.Error().Err(err).Int64("chat_id", chatID).Msg("transactions callback failed")
	}
}

func (h *WebhookHandler) replyBalance(ctx context.Context, chatID int64) error {
	summary, err := h.reader.Summarize(ctx, h.wallet)
	if err != nil {
		return err
	}
	return h.responder.ReplyBalance(ctx, chatID, summary.BalanceSats)
}

func (h *WebhookHandler) replyTransactions(ctx context.Context, chatID int64) error {
	result, err := h.reader.Recent(ctx, h.wallet)
	if err != nil {
		return err
	}
	return h.responder.ReplyTransactions(ctx, chatID, result)
}
