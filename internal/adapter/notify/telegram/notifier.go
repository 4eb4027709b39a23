// Package telegram delivers notifications through the Telegram Bot API and
// turns tick results into formatted messages.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"ln-sentinel/internal/core/domain"
	"ln-sentinel/pkg/apperror"
)

// DefaultAPIBase is the public Bot API endpoint.
const DefaultAPIBase = "https://api.telegram.org"

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Notifier implements ports.Notifier over the Bot API sendMessage method.
// Messages use Markdown parse mode; controls become an inline keyboard with
// one button per row.
type Notifier struct {
	apiBase    string
	botToken   string
	chatID     int64
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewNotifier creates a notifier bound to one default chat. apiBase falls
// back to the public endpoint when empty.
func NewNotifier(apiBase, botToken string, chatID int64, httpClient HTTPClient, log zerolog.Logger) *Notifier {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	return &Notifier{
		apiBase:    apiBase,
		botToken:   botToken,
		chatID:     chatID,
		httpClient: httpClient,
		log:        log,
	}
}

type inlineButton struct {
	Text         string `json:"text"`
	URL          string `json:"url,omitempty"`
	CallbackData string `json:"callback_data,omitempty"`
}

type replyMarkup struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

type sendMessageRequest struct {
	ChatID      int64        `json:"chat_id"`
	Text        string       `json:"text"`
	ParseMode   string       `json:"parse_mode"`
	ReplyMarkup *replyMarkup `json:"reply_markup,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send delivers text to the configured default chat.
func (n *Notifier) Send(ctx context.Context, text string, controls []domain.Control) error {
	return n.SendTo(ctx, n.chatID, text, controls)
}

// SendTo delivers text to an explicit chat, used for command replies.
func (n *Notifier) SendTo(ctx context.Context, chatID int64, text string, controls []domain.Control) error {
	payload := sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "Markdown",
	}
	if len(controls) > 0 {
		markup := &replyMarkup{}
		for _, c := range controls {
			markup.InlineKeyboard = append(markup.InlineKeyboard, []inlineButton{{
				Text:         c.Label,
				URL:          c.URL,
				CallbackData: c.CallbackData,
			}})
		}
		payload.ReplyMarkup = markup
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sendMessage payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return apperror.ErrUpstreamUnreachable("telegram", err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return apperror.ErrUpstreamDecode("telegram", err)
	}
	if !apiResp.OK {
		n.log.Error().
			Int("status", resp.StatusCode).
			Str("description", apiResp.Description).
			Msg("telegram rejected message")
		return apperror.ErrUpstreamStatus("telegram", resp.StatusCode)
	}
	return nil
}

// AnswerCallback acknowledges an inline-keyboard press so the client stops
// showing its loading spinner.
func (n *Notifier) AnswerCallback(ctx context.Context, callbackID string) error {
	body, err := json.Marshal(map[string]string{"callback_query_id": callbackID})
	if err != nil {
		return fmt.Errorf("marshal answerCallbackQuery payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/answerCallbackQuery", n.apiBase, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build answerCallbackQuery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return apperror.ErrUpstreamUnreachable("telegram", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperror.ErrUpstreamStatus("telegram", resp.StatusCode)
	}
	return nil
}

// Publisher implements ports.EventPublisher by formatting results and sending
// them through the notifier with the standard control row.
type Publisher struct {
	notifier     *Notifier
	instanceName string
	donationsURL string
	infoURL      string
	now          func() time.Time
}

// NewPublisher wires a publisher. donationsURL and infoURL are optional;
// absent URLs simply drop the corresponding button.
func NewPublisher(notifier *Notifier, instanceName, donationsURL, infoURL string) *Publisher {
	return &Publisher{
		notifier:     notifier,
		instanceName: instanceName,
		donationsURL: donationsURL,
		infoURL:      infoURL,
		now:          time.Now,
	}
}

// controls builds the inline keyboard attached to every notification.
func (p *Publisher) controls() []domain.Control {
	var out []domain.Control
	if p.infoURL != "" {
		out = append(out, domain.Control{Label: "🔗 View Details", URL: p.infoURL})
	}
	if p.donationsURL != "" {
		out = append(out, domain.Control{Label: "💰 View Donations", URL: p.donationsURL})
	}
	out = append(out, domain.Control{Label: "📈 View Transactions", CallbackData: "view_transactions"})
	return out
}

// PublishTick sends the transaction notification and, when present, a
// separate balance notification.
func (p *Publisher) PublishTick(ctx context.Context, result *domain.TickResult) error {
	now := p.now()
	if result.HasPayments() {
		if err := p.notifier.Send(ctx, formatTick(p.instanceName, result, now), p.controls()); err != nil {
			return err
		}
	}
	if result.Balance != nil {
		if err := p.notifier.Send(ctx, formatBalance(p.instanceName, result.Balance, now), p.controls()); err != nil {
			return err
		}
	}
	return nil
}

// PublishSummary sends the scheduled digest.
func (p *Publisher) PublishSummary(ctx context.Context, summary domain.WalletSummary) error {
	return p.notifier.Send(ctx, formatSummary(p.instanceName, summary, p.now()), p.controls())
}
