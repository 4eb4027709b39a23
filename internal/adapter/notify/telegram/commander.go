package telegram

import (
	"context"
	"fmt"
	"time"

	"ln-sentinel/internal/core/domain"
)

// CommanderInfo is the static instance information rendered by the /info
// command.
type CommanderInfo struct {
	InstanceName   string
	ThresholdSats  int64
	PollInterval   time.Duration
	DigestInterval time.Duration
	DonationsURL   string
	InfoURL        string
}

// Commander renders chat-command replies. It shares the publisher's message
// formats so a commanded transaction list looks like a scheduled one.
type Commander struct {
	notifier *Notifier
	info     CommanderInfo
	now      func() time.Time
}

// NewCommander creates a commander.
func NewCommander(notifier *Notifier, info CommanderInfo) *Commander {
	return &Commander{
		notifier: notifier,
		info:     info,
		now:      time.Now,
	}
}

func (c *Commander) controls() []domain.Control {
	var out []domain.Control
	if c.info.InfoURL != "" {
		out = append(out, domain.Control{Label: "🔗 View Details", URL: c.info.InfoURL})
	}
	if c.info.DonationsURL != "" {
		out = append(out, domain.Control{Label: "💰 View Donations", URL: c.info.DonationsURL})
	}
	out = append(out, domain.Control{Label: "📈 View Transactions", CallbackData: "view_transactions"})
	return out
}

// ReplyBalance answers the /balance command.
func (c *Commander) ReplyBalance(ctx context.Context, chatID int64, balanceSats int64) error {
	text := fmt.Sprintf(
		"📊 *%s* - *Wallet Balance*\n\n"+
			"🔹 *Current Balance:* `%s sats`\n\n%s",
		c.info.InstanceName, groupSats(balanceSats), timestampLine(c.now()),
	)
	return c.notifier.SendTo(ctx, chatID, text, c.controls())
}

// ReplyTransactions answers the /transactions command and the
// view_transactions callback with the latest transaction list.
func (c *Commander) ReplyTransactions(ctx context.Context, chatID int64, result *domain.TickResult) error {
	if !result.HasPayments() {
		return c.notifier.SendTo(ctx, chatID, "No transactions found.", nil)
	}
	return c.notifier.SendTo(ctx, chatID, formatTick(c.info.InstanceName, result, c.now()), c.controls())
}

// ReplyInfo answers the /info command.
func (c *Commander) ReplyInfo(ctx context.Context, chatID int64) error {
	text := fmt.Sprintf(
		"ℹ️ *%s* - *Information*\n\n"+
			"🔔 *Balance Change Threshold:* `%d sats`\n"+
			"🔄 *Polling Interval:* Every `%s`\n"+
			"📊 *Wallet Summary Interval:* Every `%s`\n\n%s",
		c.info.InstanceName,
		c.info.ThresholdSats,
		intervalText(c.info.PollInterval),
		intervalText(c.info.DigestInterval),
		timestampLine(c.now()),
	)
	return c.notifier.SendTo(ctx, chatID, text, c.controls())
}

// ReplyHelp answers the /help command.
func (c *Commander) ReplyHelp(ctx context.Context, chatID int64) error {
	text := fmt.Sprintf(
		"🤖 *%s* - *Help*\n\n"+
			"*/balance* - Show the current wallet balance\n"+
			"*/transactions* - Show the latest transactions\n"+
			"*/info* - Show instance settings\n"+
			"*/help* - Show this message",
		c.info.InstanceName,
	)
	return c.notifier.SendTo(ctx, chatID, text, nil)
}

// ReplyUnknown answers any unrecognized command.
func (c *Commander) ReplyUnknown(ctx context.Context, chatID int64) error {
	return c.notifier.SendTo(ctx, chatID,
		"Unknown command. Available commands: /balance, /transactions, /info, /help", nil)
}

// Acknowledge closes an inline-keyboard callback.
func (c *Commander) Acknowledge(ctx context.Context, callbackID string) error {
	return c.notifier.AnswerCallback(ctx, callbackID)
}

func intervalText(d time.Duration) string {
	if d <= 0 {
		return "disabled"
	}
	return d.String()
}
