package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ln-sentinel/internal/core/domain"
)

// groupSats renders a sat amount with thousands separators.
func groupSats(sats int64) string {
	neg := sats < 0
	if neg {
		sats = -sats
	}
	digits := strconv.FormatInt(sats, 10)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func timestampLine(now time.Time) string {
	return fmt.Sprintf("🕒 *Timestamp:* %s UTC", now.UTC().Format("2006-01-02 15:04:05"))
}

// formatTick renders the per-tick transaction notification.
func formatTick(instance string, result *domain.TickResult, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚡ *%s* - *Latest Transactions* ⚡\n\n", instance)

	if len(result.Incoming) > 0 {
		b.WriteString("🟢 *Incoming Payments:*\n")
		for i, ev := range result.Incoming {
			fmt.Fprintf(&b, "%d. *Amount:* `%s sats`\n   *Memo:* %s\n", i+1, groupSats(ev.AmountSats), ev.Memo)
		}
		b.WriteString("\n")
	}
	if len(result.Outgoing) > 0 {
		b.WriteString("🔴 *Outgoing Payments:*\n")
		for i, ev := range result.Outgoing {
			fmt.Fprintf(&b, "%d. *Amount:* `%s sats`\n   *Memo:* %s\n", i+1, groupSats(ev.AmountSats), ev.Memo)
		}
		b.WriteString("\n")
	}
	if len(result.Pending) > 0 {
		b.WriteString("⏳ *Payments in Progress:*\n")
		for _, p := range result.Pending {
			fmt.Fprintf(&b, "   `%s sats`\n   📝 *Memo:* %s\n   📅 *Status:* In progress\n", groupSats(p.AmountSats), p.Memo)
		}
		b.WriteString("\n")
	}

	b.WriteString(timestampLine(now))
	return b.String()
}

// formatBalance renders a balance-change or initial-balance notification.
func formatBalance(instance string, update *domain.BalanceUpdate, now time.Time) string {
	if update.Initial {
		return fmt.Sprintf(
			"⚡ *%s* - *Balance Update* ⚡\n\n"+
				"🔹 *Initial Balance:* `%s sats`\n\n%s",
			instance, groupSats(update.CurrentSats), timestampLine(now),
		)
	}

	sign := "+"
	delta := update.DeltaSats
	if delta < 0 {
		sign = "-"
		delta = -delta
	}
	return fmt.Sprintf(
		"⚡ *%s* - *Balance Update* ⚡\n\n"+
			"🔹 *Previous Balance:* `%s sats`\n"+
			"🔹 *Change:* `%s%s sats`\n"+
			"🔹 *New Balance:* `%s sats`\n\n%s",
		instance,
		groupSats(update.PreviousSats),
		sign, groupSats(delta),
		groupSats(update.CurrentSats),
		timestampLine(now),
	)
}

// formatSummary renders the scheduled digest for one wallet.
func formatSummary(instance string, summary domain.WalletSummary, now time.Time) string {
	name := summary.Wallet.Name
	if name == "" {
		name = summary.Wallet.Tag
	}
	return fmt.Sprintf(
		"📊 *%s* - *Wallet Summary* 📊\n\n"+
			"💼 *Wallet:* %s\n"+
			"💰 *Balance:* `%s sats`\n"+
			"🟢 *Incoming:* %d payments, `%s sats`\n"+
			"🔴 *Outgoing:* %d payments, `%s sats`\n\n%s",
		instance,
		name,
		groupSats(summary.BalanceSats),
		summary.IncomingCount, groupSats(summary.IncomingSats),
		summary.OutgoingCount, groupSats(summary.OutgoingSats),
		timestampLine(now),
	)
}
