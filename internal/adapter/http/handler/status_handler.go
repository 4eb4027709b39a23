package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ln-sentinel/internal/core/domain"
	"ln-sentinel/internal/core/ports"
	"ln-sentinel/pkg/response"
)

// StatusHandler serves the instance status endpoint.
type StatusHandler struct {
	instanceName string
	wallets      []domain.WalletDescriptor
	seen         ports.SeenLedger
	balances     ports.BalanceStore
	donations    ports.DonationStore
	startedAt    time.Time
	log          zerolog.Logger
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler(
	instanceName string,
	wallets []domain.WalletDescriptor,
	seen ports.SeenLedger,
	balances ports.BalanceStore,
	donations ports.DonationStore,
	log zerolog.Logger,
) *StatusHandler {
	return &StatusHandler{
		instanceName: instanceName,
		wallets:      wallets,
		seen:         seen,
		balances:     balances,
		donations:    donations,
		startedAt:    time.Now(),
		log:          log,
	}
}

type walletStatus struct {
	Tag         string `json:"tag"`
	Name        string `json:"name"`
	BalanceSats *int64 `json:"balance_sats"` // null until the first tick
}

type statusResponse struct {
	InstanceName   string         `json:"instance_name"`
	UptimeSeconds  int64          `json:"uptime_seconds"`
	Wallets        []walletStatus `json:"wallets"`
	SeenPayments   int            `json:"seen_payments"`
	TotalDonations int64          `json:"total_donations"`
	DonationCount  int            `json:"donation_count"`
}

// GetStatus handles GET /status.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	wallets := make([]walletStatus, 0, len(h.wallets))
	for _, w := range h.wallets {
		ws := walletStatus{Tag: w.Tag, Name: w.Name}
		sats, found, err := h.balances.Load(w.Tag)
		if err != nil {
			h.log.Error().Err(err).Str("wallet", w.Tag).Msg("failed to load balance snapshot for status")
		} else if found {
			ws.BalanceSats = &sats
		}
		wallets = append(wallets, ws)
	}

	total, donations := h.donations.Snapshot()
	response.OK(c, statusResponse{
		InstanceName:   h.instanceName,
		UptimeSeconds:  int64(time.Since(h.startedAt).Seconds()),
		Wallets:        wallets,
		SeenPayments:   h.seen.Count(),
		TotalDonations: total,
		DonationCount:  len(donations),
	})
}
