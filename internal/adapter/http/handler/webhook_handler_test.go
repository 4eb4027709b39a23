package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ln-sentinel/internal/core/domain"
)

// recordingResponder captures which reply was produced, signalling done so
// tests can wait for the detached dispatch.
type recordingResponder struct {
	done     chan string
	balances chan int64
}

func newRecordingResponder() *recordingResponder {
	return &recordingResponder{
		done:     make(chan string, 4),
		balances: make(chan int64, 1),
	}
}

func (r *recordingResponder) ReplyBalance(_ context.Context, _ int64, balanceSats int64) error {
	r.balances <- balanceSats
	r.done <- "balance"
	return nil
}

func (r *recordingResponder) ReplyTransactions(_ context.Context, _ int64, _ *domain.TickResult) error {
	r.done <- "transactions"
	return nil
}

func (r *recordingResponder) ReplyInfo(context.Context, int64) error {
	r.done <- "info"
	return nil
}

func (r *recordingResponder) ReplyHelp(context.Context, int64) error {
	r.done <- "help"
	return nil
}

func (r *recordingResponder) ReplyUnknown(context.Context, int64) error {
	r.done <- "unknown"
	return nil
}

func (r *recordingResponder) Acknowledge(context.Context, string) error {
	r.done <- "ack"
	return nil
}

func (r *recordingResponder) wait(t *testing.T) string {
	t.Helper()
	select {
	case reply := <-r.done:
		return reply
	case <-time.After(time.Second):
		t.Fatal("no reply dispatched")
		return ""
	}
}

// staticReader serves fixed wallet views.
type staticReader struct {
	result  *domain.TickResult
	summary *domain.WalletSummary
}

func (s *staticReader) Recent(context.Context, domain.WalletDescriptor) (*domain.TickResult, error) {
	return s.result, nil
}

func (s *staticReader) Summarize(context.Context, domain.WalletDescriptor) (*domain.WalletSummary, error) {
	return s.summary, nil
}

func postUpdate(t *testing.T, h *WebhookHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")
	h.HandleUpdate(c)
	return w
}

func newWebhookFixture() (*WebhookHandler, *recordingResponder) {
	responder := newRecordingResponder()
	reader := &staticReader{
		result: &domain.TickResult{
			Incoming: []domain.ClassifiedEvent{{AmountSats: 21}},
		},
		summary: &domain.WalletSummary{BalanceSats: 150},
	}
	h := NewWebhookHandler(responder, reader, domain.WalletDescriptor{Tag: "main"}, zerolog.Nop())
	return h, responder
}

func TestHandleUpdate_BalanceCommand(t *testing.T) {
	h, responder := newWebhookFixture()

	w := postUpdate(t, h, `{"update_id": 1, "message": {"chat": {"id": 42}, "text": "/balance"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "balance", responder.wait(t))
	assert.Equal(t, int64(150), <-responder.balances)
}

func TestHandleUpdate_TransactionsCommand(t *testing.T) {
	h, responder := newWebhookFixture()

	w := postUpdate(t, h, `{"update_id": 2, "message": {"chat": {"id": 42}, "text": "/transactions"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "transactions", responder.wait(t))
}

func TestHandleUpdate_InfoAndHelp(t *testing.T) {
	h, responder := newWebhookFixture()

	postUpdate(t, h, `{"update_id": 3, "message": {"chat": {"id": 42}, "text": "/info"}}`)
	assert.Equal(t, "info", responder.wait(t))

	postUpdate(t, h, `{"update_id": 4, "message": {"chat": {"id": 42}, "text": "/help"}}`)
	assert.Equal(t, "help", responder.wait(t))
}

func TestHandleUpdate_UnknownCommand(t *testing.T) {
	h, responder := newWebhookFixture()

	postUpdate(t, h, `{"update_id": 5, "message": {"chat": {"id": 42}, "text": "hello bot"}}`)

	assert.Equal(t, "unknown", responder.wait(t))
}

func TestHandleUpdate_ViewTransactionsCallback(t *testing.T) {
	h, responder := newWebhookFixture()

	w := postUpdate(t, h, `{"update_id": 6, "callback_query": {"id": "cb1", "data": "view_transactions", "from": {"id": 42}}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ack", responder.wait(t))
	assert.Equal(t, "transactions", responder.wait(t))
}

func TestHandleUpdate_UnknownCallbackOnlyAcknowledged(t *testing.T) {
	h, responder := newWebhookFixture()

	postUpdate(t, h, `{"update_id": 7, "callback_query": {"id": "cb2", "data": "something-else", "from": {"id": 42}}}`)

	assert.Equal(t, "ack", responder.wait(t))
	select {
	case reply := <-responder.done:
		t.Fatalf("unexpected extra reply %q", reply)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandleUpdate_EmptyUpdateRejected(t *testing.T) {
	h, _ := newWebhookFixture()

	w := postUpdate(t, h, `{"update_id": 8}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdate_MalformedBodyRejected(t *testing.T) {
	h, _ := newWebhookFixture()

	w := postUpdate(t, h, `not json`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
