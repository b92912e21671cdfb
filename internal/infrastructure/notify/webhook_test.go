package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/workhub-team/workhub/internal/usecase/meeting"
	"github.com/workhub-team/workhub/pkg/config"
)

func testNotification() meeting.MentionNotification {
	return meeting.MentionNotification{
		EntityType:  "action",
		EntityID:    "act-1",
		Title:       "Set up CI",
		Path:        "/workspaces/ws-1/actions/act-1",
		Handle:      "carol",
		MentionText: "Ping @carol",
		ActorUID:    "u-bob",
		ActorName:   "Bob",
		Timestamp:   time.Now().UTC(),
	}
}

func TestWebhookNotifier_DeliversPayload(t *testing.T) {
	var got meeting.MentionNotification
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	n := NewWebhookNotifier(config.NotifyConfig{
		WebhookURL:     ts.URL,
		RequestTimeout: time.Second,
		MaxElapsedTime: time.Second,
	}, zap.NewNop())

	if err := n.Notify(context.Background(), testNotification()); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if got.Handle != "carol" || got.EntityID != "act-1" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestWebhookNotifier_RetriesServerErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	n := NewWebhookNotifier(config.NotifyConfig{
		WebhookURL:     ts.URL,
		RequestTimeout: time.Second,
		MaxElapsedTime: 5 * time.Second,
	}, zap.NewNop())

	if err := n.Notify(context.Background(), testNotification()); err != nil {
		t.Fatalf("notify failed after retries: %v", err)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestWebhookNotifier_ClientErrorsArePermanent(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	n := NewWebhookNotifier(config.NotifyConfig{
		WebhookURL:     ts.URL,
		RequestTimeout: time.Second,
		MaxElapsedTime: 5 * time.Second,
	}, zap.NewNop())

	if err := n.Notify(context.Background(), testNotification()); err == nil {
		t.Fatal("expected error for 4xx response")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestWebhookNotifier_DedupWindowSuppressesRepeats(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	n := NewWebhookNotifier(config.NotifyConfig{
		WebhookURL:     ts.URL,
		RequestTimeout: time.Second,
		MaxElapsedTime: time.Second,
		DedupWindow:    time.Minute,
	}, zap.NewNop())

	for i := 0; i < 3; i++ {
		if err := n.Notify(context.Background(), testNotification()); err != nil {
			t.Fatalf("notify failed: %v", err)
		}
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected one delivery, got %d", calls)
	}

	// A different handle is not suppressed
	other := testNotification()
	other.Handle = "dave"
	if err := n.Notify(context.Background(), other); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected second delivery for new handle, got %d", calls)
	}
}

func TestWebhookNotifier_NoURLIsNoop(t *testing.T) {
	n := NewWebhookNotifier(config.NotifyConfig{}, zap.NewNop())
	if err := n.Notify(context.Background(), testNotification()); err != nil {
		t.Fatalf("expected silent noop, got %v", err)
	}
}
