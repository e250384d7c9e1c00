package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestPollerAdvancesOffsetAndDispatches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls int32
	offsets := make(chan float64, 2)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		switch atomic.AddInt32(&calls, 1) {
		case 1:
			// offset is zero at startup and omitted from the request
			if _, ok := req["offset"]; ok {
				t.Errorf("first request offset = %v, want absent", req["offset"])
			}
			fmt.Fprint(w, `{"ok": true, "result": [{"update_id": 41}, {"update_id": 42}]}`)
		default:
			if off, ok := req["offset"].(float64); ok {
				offsets <- off
			} else {
				t.Error("second request carried no offset")
			}
			cancel()
			fmt.Fprint(w, `{"ok": true, "result": []}`)
		}
	}))

	dispatched := make(chan int64, 4)
	poller := NewPoller(client, func(ctx context.Context, upd Update) {
		dispatched <- upd.UpdateID
	}, zerolog.Nop())

	if err := poller.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}

	select {
	case off := <-offsets:
		if off != 43 {
			t.Errorf("second getUpdates offset = %v, want 43", off)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("second getUpdates request never arrived")
	}

	got := map[int64]bool{}
	for i := 0; i < 2; i++ {
		select {
		case id := <-dispatched:
			got[id] = true
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for update dispatch")
		}
	}
	if !got[41] || !got[42] {
		t.Errorf("dispatched updates = %v, want 41 and 42", got)
	}
}

func TestPollerStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	poller := NewPoller(NewClient("TEST-TOKEN", zerolog.Nop()), func(context.Context, Update) {}, zerolog.Nop())
	if err := poller.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
}
