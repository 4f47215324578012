package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tuj-devs/officehours-service/internal/domain"
	"github.com/tuj-devs/officehours-service/internal/watch"
)

const sseKeepAliveInterval = 30 * time.Second

// StreamSnapshots serves a reservation subscription as server-sent
// events. Every event carries the full current list, so a client can
// always render the latest snapshot without patching. Returns when the
// client disconnects or the subscription closes.
func StreamSnapshots(w http.ResponseWriter, r *http.Request, sub *watch.Subscription, render func([]*domain.Reservation) interface{}) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(sseKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case <-keepAlive.C:
			// Comment line keeps idle proxies from cutting the stream.
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case snap, open := <-sub.Snapshots():
			if !open {
				return
			}
			data, err := json.Marshal(render(snap))
			if err != nil {
				return
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
