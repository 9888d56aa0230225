package notification

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Stream handles GET /notifications/stream
// @Summary      Subscribe to the live notification feed
// @Description  Server-Sent Events stream; each created notification is pushed as a "notification" event
// @Tags         notifications
// @Produce      text/event-stream
// @Success      200 {string} string "SSE stream"
// @Router       /notifications/stream [get]
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	if h.service.broadcaster == nil {
		http.Error(w, "Streaming disabled", http.StatusServiceUnavailable)
		return
	}

	// subscribe before the response is committed so no event created after the
	// client sees the headers can be missed; the subscription is torn down
	// automatically when the client disconnects
	sub := h.service.broadcaster.Subscribe(r.Context())

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-sub.Receive():
			if !open {
				return
			}

			data, err := json.Marshal(ev)
			if err != nil {
				h.logger.WithError(err).Error("failed to encode notification event")
				continue
			}

			fmt.Fprintf(w, "event: notification\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
