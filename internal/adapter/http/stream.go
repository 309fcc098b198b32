package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleStream upgrades to a websocket that receives the campaign list after
// every refresh.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	if h.stream == nil {
		http.NotFound(w, r)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("stream upgrade failed", slog.Any("error", err))
		return
	}
	h.stream.Serve(conn)
}
