// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

// getStatus responds 200 with the sync status. The endpoint reports
// offline state in the body, it never fails because of it.
func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status := h.status.Status()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.logger.Err(err).Str("func", "Handler.getStatus").Msg("failed to encode sync status")
	}
}
