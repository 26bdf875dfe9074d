// Package api — configuration introspection endpoint.
package api

import (
	"net/http"
)

// handleGetConfig returns the running configuration. Values reflect
// defaults, config file overrides, and NEWSPRISM_* environment
// overrides as resolved at startup. Nothing in the configuration is
// sensitive, so the struct is returned whole.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.cfg,
	})
}
