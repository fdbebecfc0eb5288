package handler

import "net/http"

// healthResponse keeps the {"ok":true} body shape stable.
type healthResponse struct {
	OK bool `json:"ok"`
}

// HandleHealthz is the unauthenticated liveness probe on both services.
//
// HTTP: GET /healthz
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{OK: true})
}
