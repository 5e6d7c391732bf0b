package handlers

import (
	"net/http"

	"github.com/deploywatch/deploywatch/pkg/buildversion"
)

type HealthzResponse struct {
	Version string `json:"version"`
	GitSHA  string `json:"gitSha"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	healthzResponse := HealthzResponse{
		Version: buildversion.Version(),
		GitSHA:  buildversion.GitSHA(),
	}

	JSON(w, http.StatusOK, healthzResponse)
}
