package handlers

import "net/http"

type DeploywatchHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)

	CreateWatch(w http.ResponseWriter, r *http.Request)
}
