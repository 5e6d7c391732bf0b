package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/deploywatch/deploywatch/pkg/bamboo"
	"github.com/deploywatch/deploywatch/pkg/logger"
	"github.com/deploywatch/deploywatch/pkg/util"
	"github.com/deploywatch/deploywatch/pkg/watcher"
	"github.com/deploywatch/deploywatch/pkg/watcher/types"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

type CreateWatchRequest struct {
	InfoURL     string `json:"info_url"`
	GitSHA      string `json:"git_sha"`
	PlanKey     string `json:"plan_key"`
	BuildNumber string `json:"build_number"`
}

type CreateWatchResponse struct {
	Success bool   `json:"success"`
	WatchID string `json:"watchId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CreateWatch validates the request, acks it, and starts a background
// watcher that polls the info url until the expected sha is live, then
// resumes the paused build. The response never reports the watch
// outcome, only that the watch was accepted.
func (h *Handler) CreateWatch(w http.ResponseWriter, r *http.Request) {
	createWatchResponse := CreateWatchResponse{
		Success: false,
	}

	createWatchRequest := CreateWatchRequest{}
	if err := json.NewDecoder(r.Body).Decode(&createWatchRequest); err != nil {
		createWatchResponse.Error = "failed to decode request body"
		logger.Error(errors.Wrap(err, createWatchResponse.Error))
		JSON(w, http.StatusBadRequest, createWatchResponse)
		return
	}

	if err := validateCreateWatchRequest(createWatchRequest); err != nil {
		createWatchResponse.Error = err.Error()
		logger.Error(err)
		JSON(w, http.StatusBadRequest, createWatchResponse)
		return
	}

	params := GetContextParams(r)

	watch := types.Watch{
		ID:          ksuid.New().String(),
		InfoURL:     createWatchRequest.InfoURL,
		GitSHA:      createWatchRequest.GitSHA,
		PlanKey:     createWatchRequest.PlanKey,
		BuildNumber: createWatchRequest.BuildNumber,
	}

	watcher.Start(watch, watcher.Options{
		MaxRetries: params.MaxRetries,
		Interval:   params.RetryInterval,
		Trigger:    bamboo.NewClient(params.BambooURL, params.BambooUsername, params.BambooPassword),
	})

	createWatchResponse.Success = true
	createWatchResponse.WatchID = watch.ID

	JSON(w, http.StatusOK, createWatchResponse)
}

func validateCreateWatchRequest(createWatchRequest CreateWatchRequest) error {
	if createWatchRequest.InfoURL == "" {
		return errors.New("info_url is required")
	}
	if !util.IsURL(createWatchRequest.InfoURL) {
		return errors.New("info_url must be a valid url")
	}
	if createWatchRequest.GitSHA == "" {
		return errors.New("git_sha is required")
	}
	if createWatchRequest.PlanKey == "" {
		return errors.New("plan_key is required")
	}
	if createWatchRequest.BuildNumber == "" {
		return errors.New("build_number is required")
	}

	return nil
}
