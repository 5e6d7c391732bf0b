package watcher

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/deploywatch/deploywatch/pkg/logger"
	"github.com/deploywatch/deploywatch/pkg/util"
	"github.com/deploywatch/deploywatch/pkg/watcher/types"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BuildTrigger resumes a paused CI build once a watch confirms its deploy.
type BuildTrigger interface {
	ResumeBuild(planKey string, buildNumber string) error
}

type Options struct {
	MaxRetries int
	Interval   time.Duration

	Trigger BuildTrigger

	// HTTPClient is used to poll the info url when set. Tests use this
	// to point the watcher at a local server.
	HTTPClient *http.Client
}

// InfoResponse is the shape of the body the info url is expected to
// return. Some services report the sha at the top level, others nest it
// under an app object.
type InfoResponse struct {
	GitSHA string `json:"git_sha"`
	App    struct {
		GitSHA string `json:"git_sha"`
	} `json:"app"`
}

// Start launches a background watcher for the given watch and returns
// immediately. The watcher polls the info url until it reports the
// expected sha, then resumes the build. There is no way to cancel a
// watcher once started; it runs until match or until the polling window
// has elapsed.
func Start(watch types.Watch, opts Options) {
	go run(watch, opts)
}

func run(watch types.Watch, opts Options) {
	logger.Info("waiting for service to boot",
		zap.String("watchId", watch.ID),
		zap.String("infoUrl", watch.InfoURL),
		zap.String("gitSha", watch.GitSHA))

	if !WaitForDeploy(watch, opts) {
		logger.Warnf("watch %s timed out waiting for %s to report sha %s", watch.ID, watch.InfoURL, watch.GitSHA)
		return
	}

	logger.Info("deploy confirmed, triggering next phase",
		zap.String("watchId", watch.ID),
		zap.String("planKey", watch.PlanKey),
		zap.String("buildNumber", watch.BuildNumber))

	if err := opts.Trigger.ResumeBuild(watch.PlanKey, watch.BuildNumber); err != nil {
		logger.Error(errors.Wrapf(err, "failed to resume build %s-%s", watch.PlanKey, watch.BuildNumber))
	}
}

// WaitForDeploy polls the watch's info url until it reports the expected
// git sha. It returns false once the polling window (MaxRetries *
// Interval) has elapsed without a match. Each attempt sleeps first, so
// the caller is never blocked on an immediate request.
func WaitForDeploy(watch types.Watch, opts Options) bool {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultClient()
	}

	window := time.Duration(opts.MaxRetries) * opts.Interval

	// A watch usually starts before the service is up, so identical poll
	// failures are condensed instead of logged on every attempt.
	backoff := &util.ErrorBackoff{MinPeriod: 2 * opts.Interval, MaxPeriod: window}

	for start := time.Now(); time.Since(start) < window; {
		logger.Debugf("waiting %s before checking", opts.Interval)
		time.Sleep(opts.Interval)

		sha, err := getDeployedSHA(httpClient, watch.InfoURL)
		if err != nil {
			backoff.OnError(err, func() {
				logger.Infof("watch %s still waiting for the deploy: %v", watch.ID, err)
			})
			continue
		}

		if sha == "" {
			logger.Debug("git sha not found in the response")
			continue
		}

		if sha == watch.GitSHA {
			logger.Debug("sha matched")
			return true
		}

		logger.Debug("git sha not expected, retrying")
	}

	logger.Debug("task expired, deployment not found")
	return false
}

func getDeployedSHA(httpClient *http.Client, infoURL string) (string, error) {
	req, err := util.NewRequest("GET", infoURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to call newrequest")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to execute get request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected result from get request: %d", resp.StatusCode)
	}

	var info InfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", errors.Wrap(err, "failed to decode response body")
	}

	if info.GitSHA != "" {
		return info.GitSHA, nil
	}
	return info.App.GitSHA, nil
}
