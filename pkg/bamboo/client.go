package bamboo

import (
	"fmt"
	"net/http"

	"github.com/deploywatch/deploywatch/pkg/logger"
	"github.com/deploywatch/deploywatch/pkg/util"
	"github.com/pkg/errors"
)

// Client is a minimal client for the Bamboo REST API. Only the queue
// endpoint used to resume a paused build is implemented.
type Client struct {
	BaseURL  string
	Username string
	Password string

	// HTTPClient is used for all requests when set. Tests use this to
	// point the client at a local server.
	HTTPClient *http.Client
}

func NewClient(baseURL string, username string, password string) *Client {
	return &Client{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
	}
}

// ResumeBuild tells Bamboo to resume the build identified by planKey and
// buildNumber. Bamboo returns a 400 when the build has no stage waiting
// to be resumed.
func (c *Client) ResumeBuild(planKey string, buildNumber string) error {
	url := fmt.Sprintf("%s/rest/api/latest/queue/%s-%s", c.BaseURL, planKey, buildNumber)
	logger.Debugf("calling %s", url)

	req, err := util.NewRequest("PUT", url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to call newrequest")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.Username, c.Password)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to execute put request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return errors.New("next stage cannot be resumed")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected result from put request: %d", resp.StatusCode)
	}

	logger.Infof("Resumed build %s-%s", planKey, buildNumber)
	return nil
}
