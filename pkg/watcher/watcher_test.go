package watcher

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/deploywatch/deploywatch/pkg/logger"
	mock_watcher "github.com/deploywatch/deploywatch/pkg/watcher/mock"
	"github.com/deploywatch/deploywatch/pkg/watcher/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

type pollResponse struct {
	status int
	body   string
}

func Test_WaitForDeploy(t *testing.T) {
	tests := []struct {
		name      string
		responses []pollResponse
		gitSHA    string
		want      bool
		wantPolls int32
	}{
		{
			name: "matches immediately",
			responses: []pollResponse{
				{body: `{"git_sha": "abc123"}`},
			},
			gitSHA:    "abc123",
			want:      true,
			wantPolls: 1,
		},
		{
			name: "matches after a non-matching sha",
			responses: []pollResponse{
				{body: `{"git_sha": "def999"}`},
				{body: `{"git_sha": "abc123"}`},
			},
			gitSHA:    "abc123",
			want:      true,
			wantPolls: 2,
		},
		{
			name: "matches sha nested under app",
			responses: []pollResponse{
				{body: `{"app": {"git_sha": "abc123"}}`},
			},
			gitSHA:    "abc123",
			want:      true,
			wantPolls: 1,
		},
		{
			name: "recovers from a bad response",
			responses: []pollResponse{
				{status: http.StatusInternalServerError},
				{body: `{"git_sha": "abc123"}`},
			},
			gitSHA:    "abc123",
			want:      true,
			wantPolls: 2,
		},
		{
			name: "sha never found",
			responses: []pollResponse{
				{body: `{"status": "ok"}`},
			},
			gitSHA: "abc123",
			want:   false,
		},
		{
			name: "server always errors",
			responses: []pollResponse{
				{status: http.StatusInternalServerError},
			},
			gitSHA: "abc123",
			want:   false,
		},
		{
			name: "body is not json",
			responses: []pollResponse{
				{body: `not json`},
			},
			gitSHA: "abc123",
			want:   false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := require.New(t)

			var polls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := atomic.AddInt32(&polls, 1)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))

				i := int(n) - 1
				if i >= len(test.responses) {
					i = len(test.responses) - 1
				}
				resp := test.responses[i]
				if resp.status != 0 {
					w.WriteHeader(resp.status)
					return
				}
				fmt.Fprint(w, resp.body)
			}))
			defer server.Close()

			watch := types.Watch{
				ID:      "test-watch",
				InfoURL: server.URL,
				GitSHA:  test.gitSHA,
			}
			opts := Options{
				MaxRetries: 10,
				Interval:   10 * time.Millisecond,
			}

			got := WaitForDeploy(watch, opts)
			req.Equal(test.want, got)

			if test.wantPolls > 0 {
				assert.Equal(t, test.wantPolls, atomic.LoadInt32(&polls))
			} else {
				assert.NotZero(t, atomic.LoadInt32(&polls))
			}
		})
	}
}

func Test_StartTriggersBuildOnMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"git_sha": "abc123"}`)
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	mockTrigger := mock_watcher.NewMockBuildTrigger(ctrl)
	mockTrigger.EXPECT().ResumeBuild("PROJ-PLAN", "42").DoAndReturn(func(planKey string, buildNumber string) error {
		close(done)
		return nil
	})

	watch := types.Watch{
		ID:          "test-watch",
		InfoURL:     server.URL,
		GitSHA:      "abc123",
		PlanKey:     "PROJ-PLAN",
		BuildNumber: "42",
	}
	Start(watch, Options{
		MaxRetries: 5,
		Interval:   10 * time.Millisecond,
		Trigger:    mockTrigger,
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the build trigger")
	}
}

func Test_StartDoesNotTriggerBuildOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "error", http.StatusInternalServerError)
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations set, any call to the trigger fails the test
	mockTrigger := mock_watcher.NewMockBuildTrigger(ctrl)

	watch := types.Watch{
		ID:          "test-watch",
		InfoURL:     server.URL,
		GitSHA:      "abc123",
		PlanKey:     "PROJ-PLAN",
		BuildNumber: "42",
	}
	Start(watch, Options{
		MaxRetries: 3,
		Interval:   10 * time.Millisecond,
		Trigger:    mockTrigger,
	})

	// wait out the polling window before verifying nothing was called
	time.Sleep(500 * time.Millisecond)
}
