package cli

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func Test_WatchCmdValidation(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]interface{}
		wantErr string
	}{
		{
			name: "unsupported output format",
			set: map[string]interface{}{
				"output":   "yaml",
				"info-url": "http://app.example.com/info",
			},
			wantErr: "output format yaml not supported (allowed formats are: json)",
		},
		{
			name:    "missing info url",
			set:     map[string]interface{}{},
			wantErr: "--info-url is required",
		},
		{
			name: "invalid info url",
			set: map[string]interface{}{
				"info-url": "not a url",
			},
			wantErr: "--info-url must be a valid url",
		},
		{
			name: "missing git sha",
			set: map[string]interface{}{
				"info-url": "http://app.example.com/info",
			},
			wantErr: "--git-sha is required",
		},
		{
			name: "missing plan key",
			set: map[string]interface{}{
				"info-url": "http://app.example.com/info",
				"git-sha":  "e21cf80",
			},
			wantErr: "--plan-key is required",
		},
		{
			name: "missing build number",
			set: map[string]interface{}{
				"info-url": "http://app.example.com/info",
				"git-sha":  "e21cf80",
				"plan-key": "PROJ-PLAN",
			},
			wantErr: "--build-number is required",
		},
		{
			name: "missing bamboo credentials",
			set: map[string]interface{}{
				"info-url":     "http://app.example.com/info",
				"git-sha":      "e21cf80",
				"plan-key":     "PROJ-PLAN",
				"build-number": "42",
			},
			wantErr: "--bamboo-url or BAMBOO_URL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			viper.Reset()
			t.Cleanup(viper.Reset)
			for key, value := range tt.set {
				viper.Set(key, value)
			}

			cmd := WatchCmd()
			err := cmd.RunE(cmd, nil)
			req.EqualError(err, tt.wantErr)
		})
	}
}
