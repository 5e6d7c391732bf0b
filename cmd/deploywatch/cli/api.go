package cli

import (
	"strings"
	"time"

	"github.com/deploywatch/deploywatch/pkg/apiserver"
	"github.com/deploywatch/deploywatch/pkg/apiserver/types"
	"github.com/deploywatch/deploywatch/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func APICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Starts the API server",
		Long:  ``,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			if v.GetString("log-level") == "debug" {
				logger.SetDebug()
			}

			params, err := getAPIServerParams(v)
			if err != nil {
				return err
			}

			return apiserver.Serve(*params)
		},
	}

	cmd.Flags().String("port", "8080", "port for the API server to listen on")
	cmd.Flags().String("bamboo-url", "", "base url of the Bamboo server")
	cmd.Flags().String("bamboo-username", "", "username for the Bamboo REST API")
	cmd.Flags().String("bamboo-password", "", "password for the Bamboo REST API")
	cmd.Flags().Int("max-retries", 6, "number of poll attempts before a watch gives up")
	cmd.Flags().Int("retry-interval", 10, "interval between poll attempts, in seconds")

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return cmd
}

func getAPIServerParams(v *viper.Viper) (*types.APIServerParams, error) {
	if v.GetString("bamboo-url") == "" {
		return nil, errors.New("--bamboo-url or BAMBOO_URL is required")
	}
	if v.GetString("bamboo-username") == "" {
		return nil, errors.New("--bamboo-username or BAMBOO_USERNAME is required")
	}
	if v.GetString("bamboo-password") == "" {
		return nil, errors.New("--bamboo-password or BAMBOO_PASSWORD is required")
	}

	params := types.APIServerParams{
		Port:           v.GetString("port"),
		BambooURL:      v.GetString("bamboo-url"),
		BambooUsername: v.GetString("bamboo-username"),
		BambooPassword: v.GetString("bamboo-password"),
		MaxRetries:     v.GetInt("max-retries"),
		RetryInterval:  time.Duration(v.GetInt("retry-interval")) * time.Second,
	}

	return &params, nil
}
