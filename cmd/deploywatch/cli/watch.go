package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deploywatch/deploywatch/pkg/bamboo"
	"github.com/deploywatch/deploywatch/pkg/logger"
	"github.com/deploywatch/deploywatch/pkg/util"
	"github.com/deploywatch/deploywatch/pkg/watcher"
	"github.com/deploywatch/deploywatch/pkg/watcher/types"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type WatchOutput struct {
	WatchID     string `json:"watchId"`
	PlanKey     string `json:"planKey"`
	BuildNumber string `json:"buildNumber"`
	Resumed     bool   `json:"resumed"`
}

func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Runs a single watch in the foreground",
		Long: `Polls the info url until it reports the expected git sha, then resumes
the Bamboo build identified by the plan key and build number.`,
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			if v.GetString("log-level") == "debug" {
				logger.SetDebug()
			}

			output := v.GetString("output")
			if output != "json" && output != "" {
				return errors.Errorf("output format %s not supported (allowed formats are: json)", output)
			}

			infoURL := v.GetString("info-url")
			if infoURL == "" {
				return errors.New("--info-url is required")
			}
			if !util.IsURL(infoURL) {
				return errors.New("--info-url must be a valid url")
			}
			if v.GetString("git-sha") == "" {
				return errors.New("--git-sha is required")
			}
			if v.GetString("plan-key") == "" {
				return errors.New("--plan-key is required")
			}
			if v.GetString("build-number") == "" {
				return errors.New("--build-number is required")
			}

			params, err := getAPIServerParams(v)
			if err != nil {
				return err
			}

			log := logger.NewCLILogger()

			// Silence loggers for structured output formats to prevent pollution
			if output == "json" {
				logger.Silence()
				log.Silence()
			}

			watch := types.Watch{
				ID:          ksuid.New().String(),
				InfoURL:     infoURL,
				GitSHA:      v.GetString("git-sha"),
				PlanKey:     v.GetString("plan-key"),
				BuildNumber: v.GetString("build-number"),
			}

			log.ActionWithoutSpinner("Watching %s for sha %s", watch.InfoURL, watch.GitSHA)
			log.ChildActionWithoutSpinner("polling every %s for up to %d attempts", params.RetryInterval, params.MaxRetries)

			log.ActionWithSpinner("Waiting for the deploy to be confirmed")
			deployed := watcher.WaitForDeploy(watch, watcher.Options{
				MaxRetries: params.MaxRetries,
				Interval:   params.RetryInterval,
			})
			if !deployed {
				log.FinishSpinnerWithError()
				log.Info("The service at %s never reported sha %s. The build was not resumed.", watch.InfoURL, watch.GitSHA)
				return errors.New("timed out waiting for the deploy")
			}
			log.FinishSpinner()

			log.ActionWithSpinner("Resuming build %s-%s", watch.PlanKey, watch.BuildNumber)
			client := bamboo.NewClient(params.BambooURL, params.BambooUsername, params.BambooPassword)
			if err := client.ResumeBuild(watch.PlanKey, watch.BuildNumber); err != nil {
				log.FinishSpinnerWithError()
				return errors.Wrap(err, "failed to resume build")
			}
			log.FinishSpinner()

			log.ActionWithoutSpinner("Build %s-%s resumed", watch.PlanKey, watch.BuildNumber)

			if output == "json" {
				watchOutput := WatchOutput{
					WatchID:     watch.ID,
					PlanKey:     watch.PlanKey,
					BuildNumber: watch.BuildNumber,
					Resumed:     true,
				}
				str, _ := json.MarshalIndent(watchOutput, "", "    ")
				fmt.Println(string(str))
			}

			return nil
		},
	}

	cmd.Flags().String("info-url", "", "url that reports the currently deployed git sha")
	cmd.Flags().String("git-sha", "", "git sha the deploy is expected to report")
	cmd.Flags().String("plan-key", "", "key of the Bamboo plan to resume")
	cmd.Flags().String("build-number", "", "number of the Bamboo build to resume")
	cmd.Flags().String("bamboo-url", "", "base url of the Bamboo server")
	cmd.Flags().String("bamboo-username", "", "username for the Bamboo REST API")
	cmd.Flags().String("bamboo-password", "", "password for the Bamboo REST API")
	cmd.Flags().Int("max-retries", 6, "number of poll attempts before giving up")
	cmd.Flags().Int("retry-interval", 10, "interval between poll attempts, in seconds")
	cmd.Flags().StringP("output", "o", "", "output format (currently supported: json)")

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return cmd
}
