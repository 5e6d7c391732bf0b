package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/deploywatch/deploywatch/pkg/buildversion"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type VersionOutput struct {
	Version   string    `json:"version"`
	GitSHA    string    `json:"gitSha,omitempty"`
	BuildTime time.Time `json:"buildTime,omitempty"`
}

func VersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the current version and exit",
		Long:  `Print the current version and exit`,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			output := v.GetString("output")
			if output != "json" && output != "" {
				return errors.Errorf("output format %s not supported (allowed formats are: json)", output)
			}

			build := buildversion.GetBuild()
			versionOutput := VersionOutput{
				Version:   build.Version,
				GitSHA:    build.GitSHA,
				BuildTime: build.BuildTime,
			}

			if output == "json" {
				str, _ := json.MarshalIndent(versionOutput, "", "    ")
				fmt.Println(string(str))
			} else {
				fmt.Printf("deploywatch %s\n", build.Version)
			}

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output format (currently supported: json)")

	return cmd
}
