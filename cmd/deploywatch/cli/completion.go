package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func CompletionCmd() *cobra.Command {

	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:

  $ source <(deploywatch completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ deploywatch completion bash > /etc/bash_completion.d/deploywatch
  # macOS:
  $ deploywatch completion bash > /usr/local/etc/bash_completion.d/deploywatch

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ deploywatch completion zsh > "${fpath[1]}/_deploywatch"

  # You will need to start a new shell for this setup to take effect.

fish:

  $ deploywatch completion fish | source

  # To load completions for each session, execute once:
  $ deploywatch completion fish > ~/.config/fish/completions/deploywatch.fish

PowerShell:

  PS> deploywatch completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> deploywatch completion powershell > deploywatch.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				cmd.Root().GenPowerShellCompletion(os.Stdout)
			}
		},
	}
}
