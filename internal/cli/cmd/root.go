package cmd

import (
	"fmt"
	"slices"

	"github.com/spechtlabs/clusterman/internal/cli/pretty_print"
	"github.com/spechtlabs/clusterman/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd() *cobra.Command {
	cobra.OnInitialize(initConfig)

	// rootCmd represents the base command when called without any subcommands
	cmdRoot := cobra.Command{
		Use:   "clusterman",
		Short: "clusterman manages clusters, services and role config groups",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.InitObservability()
		},
	}

	cmdRoot.AddCommand(newVersionCmd())
	errPrefix := pretty_print.FormatWithOptions(pretty_print.ErrLvl, "Error:", []string{}, pretty_print.WithoutNewline())
	cmdRoot.SetErrPrefix(errPrefix)

	cmdRoot.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initConfig()
		pretty_print.PrintHelpText(cmd, args)
	})
	cmdRoot.SetUsageFunc(func(cmd *cobra.Command) error {
		initConfig()
		fmt.Println("")
		pretty_print.PrintUsageText(cmd, []string{})
		return nil
	})
	cmdRoot.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		initConfig()
		pretty_print.PrintErrorMessage(err.Error())
		fmt.Println("")
		pretty_print.PrintHelpText(cmd, []string{})
		return nil
	})

	return &cmdRoot
}

func NewCliRootCmd() *cobra.Command {
	cmdRoot := NewRootCmd()
	addClientFlags(cmdRoot)
	cmdRoot.Use = "clusterman [--config|-c <string>] [--debug] [--server|-s <string>] [--port|-p <int>] [--output|-o <string>] [--theme|-t <string>]"

	cmdRoot.Long = `clusterman is the client for the cluster management API. It lets you register and inspect clusters, manage role config groups, and check the server's database health with readable, themed output.

### Theming

Control the CLI's look and feel using one of the following:

- Flag: ` + "`--theme`" + ` or ` + "`-t`" + `
- Config: ` + "`theme`" + ` (in config file)
- Environment: ` + "`CLUSTERMAN_THEME`" + `

**Accepted themes**: ascii, dark, dracula, *tokyo-night*, light

### Notes

- Global flags like ` + "`--theme`" + ` are available to subcommands`

	cmdRoot.Example = `# list clusters as a table
$ clusterman clusters list

# machine readable output
$ clusterman clusters list --output json

# no theme (usefull in non-interactive contexts)
$ clusterman --theme notty dbinfo
`

	cmdRoot.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		theme := viper.GetString("output.theme")
		if theme == "" {
			theme = "tokyo-night"
		}
		if !slices.Contains(pretty_print.AllThemeNames(), theme) {
			viper.Set("output.theme", pretty_print.TokyoNightStyle)
			return fmt.Errorf("invalid theme: %s", theme)
		}
		return nil
	}

	return cmdRoot
}

func NewServerRootCmd() *cobra.Command {
	cmdRoot := NewRootCmd()
	addServerFlags(cmdRoot)
	cmdRoot.Use = "clusterman-server [--config|-c <string>] [--debug]"
	return cmdRoot
}
