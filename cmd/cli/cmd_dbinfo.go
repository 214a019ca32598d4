package main

import (
	"net/http"

	"github.com/spechtlabs/clusterman/internal/cli/pretty_print"
	"github.com/spechtlabs/clusterman/pkg/api"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spf13/cobra"
)

func newDbInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dbinfo",
		Short: "Show the management server's own database connection",
		Args:  cobra.ExactArgs(0),
		Example: `# Show the management database info
clusterman dbinfo`,
		RunE: runDbInfo,
	}
}

func runDbInfo(cmd *cobra.Command, _ []string) error {
	info, _, err := doRequestAndDecode[models.ScmDbInfo](cmd.Context(), http.MethodGet, api.ScmDbInfoRoute, nil)
	if err != nil {
		return err
	}

	if done, herr := printStructured(info); done {
		return herr
	}

	pretty_print.PrintScmDbInfo(info)
	return nil
}
