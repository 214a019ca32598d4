package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spechtlabs/clusterman/internal/cli/cmd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cmdRoot = cmd.NewCliRootCmd()
)

func main() {
	cmdGet := &cobra.Command{
		Use:   "get <command>",
		Short: "Retrieve read-only resources from the management server.",
		Long:  `The get command retrieves resources from your cluster management service`,
		Args:  cobra.ExactArgs(0),
		Example: `# List all clusters
clusterman get clusters

# Show the management database info
clusterman get dbinfo`,
	}

	// Add the verbs
	cmdRoot.AddCommand(cmdGet)

	// Clusters
	cmdRoot.AddCommand(cmdClusters)
	cmdGet.AddCommand(cmdListClusters)

	// Role config groups
	cmdRoot.AddCommand(cmdGroups)

	// Database info
	cmdRoot.AddCommand(newDbInfoCmd())
	cmdGet.AddCommand(newDbInfoCmd())

	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getServerAddr() string {
	hostname := viper.GetString("server.host")
	apiPort := viper.GetInt("server.port")
	prefix := ""

	if !strings.HasPrefix(hostname, "http://") && !strings.HasPrefix(hostname, "https://") {
		if apiPort == 443 {
			prefix = "https://"
		} else {
			prefix = "http://"
		}
	}

	return fmt.Sprintf("%s%s:%d", prefix, hostname, apiPort)
}
