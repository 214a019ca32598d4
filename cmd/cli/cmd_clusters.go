package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/clusterman/internal/cli/pretty_print"
	"github.com/spechtlabs/clusterman/pkg/api"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spf13/cobra"
)

var (
	clusterDisplayName string
	clusterFullVersion string

	cmdClusters = &cobra.Command{
		Use:   "clusters <command>",
		Short: "Manage the clusters registered with the management server",
		Args:  cobra.ExactArgs(0),
		Example: `# List all clusters
clusterman clusters list

# Register a new cluster
clusterman clusters add prod-east --version 7.1.4 --display-name "Production East"`,
	}

	// cmdListClusters hangs off the get verb; the clusters command carries its
	// own list subcommand.
	cmdListClusters = newListClustersCmd("clusters")

	cmdAddCluster = &cobra.Command{
		Use:   "add <name> [--display-name <string>] [--version <string>]",
		Short: "Register a new cluster",
		Args:  cobra.ExactArgs(1),
		RunE:  runAddCluster,
	}

	cmdGetCluster = &cobra.Command{
		Use:   "get <name>",
		Short: "Show a single cluster",
		Args:  cobra.ExactArgs(1),
		RunE:  runGetCluster,
	}

	cmdUpdateCluster = &cobra.Command{
		Use:   "update <name> [--display-name <string>] [--version <string>]",
		Short: "Update the display name and version of a cluster",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdateCluster,
	}

	cmdDeleteCluster = &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a cluster and everything it contains",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeleteCluster,
	}
)

func init() {
	cmdAddCluster.Flags().StringVar(&clusterDisplayName, "display-name", "", "Human readable name of the cluster")
	cmdAddCluster.Flags().StringVar(&clusterFullVersion, "version", "", "Version of the software stack the cluster runs")
	cmdUpdateCluster.Flags().StringVar(&clusterDisplayName, "display-name", "", "Human readable name of the cluster")
	cmdUpdateCluster.Flags().StringVar(&clusterFullVersion, "version", "", "Version of the software stack the cluster runs")

	cmdClusters.AddCommand(newListClustersCmd("list"))
	cmdClusters.AddCommand(cmdAddCluster)
	cmdClusters.AddCommand(cmdGetCluster)
	cmdClusters.AddCommand(cmdUpdateCluster)
	cmdClusters.AddCommand(cmdDeleteCluster)
}

func newListClustersCmd(use string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "List all clusters",
		Args:  cobra.ExactArgs(0),
		RunE:  runListClusters,
	}
}

func clusterPath(name string) string {
	return fmt.Sprintf("%s/%s", api.ClustersRoute, url.PathEscape(name))
}

func runListClusters(cmd *cobra.Command, _ []string) error {
	list, _, err := doRequestAndDecode[models.ClusterList](cmd.Context(), http.MethodGet, api.ClustersRoute, nil)
	if err != nil {
		return err
	}

	if done, herr := printStructured(list); done {
		return herr
	}

	pretty_print.PrintClusterList(list)
	return nil
}

func runAddCluster(cmd *cobra.Command, args []string) error {
	cluster := models.Cluster{
		Name:        args[0],
		DisplayName: clusterDisplayName,
		FullVersion: clusterFullVersion,
	}

	body, err := json.Marshal(models.NewClusterList(cluster))
	if err != nil {
		return humane.Wrap(err, "failed to encode cluster", "this indicates a bug in the CLI; please report it")
	}

	created, _, herr := doRequestAndDecode[models.ClusterList](cmd.Context(), http.MethodPost, api.ClustersRoute, bytes.NewReader(body))
	if herr != nil {
		return herr
	}

	if done, herr := printStructured(created); done {
		return herr
	}

	pretty_print.PrintOk(fmt.Sprintf("Cluster %s registered", args[0]))
	pretty_print.PrintClusterList(created)
	return nil
}

func runGetCluster(cmd *cobra.Command, args []string) error {
	cluster, _, err := doRequestAndDecode[models.Cluster](cmd.Context(), http.MethodGet, clusterPath(args[0]), nil)
	if err != nil {
		return err
	}

	if done, herr := printStructured(cluster); done {
		return herr
	}

	list := models.NewClusterList(*cluster)
	pretty_print.PrintClusterList(&list)
	return nil
}

func runUpdateCluster(cmd *cobra.Command, args []string) error {
	cluster := models.Cluster{
		Name:        args[0],
		DisplayName: clusterDisplayName,
		FullVersion: clusterFullVersion,
	}

	body, err := json.Marshal(cluster)
	if err != nil {
		return humane.Wrap(err, "failed to encode cluster", "this indicates a bug in the CLI; please report it")
	}

	updated, _, herr := doRequestAndDecode[models.Cluster](cmd.Context(), http.MethodPut, clusterPath(args[0]), bytes.NewReader(body))
	if herr != nil {
		return herr
	}

	if done, herr := printStructured(updated); done {
		return herr
	}

	list := models.NewClusterList(*updated)
	pretty_print.PrintClusterList(&list)
	return nil
}

func runDeleteCluster(cmd *cobra.Command, args []string) error {
	deleted, _, err := doRequestAndDecode[models.Cluster](cmd.Context(), http.MethodDelete, clusterPath(args[0]), nil)
	if err != nil {
		return err
	}

	if done, herr := printStructured(deleted); done {
		return herr
	}

	pretty_print.PrintOk(fmt.Sprintf("Cluster %s deleted", deleted.Name))
	return nil
}
