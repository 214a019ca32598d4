package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/clusterman/internal/cli/pretty_print"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spf13/cobra"
)

var (
	groupDisplayName string
	groupRoleType    string
	groupConfig      []string

	cmdGroups = &cobra.Command{
		Use:   "groups <command>",
		Short: "Manage the role config groups of a service",
		Args:  cobra.ExactArgs(0),
		Example: `# List the groups of the HDFS service on prod-east
clusterman groups list prod-east hdfs

# Create a group for DataNode roles
clusterman groups create prod-east hdfs dn-highmem --role-type DATANODE --config dfs_data_dir=/data

# Move roles into it
clusterman groups move-roles prod-east hdfs dn-highmem dn-3 dn-4`,
	}

	cmdListGroups = &cobra.Command{
		Use:   "list <cluster> <service>",
		Short: "List the role config groups of a service",
		Args:  cobra.ExactArgs(2),
		RunE:  runListGroups,
	}

	cmdCreateGroup = &cobra.Command{
		Use:   "create <cluster> <service> <name> --role-type <string> [--display-name <string>] [--config <name=value> ...]",
		Short: "Create a role config group",
		Args:  cobra.ExactArgs(3),
		RunE:  runCreateGroup,
	}

	cmdGetGroup = &cobra.Command{
		Use:   "get <cluster> <service> <name>",
		Short: "Show a single role config group",
		Args:  cobra.ExactArgs(3),
		RunE:  runGetGroup,
	}

	cmdUpdateGroup = &cobra.Command{
		Use:   "update <cluster> <service> <name> [--display-name <string>] [--config <name=value> ...]",
		Short: "Update the display name and config of a role config group",
		Args:  cobra.ExactArgs(3),
		RunE:  runUpdateGroup,
	}

	cmdDeleteGroup = &cobra.Command{
		Use:   "delete <cluster> <service> <name>",
		Short: "Remove a role config group",
		Long: `Remove a role config group. Base groups cannot be deleted.
Roles still in the group fall back to the base group of their type.`,
		Args: cobra.ExactArgs(3),
		RunE: runDeleteGroup,
	}

	cmdMoveRoles = &cobra.Command{
		Use:   "move-roles <cluster> <service> <group> <role> [<role> ...]",
		Short: "Move roles into a role config group",
		Long: `Move roles into a role config group. Roles can only join a group whose
role type matches their own; if any role fails the check, none move.`,
		Args: cobra.MinimumNArgs(4),
		RunE: runMoveRoles,
	}
)

func init() {
	cmdCreateGroup.Flags().StringVar(&groupRoleType, "role-type", "", "Role type the group configures (required)")
	cmdCreateGroup.Flags().StringVar(&groupDisplayName, "display-name", "", "Human readable name of the group")
	cmdCreateGroup.Flags().StringArrayVar(&groupConfig, "config", nil, "Configuration property as name=value (repeatable)")
	_ = cmdCreateGroup.MarkFlagRequired("role-type")

	cmdUpdateGroup.Flags().StringVar(&groupDisplayName, "display-name", "", "Human readable name of the group")
	cmdUpdateGroup.Flags().StringArrayVar(&groupConfig, "config", nil, "Configuration property as name=value (repeatable)")

	cmdGroups.AddCommand(cmdListGroups)
	cmdGroups.AddCommand(cmdCreateGroup)
	cmdGroups.AddCommand(cmdGetGroup)
	cmdGroups.AddCommand(cmdUpdateGroup)
	cmdGroups.AddCommand(cmdDeleteGroup)
	cmdGroups.AddCommand(cmdMoveRoles)
}

func groupsPath(cluster, service string) string {
	return fmt.Sprintf("/clusters/%s/services/%s/roleConfigGroups", url.PathEscape(cluster), url.PathEscape(service))
}

func groupPath(cluster, service, group string) string {
	return fmt.Sprintf("%s/%s", groupsPath(cluster, service), url.PathEscape(group))
}

func parseConfigFlags(pairs []string) ([]models.ConfigEntry, humane.Error) {
	entries := make([]models.ConfigEntry, 0, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, humane.New(fmt.Sprintf("invalid config property %q", pair), "pass config properties as --config name=value")
		}
		entries = append(entries, models.ConfigEntry{Name: name, Value: value})
	}
	return entries, nil
}

func runListGroups(cmd *cobra.Command, args []string) error {
	list, _, err := doRequestAndDecode[models.RoleConfigGroupList](cmd.Context(), http.MethodGet, groupsPath(args[0], args[1]), nil)
	if err != nil {
		return err
	}

	if done, herr := printStructured(list); done {
		return herr
	}

	pretty_print.PrintRoleConfigGroupList(list)
	return nil
}

func runCreateGroup(cmd *cobra.Command, args []string) error {
	config, herr := parseConfigFlags(groupConfig)
	if herr != nil {
		return herr
	}

	group := models.RoleConfigGroup{
		Name:        args[2],
		DisplayName: groupDisplayName,
		RoleType:    groupRoleType,
		Config:      config,
	}

	body, err := json.Marshal(models.NewRoleConfigGroupList(group))
	if err != nil {
		return humane.Wrap(err, "failed to encode role config group", "this indicates a bug in the CLI; please report it")
	}

	created, _, herr := doRequestAndDecode[models.RoleConfigGroupList](cmd.Context(), http.MethodPost, groupsPath(args[0], args[1]), bytes.NewReader(body))
	if herr != nil {
		return herr
	}

	if done, herr := printStructured(created); done {
		return herr
	}

	pretty_print.PrintOk(fmt.Sprintf("Role config group %s created", args[2]))
	pretty_print.PrintRoleConfigGroupList(created)
	return nil
}

func runGetGroup(cmd *cobra.Command, args []string) error {
	group, _, err := doRequestAndDecode[models.RoleConfigGroup](cmd.Context(), http.MethodGet, groupPath(args[0], args[1], args[2]), nil)
	if err != nil {
		return err
	}

	if done, herr := printStructured(group); done {
		return herr
	}

	list := models.NewRoleConfigGroupList(*group)
	pretty_print.PrintRoleConfigGroupList(&list)
	return nil
}

func runUpdateGroup(cmd *cobra.Command, args []string) error {
	config, herr := parseConfigFlags(groupConfig)
	if herr != nil {
		return herr
	}

	group := models.RoleConfigGroup{
		Name:        args[2],
		DisplayName: groupDisplayName,
		Config:      config,
	}

	body, err := json.Marshal(group)
	if err != nil {
		return humane.Wrap(err, "failed to encode role config group", "this indicates a bug in the CLI; please report it")
	}

	updated, _, herr := doRequestAndDecode[models.RoleConfigGroup](cmd.Context(), http.MethodPut, groupPath(args[0], args[1], args[2]), bytes.NewReader(body))
	if herr != nil {
		return herr
	}

	if done, herr := printStructured(updated); done {
		return herr
	}

	list := models.NewRoleConfigGroupList(*updated)
	pretty_print.PrintRoleConfigGroupList(&list)
	return nil
}

func runDeleteGroup(cmd *cobra.Command, args []string) error {
	deleted, _, err := doRequestAndDecode[models.RoleConfigGroup](cmd.Context(), http.MethodDelete, groupPath(args[0], args[1], args[2]), nil)
	if err != nil {
		return err
	}

	if done, herr := printStructured(deleted); done {
		return herr
	}

	pretty_print.PrintOk(fmt.Sprintf("Role config group %s deleted", deleted.Name))
	return nil
}

func runMoveRoles(cmd *cobra.Command, args []string) error {
	body, err := json.Marshal(models.NewRoleNameList(args[3:]...))
	if err != nil {
		return humane.Wrap(err, "failed to encode role names", "this indicates a bug in the CLI; please report it")
	}

	uri := fmt.Sprintf("%s/roles", groupPath(args[0], args[1], args[2]))
	moved, _, herr := doRequestAndDecode[models.RoleList](cmd.Context(), http.MethodPut, uri, bytes.NewReader(body))
	if herr != nil {
		return herr
	}

	if done, herr := printStructured(moved); done {
		return herr
	}

	pretty_print.PrintOk(fmt.Sprintf("Moved %d role(s) into %s", len(moved.Values()), args[2]))
	pretty_print.PrintRoleList(moved)
	return nil
}
