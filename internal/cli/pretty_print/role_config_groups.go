package pretty_print

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spechtlabs/clusterman/pkg/models"
)

// PrintRoleConfigGroupList renders the groups as an aligned table.
func PrintRoleConfigGroupList(list *models.RoleConfigGroupList) {
	options := DefaultOptions()

	if len(list.Values()) == 0 {
		PrintInfo("No role config groups")
		return
	}

	nameW, typeW, baseW := len("NAME"), len("ROLE TYPE"), len("BASE")
	for _, g := range list.Values() {
		nameW = max(nameW, len(g.Name))
		typeW = max(typeW, len(g.RoleType))
	}

	header := fmt.Sprintf("%-*s  %-*s  %-*s  %s", nameW, "NAME", typeW, "ROLE TYPE", baseW, "BASE", "DISPLAY NAME")
	fmt.Fprintln(os.Stdout, boldStyle(options.Theme).Render(header))
	for _, g := range list.Values() {
		row := fmt.Sprintf("%-*s  %-*s  %-*s  %s", nameW, g.Name, typeW, g.RoleType, baseW, strconv.FormatBool(g.Base), g.DisplayName)
		fmt.Fprintln(os.Stdout, normalStyle(options.Theme).Render(row))
	}
}

// PrintRoleList renders the roles as an aligned table.
func PrintRoleList(list *models.RoleList) {
	options := DefaultOptions()

	if len(list.Values()) == 0 {
		PrintInfo("No roles")
		return
	}

	nameW, typeW := len("NAME"), len("TYPE")
	for _, r := range list.Values() {
		nameW = max(nameW, len(r.Name))
		typeW = max(typeW, len(r.Type))
	}

	header := fmt.Sprintf("%-*s  %-*s  %s", nameW, "NAME", typeW, "TYPE", "GROUP")
	fmt.Fprintln(os.Stdout, boldStyle(options.Theme).Render(header))
	for _, r := range list.Values() {
		row := fmt.Sprintf("%-*s  %-*s  %s", nameW, r.Name, typeW, r.Type, r.RoleConfigGroupName)
		fmt.Fprintln(os.Stdout, normalStyle(options.Theme).Render(row))
	}
}
