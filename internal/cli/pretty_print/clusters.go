package pretty_print

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spechtlabs/clusterman/pkg/models"
)

// PrintClusterList renders the clusters as an aligned table.
func PrintClusterList(list *models.ClusterList) {
	options := DefaultOptions()

	if len(list.Values()) == 0 {
		PrintInfo("No clusters registered")
		return
	}

	nameW, versionW := len("NAME"), len("VERSION")
	for _, c := range list.Values() {
		nameW = max(nameW, len(c.Name))
		versionW = max(versionW, len(c.FullVersion))
	}

	header := fmt.Sprintf("%-*s  %-*s  %s", nameW, "NAME", versionW, "VERSION", "DISPLAY NAME")
	fmt.Fprintln(os.Stdout, boldStyle(options.Theme).Render(header))
	for _, c := range list.Values() {
		row := fmt.Sprintf("%-*s  %-*s  %s", nameW, c.Name, versionW, c.FullVersion, c.DisplayName)
		fmt.Fprintln(os.Stdout, normalStyle(options.Theme).Render(row))
	}
}

// PrintScmDbInfo renders the management database connection in a box.
func PrintScmDbInfo(info *models.ScmDbInfo) {
	options := DefaultOptions()

	host := info.Host
	if host == "" {
		host = "-"
	}

	content := fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s %s",
		boldStyle(options.Theme).Render("Type:    "), normalStyle(options.Theme).Render(string(info.Type)),
		boldStyle(options.Theme).Render("Host:    "), normalStyle(options.Theme).Render(host),
		boldStyle(options.Theme).Render("Name:    "), normalStyle(options.Theme).Render(info.Name),
		boldStyle(options.Theme).Render("Embedded:"), italicStyle(options.Theme).Render(strconv.FormatBool(info.EmbeddedDbUsed)),
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(okColor(options.Theme)).
		Padding(0, 1).
		MarginTop(0).
		MarginBottom(0).
		MarginLeft(4)

	_, _ = fmt.Fprintln(os.Stdout, boxStyle.Render(content))
}
