package main

import (
	"encoding/json"
	"fmt"
	"os"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"
)

// printStructured renders v to stdout as JSON or YAML when the user asked for
// machine readable output. It reports whether it handled the rendering, so
// callers fall back to their table view otherwise.
func printStructured(v any) (bool, humane.Error) {
	switch viper.GetString("output.format") {
	case "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, humane.Wrap(err, "failed to render JSON output", "this indicates a bug in the CLI; please report it")
		}
		fmt.Fprintln(os.Stdout, string(out))
		return true, nil

	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return true, humane.Wrap(err, "failed to render YAML output", "this indicates a bug in the CLI; please report it")
		}
		fmt.Fprint(os.Stdout, string(out))
		return true, nil

	default:
		return false, nil
	}
}
