package cmd

import (
	"time"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/clusterman/internal/cli/pretty_print"
	"github.com/spechtlabs/clusterman/pkg/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFileName string

func addCommonFlags(cmd *cobra.Command) {
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)

	cmd.PersistentFlags().StringVarP(&configFileName, "config", "c", "", "Name of the config file")
	_ = cmd.RegisterFlagCompletionFunc("config", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "yaml", "toml"}, cobra.ShellCompDirectiveDefault
	})

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	viper.SetDefault("debug", false)
	if err := viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug")); err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key"))
	}

	cmd.PersistentFlags().StringP("server", "s", "localhost", "Host name of the management server")
	viper.SetDefault("server.host", "localhost")
	if err := viper.BindPFlag("server.host", cmd.PersistentFlags().Lookup("server")); err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key"))
	}

	cmd.PersistentFlags().IntP("port", "p", 7180, "Port of the management server's REST API")
	viper.SetDefault("server.port", 7180)
	if err := viper.BindPFlag("server.port", cmd.PersistentFlags().Lookup("port")); err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key"))
	}

	cmd.PersistentFlags().BoolP("long", "l", false, "Show long output (where available)")
	viper.SetDefault("output.long", false)
	if err := viper.BindPFlag("output.long", cmd.PersistentFlags().Lookup("long")); err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key"))
	}

	cmd.PersistentFlags().BoolP("quiet", "q", false, "Show no output (where available)")
	viper.SetDefault("output.quiet", false)
	if err := viper.BindPFlag("output.quiet", cmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key"))
	}
}

func addServerFlags(cmd *cobra.Command) {
	addCommonFlags(cmd)

	viper.SetDefault("server.readTimeout", 10*time.Second)
	viper.SetDefault("server.readHeaderTimeout", 5*time.Second)
	viper.SetDefault("server.writeTimeout", 20*time.Second)
	viper.SetDefault("server.idleTimeout", 120*time.Second)

	cmd.PersistentFlags().StringP("db-url", "d", "sqlite:"+storage.DefaultDSN, "Database url of the management database")
	viper.SetDefault("database.url", "sqlite:"+storage.DefaultDSN)
	err := viper.BindPFlag("database.url", cmd.PersistentFlags().Lookup("db-url"))
	if err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key"))
	}

	cmd.PersistentFlags().Int("health-port", 8080, "Port of the health and metrics endpoint")
	viper.SetDefault("server.healthPort", 8080)
	err = viper.BindPFlag("server.healthPort", cmd.PersistentFlags().Lookup("health-port"))
	if err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key"))
	}
}

func addClientFlags(cmd *cobra.Command) {
	addCommonFlags(cmd)

	cmd.PersistentFlags().StringP("theme", "t", "tokyo-night", "theme to use for the CLI")
	viper.SetDefault("output.theme", "tokyo-night")
	err := viper.BindPFlag("output.theme", cmd.PersistentFlags().Lookup("theme"))
	if err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key"))
	}
	_ = cmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return pretty_print.AllThemeNames(), cobra.ShellCompDirectiveDefault
	})

	cmd.PersistentFlags().StringP("output", "o", "table", "Output format: table, json or yaml")
	viper.SetDefault("output.format", "table")
	err = viper.BindPFlag("output.format", cmd.PersistentFlags().Lookup("output"))
	if err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key"))
	}
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json", "yaml"}, cobra.ShellCompDirectiveDefault
	})
}
