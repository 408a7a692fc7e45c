package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "staticd",
	Short:   "Static resource server with byte-range and conditional request support",
	Long: `Staticd serves static resources from ordered locations (directories
and zip bundles) with traversal-safe path resolution, byte ranges,
conditional requests, and configurable caching headers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		readConfig(cmd)
		setupLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("root", "", "serve a single directory root (overrides configured locations, env: STATICD_ROOT)")

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
