package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version = "0.1.0"
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "gunj-reports",
		Short: "Report generators for the Gunj Operator project",
		Long:  "Gunj Operator report tooling: render cloud-native maturity reports and the security compliance dashboard from assessment snapshots.",
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("output", "o", ".", "Output directory for generated reports")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Environment variable support (GUNJ_OUTPUT, etc.)
	viper.SetEnvPrefix("GUNJ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		level := zerolog.InfoLevel
		if viper.GetBool("debug") {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	}

	// Subcommands
	rootCmd.AddCommand(newMaturityCmd())
	rootCmd.AddCommand(newSecurityCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("gunj-reports %s\n", Version)
		},
	}
}

func formats(key string) []string {
	parts := strings.Split(viper.GetString(key), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(strings.ToLower(parts[i]))
	}
	return parts
}

func contains(arr []string, v string) bool {
	for _, x := range arr {
		if x == v {
			return true
		}
	}
	return false
}
