package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "innerlens",
	Short: "Assessment scoring and progression engine",
	Long:  "Innerlens — scoring engine for the trait and emotional-state assessment: item bank, pagination, session progression, result versioning and retake policy.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(versionCmd)
}
