package cli

import (
	"github.com/jobcrawler/infrastructure"
	"github.com/spf13/cobra"
)

func NewRootCmd(cfg infrastructure.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jobcrawler",
		Short: "Search job listings collected by the jobcrawler backend",
		Long: `Search job listings collected by the jobcrawler backend.

The backend address is taken from JOBCRAWLER_API_URL, or derived from
JOBCRAWLER_ENV / NODE_ENV when unset. Variables may be placed in a .env file.`,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewSearchCmd(cfg))
	return rootCmd
}
