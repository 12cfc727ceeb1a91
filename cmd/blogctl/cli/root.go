package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Maintenance commands for the blog database.",
	Long: `Out-of-band maintenance for the blog backend. These commands act on the
database file directly and are not reachable over HTTP.

  blogctl reset --db ./blog.db
`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaultPath := os.Getenv("DB_PATH")
	if defaultPath == "" {
		defaultPath = "./blog.db"
	}

	rootCmd.PersistentFlags().
		StringVar(&dbPath, "db", defaultPath, "path of the SQLite database file (default from DB_PATH)")
	rootCmd.AddCommand(newResetCmd())
}
