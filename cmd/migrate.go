package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the history store schema.

The schema is derived from the persisted models, so migrating brings
every table and index up to date in one step.

Available subcommands:
  up      - Create or update every table
  status  - Show which tables exist`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update every table",
	Long: `Apply the schema of every persisted model to the database.

Missing tables, columns and indexes are created. Existing data is kept.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the history store schema.

Every persisted model is listed with whether its table exists.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().String("database", "", "database path (overrides config)")
	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func migrateConfigPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("database"); path != "" {
		return path, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Database.Path, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	path, err := migrateConfigPath(cmd)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		return printStatus(cmd, path)
	}

	db, err := openPath(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Database %s is up to date\n", path)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	path, err := migrateConfigPath(cmd)
	if err != nil {
		return err
	}
	return printStatus(cmd, path)
}

func printStatus(cmd *cobra.Command, path string) error {
	db, err := openPath(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tables, err := db.Status()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Database: %s\n", path)
	fmt.Fprintln(out, strings.Repeat("=", 50))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tSTATUS")
	pending := 0
	for _, t := range tables {
		status := "applied"
		if !t.Exists {
			status = "pending"
			pending++
		}
		fmt.Fprintf(w, "%s\t%s\n", t.Table, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d of %d tables pending\n", pending, len(tables))
	return nil
}
