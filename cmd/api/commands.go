package main

import (
	"github.com/spf13/cobra"

	"github.com/yigit/jobtracker/internal/bootstrap"
	"github.com/yigit/jobtracker/internal/seed"
	"github.com/yigit/jobtracker/internal/server"
)

var configPath string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jobtracker",
		Short:         "Mars colony job tracker",
		Long:          "Serves the job tracker web UI and JSON API. Without a subcommand the server is started.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", bootstrap.DefaultConfigPath, "Path to the YAML configuration file")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the default hazard categories and exit",
			RunE:  runSeed,
		},
	)
	return rootCmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.NewServer(cmd.Context(), configPath)
	if err != nil {
		return err
	}
	return srv.Run()
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	database, err := bootstrap.OpenDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	return database.Migrate(cmd.Context(), lgr)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	database, err := bootstrap.OpenDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(cmd.Context(), lgr); err != nil {
		return err
	}

	created, err := seed.CreateDefaultCategories(cmd.Context(), database.Store, lgr)
	if err != nil {
		return err
	}
	lgr.Info().Int("created", created).Msg("Seeding finished")
	return nil
}
