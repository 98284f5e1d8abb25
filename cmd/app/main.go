// Command dispatch runs the courier dispatch service.
package main

import (
	"log"
	"log/slog"
	"os"

	"dispatch/cmd"
	"dispatch/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatal("could not load config: ", err)
	}

	appLogger, syncLogger, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal("could not create logger: ", err)
	}
	slog.SetDefault(appLogger)

	rootCmd := &cobra.Command{
		Use:          "dispatch",
		Short:        "Courier dispatch service",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		serveCommand(cfg, appLogger),
		migrateCommand(cfg, appLogger),
	)

	err = rootCmd.Execute()
	syncLogger()
	if err != nil {
		os.Exit(1)
	}
}
