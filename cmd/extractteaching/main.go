package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teaching-export/internal/config"
	"teaching-export/internal/logging"
	"teaching-export/internal/pipeline"
	"teaching-export/internal/sftpclient"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := execute(ctx, newRootCmd(config.Load(), os.Stdout), os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs cmd and reports any error on stderr, returning the exit code.
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd(cfg config.Config, stdout io.Writer) *cobra.Command {
	var (
		verbose     bool
		uploadSFTP  bool
		showChanges bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "extractteaching",
		Short: "Build the résumé teaching section from the TA course export",
		Long: `Reads the course history export (a JSON array), keeps teaching-assistant
enrollments, merges duplicate courses and writes the teaching section of
the résumé as YAML.

Optionally writes a brotli copy and uploads the result over SFTP.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			opts := pipeline.Options{
				InputPath:    cfg.InputPath,
				OutputPath:   cfg.OutputPath,
				Organization: cfg.Organization,
				Brotli:       cfg.Brotli,
				Changes:      showChanges,
				Force:        force,
			}
			if uploadSFTP {
				opts.Publish = &sftpclient.Config{
					Host:                  cfg.SFTPHost,
					Port:                  cfg.SFTPPort,
					User:                  cfg.SFTPUser,
					Pass:                  cfg.SFTPPass,
					RemoteDir:             cfg.SFTPDir,
					KnownHostsPath:        cfg.SFTPKnownHosts,
					InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			if _, err := pipeline.Run(ctx, opts, logger, stdout); err != nil {
				logger.Error("export failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.InputPath, "in", cfg.InputPath, "input JSON export path")
	f.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "output YAML path (overwritten)")
	f.StringVar(&cfg.Organization, "org", cfg.Organization, "organization for every entry")
	f.BoolVar(&cfg.Brotli, "brotli", cfg.Brotli, "also write <out>.br")
	f.BoolVar(&uploadSFTP, "sftp", false, "upload the generated files via SFTP (skipped when nothing changed)")
	f.BoolVar(&force, "force", false, "upload even when the output is unchanged")
	f.BoolVar(&showChanges, "changes", false, "log entries added/changed/removed since the previous output")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}
