package main

import (
	"context"
	"os"

	"github.com/JiaqinWu/DCPS-Salary/internal/review"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/config"
	"github.com/JiaqinWu/DCPS-Salary/internal/workbook"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	envFile string
	file    string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "review",
		Short:        "Inspect corrected salary projections from a staff workbook",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "Env file with workbook settings")
	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Workbook path (defaults to WORKBOOK_PATH)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline progress")

	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadService reads the workbook once and returns a service ready for
// lookups.
func (o *rootOptions) loadService(ctx context.Context) (review.Service, review.LoadSummaryResponse, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, review.LoadSummaryResponse{}, err
	}

	logger := zap.NewNop()
	if o.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, review.LoadSummaryResponse{}, err
		}
	}

	path := o.file
	if path == "" {
		path = cfg.Workbook.Path
	}

	repo := workbook.NewRepository(workbook.Options{
		StaffSheet: cfg.Workbook.StaffSheet,
		ScaleSheet: cfg.Workbook.ScaleSheet,
	}, logger)
	svc := review.NewService(repo, logger)

	summary, err := svc.Load(ctx, path)
	if err != nil {
		return nil, review.LoadSummaryResponse{}, err
	}
	return svc, summary, nil
}
