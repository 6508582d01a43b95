package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/internal/config"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments"
	"github.com/spf13/cobra"
)

type exportCmdOptions struct {
	From      int64
	To        int64
	BatchSize int64
	OutputDir string
}

func NewExportCommand() *cobra.Command {
	opts := &exportCmdOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export indexed scan tweaks as parquet archives",
		Long:  "Export indexed scan tweaks as parquet archives, to a local directory or to the S3 bucket configured in modules.silentpayments.archive.",
		Example: `gaze-sp export --from 709632 --to 800000 --output ./archives
gaze-sp export --from 800000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&opts.From, "from", 0, "First block height to export")
	flags.Int64Var(&opts.To, "to", -1, "Last block height to export. Default is the latest indexed block")
	flags.Int64Var(&opts.BatchSize, "batch", silentpayments.DefaultExportBatchSize, "Number of blocks per archive file")
	flags.StringVar(&opts.OutputDir, "output", "", "Write archives to this directory instead of uploading them to S3")

	return cmd
}

func exportHandler(opts *exportCmdOptions, cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	locations, err := silentpayments.Export(cmd.Context(), conf.Modules.SilentPayments, silentpayments.ExportOptions{
		From:      opts.From,
		To:        opts.To,
		BatchSize: opts.BatchSize,
		OutputDir: opts.OutputDir,
	})
	if err != nil {
		return errors.Wrap(err, "failed to export scan tweaks")
	}
	for _, location := range locations {
		fmt.Fprintln(cmd.OutOrStdout(), location)
	}
	return nil
}
