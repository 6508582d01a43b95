package silentpayments

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/internal/postgres"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/config"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/datagateway"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/archive"
	sppostgres "github.com/gaze-network/silentpayments-indexer/modules/silentpayments/repository/postgres"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger/slogx"
)

const DefaultExportBatchSize = 1000

type ExportOptions struct {
	// From is the first height to export.
	From int64
	// To is the last height to export. A negative value exports up to the latest indexed block.
	To int64
	// BatchSize is the number of blocks per archive file.
	BatchSize int64
	// OutputDir writes archives to a local directory. When empty, archives are uploaded to the configured S3 bucket.
	OutputDir string
}

// Export writes the indexed scan tweaks of [From, To] as parquet archives and returns their locations.
func Export(ctx context.Context, conf config.Config, opts ExportOptions) ([]string, error) {
	var sink archive.Sink
	if opts.OutputDir != "" {
		sink = archive.FileSink{Dir: opts.OutputDir}
	} else {
		s3Sink, err := archive.NewS3Sink(ctx, conf.Archive.Bucket, conf.Archive.Region, conf.Archive.Prefix)
		if err != nil {
			return nil, errors.Wrap(err, "can't create archive sink")
		}
		sink = s3Sink
	}

	pg, err := postgres.NewPool(ctx, conf.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "can't create Postgres connection pool")
	}
	defer pg.Close()

	return exportArchives(ctx, sppostgres.NewRepository(pg), sink, opts)
}

func exportArchives(ctx context.Context, spDg datagateway.SilentPaymentsReaderDataGateway, sink archive.Sink, opts ExportOptions) ([]string, error) {
	if opts.From < 0 {
		return nil, errors.Wrap(errs.InvalidArgument, "from must be non-negative")
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultExportBatchSize
	}

	to := opts.To
	if to < 0 {
		latestBlock, err := spDg.GetLatestBlock(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get latest block")
		}
		to = latestBlock.Height
	}
	if to < opts.From {
		return nil, errors.Wrapf(errs.InvalidArgument, "to (%d) must be greater than or equal to from (%d)", to, opts.From)
	}

	locations := make([]string, 0)
	for start := opts.From; start <= to; start += batchSize {
		end := min(start+batchSize-1, to)

		txs, err := spDg.GetTweakTransactionsByHeightRange(ctx, start, end)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get tweak transactions, range: %d-%d", start, end)
		}
		rows := archive.ToRows(txs)
		if len(rows) == 0 {
			continue
		}

		data, err := archive.Encode(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode archive")
		}
		location, err := sink.Put(ctx, fmt.Sprintf("tweaks_%010d_%010d.parquet", start, end), data)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		logger.InfoContext(ctx, "Exported scan tweaks",
			slogx.Int64("from", start),
			slogx.Int64("to", end),
			slogx.Int("rows", len(rows)),
			slogx.String("location", location),
		)
		locations = append(locations, location)
	}
	return locations, nil
}
