package indexer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/core/datasources"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger/slogx"
)

const (
	maxReorgLookBack = 1000

	// defaultPollingInterval is the default polling interval for the indexer polling worker
	defaultPollingInterval = 15 * time.Second

	shutdownTimeout = 180 * time.Second
)

type Option[T Input] func(*Indexer[T])

// WithPollingInterval overrides the interval between two fetch rounds.
func WithPollingInterval[T Input](interval time.Duration) Option[T] {
	return func(i *Indexer[T]) {
		if interval > 0 {
			i.pollingInterval = interval
		}
	}
}

// Indexer generic indexer for fetching and processing data
type Indexer[T Input] struct {
	Processor    Processor[T]
	Datasource   datasources.Datasource[T]
	currentBlock types.BlockHeader

	pollingInterval time.Duration

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

// New create new generic indexer
func New[T Input](processor Processor[T], datasource datasources.Datasource[T], opts ...Option[T]) *Indexer[T] {
	i := &Indexer[T]{
		Processor:       processor,
		Datasource:      datasource,
		pollingInterval: defaultPollingInterval,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Indexer[T]) Shutdown() error {
	return i.ShutdownWithContext(context.Background())
}

func (i *Indexer[T]) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return i.ShutdownWithContext(ctx)
}

func (i *Indexer[T]) ShutdownWithContext(ctx context.Context) (err error) {
	i.quitOnce.Do(func() {
		close(i.quit)
		select {
		case <-i.done:
		case <-time.After(shutdownTimeout):
			err = errors.Wrap(errs.Timeout, "indexer shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "indexer shutdown context canceled")
		}
	})
	return
}

func (i *Indexer[T]) Run(ctx context.Context) (err error) {
	defer close(i.done)

	ctx = logger.WithContext(ctx,
		slog.String("package", "indexer"),
		slog.String("processor", i.Processor.Name()),
		slog.String("datasource", i.Datasource.Name()),
	)

	// height -1 means nothing is indexed yet, start from genesis block
	i.currentBlock, err = i.Processor.CurrentBlock(ctx)
	if err != nil {
		if !errors.Is(err, errs.NotFound) {
			return errors.Wrap(err, "can't init state, failed to get indexer current block")
		}
		i.currentBlock.Height = -1
	}

	// a starting header may carry only its height
	if i.currentBlock.Height >= 0 && i.currentBlock.Hash == common.ZeroHash {
		i.currentBlock, err = i.Datasource.GetBlockHeader(ctx, i.currentBlock.Height)
		if err != nil {
			return errors.Wrapf(err, "can't init state, failed to get block header, height: %d", i.currentBlock.Height)
		}
	}
	logger.InfoContext(ctx, "Indexer started", slogx.Int64("current_block", i.currentBlock.Height))

	ticker := time.NewTicker(i.pollingInterval)
	defer ticker.Stop()

	round := func() error {
		if err := i.process(ctx); err != nil {
			logger.ErrorContext(ctx, "Indexer failed while processing", slogx.Error(err))
			return errors.Wrap(err, "process failed")
		}
		logger.DebugContext(ctx, "Waiting for next polling interval")
		return nil
	}

	if err := round(); err != nil {
		return errors.WithStack(err)
	}
	for {
		select {
		case <-i.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping indexer")
			if err := i.Processor.Shutdown(ctx); err != nil {
				logger.ErrorContext(ctx, "Failed to shutdown processor", slogx.Error(err))
				return errors.Wrap(err, "processor shutdown failed")
			}
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := round(); err != nil {
				return errors.WithStack(err)
			}
		}
	}
}

func (i *Indexer[T]) process(ctx context.Context) (err error) {
	// height range to fetch data
	from, to := i.currentBlock.Height+1, int64(-1)

	logger.InfoContext(ctx, "Start fetching input data", slogx.Int64("from", from))
	ch := make(chan []T)
	subscription, err := i.Datasource.FetchAsync(ctx, from, to, ch)
	if err != nil {
		return errors.Wrap(err, "failed to fetch input data")
	}
	defer subscription.Unsubscribe()

	for {
		select {
		case <-i.quit:
			return nil
		case inputs := <-ch:
			if len(inputs) == 0 {
				continue
			}

			startAt := time.Now()
			firstHeader := inputs[0].BlockHeader()
			ctx := logger.WithContext(ctx,
				slogx.Int64("from", firstHeader.Height),
				slogx.Int64("to", inputs[len(inputs)-1].BlockHeader().Height),
			)

			// first input must extend the current block, otherwise the chain was reorganized
			if i.currentBlock.Height >= 0 && !firstHeader.PrevBlock.IsEqual(&i.currentBlock.Hash) {
				logger.WarnContext(ctx, "Detected chain reorganization. Searching for fork point...",
					slogx.String("event", "reorg_detected"),
					slogx.Stringer("current_hash", i.currentBlock.Hash),
					slogx.Stringer("expected_hash", firstHeader.PrevBlock),
				)
				if err := i.revertToForkPoint(ctx); err != nil {
					return errors.WithStack(err)
				}

				// end current round to fetch again from the fork point
				return nil
			}

			for n := 1; n < len(inputs); n++ {
				header := inputs[n].BlockHeader()
				prevHeader := inputs[n-1].BlockHeader()
				if header.Height != prevHeader.Height+1 {
					return errors.Wrapf(errs.InternalError, "input is not continuous, input[%d] height: %d, input[%d] height: %d", n-1, prevHeader.Height, n, header.Height)
				}

				if !header.PrevBlock.IsEqual(&prevHeader.Hash) {
					logger.WarnContext(ctx, "Chain Reorganization occurred in the middle of batch fetching inputs, need to try to fetch again")
					return nil
				}
			}

			ctx = logger.WithContext(ctx, slogx.Int("total_inputs", len(inputs)))

			logger.InfoContext(ctx, "Processing inputs")
			if err := i.Processor.Process(ctx, inputs); err != nil {
				return errors.WithStack(err)
			}

			i.currentBlock = inputs[len(inputs)-1].BlockHeader()

			logger.InfoContext(ctx, "Processed inputs successfully",
				slogx.String("event", "processed_inputs"),
				slogx.Int64("current_block", i.currentBlock.Height),
				slogx.Duration("duration", time.Since(startAt)),
			)
		case <-subscription.Done():
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, "context done")
			}
			return nil
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case err := <-subscription.Err():
			if err != nil {
				return errors.Wrap(err, "got error while fetch async")
			}
		}
	}
}

// revertToForkPoint walks back from the current block until the indexed and remote
// headers agree, then reverts everything indexed above that height.
func (i *Indexer[T]) revertToForkPoint(ctx context.Context) error {
	start := time.Now()
	forkPoint, err := i.findForkPoint(ctx, i.currentBlock.Height-1)
	if err != nil {
		return errors.WithStack(err)
	}

	logger.InfoContext(ctx, "Found reorg fork point, starting to revert data...",
		slogx.String("event", "reorg_forkpoint"),
		slogx.Int64("since", forkPoint.Height+1),
		slogx.Int64("total_blocks", i.currentBlock.Height-forkPoint.Height),
		slogx.Duration("search_duration", time.Since(start)),
	)

	start = time.Now()
	if err := i.Processor.RevertData(ctx, forkPoint.Height+1); err != nil {
		return errors.Wrap(err, "failed to revert data")
	}

	i.currentBlock = forkPoint
	logger.InfoContext(ctx, "Fixing chain reorganization completed",
		slogx.Int64("current_block", i.currentBlock.Height),
		slogx.Duration("duration", time.Since(start)),
	)
	return nil
}

func (i *Indexer[T]) findForkPoint(ctx context.Context, height int64) (types.BlockHeader, error) {
	for n := 0; n < maxReorgLookBack && height >= 0; n++ {
		indexedHeader, err := i.Processor.GetIndexedBlock(ctx, height)
		if err != nil {
			return types.BlockHeader{}, errors.Wrapf(err, "failed to get indexed block, height: %d", height)
		}

		remoteHeader, err := i.Datasource.GetBlockHeader(ctx, height)
		if err != nil {
			return types.BlockHeader{}, errors.Wrapf(err, "failed to get remote block header, height: %d", height)
		}

		if indexedHeader.Hash.IsEqual(&remoteHeader.Hash) {
			return remoteHeader, nil
		}
		height--
	}
	return types.BlockHeader{}, errors.Wrap(errs.SomethingWentWrong, "reorg look back limit reached")
}
