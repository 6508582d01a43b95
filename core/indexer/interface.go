package indexer

import (
	"context"

	"github.com/gaze-network/silentpayments-indexer/core/types"
)

// Input is a unit of data the indexer feeds into a Processor.
type Input interface {
	BlockHeader() types.BlockHeader
}

// Processor processes inputs fetched by the indexer and keeps its own indexed state.
type Processor[T Input] interface {
	Name() string

	// Process processes the inputs. Inputs are guaranteed to be continuous and in ascending order.
	Process(ctx context.Context, inputs []T) error

	// CurrentBlock returns the latest indexed block header. Returns errs.NotFound if nothing is indexed yet.
	CurrentBlock(ctx context.Context) (types.BlockHeader, error)

	// GetIndexedBlock returns the indexed block header at the given height.
	GetIndexedBlock(ctx context.Context, height int64) (types.BlockHeader, error)

	// RevertData reverts all indexed data from the given height (inclusive).
	RevertData(ctx context.Context, from int64) error

	// VerifyStates checks that the stored state is compatible with the running configuration.
	VerifyStates(ctx context.Context) error

	Shutdown(ctx context.Context) error
}

// IndexerWorker is a long-running indexing job started by the run command.
type IndexerWorker interface {
	Run(ctx context.Context) error
	Shutdown() error
	ShutdownWithContext(ctx context.Context) error
}

var _ IndexerWorker = (*Indexer[*types.Block])(nil)
