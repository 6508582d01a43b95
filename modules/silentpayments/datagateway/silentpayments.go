package datagateway

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
)

type SilentPaymentsDataGateway interface {
	SilentPaymentsReaderDataGateway
	SilentPaymentsWriterDataGateway

	// BeginSilentPaymentsTx returns a new SilentPaymentsDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginSilentPaymentsTx(ctx context.Context) (SilentPaymentsDataGatewayWithTx, error)
}

type SilentPaymentsDataGatewayWithTx interface {
	SilentPaymentsDataGateway
	Tx
}

type SilentPaymentsReaderDataGateway interface {
	GetLatestBlock(ctx context.Context) (types.BlockHeader, error)
	GetIndexedBlockByHeight(ctx context.Context, height int64) (*entity.IndexedBlock, error)
	GetTweakTransactionByHash(ctx context.Context, txHash chainhash.Hash) (*entity.TweakTransaction, error)
	// GetTweakTransactionsByHeightRange returns the records of blocks in [from, to] ordered by height and tx index.
	GetTweakTransactionsByHeightRange(ctx context.Context, from, to int64) ([]*entity.TweakTransaction, error)
	// GetOutputsByOutPoints returns the stored taproot outputs among outPoints. Unknown outpoints are skipped.
	GetOutputsByOutPoints(ctx context.Context, outPoints []wire.OutPoint) ([]*entity.TaprootOutput, error)
	GetUnspentOutputsByHeight(ctx context.Context, height int64) ([]*entity.TaprootOutput, error)
	GetBlockFilterByHeight(ctx context.Context, height int64, filterType entity.BlockFilterType) (*entity.BlockFilter, error)
}

type SilentPaymentsWriterDataGateway interface {
	CreateIndexedBlock(ctx context.Context, block *entity.IndexedBlock) error
	CreateTweakTransactions(ctx context.Context, txs []*entity.TweakTransaction) error
	// SpendOutputs marks the outputs spent at height and flags records whose outputs are all spent.
	SpendOutputs(ctx context.Context, outPoints []wire.OutPoint, height int64) error
	CreateBlockFilter(ctx context.Context, filter *entity.BlockFilter) error

	// used for revert data
	DeleteIndexedBlocksSinceHeight(ctx context.Context, height int64) error
	DeleteTweakTransactionsSinceHeight(ctx context.Context, height int64) error
	UnspendOutputsSinceHeight(ctx context.Context, height int64) error
	DeleteBlockFiltersSinceHeight(ctx context.Context, height int64) error
}
