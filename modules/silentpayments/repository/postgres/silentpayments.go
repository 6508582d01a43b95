package postgres

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/datagateway"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

var _ datagateway.SilentPaymentsDataGateway = (*Repository)(nil)

// GetLatestBlock returns a types.BlockHeader with only Height, Hash and PrevBlock populated.
func (r *Repository) GetLatestBlock(ctx context.Context) (types.BlockHeader, error) {
	model, err := r.queries.GetLatestIndexedBlock(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.BlockHeader{}, errors.WithStack(errs.NotFound)
		}
		return types.BlockHeader{}, errors.Wrap(err, "error during query")
	}
	block, err := mapIndexedBlockModelToType(model)
	if err != nil {
		return types.BlockHeader{}, errors.Wrap(err, "failed to parse indexed block model")
	}
	return types.BlockHeader{
		Height:    block.Height,
		Hash:      block.Hash,
		PrevBlock: block.PrevHash,
	}, nil
}

func (r *Repository) GetIndexedBlockByHeight(ctx context.Context, height int64) (*entity.IndexedBlock, error) {
	model, err := r.queries.GetIndexedBlockByHeight(ctx, int32(height))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	block, err := mapIndexedBlockModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse indexed block model")
	}
	return &block, nil
}

func (r *Repository) GetTweakTransactionByHash(ctx context.Context, txHash chainhash.Hash) (*entity.TweakTransaction, error) {
	model, err := r.queries.GetTweakByTxHash(ctx, txHash.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	tx, err := mapTweakModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse tweak model")
	}
	txs := []*entity.TweakTransaction{&tx}
	if err := r.attachOutputs(ctx, txs); err != nil {
		return nil, errors.WithStack(err)
	}
	return &tx, nil
}

func (r *Repository) GetTweakTransactionsByHeightRange(ctx context.Context, from, to int64) ([]*entity.TweakTransaction, error) {
	models, err := r.queries.GetTweaksByHeightRange(ctx, gen.GetTweaksByHeightRangeParams{
		FromHeight: int32(from),
		ToHeight:   int32(to),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	txs := make([]*entity.TweakTransaction, 0, len(models))
	for _, model := range models {
		tx, err := mapTweakModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse tweak model")
		}
		txs = append(txs, &tx)
	}
	if err := r.attachOutputs(ctx, txs); err != nil {
		return nil, errors.WithStack(err)
	}
	return txs, nil
}

func (r *Repository) attachOutputs(ctx context.Context, txs []*entity.TweakTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	txHashes := lo.Map(txs, func(tx *entity.TweakTransaction, _ int) string { return tx.TxHash.String() })
	models, err := r.queries.GetOutputsByTxHashes(ctx, txHashes)
	if err != nil {
		return errors.Wrap(err, "error during query outputs")
	}

	byTxHash := lo.SliceToMap(txs, func(tx *entity.TweakTransaction) (chainhash.Hash, *entity.TweakTransaction) {
		return tx.TxHash, tx
	})
	for _, model := range models {
		output, err := mapOutputModelToType(model)
		if err != nil {
			return errors.Wrap(err, "failed to parse output model")
		}
		if tx, ok := byTxHash[output.TxHash]; ok {
			tx.Outputs = append(tx.Outputs, &output)
		}
	}
	return nil
}

func (r *Repository) GetOutputsByOutPoints(ctx context.Context, outPoints []wire.OutPoint) ([]*entity.TaprootOutput, error) {
	if len(outPoints) == 0 {
		return nil, nil
	}
	models, err := r.queries.GetOutputsByOutPoints(ctx, gen.GetOutputsByOutPointsParams{
		TxHashArr: lo.Map(outPoints, func(o wire.OutPoint, _ int) string { return o.Hash.String() }),
		TxIdxArr:  lo.Map(outPoints, func(o wire.OutPoint, _ int) int32 { return int32(o.Index) }),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapOutputModels(models)
}

func (r *Repository) GetUnspentOutputsByHeight(ctx context.Context, height int64) ([]*entity.TaprootOutput, error) {
	models, err := r.queries.GetUnspentOutputsByHeight(ctx, int32(height))
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapOutputModels(models)
}

func mapOutputModels(models []gen.SilentpaymentsOutput) ([]*entity.TaprootOutput, error) {
	outputs := make([]*entity.TaprootOutput, 0, len(models))
	for _, model := range models {
		output, err := mapOutputModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse output model")
		}
		outputs = append(outputs, &output)
	}
	return outputs, nil
}

func (r *Repository) GetBlockFilterByHeight(ctx context.Context, height int64, filterType entity.BlockFilterType) (*entity.BlockFilter, error) {
	model, err := r.queries.GetBlockFilterByHeight(ctx, gen.GetBlockFilterByHeightParams{
		BlockHeight: int32(height),
		FilterType:  string(filterType),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	filter, err := mapBlockFilterModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse block filter model")
	}
	return &filter, nil
}

func (r *Repository) CreateIndexedBlock(ctx context.Context, block *entity.IndexedBlock) error {
	if err := r.queries.CreateIndexedBlock(ctx, mapIndexedBlockTypeToParams(*block)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreateTweakTransactions(ctx context.Context, txs []*entity.TweakTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	tweakParams, outputParams := mapTweakTypeToParams(txs)
	if err := r.queries.BatchCreateTweaks(ctx, tweakParams); err != nil {
		return errors.Wrap(err, "error during exec BatchCreateTweaks")
	}
	if err := r.queries.BatchCreateOutputs(ctx, outputParams); err != nil {
		return errors.Wrap(err, "error during exec BatchCreateOutputs")
	}
	return nil
}

func (r *Repository) SpendOutputs(ctx context.Context, outPoints []wire.OutPoint, height int64) error {
	if len(outPoints) == 0 {
		return nil
	}
	txHashes := lo.Map(outPoints, func(o wire.OutPoint, _ int) string { return o.Hash.String() })
	if err := r.queries.BatchSpendOutputs(ctx, gen.BatchSpendOutputsParams{
		SpentHeight: int32(height),
		TxHashArr:   txHashes,
		TxIdxArr:    lo.Map(outPoints, func(o wire.OutPoint, _ int) int32 { return int32(o.Index) }),
	}); err != nil {
		return errors.Wrap(err, "error during exec BatchSpendOutputs")
	}
	if err := r.queries.UpdateSpentTweaks(ctx, lo.Uniq(txHashes)); err != nil {
		return errors.Wrap(err, "error during exec UpdateSpentTweaks")
	}
	return nil
}

func (r *Repository) CreateBlockFilter(ctx context.Context, filter *entity.BlockFilter) error {
	if err := r.queries.CreateBlockFilter(ctx, mapBlockFilterTypeToParams(*filter)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) DeleteIndexedBlocksSinceHeight(ctx context.Context, height int64) error {
	if err := r.queries.DeleteIndexedBlocksSinceHeight(ctx, int32(height)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) DeleteTweakTransactionsSinceHeight(ctx context.Context, height int64) error {
	if err := r.queries.DeleteTweaksSinceHeight(ctx, int32(height)); err != nil {
		return errors.Wrap(err, "error during exec DeleteTweaksSinceHeight")
	}
	if err := r.queries.DeleteOutputsSinceHeight(ctx, int32(height)); err != nil {
		return errors.Wrap(err, "error during exec DeleteOutputsSinceHeight")
	}
	return nil
}

func (r *Repository) UnspendOutputsSinceHeight(ctx context.Context, height int64) error {
	txHashes, err := r.queries.UnspendOutputsSinceHeight(ctx, heightParam(height))
	if err != nil {
		return errors.Wrap(err, "error during exec UnspendOutputsSinceHeight")
	}
	if len(txHashes) == 0 {
		return nil
	}
	if err := r.queries.ResetSpentTweaks(ctx, lo.Uniq(txHashes)); err != nil {
		return errors.Wrap(err, "error during exec ResetSpentTweaks")
	}
	return nil
}

func (r *Repository) DeleteBlockFiltersSinceHeight(ctx context.Context, height int64) error {
	if err := r.queries.DeleteBlockFiltersSinceHeight(ctx, int32(height)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
