package usecase

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/samber/lo"
)

type GetTweaksOptions struct {
	// DustLimit overrides the configured dust limit when set.
	DustLimit *int64

	// UnspentOnly skips records whose outputs are all spent, and ignores spent outputs when applying the dust limit.
	UnspentOnly bool
}

// GetTweaksByHeight returns the records of the block at height whose largest output is at least the dust limit.
func (u *Usecase) GetTweaksByHeight(ctx context.Context, height int64, opts GetTweaksOptions) ([]*entity.TweakTransaction, error) {
	txs, err := u.GetTweakIndexByHeight(ctx, height)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	dustLimit := u.dustLimit
	if opts.DustLimit != nil {
		dustLimit = *opts.DustLimit
	}
	return lo.Filter(txs, func(tx *entity.TweakTransaction, _ int) bool {
		if opts.UnspentOnly && tx.IsSpent {
			return false
		}
		maxValue := tx.MaxOutputValue(opts.UnspentOnly)
		return maxValue >= 0 && maxValue >= dustLimit
	}), nil
}

// GetTweakIndexByHeight returns every record of the block at height, spent or not.
func (u *Usecase) GetTweakIndexByHeight(ctx context.Context, height int64) ([]*entity.TweakTransaction, error) {
	txs, err := u.spDg.GetTweakTransactionsByHeightRange(ctx, height, height)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get tweak transactions")
	}
	return txs, nil
}

func (u *Usecase) GetTweakTransaction(ctx context.Context, txHash chainhash.Hash) (*entity.TweakTransaction, error) {
	tx, err := u.spDg.GetTweakTransactionByHash(ctx, txHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get tweak transaction")
	}
	return tx, nil
}
