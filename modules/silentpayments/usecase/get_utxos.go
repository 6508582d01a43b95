package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
)

// GetUnspentOutputsByHeight returns the unspent candidate outputs created in the block at height.
func (u *Usecase) GetUnspentOutputsByHeight(ctx context.Context, height int64) ([]*entity.TaprootOutput, error) {
	outputs, err := u.spDg.GetUnspentOutputsByHeight(ctx, height)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get unspent outputs")
	}
	return outputs, nil
}
