package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
)

func (u *Usecase) GetBlockFilter(ctx context.Context, height int64, filterType entity.BlockFilterType) (*entity.BlockFilter, error) {
	filter, err := u.spDg.GetBlockFilterByHeight(ctx, height, filterType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get block filter")
	}
	return filter, nil
}
