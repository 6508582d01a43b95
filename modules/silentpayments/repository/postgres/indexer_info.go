package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/datagateway"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
)

var _ datagateway.IndexerInfoDataGateway = (*Repository)(nil)

func (r *Repository) GetLatestIndexerState(ctx context.Context) (entity.IndexerState, error) {
	model, err := r.queries.GetLatestIndexerState(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.IndexerState{}, errors.WithStack(errs.NotFound)
		}
		return entity.IndexerState{}, errors.Wrap(err, "error during query")
	}
	return mapIndexerStateModelToType(model), nil
}

func (r *Repository) CreateIndexerState(ctx context.Context, state entity.IndexerState) error {
	if err := r.queries.CreateIndexerState(ctx, mapIndexerStateTypeToParams(state)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetLatestIndexerStats(ctx context.Context) (string, common.Network, error) {
	stats, err := r.queries.GetLatestIndexerStats(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", errors.WithStack(errs.NotFound)
		}
		return "", "", errors.Wrap(err, "error during query")
	}
	return stats.ClientVersion, common.Network(stats.Network), nil
}

func (r *Repository) UpdateIndexerStats(ctx context.Context, clientVersion string, network common.Network) error {
	if err := r.queries.UpdateIndexerStats(ctx, gen.UpdateIndexerStatsParams{
		ClientVersion: clientVersion,
		Network:       network.String(),
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
