package datagateway

import (
	"context"

	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
)

type IndexerInfoDataGateway interface {
	GetLatestIndexerState(ctx context.Context) (entity.IndexerState, error)
	CreateIndexerState(ctx context.Context, state entity.IndexerState) error
	GetLatestIndexerStats(ctx context.Context) (version string, network common.Network, err error)
	UpdateIndexerStats(ctx context.Context, clientVersion string, network common.Network) error
}
