package silentpayments

import (
	"context"
	"strings"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/core/datasources"
	"github.com/gaze-network/silentpayments-indexer/core/indexer"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/gaze-network/silentpayments-indexer/internal/config"
	"github.com/gaze-network/silentpayments-indexer/internal/postgres"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/api/httphandler"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/datagateway"
	sppostgres "github.com/gaze-network/silentpayments-indexer/modules/silentpayments/repository/postgres"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/usecase"
	"github.com/gaze-network/silentpayments-indexer/pkg/btcclient"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger"
	"github.com/gaze-network/silentpayments-indexer/pkg/reportingclient"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

func New(injector do.Injector) (indexer.IndexerWorker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	reportingClient := do.MustInvoke[*reportingclient.ReportingClient](injector)
	spConf := conf.Modules.SilentPayments

	cleanupFuncs := make([]func(context.Context) error, 0)
	var spDg datagateway.SilentPaymentsDataGateway
	var indexerInfoDg datagateway.IndexerInfoDataGateway
	switch strings.ToLower(spConf.Database) {
	case "postgresql", "postgres", "pg":
		pg, err := postgres.NewPool(ctx, spConf.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for indexer")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		spRepo := sppostgres.NewRepository(pg)
		spDg = spRepo
		indexerInfoDg = spRepo
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database for indexer is not supported", spConf.Database)
	}

	var bitcoinDatasource datasources.Datasource[*types.Block]
	var bitcoinClient btcclient.Contract
	switch strings.ToLower(spConf.Datasource) {
	case "bitcoin-node":
		btcClient := do.MustInvoke[*rpcclient.Client](injector)
		bitcoinNodeDatasource := datasources.NewBitcoinNode(btcClient)
		bitcoinDatasource = bitcoinNodeDatasource
		bitcoinClient = bitcoinNodeDatasource
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q datasource is not supported", spConf.Datasource)
	}

	processor := NewProcessor(spDg, indexerInfoDg, bitcoinClient, conf.Network, spConf,
		WithReportingClient(reportingClient),
		WithCleanupFuncs(cleanupFuncs...),
	)
	if err := processor.VerifyStates(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	// Mount API
	apiHandlers := lo.Uniq(spConf.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			uc := usecase.New(spDg, spConf.DustLimit)
			httpHandler := httphandler.New(conf.Network, uc)
			if err := httpHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler")
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	indexer := indexer.New(processor, bitcoinDatasource)
	return indexer, nil
}
