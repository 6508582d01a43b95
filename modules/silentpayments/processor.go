package silentpayments

import (
	"context"
	"runtime"

	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/core/indexer"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/config"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/datagateway"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/scantweak"
	"github.com/gaze-network/silentpayments-indexer/pkg/btcclient"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger/slogx"
	"github.com/gaze-network/silentpayments-indexer/pkg/reportingclient"
)

// Make sure to implement the Bitcoin Processor interface
var _ indexer.Processor[*types.Block] = (*Processor)(nil)

type Processor struct {
	spDg            datagateway.SilentPaymentsDataGateway
	indexerInfoDg   datagateway.IndexerInfoDataGateway
	prevoutClient   *btcclient.CachedClient
	evaluator       *scantweak.Evaluator
	reportingClient *reportingclient.ReportingClient
	network         common.Network
	concurrency     int
	cleanupFuncs    []func(context.Context) error

	// flush buffers
	newTweakTransactions []*entity.TweakTransaction
	newSpentOutPoints    []wire.OutPoint
	newBlockFilter       *entity.BlockFilter

	eventHashString string
}

type ProcessorOption func(*Processor)

func WithEvaluator(evaluator *scantweak.Evaluator) ProcessorOption {
	return func(p *Processor) {
		p.evaluator = evaluator
	}
}

func WithReportingClient(client *reportingclient.ReportingClient) ProcessorOption {
	return func(p *Processor) {
		p.reportingClient = client
	}
}

func WithCleanupFuncs(cleanupFuncs ...func(context.Context) error) ProcessorOption {
	return func(p *Processor) {
		p.cleanupFuncs = append(p.cleanupFuncs, cleanupFuncs...)
	}
}

func NewProcessor(spDg datagateway.SilentPaymentsDataGateway, indexerInfoDg datagateway.IndexerInfoDataGateway, btcClient btcclient.Contract, network common.Network, conf config.Config, opts ...ProcessorOption) *Processor {
	concurrency := conf.EvaluateConcurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	p := &Processor{
		spDg:          spDg,
		indexerInfoDg: indexerInfoDg,
		prevoutClient: btcclient.NewCachedClient(btcClient, conf.PrevoutCacheSize),
		evaluator:     scantweak.NewEvaluator(),
		network:       network,
		concurrency:   concurrency,

		newTweakTransactions: make([]*entity.TweakTransaction, 0),
		newSpentOutPoints:    make([]wire.OutPoint, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// VerifyStates implements indexer.Processor.
func (p *Processor) VerifyStates(ctx context.Context) error {
	indexerState, err := p.indexerInfoDg.GetLatestIndexerState(ctx)
	if err != nil && !errors.Is(err, errs.NotFound) {
		return errors.Wrap(err, "failed to get latest indexer state")
	}
	// if not found, create indexer state
	if errors.Is(err, errs.NotFound) {
		if err := p.indexerInfoDg.CreateIndexerState(ctx, entity.IndexerState{
			ClientVersion:    ClientVersion,
			DBVersion:        DBVersion,
			EventHashVersion: EventHashVersion,
			Network:          p.network,
		}); err != nil {
			return errors.Wrap(err, "failed to set indexer state")
		}
	} else {
		if indexerState.DBVersion != DBVersion {
			return errors.Wrapf(errs.ConflictSetting, "db version mismatch: current version is %d. Please upgrade to version %d", indexerState.DBVersion, DBVersion)
		}
		if indexerState.EventHashVersion != EventHashVersion {
			return errors.Wrapf(errs.ConflictSetting, "event version mismatch: current version is %d. Please reset silent payments db first", indexerState.EventHashVersion)
		}
		if indexerState.Network != p.network {
			return errors.Wrapf(errs.ConflictSetting, "network mismatch: latest indexed network is %s, configured network is %s. If you want to change the network, please reset the database", indexerState.Network, p.network)
		}
	}

	_, network, err := p.indexerInfoDg.GetLatestIndexerStats(ctx)
	if err != nil && !errors.Is(err, errs.NotFound) {
		return errors.Wrap(err, "failed to get latest indexer stats")
	}
	// if found, verify indexer stats
	if err == nil && network != p.network {
		return errors.Wrapf(errs.ConflictSetting, "network mismatch: latest indexed network is %s, configured network is %s. If you want to change the network, please reset the database", network, p.network)
	}
	if err := p.indexerInfoDg.UpdateIndexerStats(ctx, ClientVersion, p.network); err != nil {
		return errors.Wrap(err, "failed to update indexer stats")
	}

	if p.reportingClient != nil {
		if err := p.reportingClient.SubmitNodeReport(ctx, common.ModuleSilentPayments, p.network); err != nil {
			logger.WarnContext(ctx, "failed to submit node report", slogx.Error(err))
		}
	}
	return nil
}

// CurrentBlock implements indexer.Processor.
func (p *Processor) CurrentBlock(ctx context.Context) (types.BlockHeader, error) {
	blockHeader, err := p.spDg.GetLatestBlock(ctx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return getStartingBlockHeader(p.network), nil
		}
		return types.BlockHeader{}, errors.Wrap(err, "failed to get latest block")
	}
	return blockHeader, nil
}

// GetIndexedBlock implements indexer.Processor.
func (p *Processor) GetIndexedBlock(ctx context.Context, height int64) (types.BlockHeader, error) {
	block, err := p.spDg.GetIndexedBlockByHeight(ctx, height)
	if err != nil {
		return types.BlockHeader{}, errors.Wrap(err, "failed to get indexed block")
	}
	return types.BlockHeader{
		Height:    block.Height,
		Hash:      block.Hash,
		PrevBlock: block.PrevHash,
	}, nil
}

// Name implements indexer.Processor.
func (p *Processor) Name() string {
	return "silentpayments"
}

// RevertData implements indexer.Processor.
func (p *Processor) RevertData(ctx context.Context, from int64) error {
	spDgTx, err := p.spDg.BeginSilentPaymentsTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := spDgTx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback transaction",
				slogx.Error(err),
				slogx.String("event", "rollback_silentpayments_revert"),
			)
		}
	}()

	if err := spDgTx.DeleteIndexedBlocksSinceHeight(ctx, from); err != nil {
		return errors.Wrap(err, "failed to delete indexed blocks")
	}
	if err := spDgTx.DeleteTweakTransactionsSinceHeight(ctx, from); err != nil {
		return errors.Wrap(err, "failed to delete tweak transactions")
	}
	if err := spDgTx.UnspendOutputsSinceHeight(ctx, from); err != nil {
		return errors.Wrap(err, "failed to unspend outputs")
	}
	if err := spDgTx.DeleteBlockFiltersSinceHeight(ctx, from); err != nil {
		return errors.Wrap(err, "failed to delete block filters")
	}

	if err := spDgTx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func (p *Processor) Shutdown(ctx context.Context) error {
	var errs []error
	for _, cleanup := range p.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.WithStack(errors.Join(errs...))
}
