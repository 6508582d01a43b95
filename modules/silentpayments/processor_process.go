package silentpayments

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/datagateway"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/blockfilter"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/scantweak"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger/slogx"
	"github.com/gaze-network/silentpayments-indexer/pkg/reportingclient"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// blockStats counts evaluation outcomes of a block, for logs only.
type blockStats struct {
	candidates int
	eligible   int
	ineligible map[scantweak.Reason]int
	faults     int
}

// Process implements indexer.Processor.
func (p *Processor) Process(ctx context.Context, blocks []*types.Block) error {
	for _, block := range blocks {
		ctx := logger.WithContext(ctx, slogx.Int64("height", block.Header.Height))
		logger.DebugContext(ctx, "Processing new block", slogx.Int("txs", len(block.Transactions)))
		startAt := time.Now()

		stats, err := p.processTweaks(ctx, block)
		if err != nil {
			return errors.Wrap(err, "failed to process tweaks")
		}
		if err := p.processSpends(ctx, block); err != nil {
			return errors.Wrap(err, "failed to process spends")
		}
		if err := p.processBlockFilter(block); err != nil {
			return errors.Wrap(err, "failed to process block filter")
		}

		indexedBlock, err := p.flushBlock(ctx, block.Header)
		if err != nil {
			return errors.Wrap(err, "failed to flush block")
		}
		p.submitBlockReport(ctx, indexedBlock)

		// outputs of this block are the likely prevouts of the next ones
		for _, tx := range block.Transactions {
			p.prevoutClient.Put(tx.MsgTx())
		}

		logger.DebugContext(ctx, "Inserted new block",
			slogx.Int("candidates", stats.candidates),
			slogx.Int("eligible", stats.eligible),
			slogx.Int("no_taproot_outputs", stats.ineligible[scantweak.ReasonNoTaprootOutputs]),
			slogx.Int("disallowed_segwit_version", stats.ineligible[scantweak.ReasonDisallowedSegwitVersion]),
			slogx.Int("no_input_keys", stats.ineligible[scantweak.ReasonNoInputKeys]),
			slogx.Int("faults", stats.faults),
			slogx.Duration("duration", time.Since(startAt)),
		)
	}
	return nil
}

// processTweaks evaluates every non-coinbase transaction with a P2TR output and buffers the eligible ones.
func (p *Processor) processTweaks(ctx context.Context, block *types.Block) (blockStats, error) {
	stats := blockStats{ineligible: make(map[scantweak.Reason]int)}

	// transactions without a taproot output can never be eligible, skip them before touching the node
	candidates := lo.Filter(block.Transactions, func(tx *types.Transaction, _ int) bool {
		if tx.IsCoinbase() {
			return false
		}
		return lo.ContainsBy(tx.TxOut, func(txOut *types.TxOut) bool {
			return scantweak.IsTaprootOutput(txOut.PkScript)
		})
	})
	stats.candidates = len(candidates)
	if len(candidates) == 0 {
		return stats, nil
	}

	prevOutScripts, err := p.resolvePrevOutScripts(ctx, block, candidates)
	if err != nil {
		return stats, errors.Wrap(err, "failed to resolve previous output scripts")
	}

	results := make([]scantweak.Result, len(candidates))
	faults := make([]bool, len(candidates))
	var eg errgroup.Group
	eg.SetLimit(p.concurrency)
	for i, tx := range candidates {
		eg.Go(func() error {
			result, err := p.evaluator.Evaluate(toScanTweakTransaction(tx, prevOutScripts))
			if err != nil {
				if scantweak.IsMalformedData(err) {
					logger.WarnContext(ctx, "Skipped transaction with malformed data",
						slogx.Stringer("tx_hash", tx.TxHash),
						slogx.Error(err),
					)
					faults[i] = true
					return nil
				}
				return errors.Wrapf(err, "failed to evaluate tx %s", tx.TxHash)
			}
			results[i] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return stats, errors.WithStack(err)
	}

	for i, tx := range candidates {
		result := results[i]
		switch {
		case faults[i]:
			stats.faults++
			continue
		case !result.Eligible:
			stats.ineligible[result.Reason]++
			continue
		}
		stats.eligible++

		tweakTx := newTweakTransaction(tx, result)
		p.newTweakTransactions = append(p.newTweakTransactions, tweakTx)
		p.appendEventString(getTweakEventString(tweakTx))
	}
	return stats, nil
}

func toScanTweakTransaction(tx *types.Transaction, prevOutScripts map[wire.OutPoint][]byte) scantweak.Transaction {
	return scantweak.Transaction{
		Hash: tx.TxHash,
		Inputs: lo.Map(tx.TxIn, func(txIn *types.TxIn, _ int) scantweak.Input {
			return scantweak.Input{
				PrevTxHash:      txIn.PreviousOutTxHash,
				PrevIndex:       txIn.PreviousOutIndex,
				SignatureScript: txIn.SignatureScript,
				Witness:         txIn.Witness,
				PrevPkScript:    prevOutScripts[txIn.PreviousOutPoint()],
			}
		}),
		Outputs: lo.Map(tx.TxOut, func(txOut *types.TxOut, _ int) scantweak.Output {
			return scantweak.Output{
				PkScript: txOut.PkScript,
				Value:    txOut.Value,
			}
		}),
	}
}

func newTweakTransaction(tx *types.Transaction, result scantweak.Result) *entity.TweakTransaction {
	return &entity.TweakTransaction{
		TxHash:      tx.TxHash,
		BlockHeight: tx.BlockHeight,
		BlockHash:   tx.BlockHash,
		TxIndex:     tx.Index,
		ScanTweak:   result.ScanTweak,
		Outputs: lo.Map(result.Candidates, func(candidate scantweak.CandidateOutput, _ int) *entity.TaprootOutput {
			return &entity.TaprootOutput{
				TxHash:      tx.TxHash,
				TxIdx:       candidate.Index,
				PubKey:      candidate.PubKey,
				Value:       candidate.Value,
				BlockHeight: tx.BlockHeight,
				SpentHeight: -1,
			}
		}),
	}
}

// processSpends buffers every stored or newly created candidate output spent in the block.
func (p *Processor) processSpends(ctx context.Context, block *types.Block) error {
	newOutPoints := make(map[wire.OutPoint]struct{})
	for _, tx := range p.newTweakTransactions {
		for _, output := range tx.Outputs {
			newOutPoints[output.OutPoint()] = struct{}{}
		}
	}

	inputOutPoints := make([]wire.OutPoint, 0)
	for _, tx := range block.Transactions {
		if tx.IsCoinbase() {
			continue
		}
		for _, txIn := range tx.TxIn {
			inputOutPoints = append(inputOutPoints, txIn.PreviousOutPoint())
		}
	}
	if len(inputOutPoints) == 0 {
		return nil
	}

	storedOutputs, err := p.spDg.GetOutputsByOutPoints(ctx, inputOutPoints)
	if err != nil {
		return errors.Wrap(err, "failed to get outputs by outpoints")
	}
	stored := lo.SliceToMap(storedOutputs, func(output *entity.TaprootOutput) (wire.OutPoint, *entity.TaprootOutput) {
		return output.OutPoint(), output
	})

	// keep input order, it is part of the event hash
	for _, outPoint := range inputOutPoints {
		_, isNew := newOutPoints[outPoint]
		output, isStored := stored[outPoint]
		if !isNew && !(isStored && !output.IsSpent()) {
			continue
		}
		p.newSpentOutPoints = append(p.newSpentOutPoints, outPoint)
		p.appendEventString(getSpendEventString(outPoint))
	}
	return nil
}

func (p *Processor) processBlockFilter(block *types.Block) error {
	data, err := blockfilter.Build(block.Header.Hash, blockfilter.TaprootKeys(block))
	if err != nil {
		return errors.WithStack(err)
	}
	p.newBlockFilter = &entity.BlockFilter{
		BlockHeight: block.Header.Height,
		BlockHash:   block.Header.Hash,
		FilterType:  entity.BlockFilterTypeTaproot,
		Data:        data,
	}
	return nil
}

func (p *Processor) flushBlock(ctx context.Context, blockHeader types.BlockHeader) (*entity.IndexedBlock, error) {
	spDgTx, err := p.spDg.BeginSilentPaymentsTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := spDgTx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback transaction",
				slogx.Error(err),
				slogx.String("event", "rollback_silentpayments_insertion"),
			)
		}
	}()

	// calculate event hash
	var indexedBlock *entity.IndexedBlock
	{
		eventHash, cumulativeEventHash, err := p.calculateEventHashes(ctx, spDgTx, blockHeader)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		indexedBlock = &entity.IndexedBlock{
			Height:              blockHeader.Height,
			Hash:                blockHeader.Hash,
			PrevHash:            blockHeader.PrevBlock,
			EventHash:           eventHash,
			CumulativeEventHash: cumulativeEventHash,
			EligibleTxCount:     int32(len(p.newTweakTransactions)),
		}
		if err := spDgTx.CreateIndexedBlock(ctx, indexedBlock); err != nil {
			return nil, errors.Wrap(err, "failed to create indexed block")
		}
		p.eventHashString = ""
	}

	// flush new tweak transactions
	{
		if err := spDgTx.CreateTweakTransactions(ctx, p.newTweakTransactions); err != nil {
			return nil, errors.Wrap(err, "failed to create tweak transactions")
		}
		p.newTweakTransactions = make([]*entity.TweakTransaction, 0)
	}

	// flush spent outputs, after new outputs so outputs created and spent in the same block are marked too
	{
		if err := spDgTx.SpendOutputs(ctx, p.newSpentOutPoints, blockHeader.Height); err != nil {
			return nil, errors.Wrap(err, "failed to spend outputs")
		}
		p.newSpentOutPoints = make([]wire.OutPoint, 0)
	}

	// flush block filter
	if p.newBlockFilter != nil {
		if err := spDgTx.CreateBlockFilter(ctx, p.newBlockFilter); err != nil {
			return nil, errors.Wrap(err, "failed to create block filter")
		}
		p.newBlockFilter = nil
	}

	if err := spDgTx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}
	return indexedBlock, nil
}

// calculateEventHashes returns the hash of the buffered events and the hash chained with the previous block.
func (p *Processor) calculateEventHashes(ctx context.Context, spDgTx datagateway.SilentPaymentsReaderDataGateway, blockHeader types.BlockHeader) (eventHash, cumulativeEventHash chainhash.Hash, err error) {
	eventHashString := p.eventHashString
	if len(eventHashString) > 0 && eventHashString[len(eventHashString)-1:] == eventHashSeparator {
		eventHashString = eventHashString[:len(eventHashString)-1]
	}
	eventHash = sha256.Sum256([]byte(eventHashString))

	prevIndexedBlock, err := spDgTx.GetIndexedBlockByHeight(ctx, blockHeader.Height-1)
	if err != nil {
		if !errors.Is(err, errs.NotFound) || blockHeader.Height-1 != getStartingBlockHeader(p.network).Height {
			return chainhash.Hash{}, chainhash.Hash{}, errors.Wrap(err, "failed to get previous indexed block")
		}
		// first indexed block
		return eventHash, eventHash, nil
	}

	cumulativeEventHash = sha256.Sum256([]byte(hex.EncodeToString(prevIndexedBlock.CumulativeEventHash[:]) + hex.EncodeToString(eventHash[:])))
	return eventHash, cumulativeEventHash, nil
}

func (p *Processor) submitBlockReport(ctx context.Context, block *entity.IndexedBlock) {
	if p.reportingClient == nil {
		return
	}
	if err := p.reportingClient.SubmitBlockReport(ctx, reportingclient.SubmitBlockReportPayload{
		Type:                p.Name(),
		ClientVersion:       ClientVersion,
		DBVersion:           DBVersion,
		EventHashVersion:    EventHashVersion,
		Network:             p.network,
		BlockHeight:         uint64(block.Height),
		BlockHash:           block.Hash,
		EventHash:           block.EventHash,
		CumulativeEventHash: block.CumulativeEventHash,
		EligibleTxCount:     int(block.EligibleTxCount),
	}); err != nil {
		logger.WarnContext(ctx, "failed to submit block report", slogx.Error(err))
	}
}
