package silentpayments

import (
	"context"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// resolvePrevOutScripts returns the script of every output spent by txs.
// Outputs created earlier in the same block are taken from the block, the rest are fetched from the node.
func (p *Processor) resolvePrevOutScripts(ctx context.Context, block *types.Block, txs []*types.Transaction) (map[wire.OutPoint][]byte, error) {
	blockTxs := lo.SliceToMap(block.Transactions, func(tx *types.Transaction) (chainhash.Hash, *types.Transaction) {
		return tx.TxHash, tx
	})

	scripts := make(map[wire.OutPoint][]byte)
	wanted := make(map[chainhash.Hash][]uint32)
	for _, tx := range txs {
		for _, txIn := range tx.TxIn {
			outPoint := txIn.PreviousOutPoint()
			if prevTx, ok := blockTxs[outPoint.Hash]; ok {
				if int(outPoint.Index) >= len(prevTx.TxOut) {
					return nil, errors.Wrapf(errs.InternalError, "outpoint %s is out of range", outPoint)
				}
				scripts[outPoint] = prevTx.TxOut[outPoint.Index].PkScript
				continue
			}
			wanted[outPoint.Hash] = append(wanted[outPoint.Hash], outPoint.Index)
		}
	}

	var mu sync.Mutex
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(p.concurrency)
	for txHash, indexes := range wanted {
		eg.Go(func() error {
			prevTx, err := p.prevoutClient.GetRawTransactionByTxHash(ectx, txHash)
			if err != nil {
				return errors.Wrapf(err, "failed to get previous transaction %s", txHash)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, index := range indexes {
				if int(index) >= len(prevTx.TxOut) {
					return errors.Wrapf(errs.InternalError, "outpoint %s:%d is out of range", txHash, index)
				}
				scripts[wire.OutPoint{Hash: txHash, Index: index}] = prevTx.TxOut[index].PkScript
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}
	return scripts, nil
}
