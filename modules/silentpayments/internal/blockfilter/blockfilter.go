// Package blockfilter builds compact block filters (BIP158 parameters) over the
// taproot output keys of a block, so light clients can skip blocks that pay none of their keys.
package blockfilter

import (
	"github.com/btcsuite/btcd/btcutil/gcs/builder"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/scantweak"
)

// emptyFilter is a serialized filter with N = 0.
var emptyFilter = []byte{0x00}

// TaprootKeys returns the x-only output keys of every P2TR output in the block, coinbase included.
func TaprootKeys(block *types.Block) [][]byte {
	keys := make([][]byte, 0)
	for _, tx := range block.Transactions {
		for _, txOut := range tx.TxOut {
			if scantweak.IsTaprootOutput(txOut.PkScript) {
				keys = append(keys, txOut.PkScript[2:])
			}
		}
	}
	return keys
}

// Build returns the serialized filter of keys, keyed by the block hash.
func Build(blockHash chainhash.Hash, keys [][]byte) ([]byte, error) {
	if len(keys) == 0 {
		return append([]byte(nil), emptyFilter...), nil
	}
	filter, err := builder.WithKeyHashPM(&blockHash, builder.DefaultP, builder.DefaultM).
		AddEntries(keys).
		Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build filter")
	}
	data, err := filter.NBytes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize filter")
	}
	return data, nil
}
