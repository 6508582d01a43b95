package entity

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/scantweak"
)

// TweakTransaction is an eligible transaction and the scan tweak wallets need to check its outputs.
type TweakTransaction struct {
	TxHash      chainhash.Hash
	BlockHeight int64
	BlockHash   chainhash.Hash
	TxIndex     uint32
	ScanTweak   scantweak.ScanTweak
	Outputs     []*TaprootOutput

	// IsSpent is set once every output is spent.
	IsSpent bool
}

// MaxOutputValue returns the value of the largest output, optionally counting unspent outputs only.
func (t *TweakTransaction) MaxOutputValue(unspentOnly bool) int64 {
	maxValue := int64(-1)
	for _, output := range t.Outputs {
		if unspentOnly && output.IsSpent() {
			continue
		}
		if output.Value > maxValue {
			maxValue = output.Value
		}
	}
	return maxValue
}

// TaprootOutput is a P2TR output of an eligible transaction.
type TaprootOutput struct {
	TxHash      chainhash.Hash
	TxIdx       uint32
	PubKey      [32]byte
	Value       int64
	BlockHeight int64

	// SpentHeight is -1 while the output is unspent.
	SpentHeight int64
}

func (o *TaprootOutput) OutPoint() wire.OutPoint {
	return wire.OutPoint{Hash: o.TxHash, Index: o.TxIdx}
}

func (o *TaprootOutput) IsSpent() bool {
	return o.SpentHeight >= 0
}
