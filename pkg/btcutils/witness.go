package btcutils

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// RemoveAnnex returns the witness stack without the taproot annex (BIP341).
// The annex is the last element if there are at least two elements and it starts with 0x50.
func RemoveAnnex(witness wire.TxWitness) wire.TxWitness {
	if len(witness) >= 2 {
		last := witness[len(witness)-1]
		if len(last) > 0 && last[0] == txscript.TaprootAnnexTag {
			return witness[:len(witness)-1]
		}
	}
	return witness
}
