package scantweak

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
)

// Outpoint is the 36-byte serialization of an outpoint: txid in wire byte order
// (the reverse of its display form) followed by the little-endian output index.
type Outpoint [36]byte

func NewOutpoint(txHash chainhash.Hash, index uint32) Outpoint {
	var o Outpoint
	copy(o[:chainhash.HashSize], txHash[:])
	binary.LittleEndian.PutUint32(o[chainhash.HashSize:], index)
	return o
}

// Outpoint returns the canonical outpoint spent by the input.
func (in Input) Outpoint() Outpoint {
	return NewOutpoint(in.PrevTxHash, in.PrevIndex)
}

// Compare compares outpoints as unsigned byte strings.
func (o Outpoint) Compare(other Outpoint) int {
	return bytes.Compare(o[:], other[:])
}

// SmallestOutpoint returns the lexicographically smallest outpoint spent by the inputs.
func SmallestOutpoint(inputs []Input) (Outpoint, error) {
	if len(inputs) == 0 {
		return Outpoint{}, errors.WithStack(ErrNoInputs)
	}
	smallest := inputs[0].Outpoint()
	for _, in := range inputs[1:] {
		if o := in.Outpoint(); o.Compare(smallest) < 0 {
			smallest = o
		}
	}
	return smallest, nil
}
