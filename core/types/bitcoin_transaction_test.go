package types

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
)

func TestTransactionMsgTx(t *testing.T) {
	src := wire.NewMsgTx(2)
	src.LockTime = 840_000
	src.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: chainhash.HashH([]byte("funding")), Index: 3},
		SignatureScript:  []byte{0x16, 0x00, 0x14},
		Witness:          wire.TxWitness{{0x30, 0x44}, {0x02, 0x01}},
		Sequence:         wire.MaxTxInSequenceNum - 1,
	})
	src.AddTxOut(wire.NewTxOut(9_000, []byte{0x51, 0x20}))

	tx := ParseMsgTx(src, 100, chainhash.Hash{}, 1)
	msgTx := tx.MsgTx()

	assert.Equal(t, src.TxHash(), msgTx.TxHash())
	assert.Equal(t, src.WitnessHash(), msgTx.WitnessHash())
	assert.Equal(t, tx.TxHash, msgTx.TxHash())
}
