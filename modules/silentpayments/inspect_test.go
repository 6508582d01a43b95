package silentpayments

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/scantweak"
	btcclientmocks "github.com/gaze-network/silentpayments-indexer/pkg/btcclient/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInspectTransaction(t *testing.T) {
	ctx := context.Background()
	chain := newTestChain(t)
	spendHash := chain.spendTx.TxHash()

	t.Run("eligible", func(t *testing.T) {
		client := btcclientmocks.NewContract(t)
		client.EXPECT().GetRawTransactionAndHeightByTxHash(mock.Anything, spendHash).Return(chain.spendTx, int64(900_000), nil)
		client.EXPECT().GetRawTransactionByTxHash(mock.Anything, chain.prevTx.TxHash()).Return(chain.prevTx, nil)

		inspection, err := InspectTransaction(ctx, client, spendHash)
		require.NoError(t, err)
		assert.True(t, inspection.Eligible)
		assert.Equal(t, int64(900_000), inspection.BlockHeight)
		require.Len(t, inspection.Outputs, 1)
		assert.Equal(t, hex.EncodeToString(chain.spendTx.TxOut[0].PkScript[2:]), inspection.Outputs[0].PubKey)
		assert.Len(t, inspection.ScanTweak, 66)
	})

	t.Run("no taproot outputs", func(t *testing.T) {
		tx := wire.NewMsgTx(2)
		tx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Hash: chain.prevTx.TxHash(), Index: 0}, nil, chain.spendTx.TxIn[0].Witness))
		tx.AddTxOut(wire.NewTxOut(9_000, chain.prevTx.TxOut[0].PkScript))
		txHash := tx.TxHash()

		client := btcclientmocks.NewContract(t)
		// no prevout lookups expected
		client.EXPECT().GetRawTransactionAndHeightByTxHash(mock.Anything, txHash).Return(tx, int64(-1), nil)

		inspection, err := InspectTransaction(ctx, client, txHash)
		require.NoError(t, err)
		assert.False(t, inspection.Eligible)
		assert.Equal(t, scantweak.ReasonNoTaprootOutputs.String(), inspection.Reason)
	})

	t.Run("coinbase", func(t *testing.T) {
		coinbase := wire.NewMsgTx(2)
		coinbase.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), []byte{0x01}, nil))
		coinbase.AddTxOut(wire.NewTxOut(1000, chain.spendTx.TxOut[0].PkScript))

		client := btcclientmocks.NewContract(t)
		client.EXPECT().GetRawTransactionAndHeightByTxHash(mock.Anything, coinbase.TxHash()).Return(coinbase, int64(1), nil)

		_, err := InspectTransaction(ctx, client, coinbase.TxHash())
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}
