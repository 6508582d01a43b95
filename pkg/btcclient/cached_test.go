package btcclient_test

import (
	"context"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/pkg/btcclient"
	"github.com/gaze-network/silentpayments-indexer/pkg/btcclient/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCachedClient(t *testing.T) {
	ctx := context.Background()
	tx := wire.NewMsgTx(2)
	tx.AddTxOut(wire.NewTxOut(1000, []byte{0x51, 0x20}))
	txHash := tx.TxHash()

	t.Run("fetch once", func(t *testing.T) {
		client := mocks.NewContract(t)
		client.EXPECT().GetRawTransactionByTxHash(mock.Anything, txHash).Return(tx, nil).Once()

		cached := btcclient.NewCachedClient(client, 10)
		for i := 0; i < 3; i++ {
			got, err := cached.GetRawTransactionByTxHash(ctx, txHash)
			require.NoError(t, err)
			assert.Equal(t, txHash, got.TxHash())
		}
	})

	t.Run("warm cache", func(t *testing.T) {
		client := mocks.NewContract(t)
		cached := btcclient.NewCachedClient(client, 10)
		cached.Put(tx)

		got, err := cached.GetRawTransactionByTxHash(ctx, txHash)
		require.NoError(t, err)
		assert.Same(t, tx, got)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		missing := chainhash.Hash{0x01}
		client := mocks.NewContract(t)
		client.EXPECT().GetRawTransactionByTxHash(mock.Anything, missing).Return(nil, errors.WithStack(errs.NotFound)).Twice()

		cached := btcclient.NewCachedClient(client, 10)
		for i := 0; i < 2; i++ {
			_, err := cached.GetRawTransactionByTxHash(ctx, missing)
			assert.ErrorIs(t, err, errs.NotFound)
		}
	})
}
