package usecase

import (
	"context"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/datagateway/mocks"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tweakTx(seed string, spent bool, outputs ...*entity.TaprootOutput) *entity.TweakTransaction {
	return &entity.TweakTransaction{
		TxHash:      chainhash.HashH([]byte(seed)),
		BlockHeight: 100,
		Outputs:     outputs,
		IsSpent:     spent,
	}
}

func output(value int64, spentHeight int64) *entity.TaprootOutput {
	return &entity.TaprootOutput{Value: value, BlockHeight: 100, SpentHeight: spentHeight}
}

func TestGetTweaksByHeight(t *testing.T) {
	ctx := context.Background()
	small := tweakTx("small", false, output(500, -1))
	large := tweakTx("large", false, output(400, -1), output(5000, -1))
	largeSpent := tweakTx("large-spent", false, output(5000, 101), output(600, -1))
	allSpent := tweakTx("all-spent", true, output(9000, 101))
	txs := []*entity.TweakTransaction{small, large, largeSpent, allSpent}

	testCases := []struct {
		name     string
		opts     GetTweaksOptions
		expected []*entity.TweakTransaction
	}{
		{
			name:     "configured dust limit",
			opts:     GetTweaksOptions{},
			expected: []*entity.TweakTransaction{large, largeSpent, allSpent},
		},
		{
			name:     "dust limit override",
			opts:     GetTweaksOptions{DustLimit: lo.ToPtr(int64(0))},
			expected: txs,
		},
		{
			name:     "unspent only",
			opts:     GetTweaksOptions{UnspentOnly: true},
			expected: []*entity.TweakTransaction{large, largeSpent},
		},
		{
			name:     "unspent only ignores spent outputs for dust",
			opts:     GetTweaksOptions{UnspentOnly: true, DustLimit: lo.ToPtr(int64(1000))},
			expected: []*entity.TweakTransaction{large},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
			spDg.EXPECT().GetTweakTransactionsByHeightRange(mock.Anything, int64(100), int64(100)).Return(txs, nil).Once()

			uc := New(spDg, 550)
			got, err := uc.GetTweaksByHeight(ctx, 100, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
