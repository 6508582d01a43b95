package httphandler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/datagateway/mocks"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/scantweak"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/usecase"
	"github.com/gaze-network/silentpayments-indexer/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, spDg *mocks.SilentPaymentsDataGatewayWithTx) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: errorhandler.NewHTTPErrorHandler()})
	handler := New(common.NetworkMainnet, usecase.New(spDg, 546))
	require.NoError(t, handler.Mount(app))
	return app
}

func doGet(t *testing.T, app *fiber.App, path string, result any) int {
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if result != nil {
		require.NoError(t, json.Unmarshal(body, result))
	}
	return resp.StatusCode
}

func testTweakTransaction() *entity.TweakTransaction {
	txHash := chainhash.HashH([]byte("tx"))
	return &entity.TweakTransaction{
		TxHash:      txHash,
		BlockHeight: 800000,
		BlockHash:   chainhash.HashH([]byte("block")),
		TxIndex:     7,
		ScanTweak:   scantweak.ScanTweak{0x03, 0xff},
		Outputs: []*entity.TaprootOutput{
			{TxHash: txHash, TxIdx: 1, PubKey: [32]byte{0x01}, Value: 10_000, BlockHeight: 800000, SpentHeight: -1},
		},
	}
}

func TestGetTweaks(t *testing.T) {
	tx := testTweakTransaction()
	spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
	spDg.EXPECT().GetTweakTransactionsByHeightRange(mock.Anything, int64(800000), int64(800000)).Return([]*entity.TweakTransaction{tx}, nil)
	app := newTestApp(t, spDg)

	t.Run("default dust limit", func(t *testing.T) {
		var resp getTweaksResponse
		status := doGet(t, app, "/v1/silentpayments/tweaks/800000", &resp)
		assert.Equal(t, http.StatusOK, status)
		require.NotNil(t, resp.Result)
		assert.Equal(t, []string{tx.ScanTweak.String()}, *resp.Result)
	})

	t.Run("above dust limit", func(t *testing.T) {
		var resp getTweaksResponse
		status := doGet(t, app, "/v1/silentpayments/tweaks/800000?dustLimit=20000", &resp)
		assert.Equal(t, http.StatusOK, status)
		require.NotNil(t, resp.Result)
		assert.Empty(t, *resp.Result)
	})

	t.Run("invalid height", func(t *testing.T) {
		status := doGet(t, app, "/v1/silentpayments/tweaks/abc", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("negative dust limit", func(t *testing.T) {
		status := doGet(t, app, "/v1/silentpayments/tweaks/800000?dustLimit=-1", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestGetTransactionByHash(t *testing.T) {
	tx := testTweakTransaction()
	missing := chainhash.HashH([]byte("missing"))
	spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
	spDg.EXPECT().GetTweakTransactionByHash(mock.Anything, tx.TxHash).Return(tx, nil)
	spDg.EXPECT().GetTweakTransactionByHash(mock.Anything, missing).Return(nil, errors.WithStack(errs.NotFound))
	app := newTestApp(t, spDg)

	t.Run("found", func(t *testing.T) {
		var resp getTransactionByHashResponse
		status := doGet(t, app, "/v1/silentpayments/transactions/"+tx.TxHash.String(), &resp)
		assert.Equal(t, http.StatusOK, status)
		require.NotNil(t, resp.Result)
		assert.Equal(t, tx.TxHash.String(), resp.Result.TxId)
		assert.Equal(t, tx.ScanTweak.String(), resp.Result.ScanTweak)
		require.Len(t, resp.Result.Outputs, 1)
		assert.Equal(t, uint32(1), resp.Result.Outputs[0].Vout)
		assert.False(t, resp.Result.Outputs[0].IsSpent)
		assert.NotEmpty(t, resp.Result.Outputs[0].Address)
	})

	t.Run("not found", func(t *testing.T) {
		status := doGet(t, app, "/v1/silentpayments/transactions/"+missing.String(), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("invalid hash", func(t *testing.T) {
		status := doGet(t, app, "/v1/silentpayments/transactions/zz", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestGetBlockFilter(t *testing.T) {
	blockHash := chainhash.HashH([]byte("block"))
	spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
	spDg.EXPECT().GetBlockFilterByHeight(mock.Anything, int64(10), entity.BlockFilterTypeTaproot).Return(&entity.BlockFilter{
		BlockHeight: 10,
		BlockHash:   blockHash,
		FilterType:  entity.BlockFilterTypeTaproot,
		Data:        []byte{0x01, 0xab},
	}, nil)
	spDg.EXPECT().GetBlockFilterByHeight(mock.Anything, int64(11), entity.BlockFilterTypeTaproot).Return(nil, errors.WithStack(errs.NotFound))
	app := newTestApp(t, spDg)

	var resp getBlockFilterResponse
	status := doGet(t, app, "/v1/silentpayments/filter/10", &resp)
	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "01ab", resp.Result.Data)
	assert.Equal(t, blockHash.String(), resp.Result.BlockHash)

	status = doGet(t, app, "/v1/silentpayments/filter/11", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
