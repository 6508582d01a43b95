package silentpayments

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/config"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/datagateway/mocks"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/scantweak"
	btcclientmocks "github.com/gaze-network/silentpayments-indexer/pkg/btcclient/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fakeSignature = append([]byte{0x30, 0x44}, bytes.Repeat([]byte{0x01}, 69)...)

func testPrivKey(seed string) *btcec.PrivateKey {
	sum := sha256.Sum256([]byte(seed))
	priv, _ := btcec.PrivKeyFromBytes(sum[:])
	return priv
}

func p2wpkhScript(pubKey []byte) []byte {
	return append([]byte{txscript.OP_0, txscript.OP_DATA_20}, btcutil.Hash160(pubKey)...)
}

func p2trScript(seed string) []byte {
	return append([]byte{txscript.OP_1, txscript.OP_DATA_32}, schnorr.SerializePubKey(testPrivKey(seed).PubKey())...)
}

// testChain is a block at height 0 of regtest:
//
//	coinbase -> p2tr
//	spendTx  spends an external p2wpkh output -> p2tr(b)
//	chainTx  spends spendTx:0 with a key path spend -> p2tr(c)
type testChain struct {
	prevTx  *wire.MsgTx
	spendTx *wire.MsgTx
	chainTx *wire.MsgTx
	block   *types.Block
}

func newTestChain(t *testing.T) testChain {
	t.Helper()
	keyA := testPrivKey("a").PubKey().SerializeCompressed()

	prevTx := wire.NewMsgTx(2)
	prevTx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Hash: chainhash.HashH([]byte("funding")), Index: 0}, nil, nil))
	prevTx.AddTxOut(wire.NewTxOut(10_000, p2wpkhScript(keyA)))

	coinbase := wire.NewMsgTx(2)
	coinbase.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), []byte{0x01, 0x00}, nil))
	coinbase.AddTxOut(wire.NewTxOut(50_0000_0000, p2trScript("miner")))

	spendTx := wire.NewMsgTx(2)
	prevHash := prevTx.TxHash()
	spendTx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prevHash, 0), nil, wire.TxWitness{fakeSignature, keyA}))
	spendTx.AddTxOut(wire.NewTxOut(9_000, p2trScript("b")))

	chainTx := wire.NewMsgTx(2)
	spendHash := spendTx.TxHash()
	chainTx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&spendHash, 0), nil, wire.TxWitness{bytes.Repeat([]byte{0x02}, 64)}))
	chainTx.AddTxOut(wire.NewTxOut(8_000, p2trScript("c")))

	msgBlock := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   1,
			Timestamp: time.Unix(1_700_000_000, 0),
		},
		Transactions: []*wire.MsgTx{coinbase, spendTx, chainTx},
	}
	block := types.ParseMsgBlock(msgBlock, 0)
	require.Len(t, block.Transactions, 3)

	return testChain{
		prevTx:  prevTx,
		spendTx: spendTx,
		chainTx: chainTx,
		block:   block,
	}
}

func TestProcess(t *testing.T) {
	ctx := context.Background()
	chain := newTestChain(t)
	spendHash := chain.spendTx.TxHash()
	chainHash := chain.chainTx.TxHash()

	btcClient := btcclientmocks.NewContract(t)
	btcClient.EXPECT().GetRawTransactionByTxHash(mock.Anything, chain.prevTx.TxHash()).Return(chain.prevTx, nil).Once()

	spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
	spDgTx := mocks.NewSilentPaymentsDataGatewayWithTx(t)
	spDg.EXPECT().GetOutputsByOutPoints(mock.Anything, mock.Anything).Return(nil, nil)
	spDg.EXPECT().BeginSilentPaymentsTx(mock.Anything).Return(spDgTx, nil)

	var (
		indexedBlock *entity.IndexedBlock
		tweakTxs     []*entity.TweakTransaction
	)
	spDgTx.EXPECT().GetIndexedBlockByHeight(mock.Anything, int64(-1)).Return(nil, errors.WithStack(errs.NotFound))
	spDgTx.EXPECT().CreateIndexedBlock(mock.Anything, mock.Anything).Run(func(_ context.Context, block *entity.IndexedBlock) {
		indexedBlock = block
	}).Return(nil)
	spDgTx.EXPECT().CreateTweakTransactions(mock.Anything, mock.Anything).Run(func(_ context.Context, txs []*entity.TweakTransaction) {
		tweakTxs = txs
	}).Return(nil)
	spDgTx.EXPECT().SpendOutputs(mock.Anything, []wire.OutPoint{{Hash: spendHash, Index: 0}}, int64(0)).Return(nil)
	spDgTx.EXPECT().CreateBlockFilter(mock.Anything, mock.MatchedBy(func(filter *entity.BlockFilter) bool {
		return filter.BlockHeight == 0 && filter.FilterType == entity.BlockFilterTypeTaproot && len(filter.Data) > 1
	})).Return(nil)
	spDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	spDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	p := NewProcessor(spDg, mocks.NewIndexerInfoDataGateway(t), btcClient, common.NetworkRegtest, config.Config{})
	require.NoError(t, p.Process(ctx, []*types.Block{chain.block}))

	require.Len(t, tweakTxs, 2)
	assert.Equal(t, spendHash, tweakTxs[0].TxHash)
	assert.Equal(t, uint32(1), tweakTxs[0].TxIndex)
	assert.Equal(t, chainHash, tweakTxs[1].TxHash)
	assert.Equal(t, uint32(2), tweakTxs[1].TxIndex)
	for _, tx := range tweakTxs {
		require.Len(t, tx.Outputs, 1)
		assert.Equal(t, int64(-1), tx.Outputs[0].SpentHeight)
		assert.Equal(t, chain.block.Header.Hash, tx.BlockHash)
	}

	// the tweak must match a direct evaluation of the same spend
	expected, err := scantweak.Evaluate(scantweak.Transaction{
		Hash: spendHash,
		Inputs: []scantweak.Input{{
			PrevTxHash:   chain.prevTx.TxHash(),
			PrevIndex:    0,
			Witness:      chain.spendTx.TxIn[0].Witness,
			PrevPkScript: chain.prevTx.TxOut[0].PkScript,
		}},
		Outputs: []scantweak.Output{{PkScript: chain.spendTx.TxOut[0].PkScript, Value: 9_000}},
	})
	require.NoError(t, err)
	require.True(t, expected.Eligible)
	assert.Equal(t, expected.ScanTweak, tweakTxs[0].ScanTweak)

	require.NotNil(t, indexedBlock)
	assert.Equal(t, int32(2), indexedBlock.EligibleTxCount)
	events := getTweakEventString(tweakTxs[0]) + eventHashSeparator +
		getTweakEventString(tweakTxs[1]) + eventHashSeparator +
		getSpendEventString(wire.OutPoint{Hash: spendHash, Index: 0})
	assert.Equal(t, chainhash.Hash(sha256.Sum256([]byte(events))), indexedBlock.EventHash)
	assert.Equal(t, indexedBlock.EventHash, indexedBlock.CumulativeEventHash, "first block chains from nothing")

	// buffers are flushed
	assert.Empty(t, p.newTweakTransactions)
	assert.Empty(t, p.newSpentOutPoints)
	assert.Nil(t, p.newBlockFilter)
	assert.Empty(t, p.eventHashString)

	// transactions of the indexed block are served from the prevout cache without a node call
	cached, err := p.prevoutClient.GetRawTransactionByTxHash(ctx, chainHash)
	require.NoError(t, err)
	assert.Equal(t, chainHash, cached.TxHash())
}

func TestProcessMalformedTransaction(t *testing.T) {
	ctx := context.Background()

	// two inputs whose keys sum to the point at infinity
	keyA := testPrivKey("a").PubKey().SerializeCompressed()
	keyNegA := append([]byte(nil), keyA...)
	keyNegA[0] ^= 0x01

	prevTx := wire.NewMsgTx(2)
	prevTx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Hash: chainhash.HashH([]byte("funding")), Index: 0}, nil, nil))
	prevTx.AddTxOut(wire.NewTxOut(10_000, p2wpkhScript(keyA)))
	prevTx.AddTxOut(wire.NewTxOut(10_000, p2wpkhScript(keyNegA)))
	prevHash := prevTx.TxHash()

	coinbase := wire.NewMsgTx(2)
	coinbase.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), []byte{0x01, 0x00}, nil))
	coinbase.AddTxOut(wire.NewTxOut(50_0000_0000, p2trScript("miner")))

	faultTx := wire.NewMsgTx(2)
	faultTx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prevHash, 0), nil, wire.TxWitness{fakeSignature, keyA}))
	faultTx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prevHash, 1), nil, wire.TxWitness{fakeSignature, keyNegA}))
	faultTx.AddTxOut(wire.NewTxOut(19_000, p2trScript("b")))

	block := types.ParseMsgBlock(&wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   1,
			Timestamp: time.Unix(1_700_000_000, 0),
		},
		Transactions: []*wire.MsgTx{coinbase, faultTx},
	}, 0)

	btcClient := btcclientmocks.NewContract(t)
	btcClient.EXPECT().GetRawTransactionByTxHash(mock.Anything, prevHash).Return(prevTx, nil).Once()

	spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
	spDgTx := mocks.NewSilentPaymentsDataGatewayWithTx(t)
	spDg.EXPECT().GetOutputsByOutPoints(mock.Anything, mock.Anything).Return(nil, nil)
	spDg.EXPECT().BeginSilentPaymentsTx(mock.Anything).Return(spDgTx, nil)

	var (
		indexedBlock *entity.IndexedBlock
		tweakTxs     []*entity.TweakTransaction
	)
	spDgTx.EXPECT().GetIndexedBlockByHeight(mock.Anything, int64(-1)).Return(nil, errors.WithStack(errs.NotFound))
	spDgTx.EXPECT().CreateIndexedBlock(mock.Anything, mock.Anything).Run(func(_ context.Context, block *entity.IndexedBlock) {
		indexedBlock = block
	}).Return(nil)
	spDgTx.EXPECT().CreateTweakTransactions(mock.Anything, mock.Anything).Run(func(_ context.Context, txs []*entity.TweakTransaction) {
		tweakTxs = txs
	}).Return(nil)
	spDgTx.EXPECT().SpendOutputs(mock.Anything, mock.Anything, int64(0)).Return(nil)
	spDgTx.EXPECT().CreateBlockFilter(mock.Anything, mock.Anything).Return(nil)
	spDgTx.EXPECT().Commit(mock.Anything).Return(nil).Once()
	spDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	p := NewProcessor(spDg, mocks.NewIndexerInfoDataGateway(t), btcClient, common.NetworkRegtest, config.Config{})
	require.NoError(t, p.Process(ctx, []*types.Block{block}))

	assert.Empty(t, tweakTxs)
	require.NotNil(t, indexedBlock)
	assert.Equal(t, int32(0), indexedBlock.EligibleTxCount)
	assert.Equal(t, chainhash.Hash(sha256.Sum256(nil)), indexedBlock.EventHash)
}

func TestProcessSpends(t *testing.T) {
	ctx := context.Background()
	chain := newTestChain(t)
	prevOutPoint := wire.OutPoint{Hash: chain.prevTx.TxHash(), Index: 0}
	spendOutPoint := wire.OutPoint{Hash: chain.spendTx.TxHash(), Index: 0}

	t.Run("stored unspent output", func(t *testing.T) {
		spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
		spDg.EXPECT().GetOutputsByOutPoints(mock.Anything, []wire.OutPoint{prevOutPoint, spendOutPoint}).Return([]*entity.TaprootOutput{
			{TxHash: prevOutPoint.Hash, TxIdx: 0, SpentHeight: -1},
		}, nil)

		p := NewProcessor(spDg, mocks.NewIndexerInfoDataGateway(t), btcclientmocks.NewContract(t), common.NetworkRegtest, config.Config{})
		require.NoError(t, p.processSpends(ctx, chain.block))
		assert.Equal(t, []wire.OutPoint{prevOutPoint}, p.newSpentOutPoints)
		assert.Equal(t, getSpendEventString(prevOutPoint)+eventHashSeparator, p.eventHashString)
	})

	t.Run("stored output already spent", func(t *testing.T) {
		spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
		spDg.EXPECT().GetOutputsByOutPoints(mock.Anything, mock.Anything).Return([]*entity.TaprootOutput{
			{TxHash: prevOutPoint.Hash, TxIdx: 0, SpentHeight: 10},
		}, nil)

		p := NewProcessor(spDg, mocks.NewIndexerInfoDataGateway(t), btcclientmocks.NewContract(t), common.NetworkRegtest, config.Config{})
		require.NoError(t, p.processSpends(ctx, chain.block))
		assert.Empty(t, p.newSpentOutPoints)
		assert.Empty(t, p.eventHashString)
	})
}

func TestCalculateEventHashes(t *testing.T) {
	ctx := context.Background()
	header := types.BlockHeader{Height: 800_000}
	events := "tweak;a" + eventHashSeparator + "spend;b" + eventHashSeparator

	t.Run("chained", func(t *testing.T) {
		prevCumulative := chainhash.HashH([]byte("previous"))
		spDgTx := mocks.NewSilentPaymentsDataGatewayWithTx(t)
		spDgTx.EXPECT().GetIndexedBlockByHeight(mock.Anything, int64(799_999)).Return(&entity.IndexedBlock{
			Height:              799_999,
			CumulativeEventHash: prevCumulative,
		}, nil)

		p := &Processor{network: common.NetworkMainnet, eventHashString: events}
		eventHash, cumulativeEventHash, err := p.calculateEventHashes(ctx, spDgTx, header)
		require.NoError(t, err)

		expectedEventHash := sha256.Sum256([]byte("tweak;a|spend;b"))
		assert.Equal(t, chainhash.Hash(expectedEventHash), eventHash)
		expectedCumulative := sha256.Sum256([]byte(hex.EncodeToString(prevCumulative[:]) + hex.EncodeToString(expectedEventHash[:])))
		assert.Equal(t, chainhash.Hash(expectedCumulative), cumulativeEventHash)
	})

	t.Run("missing previous block", func(t *testing.T) {
		spDgTx := mocks.NewSilentPaymentsDataGatewayWithTx(t)
		spDgTx.EXPECT().GetIndexedBlockByHeight(mock.Anything, int64(799_999)).Return(nil, errors.WithStack(errs.NotFound))

		p := &Processor{network: common.NetworkMainnet, eventHashString: events}
		_, _, err := p.calculateEventHashes(ctx, spDgTx, header)
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("empty block", func(t *testing.T) {
		spDgTx := mocks.NewSilentPaymentsDataGatewayWithTx(t)
		spDgTx.EXPECT().GetIndexedBlockByHeight(mock.Anything, int64(709_631)).Return(nil, errors.WithStack(errs.NotFound))

		p := &Processor{network: common.NetworkMainnet}
		eventHash, cumulativeEventHash, err := p.calculateEventHashes(ctx, spDgTx, types.BlockHeader{Height: 709_632})
		require.NoError(t, err)
		assert.Equal(t, chainhash.Hash(sha256.Sum256(nil)), eventHash)
		assert.Equal(t, eventHash, cumulativeEventHash)
	})
}

func TestVerifyStates(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh database", func(t *testing.T) {
		indexerInfoDg := mocks.NewIndexerInfoDataGateway(t)
		indexerInfoDg.EXPECT().GetLatestIndexerState(mock.Anything).Return(entity.IndexerState{}, errors.WithStack(errs.NotFound))
		indexerInfoDg.EXPECT().CreateIndexerState(mock.Anything, mock.MatchedBy(func(state entity.IndexerState) bool {
			return state.DBVersion == DBVersion && state.EventHashVersion == EventHashVersion && state.Network == common.NetworkMainnet
		})).Return(nil)
		indexerInfoDg.EXPECT().GetLatestIndexerStats(mock.Anything).Return("", common.Network(""), errors.WithStack(errs.NotFound))
		indexerInfoDg.EXPECT().UpdateIndexerStats(mock.Anything, ClientVersion, common.NetworkMainnet).Return(nil)

		p := NewProcessor(mocks.NewSilentPaymentsDataGatewayWithTx(t), indexerInfoDg, btcclientmocks.NewContract(t), common.NetworkMainnet, config.Config{})
		assert.NoError(t, p.VerifyStates(ctx))
	})

	t.Run("network mismatch", func(t *testing.T) {
		indexerInfoDg := mocks.NewIndexerInfoDataGateway(t)
		indexerInfoDg.EXPECT().GetLatestIndexerState(mock.Anything).Return(entity.IndexerState{
			DBVersion:        DBVersion,
			EventHashVersion: EventHashVersion,
			Network:          common.NetworkTestnet,
		}, nil)

		p := NewProcessor(mocks.NewSilentPaymentsDataGatewayWithTx(t), indexerInfoDg, btcclientmocks.NewContract(t), common.NetworkMainnet, config.Config{})
		assert.ErrorIs(t, p.VerifyStates(ctx), errs.ConflictSetting)
	})

	t.Run("event hash version mismatch", func(t *testing.T) {
		indexerInfoDg := mocks.NewIndexerInfoDataGateway(t)
		indexerInfoDg.EXPECT().GetLatestIndexerState(mock.Anything).Return(entity.IndexerState{
			DBVersion:        DBVersion,
			EventHashVersion: EventHashVersion + 1,
			Network:          common.NetworkMainnet,
		}, nil)

		p := NewProcessor(mocks.NewSilentPaymentsDataGatewayWithTx(t), indexerInfoDg, btcclientmocks.NewContract(t), common.NetworkMainnet, config.Config{})
		assert.ErrorIs(t, p.VerifyStates(ctx), errs.ConflictSetting)
	})
}

func TestCurrentBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing indexed", func(t *testing.T) {
		spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
		spDg.EXPECT().GetLatestBlock(mock.Anything).Return(types.BlockHeader{}, errors.WithStack(errs.NotFound))

		p := NewProcessor(spDg, mocks.NewIndexerInfoDataGateway(t), btcclientmocks.NewContract(t), common.NetworkMainnet, config.Config{})
		header, err := p.CurrentBlock(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(709_631), header.Height)
		assert.Equal(t, chainhash.Hash{}, header.Hash)
	})

	t.Run("indexed", func(t *testing.T) {
		latest := types.BlockHeader{Height: 800_000, Hash: chainhash.HashH([]byte("latest"))}
		spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
		spDg.EXPECT().GetLatestBlock(mock.Anything).Return(latest, nil)

		p := NewProcessor(spDg, mocks.NewIndexerInfoDataGateway(t), btcclientmocks.NewContract(t), common.NetworkMainnet, config.Config{})
		header, err := p.CurrentBlock(ctx)
		require.NoError(t, err)
		assert.Equal(t, latest, header)
	})
}

func TestRevertData(t *testing.T) {
	ctx := context.Background()
	spDg := mocks.NewSilentPaymentsDataGatewayWithTx(t)
	spDgTx := mocks.NewSilentPaymentsDataGatewayWithTx(t)
	spDg.EXPECT().BeginSilentPaymentsTx(mock.Anything).Return(spDgTx, nil)
	spDgTx.EXPECT().DeleteIndexedBlocksSinceHeight(mock.Anything, int64(100)).Return(nil)
	spDgTx.EXPECT().DeleteTweakTransactionsSinceHeight(mock.Anything, int64(100)).Return(nil)
	spDgTx.EXPECT().UnspendOutputsSinceHeight(mock.Anything, int64(100)).Return(nil)
	spDgTx.EXPECT().DeleteBlockFiltersSinceHeight(mock.Anything, int64(100)).Return(nil)
	spDgTx.EXPECT().Commit(mock.Anything).Return(nil)
	spDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

	p := NewProcessor(spDg, mocks.NewIndexerInfoDataGateway(t), btcclientmocks.NewContract(t), common.NetworkMainnet, config.Config{})
	assert.NoError(t, p.RevertData(ctx, 100))
}

func TestStartingBlockHeader(t *testing.T) {
	assert.Equal(t, int64(709_631), getStartingBlockHeader(common.NetworkMainnet).Height)
	assert.Equal(t, int64(-1), getStartingBlockHeader(common.NetworkTestnet).Height)
	assert.Equal(t, int64(-1), getStartingBlockHeader(common.Network("unknown")).Height)
}
