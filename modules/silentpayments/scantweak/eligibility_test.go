package scantweak

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/cockroachdb/errors"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/scantweak/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEvaluateSingleLegacyInput(t *testing.T) {
	key := newTestKey(t, "alice")
	outputScript, err := hex.DecodeString("5120" + "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)

	in := p2pkhInput(key, txHash("funding"), 0)
	tx := Transaction{
		Hash:    txHash("spend"),
		Inputs:  []Input{in},
		Outputs: []Output{{PkScript: outputScript, Value: 10000}},
	}

	result, err := Evaluate(tx)
	require.NoError(t, err)
	require.True(t, result.Eligible)
	assert.Equal(t, ReasonNone, result.Reason)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, uint32(0), result.Candidates[0].Index)
	assert.Equal(t, int64(10000), result.Candidates[0].Value)
	assert.Equal(t, outputScript[2:], result.Candidates[0].PubKey[:])
	assert.Equal(t, expectedScanTweak(t, in.Outpoint(), key.contribution(false)), result.ScanTweak)
}

func TestEvaluateDisallowedSegwitVersion(t *testing.T) {
	key := newTestKey(t, "alice")
	in := p2pkhInput(key, txHash("funding"), 0)
	in.PrevPkScript = append([]byte{txscript.OP_2, txscript.OP_DATA_32}, make([]byte, 32)...)

	tx := Transaction{
		Hash:    txHash("spend"),
		Inputs:  []Input{in},
		Outputs: []Output{taprootOutput(t, "bob", 10000)},
	}

	result, err := Evaluate(tx)
	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, ReasonDisallowedSegwitVersion, result.Reason)
	assert.Empty(t, result.Candidates)
	assert.Equal(t, ScanTweak{}, result.ScanTweak)
}

func TestEvaluateDisallowedInputAmongEligible(t *testing.T) {
	alice := newTestKey(t, "alice")
	bob := newTestKey(t, "bob")
	future := p2wpkhInput(bob, txHash("funding-2"), 0)
	future.PrevPkScript = append([]byte{txscript.OP_16, txscript.OP_DATA_2}, 0x4e, 0x73)

	tx := Transaction{
		Hash:    txHash("spend"),
		Inputs:  []Input{p2pkhInput(alice, txHash("funding-1"), 0), future},
		Outputs: []Output{taprootOutput(t, "carol", 10000)},
	}

	result, err := Evaluate(tx)
	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, ReasonDisallowedSegwitVersion, result.Reason)
}

func TestEvaluateTwoInputsTwoOutputs(t *testing.T) {
	alice := newTestKey(t, "alice")
	bob := newTestKey(t, "bob")

	// 0xff.. sorts after 0x00.., so the second input holds the smallest outpoint
	high := txHash("funding-1")
	high[0] = 0xff
	low := txHash("funding-2")
	low[0] = 0x00

	inputs := []Input{p2pkhInput(alice, high, 0), p2wpkhInput(bob, low, 7)}
	tx := Transaction{
		Hash:   txHash("spend"),
		Inputs: inputs,
		Outputs: []Output{
			taprootOutput(t, "out-0", 1000),
			{PkScript: p2wpkhScript(alice.compressed()), Value: 2000},
			taprootOutput(t, "out-2", 3000),
		},
	}

	result, err := Evaluate(tx)
	require.NoError(t, err)
	require.True(t, result.Eligible)
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, uint32(0), result.Candidates[0].Index)
	assert.Equal(t, int64(1000), result.Candidates[0].Value)
	assert.Equal(t, uint32(2), result.Candidates[1].Index)
	assert.Equal(t, int64(3000), result.Candidates[1].Value)

	smallest, err := SmallestOutpoint(inputs)
	require.NoError(t, err)
	assert.Equal(t, inputs[1].Outpoint(), smallest)
	assert.Equal(t, expectedScanTweak(t, smallest, alice.contribution(false), bob.contribution(false)), result.ScanTweak)
}

func TestEvaluateNoTaprootOutputs(t *testing.T) {
	key := newTestKey(t, "alice")
	tx := Transaction{
		Hash:    txHash("spend"),
		Inputs:  []Input{p2pkhInput(key, txHash("funding"), 0)},
		Outputs: []Output{{PkScript: p2wpkhScript(key.compressed()), Value: 5000}},
	}

	result, err := Evaluate(tx)
	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, ReasonNoTaprootOutputs, result.Reason)
	assert.Empty(t, result.Candidates)
}

func TestEvaluateNoInputKeys(t *testing.T) {
	key := newTestKey(t, "alice")
	tx := Transaction{
		Hash:    txHash("spend"),
		Inputs:  []Input{p2trScriptPathInput(key, txHash("funding"), 0)},
		Outputs: []Output{taprootOutput(t, "bob", 10000)},
	}

	result, err := Evaluate(tx)
	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, ReasonNoInputKeys, result.Reason)
	assert.Empty(t, result.Candidates)
}

func TestEvaluateSubsetOfInputKeys(t *testing.T) {
	alice := newTestKey(t, "alice")
	bob := newTestKey(t, "bob")

	keyPath := p2trKeyPathInput(alice, txHash("funding-1"), 1)
	scriptPath := p2trScriptPathInput(bob, txHash("funding-2"), 0)
	tx := Transaction{
		Hash:    txHash("spend"),
		Inputs:  []Input{keyPath, scriptPath},
		Outputs: []Output{taprootOutput(t, "carol", 10000)},
	}

	smallest, err := SmallestOutpoint(tx.Inputs)
	require.NoError(t, err)

	result, err := Evaluate(tx)
	require.NoError(t, err)
	require.True(t, result.Eligible)
	// the outpoint of the keyless input still takes part in the input hash
	assert.Equal(t, expectedScanTweak(t, smallest, alice.contribution(true)), result.ScanTweak)
}

func TestEvaluateAllInputTypes(t *testing.T) {
	keys := []testKey{
		newTestKey(t, "p2pkh"),
		newTestKey(t, "p2sh-p2wpkh"),
		newTestKey(t, "p2wpkh"),
		newTestKey(t, "p2tr"),
	}
	inputs := []Input{
		p2pkhInput(keys[0], txHash("funding-0"), 3),
		p2shP2wpkhInput(keys[1], txHash("funding-1"), 0),
		p2wpkhInput(keys[2], txHash("funding-2"), 1),
		p2trKeyPathInput(keys[3], txHash("funding-3"), 2),
	}
	tx := Transaction{
		Hash:    txHash("spend"),
		Inputs:  inputs,
		Outputs: []Output{taprootOutput(t, "out", 546)},
	}

	smallest, err := SmallestOutpoint(inputs)
	require.NoError(t, err)
	want := expectedScanTweak(t, smallest,
		keys[0].contribution(false),
		keys[1].contribution(false),
		keys[2].contribution(false),
		keys[3].contribution(true),
	)

	result, err := Evaluate(tx)
	require.NoError(t, err)
	require.True(t, result.Eligible)
	assert.Equal(t, want, result.ScanTweak)

	// input order does not change the tweak
	reversed := tx
	reversed.Inputs = []Input{inputs[3], inputs[2], inputs[1], inputs[0]}
	again, err := Evaluate(reversed)
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestEvaluatePointAtInfinity(t *testing.T) {
	alice := newTestKey(t, "alice")

	// a second key that is the negation of alice's
	negated := alice.priv.Key
	negated.Negate()
	bob := testKey{priv: secp256k1.NewPrivateKey(&negated)}

	tx := Transaction{
		Hash:    txHash("spend"),
		Inputs:  []Input{p2pkhInput(alice, txHash("funding-1"), 0), p2wpkhInput(bob, txHash("funding-2"), 0)},
		Outputs: []Output{taprootOutput(t, "carol", 10000)},
	}

	result, err := Evaluate(tx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPointAtInfinity)
	assert.True(t, IsMalformedData(err))
	assert.True(t, errors.Is(err, errs.InvalidArgument))
	assert.False(t, result.Eligible)
}

func TestEvaluatePreconditions(t *testing.T) {
	key := newTestKey(t, "alice")

	_, err := Evaluate(Transaction{Outputs: []Output{taprootOutput(t, "bob", 1)}})
	assert.ErrorIs(t, err, ErrNoInputs)
	assert.True(t, errors.Is(err, errs.InternalError))

	_, err = Evaluate(Transaction{Inputs: []Input{p2pkhInput(key, txHash("funding"), 0)}})
	assert.ErrorIs(t, err, ErrNoOutputs)
	assert.False(t, IsMalformedData(err))
}

func TestEvaluateDeterministic(t *testing.T) {
	alice := newTestKey(t, "alice")
	bob := newTestKey(t, "bob")
	tx := Transaction{
		Hash:    txHash("spend"),
		Inputs:  []Input{p2shP2wpkhInput(alice, txHash("funding-1"), 0), p2trKeyPathInput(bob, txHash("funding-2"), 4)},
		Outputs: []Output{taprootOutput(t, "carol", 10000), taprootOutput(t, "dave", 20000)},
	}

	first, err := Evaluate(tx)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		result, err := NewEvaluator().Evaluate(tx)
		require.NoError(t, err)
		assert.Equal(t, first, result)
	}
}

func TestEvaluateShortCircuit(t *testing.T) {
	key := newTestKey(t, "alice")
	extractCalls := 0
	countingExtractor := func(in Input) ([]byte, bool) {
		extractCalls++
		return ExtractPublicKey(in)
	}

	t.Run("NoTaprootOutputs", func(t *testing.T) {
		extractCalls = 0
		curve := mocks.NewCurve(t)
		evaluator := NewEvaluator(WithCurve(curve), WithKeyExtractor(countingExtractor))

		result, err := evaluator.Evaluate(Transaction{
			Inputs:  []Input{p2pkhInput(key, txHash("funding"), 0)},
			Outputs: []Output{{PkScript: p2pkhScript(key.compressed()), Value: 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, ReasonNoTaprootOutputs, result.Reason)
		assert.Zero(t, extractCalls)
		curve.AssertNotCalled(t, "CombinePoints", mock.Anything)
	})

	t.Run("DisallowedSegwitVersion", func(t *testing.T) {
		extractCalls = 0
		curve := mocks.NewCurve(t)
		evaluator := NewEvaluator(WithCurve(curve), WithKeyExtractor(countingExtractor))

		in := p2pkhInput(key, txHash("funding"), 0)
		in.PrevPkScript = []byte{txscript.OP_3, txscript.OP_DATA_2, 0x00, 0x00}
		result, err := evaluator.Evaluate(Transaction{
			Inputs:  []Input{p2wpkhInput(key, txHash("funding-2"), 0), in},
			Outputs: []Output{taprootOutput(t, "bob", 1)},
		})
		require.NoError(t, err)
		assert.Equal(t, ReasonDisallowedSegwitVersion, result.Reason)
		assert.Zero(t, extractCalls)
	})

	t.Run("NoInputKeys", func(t *testing.T) {
		curve := mocks.NewCurve(t)
		evaluator := NewEvaluator(WithCurve(curve), WithKeyExtractor(func(Input) ([]byte, bool) {
			return nil, false
		}))

		result, err := evaluator.Evaluate(Transaction{
			Inputs:  []Input{p2pkhInput(key, txHash("funding"), 0)},
			Outputs: []Output{taprootOutput(t, "bob", 1)},
		})
		require.NoError(t, err)
		assert.Equal(t, ReasonNoInputKeys, result.Reason)
		curve.AssertNotCalled(t, "CombinePoints", mock.Anything)
	})
}

func TestEvaluateWithCurve(t *testing.T) {
	key := newTestKey(t, "alice")
	combined := newTestKey(t, "combined").compressed()
	tweak := newTestKey(t, "tweak").compressed()

	curve := mocks.NewCurve(t)
	curve.EXPECT().CombinePoints([][]byte{key.compressed()}).Return(combined, nil).Once()
	curve.EXPECT().ScalarMultiply(combined, mock.Anything).Return(tweak, nil).Once()

	result, err := NewEvaluator(WithCurve(curve)).Evaluate(Transaction{
		Inputs:  []Input{p2wpkhInput(key, txHash("funding"), 0)},
		Outputs: []Output{taprootOutput(t, "bob", 1)},
	})
	require.NoError(t, err)
	require.True(t, result.Eligible)
	assert.Equal(t, tweak, result.ScanTweak.Bytes())
}

func TestEvaluateCurveFault(t *testing.T) {
	key := newTestKey(t, "alice")

	curve := mocks.NewCurve(t)
	curve.EXPECT().CombinePoints(mock.Anything).Return(nil, errors.WithStack(ErrMalformedKey)).Once()

	result, err := NewEvaluator(WithCurve(curve)).Evaluate(Transaction{
		Inputs:  []Input{p2wpkhInput(key, txHash("funding"), 0)},
		Outputs: []Output{taprootOutput(t, "bob", 1)},
	})
	assert.ErrorIs(t, err, ErrMalformedKey)
	assert.True(t, IsMalformedData(err))
	assert.Equal(t, Result{}, result)
}
