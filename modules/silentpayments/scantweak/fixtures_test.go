package scantweak

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

var fakeSignature = append([]byte{0x30, 0x44}, bytes.Repeat([]byte{0x01}, 69)...)

type testKey struct {
	priv *secp256k1.PrivateKey
}

func newTestKey(t *testing.T, seed string) testKey {
	t.Helper()
	sum := sha256.Sum256([]byte(seed))
	priv := secp256k1.PrivKeyFromBytes(sum[:])
	require.False(t, priv.Key.IsZero())
	return testKey{priv: priv}
}

func (k testKey) compressed() []byte {
	return k.priv.PubKey().SerializeCompressed()
}

func (k testKey) xOnly() []byte {
	return schnorr.SerializePubKey(k.priv.PubKey())
}

// contribution is the scalar whose multiple of G is the key an input spending with k contributes.
// Taproot keys are lifted to even Y, so odd keys contribute their negation.
func (k testKey) contribution(taproot bool) secp256k1.ModNScalar {
	scalar := k.priv.Key
	if taproot && k.compressed()[0] == secp256k1.PubKeyFormatCompressedOdd {
		scalar.Negate()
	}
	return scalar
}

func txHash(seed string) chainhash.Hash {
	return chainhash.DoubleHashH([]byte(seed))
}

func p2pkhScript(key []byte) []byte {
	script, _ := txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(btcutil.Hash160(key)).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	return script
}

func p2wpkhScript(key []byte) []byte {
	return append([]byte{txscript.OP_0, txscript.OP_DATA_20}, btcutil.Hash160(key)...)
}

func p2shScript(redeemScript []byte) []byte {
	script := append([]byte{txscript.OP_HASH160, txscript.OP_DATA_20}, btcutil.Hash160(redeemScript)...)
	return append(script, txscript.OP_EQUAL)
}

func p2trScript(xOnly []byte) []byte {
	return append([]byte{txscript.OP_1, txscript.OP_DATA_32}, xOnly...)
}

func p2pkhInput(key testKey, prevHash chainhash.Hash, prevIndex uint32) Input {
	sigScript, _ := txscript.NewScriptBuilder().
		AddData(fakeSignature).
		AddData(key.compressed()).
		Script()
	return Input{
		PrevTxHash:      prevHash,
		PrevIndex:       prevIndex,
		SignatureScript: sigScript,
		PrevPkScript:    p2pkhScript(key.compressed()),
	}
}

func p2wpkhInput(key testKey, prevHash chainhash.Hash, prevIndex uint32) Input {
	return Input{
		PrevTxHash:   prevHash,
		PrevIndex:    prevIndex,
		Witness:      wire.TxWitness{fakeSignature, key.compressed()},
		PrevPkScript: p2wpkhScript(key.compressed()),
	}
}

func p2shP2wpkhInput(key testKey, prevHash chainhash.Hash, prevIndex uint32) Input {
	redeemScript := p2wpkhScript(key.compressed())
	return Input{
		PrevTxHash:      prevHash,
		PrevIndex:       prevIndex,
		SignatureScript: append([]byte{txscript.OP_DATA_22}, redeemScript...),
		Witness:         wire.TxWitness{fakeSignature, key.compressed()},
		PrevPkScript:    p2shScript(redeemScript),
	}
}

func p2trKeyPathInput(key testKey, prevHash chainhash.Hash, prevIndex uint32) Input {
	return Input{
		PrevTxHash:   prevHash,
		PrevIndex:    prevIndex,
		Witness:      wire.TxWitness{bytes.Repeat([]byte{0x02}, 64)},
		PrevPkScript: p2trScript(key.xOnly()),
	}
}

func p2trScriptPathInput(key testKey, prevHash chainhash.Hash, prevIndex uint32) Input {
	leafScript := []byte{txscript.OP_TRUE}
	controlBlock := append([]byte{0xc0}, key.xOnly()...)
	return Input{
		PrevTxHash:   prevHash,
		PrevIndex:    prevIndex,
		Witness:      wire.TxWitness{{0x01}, leafScript, controlBlock},
		PrevPkScript: p2trScript(key.xOnly()),
	}
}

func taprootOutput(t *testing.T, seed string, value int64) Output {
	t.Helper()
	return Output{PkScript: p2trScript(newTestKey(t, seed).xOnly()), Value: value}
}

// expectedScanTweak computes the tweak from private keys: (Σa·input_hash)·G.
func expectedScanTweak(t *testing.T, smallest Outpoint, scalars ...secp256k1.ModNScalar) ScanTweak {
	t.Helper()
	var sum secp256k1.ModNScalar
	for i := range scalars {
		sum.Add(&scalars[i])
	}
	require.False(t, sum.IsZero())

	var combined CombinedPublicKey
	copy(combined[:], secp256k1.NewPrivateKey(&sum).PubKey().SerializeCompressed())

	inputHash := InputHash(smallest, combined)
	var k secp256k1.ModNScalar
	k.SetBytes(&inputHash)
	k.Mul(&sum)

	var tweak ScanTweak
	copy(tweak[:], secp256k1.NewPrivateKey(&k).PubKey().SerializeCompressed())
	return tweak
}
