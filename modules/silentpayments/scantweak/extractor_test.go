package scantweak

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPublicKey(t *testing.T) {
	key := newTestKey(t, "alice")
	prevHash := txHash("funding")

	t.Run("P2PKH", func(t *testing.T) {
		extracted, ok := ExtractPublicKey(p2pkhInput(key, prevHash, 0))
		require.True(t, ok)
		assert.Equal(t, key.compressed(), extracted)
	})

	t.Run("P2PKHMalleatedScriptSig", func(t *testing.T) {
		in := p2pkhInput(key, prevHash, 0)
		in.SignatureScript = append(append([]byte{txscript.OP_0}, in.SignatureScript...), txscript.OP_DROP)
		extracted, ok := ExtractPublicKey(in)
		require.True(t, ok)
		assert.Equal(t, key.compressed(), extracted)
	})

	t.Run("P2PKHWithWitness", func(t *testing.T) {
		in := p2pkhInput(key, prevHash, 0)
		in.Witness = wire.TxWitness{{0x01}}
		_, ok := ExtractPublicKey(in)
		assert.False(t, ok)
	})

	t.Run("P2PKHUncompressed", func(t *testing.T) {
		uncompressed := key.priv.PubKey().SerializeUncompressed()
		sigScript, err := txscript.NewScriptBuilder().AddData(fakeSignature).AddData(uncompressed).Script()
		require.NoError(t, err)
		_, ok := ExtractPublicKey(Input{
			PrevTxHash:      prevHash,
			SignatureScript: sigScript,
			PrevPkScript:    p2pkhScript(uncompressed),
		})
		assert.False(t, ok)
	})

	t.Run("P2PKHKeyHashMismatch", func(t *testing.T) {
		in := p2pkhInput(key, prevHash, 0)
		in.PrevPkScript = p2pkhScript(newTestKey(t, "bob").compressed())
		_, ok := ExtractPublicKey(in)
		assert.False(t, ok)
	})

	t.Run("P2SHP2WPKH", func(t *testing.T) {
		extracted, ok := ExtractPublicKey(p2shP2wpkhInput(key, prevHash, 0))
		require.True(t, ok)
		assert.Equal(t, key.compressed(), extracted)
	})

	t.Run("P2SHNotWitnessKeyHash", func(t *testing.T) {
		redeemScript := append([]byte{txscript.OP_0, txscript.OP_DATA_32}, bytes.Repeat([]byte{0x01}, 32)...)
		pushed, err := txscript.NewScriptBuilder().AddData(redeemScript).Script()
		require.NoError(t, err)
		_, ok := ExtractPublicKey(Input{
			PrevTxHash:      prevHash,
			SignatureScript: pushed,
			Witness:         wire.TxWitness{fakeSignature, key.compressed()},
			PrevPkScript:    p2shScript(redeemScript),
		})
		assert.False(t, ok)
	})

	t.Run("P2SHRedeemScriptMismatch", func(t *testing.T) {
		in := p2shP2wpkhInput(key, prevHash, 0)
		in.PrevPkScript = p2shScript(p2wpkhScript(newTestKey(t, "bob").compressed()))
		_, ok := ExtractPublicKey(in)
		assert.False(t, ok)
	})

	t.Run("P2WPKH", func(t *testing.T) {
		extracted, ok := ExtractPublicKey(p2wpkhInput(key, prevHash, 0))
		require.True(t, ok)
		assert.Equal(t, key.compressed(), extracted)
	})

	t.Run("P2WPKHWithScriptSig", func(t *testing.T) {
		in := p2wpkhInput(key, prevHash, 0)
		in.SignatureScript = []byte{txscript.OP_TRUE}
		_, ok := ExtractPublicKey(in)
		assert.False(t, ok)
	})

	t.Run("P2WPKHWitnessItems", func(t *testing.T) {
		in := p2wpkhInput(key, prevHash, 0)
		in.Witness = wire.TxWitness{key.compressed()}
		_, ok := ExtractPublicKey(in)
		assert.False(t, ok)
	})

	t.Run("P2TRKeyPath", func(t *testing.T) {
		extracted, ok := ExtractPublicKey(p2trKeyPathInput(key, prevHash, 0))
		require.True(t, ok)
		assert.Equal(t, byte(0x02), extracted[0])
		assert.Equal(t, key.xOnly(), extracted[1:])
	})

	t.Run("P2TRKeyPathWithAnnex", func(t *testing.T) {
		in := p2trKeyPathInput(key, prevHash, 0)
		in.Witness = append(in.Witness, []byte{txscript.TaprootAnnexTag, 0x01})
		extracted, ok := ExtractPublicKey(in)
		require.True(t, ok)
		assert.Equal(t, key.xOnly(), extracted[1:])
	})

	t.Run("P2TRScriptPath", func(t *testing.T) {
		_, ok := ExtractPublicKey(p2trScriptPathInput(key, prevHash, 0))
		assert.False(t, ok)
	})

	t.Run("P2TRInvalidOutputKey", func(t *testing.T) {
		// x = 5 is not on the curve
		xOnly := make([]byte, 32)
		xOnly[31] = 0x05
		_, ok := ExtractPublicKey(Input{
			PrevTxHash:   prevHash,
			Witness:      wire.TxWitness{bytes.Repeat([]byte{0x02}, 64)},
			PrevPkScript: p2trScript(xOnly),
		})
		assert.False(t, ok)
	})

	t.Run("P2WSH", func(t *testing.T) {
		_, ok := ExtractPublicKey(Input{
			PrevTxHash:   prevHash,
			Witness:      wire.TxWitness{fakeSignature, key.compressed()},
			PrevPkScript: append([]byte{txscript.OP_0, txscript.OP_DATA_32}, bytes.Repeat([]byte{0x01}, 32)...),
		})
		assert.False(t, ok)
	})

	t.Run("Empty", func(t *testing.T) {
		_, ok := ExtractPublicKey(Input{})
		assert.False(t, ok)
	})
}

func TestExtractPublicKeyOddTaprootKey(t *testing.T) {
	// find a key with an odd Y coordinate
	var key testKey
	for i := 0; ; i++ {
		key = newTestKey(t, "odd-"+string(rune('a'+i)))
		if key.compressed()[0] == 0x03 {
			break
		}
	}

	extracted, ok := ExtractPublicKey(p2trKeyPathInput(key, txHash("funding"), 0))
	require.True(t, ok)
	assert.Equal(t, byte(0x02), extracted[0])
	assert.NotEqual(t, key.compressed(), extracted)
	assert.Equal(t, key.xOnly(), extracted[1:])
}
