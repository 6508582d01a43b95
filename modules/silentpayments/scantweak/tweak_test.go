package scantweak

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputHash(t *testing.T) {
	key := newTestKey(t, "alice")
	var combined CombinedPublicKey
	copy(combined[:], key.compressed())
	outpoint := NewOutpoint(txHash("funding"), 5)

	tag := sha256.Sum256([]byte("BIP0352/Inputs"))
	h := sha256.New()
	h.Write(tag[:])
	h.Write(tag[:])
	h.Write(outpoint[:])
	h.Write(combined[:])

	assert.Equal(t, h.Sum(nil), func() []byte { v := InputHash(outpoint, combined); return v[:] }())
}

func TestCombine(t *testing.T) {
	alice := newTestKey(t, "alice")
	bob := newTestKey(t, "bob")
	carol := newTestKey(t, "carol")

	t.Run("SingleKey", func(t *testing.T) {
		combined, err := Combine(Secp256k1, [][]byte{alice.compressed()})
		require.NoError(t, err)
		assert.Equal(t, alice.compressed(), combined[:])
	})

	t.Run("Sum", func(t *testing.T) {
		var sum secp256k1.ModNScalar
		sum.Add2(&alice.priv.Key, &bob.priv.Key).Add(&carol.priv.Key)
		want := secp256k1.NewPrivateKey(&sum).PubKey().SerializeCompressed()

		combined, err := Combine(Secp256k1, [][]byte{alice.compressed(), bob.compressed(), carol.compressed()})
		require.NoError(t, err)
		assert.Equal(t, want, combined[:])

		reordered, err := Combine(Secp256k1, [][]byte{carol.compressed(), alice.compressed(), bob.compressed()})
		require.NoError(t, err)
		assert.Equal(t, combined, reordered)
	})

	t.Run("Doubling", func(t *testing.T) {
		var double secp256k1.ModNScalar
		double.Add2(&alice.priv.Key, &alice.priv.Key)
		want := secp256k1.NewPrivateKey(&double).PubKey().SerializeCompressed()

		combined, err := Combine(Secp256k1, [][]byte{alice.compressed(), alice.compressed()})
		require.NoError(t, err)
		assert.Equal(t, want, combined[:])
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Combine(Secp256k1, nil)
		assert.Error(t, err)
	})
}

func TestCombineMalformed(t *testing.T) {
	valid := newTestKey(t, "alice").compressed()

	notOnCurve := make([]byte, 33)
	notOnCurve[0] = 0x02
	notOnCurve[32] = 0x05 // x = 5 has no square root of x^3+7

	badPrefix := append([]byte{0x05}, valid[1:]...)

	testCases := []struct {
		name string
		key  []byte
	}{
		{name: "TooShort", key: valid[:32]},
		{name: "Uncompressed", key: newTestKey(t, "bob").priv.PubKey().SerializeUncompressed()},
		{name: "BadPrefix", key: badPrefix},
		{name: "NotOnCurve", key: notOnCurve},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Combine(Secp256k1, [][]byte{valid, tc.key})
			assert.ErrorIs(t, err, ErrMalformedKey)
			assert.True(t, IsMalformedData(err))
		})
	}
}

func TestDeriveTweak(t *testing.T) {
	key := newTestKey(t, "alice")
	var combined CombinedPublicKey
	copy(combined[:], key.compressed())

	t.Run("ZeroScalar", func(t *testing.T) {
		_, err := DeriveTweak(Secp256k1, combined, [32]byte{})
		assert.ErrorIs(t, err, ErrInvalidScalar)
	})

	t.Run("CurveOrder", func(t *testing.T) {
		// n itself reduces to zero
		var n [32]byte
		copy(n[:], secp256k1.Params().N.Bytes())
		_, err := DeriveTweak(Secp256k1, combined, n)
		assert.ErrorIs(t, err, ErrInvalidScalar)
	})

	t.Run("One", func(t *testing.T) {
		var one [32]byte
		one[31] = 1
		tweak, err := DeriveTweak(Secp256k1, combined, one)
		require.NoError(t, err)
		assert.Equal(t, combined[:], tweak[:])
	})

	t.Run("Reduced", func(t *testing.T) {
		// n+1 reduces to one
		var nPlusOne [32]byte
		copy(nPlusOne[:], secp256k1.Params().N.Bytes())
		nPlusOne[31]++
		tweak, err := DeriveTweak(Secp256k1, combined, nPlusOne)
		require.NoError(t, err)
		assert.Equal(t, combined[:], tweak[:])
	})

	t.Run("Multiply", func(t *testing.T) {
		scalar := sha256.Sum256([]byte("scalar"))
		var k secp256k1.ModNScalar
		k.SetBytes(&scalar)
		k.Mul(&key.priv.Key)
		want := secp256k1.NewPrivateKey(&k).PubKey().SerializeCompressed()

		tweak, err := DeriveTweak(Secp256k1, combined, scalar)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(want, tweak[:]))
	})

	t.Run("MalformedPoint", func(t *testing.T) {
		var bad CombinedPublicKey
		bad[0] = 0x04
		var one [32]byte
		one[31] = 1
		_, err := DeriveTweak(Secp256k1, bad, one)
		assert.ErrorIs(t, err, ErrMalformedKey)
	})
}
