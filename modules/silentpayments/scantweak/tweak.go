package scantweak

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
)

// InputsTag is the BIP340 tagged hash tag of the input hash.
const InputsTag = "BIP0352/Inputs"

var inputsTag = []byte(InputsTag)

// Combine sums the input public keys.
func Combine(curve Curve, keys [][]byte) (CombinedPublicKey, error) {
	if len(keys) == 0 {
		return CombinedPublicKey{}, errors.Wrap(errs.InvalidArgument, "no keys to combine")
	}
	sum, err := curve.CombinePoints(keys)
	if err != nil {
		return CombinedPublicKey{}, errors.WithStack(err)
	}
	if len(sum) != len(CombinedPublicKey{}) {
		return CombinedPublicKey{}, errors.Wrapf(ErrMalformedKey, "combined key has length %d", len(sum))
	}
	var combined CombinedPublicKey
	copy(combined[:], sum)
	return combined, nil
}

// InputHash is hash_BIP0352/Inputs(smallest outpoint || A).
func InputHash(outpoint Outpoint, combined CombinedPublicKey) [32]byte {
	return *chainhash.TaggedHash(inputsTag, outpoint[:], combined[:])
}

// DeriveTweak returns scalar·combined. A scalar that is zero modulo the curve order is rejected.
func DeriveTweak(curve Curve, combined CombinedPublicKey, scalar [32]byte) (ScanTweak, error) {
	var k btcec.ModNScalar
	k.SetBytes(&scalar)
	if k.IsZero() {
		return ScanTweak{}, errors.WithStack(ErrInvalidScalar)
	}

	point, err := curve.ScalarMultiply(combined[:], scalar)
	if err != nil {
		return ScanTweak{}, errors.WithStack(err)
	}
	if len(point) != len(ScanTweak{}) {
		return ScanTweak{}, errors.Wrapf(ErrMalformedKey, "tweak has length %d", len(point))
	}
	var tweak ScanTweak
	copy(tweak[:], point)
	return tweak, nil
}
