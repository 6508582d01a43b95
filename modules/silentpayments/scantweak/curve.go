package scantweak

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
)

// Curve is the elliptic curve arithmetic the tweak derivation needs.
// Points are 33-byte compressed encodings.
type Curve interface {
	// CombinePoints returns the sum of the points.
	CombinePoints(points [][]byte) ([]byte, error)

	// ScalarMultiply returns scalar·point, the scalar is reduced modulo the curve order.
	ScalarMultiply(point []byte, scalar [32]byte) ([]byte, error)
}

// Secp256k1 is the production Curve.
var Secp256k1 Curve = secp256k1Curve{}

type secp256k1Curve struct{}

func (secp256k1Curve) CombinePoints(points [][]byte) ([]byte, error) {
	if len(points) == 0 {
		return nil, errors.Wrap(errs.InvalidArgument, "no points to combine")
	}

	var sum btcec.JacobianPoint
	for i, point := range points {
		pubKey, err := parseCompressed(point)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		var p btcec.JacobianPoint
		pubKey.AsJacobian(&p)
		btcec.AddNonConst(&sum, &p, &sum)
	}

	if isInfinity(&sum) {
		return nil, errors.WithStack(ErrPointAtInfinity)
	}
	sum.ToAffine()
	return btcec.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed(), nil
}

func (secp256k1Curve) ScalarMultiply(point []byte, scalar [32]byte) ([]byte, error) {
	pubKey, err := parseCompressed(point)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var k btcec.ModNScalar
	k.SetBytes(&scalar)
	if k.IsZero() {
		return nil, errors.WithStack(ErrInvalidScalar)
	}

	var p, result btcec.JacobianPoint
	pubKey.AsJacobian(&p)
	btcec.ScalarMultNonConst(&k, &p, &result)
	if isInfinity(&result) {
		return nil, errors.WithStack(ErrPointAtInfinity)
	}
	result.ToAffine()
	return btcec.NewPublicKey(&result.X, &result.Y).SerializeCompressed(), nil
}

func parseCompressed(point []byte) (*btcec.PublicKey, error) {
	if len(point) != btcec.PubKeyBytesLenCompressed {
		return nil, errors.Wrapf(ErrMalformedKey, "invalid length %d", len(point))
	}
	pubKey, err := btcec.ParsePubKey(point)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedKey, "%v", err)
	}
	return pubKey, nil
}

func isInfinity(p *btcec.JacobianPoint) bool {
	return (p.X.IsZero() && p.Y.IsZero()) || p.Z.IsZero()
}
