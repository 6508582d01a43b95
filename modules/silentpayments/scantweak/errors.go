package scantweak

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
)

// Malformed-data faults. The transaction must be skipped, it is neither eligible nor ineligible.
var (
	ErrMalformedKey    = errors.Mark(errors.New("malformed public key"), errs.InvalidArgument)
	ErrPointAtInfinity = errors.Mark(errors.New("sum of input public keys is the point at infinity"), errs.InvalidArgument)
	ErrInvalidScalar   = errors.Mark(errors.New("input hash is zero modulo the curve order"), errs.InvalidArgument)
)

// Precondition violations. A confirmed non-coinbase transaction never triggers them.
var (
	ErrNoInputs  = errors.Mark(errors.New("transaction has no inputs"), errs.InternalError)
	ErrNoOutputs = errors.Mark(errors.New("transaction has no outputs"), errs.InternalError)
)

// IsMalformedData reports whether err is a malformed-data fault.
func IsMalformedData(err error) bool {
	return errors.Is(err, ErrMalformedKey) || errors.Is(err, ErrPointAtInfinity) || errors.Is(err, ErrInvalidScalar)
}
