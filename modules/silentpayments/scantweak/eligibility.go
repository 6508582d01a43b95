package scantweak

import (
	"github.com/cockroachdb/errors"
)

// Evaluator decides silent payment eligibility and derives the scan tweak.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	curve   Curve
	extract KeyExtractor
}

type Option func(*Evaluator)

func WithCurve(curve Curve) Option {
	return func(e *Evaluator) {
		e.curve = curve
	}
}

func WithKeyExtractor(extract KeyExtractor) Option {
	return func(e *Evaluator) {
		e.extract = extract
	}
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		curve:   Secp256k1,
		extract: ExtractPublicKey,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// Evaluate evaluates tx with the secp256k1 curve and the default key extractor.
func Evaluate(tx Transaction) (Result, error) {
	return defaultEvaluator.Evaluate(tx)
}

// Evaluate runs the gates in order of cost and stops at the first one that fails:
// taproot outputs, spent segwit versions, input keys, then the curve arithmetic.
func (e *Evaluator) Evaluate(tx Transaction) (Result, error) {
	if len(tx.Inputs) == 0 {
		return Result{}, errors.Wrapf(ErrNoInputs, "tx %s", tx.Hash)
	}
	if len(tx.Outputs) == 0 {
		return Result{}, errors.Wrapf(ErrNoOutputs, "tx %s", tx.Hash)
	}

	candidates := TaprootOutputs(tx.Outputs)
	if len(candidates) == 0 {
		return ineligible(ReasonNoTaprootOutputs), nil
	}

	for _, in := range tx.Inputs {
		if HasDisallowedSegwitVersion(in.PrevPkScript) {
			return ineligible(ReasonDisallowedSegwitVersion), nil
		}
	}

	keys := make([][]byte, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if key, ok := e.extract(in); ok {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ineligible(ReasonNoInputKeys), nil
	}

	tweak, err := e.deriveScanTweak(tx.Inputs, keys)
	if err != nil {
		return Result{}, errors.Wrapf(err, "tx %s", tx.Hash)
	}

	return Result{
		Eligible:   true,
		ScanTweak:  tweak,
		Candidates: candidates,
	}, nil
}

func (e *Evaluator) deriveScanTweak(inputs []Input, keys [][]byte) (ScanTweak, error) {
	outpoint, err := SmallestOutpoint(inputs)
	if err != nil {
		return ScanTweak{}, errors.WithStack(err)
	}

	combined, err := Combine(e.curve, keys)
	if err != nil {
		return ScanTweak{}, errors.Wrap(err, "failed to combine input keys")
	}

	tweak, err := DeriveTweak(e.curve, combined, InputHash(outpoint, combined))
	if err != nil {
		return ScanTweak{}, errors.Wrap(err, "failed to derive scan tweak")
	}
	return tweak, nil
}
