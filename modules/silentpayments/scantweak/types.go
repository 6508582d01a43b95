package scantweak

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Input is a transaction input together with the script of the output it spends.
type Input struct {
	PrevTxHash      chainhash.Hash
	PrevIndex       uint32
	SignatureScript []byte
	Witness         wire.TxWitness
	PrevPkScript    []byte
}

type Output struct {
	PkScript []byte
	Value    int64
}

// Transaction is the unit of evaluation.
type Transaction struct {
	Hash    chainhash.Hash
	Inputs  []Input
	Outputs []Output
}

// CandidateOutput is a P2TR output that may be a silent payment.
type CandidateOutput struct {
	PubKey [32]byte // x-only output key
	Value  int64
	Index  uint32
}

// CombinedPublicKey is the sum of the eligible input public keys, compressed.
type CombinedPublicKey [33]byte

// ScanTweak is input_hash·A, compressed. Wallets multiply it by their scan private key to get the shared secret.
type ScanTweak [33]byte

func (t ScanTweak) String() string {
	return hex.EncodeToString(t[:])
}

// Bytes returns a copy of the tweak as a byte slice.
func (t ScanTweak) Bytes() []byte {
	return append([]byte(nil), t[:]...)
}

// Reason tells which gate made a transaction ineligible.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonNoTaprootOutputs
	ReasonDisallowedSegwitVersion
	ReasonNoInputKeys
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNoTaprootOutputs:
		return "no_taproot_outputs"
	case ReasonDisallowedSegwitVersion:
		return "disallowed_segwit_version"
	case ReasonNoInputKeys:
		return "no_input_keys"
	default:
		return "unknown"
	}
}

// Result is the outcome of an evaluation. The zero value is an ineligible result.
type Result struct {
	Eligible   bool
	ScanTweak  ScanTweak
	Candidates []CandidateOutput

	// Reason is set for ineligible results.
	Reason Reason
}

func ineligible(reason Reason) Result {
	return Result{Reason: reason}
}
