package scantweak

import (
	"github.com/btcsuite/btcd/txscript"
)

const taprootOutputLen = 34

// IsTaprootOutput reports whether pkScript is exactly OP_1 OP_DATA_32 <32-byte key>.
func IsTaprootOutput(pkScript []byte) bool {
	return len(pkScript) == taprootOutputLen &&
		pkScript[0] == txscript.OP_1 &&
		pkScript[1] == txscript.OP_DATA_32
}

// HasDisallowedSegwitVersion reports whether the first opcode of a spent output script is OP_2..OP_16.
// Spending such an output makes the whole transaction ineligible.
func HasDisallowedSegwitVersion(prevPkScript []byte) bool {
	if len(prevPkScript) == 0 {
		return false
	}
	op := prevPkScript[0]
	return op >= txscript.OP_2 && op <= txscript.OP_16
}

// TaprootOutputs returns the candidate outputs in output order.
func TaprootOutputs(outputs []Output) []CandidateOutput {
	var candidates []CandidateOutput
	for i, out := range outputs {
		if !IsTaprootOutput(out.PkScript) {
			continue
		}
		candidate := CandidateOutput{
			Value: out.Value,
			Index: uint32(i),
		}
		copy(candidate.PubKey[:], out.PkScript[2:])
		candidates = append(candidates, candidate)
	}
	return candidates
}
