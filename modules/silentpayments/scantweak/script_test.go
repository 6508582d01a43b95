package scantweak

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/assert"
)

func TestIsTaprootOutput(t *testing.T) {
	key := bytes.Repeat([]byte{0xab}, 32)
	testCases := []struct {
		name     string
		script   []byte
		expected bool
	}{
		{name: "Taproot", script: p2trScript(key), expected: true},
		{name: "Short", script: p2trScript(key[:31]), expected: false},
		{name: "Long", script: append(p2trScript(key), 0x00), expected: false},
		{name: "WitnessV0ScriptHash", script: append([]byte{txscript.OP_0, txscript.OP_DATA_32}, key...), expected: false},
		{name: "WitnessV2", script: append([]byte{txscript.OP_2, txscript.OP_DATA_32}, key...), expected: false},
		{name: "Empty", script: nil, expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsTaprootOutput(tc.script))
		})
	}
}

func TestHasDisallowedSegwitVersion(t *testing.T) {
	testCases := []struct {
		name     string
		script   []byte
		expected bool
	}{
		{name: "Empty", script: nil, expected: false},
		{name: "WitnessV0", script: []byte{txscript.OP_0, txscript.OP_DATA_20}, expected: false},
		{name: "WitnessV1", script: []byte{txscript.OP_1, txscript.OP_DATA_32}, expected: false},
		{name: "WitnessV2", script: []byte{txscript.OP_2, txscript.OP_DATA_32}, expected: true},
		{name: "WitnessV16", script: []byte{txscript.OP_16, txscript.OP_DATA_2}, expected: true},
		{name: "OpNop", script: []byte{txscript.OP_NOP}, expected: false},
		{name: "OpDup", script: []byte{txscript.OP_DUP, txscript.OP_HASH160}, expected: false},
		// only the first opcode is inspected, the program length is not
		{name: "OpTwoBareScript", script: []byte{txscript.OP_2, txscript.OP_ADD}, expected: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HasDisallowedSegwitVersion(tc.script))
		})
	}
}

func TestTaprootOutputs(t *testing.T) {
	outputs := []Output{
		{PkScript: p2wpkhScript(bytes.Repeat([]byte{0x02}, 33)), Value: 1},
		{PkScript: p2trScript(bytes.Repeat([]byte{0x11}, 32)), Value: 2},
		{PkScript: []byte{txscript.OP_RETURN}, Value: 0},
		{PkScript: p2trScript(bytes.Repeat([]byte{0x22}, 32)), Value: 3},
	}

	candidates := TaprootOutputs(outputs)
	assert.Equal(t, []CandidateOutput{
		{PubKey: [32]byte(bytes.Repeat([]byte{0x11}, 32)), Value: 2, Index: 1},
		{PubKey: [32]byte(bytes.Repeat([]byte{0x22}, 32)), Value: 3, Index: 3},
	}, candidates)

	assert.Empty(t, TaprootOutputs(outputs[:1]))
}
