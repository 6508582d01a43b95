package btcutils

import (
	"encoding/hex"
	"testing"

	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaprootAddress(t *testing.T) {
	// BIP341 wallet test vector, scriptPubKey index 0
	xOnly, err := hex.DecodeString("53a1f6e454df1aa2776a2814a721372d6258050de330b3c6d10ee8f4e0dda343")
	require.NoError(t, err)

	address, err := TaprootAddress(xOnly, common.NetworkMainnet)
	require.NoError(t, err)
	assert.Equal(t, "bc1p2wsldez5mud2yam29q22wgfh9439spgduvct83k3pm50fcxa5dps59h4z5", address)

	pkScript := append([]byte{0x51, 0x20}, xOnly...)
	fromScript, err := PkScriptToAddress(pkScript, common.NetworkMainnet)
	require.NoError(t, err)
	assert.Equal(t, address, fromScript)

	_, err = TaprootAddress(xOnly[:31], common.NetworkMainnet)
	assert.Error(t, err)
}

func TestRemoveAnnex(t *testing.T) {
	sig := make([]byte, 64)
	annex := []byte{0x50, 0x01}

	assert.Len(t, RemoveAnnex([][]byte{sig, annex}), 1)
	assert.Len(t, RemoveAnnex([][]byte{sig}), 1)
	// a single element starting with 0x50 is a signature, not an annex
	assert.Len(t, RemoveAnnex([][]byte{annex}), 1)
	assert.Len(t, RemoveAnnex(nil), 0)
}
