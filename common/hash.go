package common

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ZeroHash is the zero value of chainhash.Hash.
var ZeroHash chainhash.Hash
