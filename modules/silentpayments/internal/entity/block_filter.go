package entity

import "github.com/btcsuite/btcd/chaincfg/chainhash"

type BlockFilterType string

const (
	// BlockFilterTypeTaproot commits to the x-only keys of every P2TR output created in a block.
	BlockFilterTypeTaproot BlockFilterType = "taproot"
)

type BlockFilter struct {
	BlockHeight int64
	BlockHash   chainhash.Hash
	FilterType  BlockFilterType
	Data        []byte
}
