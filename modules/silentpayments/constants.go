package silentpayments

import (
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/core/types"
)

const (
	ClientVersion    = "v0.0.1"
	DBVersion        = 1
	EventHashVersion = 1
)

// startingBlockHeader is the last block before taproot activation. Silent payments need P2TR outputs,
// so nothing before it can be eligible. Hashes are resolved from the datasource on start.
var startingBlockHeader = map[common.Network]types.BlockHeader{
	common.NetworkMainnet: {Height: 709631},
	common.NetworkTestnet: {Height: -1},
	common.NetworkSignet:  {Height: -1},
	common.NetworkRegtest: {Height: -1},
}

func getStartingBlockHeader(network common.Network) types.BlockHeader {
	header, ok := startingBlockHeader[network]
	if !ok {
		return types.BlockHeader{Height: -1}
	}
	return header
}
