package btcutils

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
)

// TaprootAddress encodes a 32-byte x-only output key as a bech32m P2TR address.
func TaprootAddress(xOnlyPubKey []byte, network common.Network) (string, error) {
	params := network.ChainParams()
	if params == nil {
		return "", errors.Wrapf(errs.Unsupported, "network %q", network)
	}
	address, err := btcutil.NewAddressTaproot(xOnlyPubKey, params)
	if err != nil {
		return "", errors.Wrap(err, "can't create taproot address")
	}
	return address.EncodeAddress(), nil
}

// PkScriptToAddress returns the address from the given pkScript. If the pkScript is invalid or not standard, it returns error.
func PkScriptToAddress(pkScript []byte, network common.Network) (string, error) {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, network.ChainParams())
	if err != nil {
		return "", errors.Wrap(err, "error extracting addresses from pkscript")
	}
	if len(addrs) != 1 {
		return "", errors.Wrap(errs.InvalidArgument, "invalid number of addresses extracted from pkscript")
	}
	return addrs[0].EncodeAddress(), nil
}
