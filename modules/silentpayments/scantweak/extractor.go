package scantweak

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/gaze-network/silentpayments-indexer/pkg/btcutils"
)

// KeyExtractor recovers the spender's compressed public key from an input.
// It returns false when no unique key can be recovered. It must never fail or panic.
type KeyExtractor func(in Input) ([]byte, bool)

type inputTemplate struct {
	name    string
	match   func(prevPkScript []byte) bool
	extract KeyExtractor
}

// inputTemplates is the closed set of spend types that contribute a key.
// The first template matching the spent script decides. Later templates are not tried.
var inputTemplates = []inputTemplate{
	{name: "p2pkh", match: txscript.IsPayToPubKeyHash, extract: extractP2PKH},
	{name: "p2sh-p2wpkh", match: txscript.IsPayToScriptHash, extract: extractP2SHP2WPKH},
	{name: "p2wpkh", match: txscript.IsPayToWitnessPubKeyHash, extract: extractP2WPKH},
	{name: "p2tr", match: txscript.IsPayToTaproot, extract: extractP2TRKeyPath},
}

// ExtractPublicKey is the default KeyExtractor.
func ExtractPublicKey(in Input) ([]byte, bool) {
	for _, tmpl := range inputTemplates {
		if tmpl.match(in.PrevPkScript) {
			return tmpl.extract(in)
		}
	}
	return nil, false
}

// extractP2PKH takes the last 33-byte window of the scriptSig that hashes to the
// spent key hash. A malleated scriptSig may carry extra data before the key.
func extractP2PKH(in Input) ([]byte, bool) {
	sigScript := in.SignatureScript
	if len(in.Witness) != 0 || len(sigScript) < btcec.PubKeyBytesLenCompressed {
		return nil, false
	}

	keyHash := in.PrevPkScript[3:23]
	for end := len(sigScript); end >= btcec.PubKeyBytesLenCompressed; end-- {
		candidate := sigScript[end-btcec.PubKeyBytesLenCompressed : end]
		if bytes.Equal(btcutil.Hash160(candidate), keyHash) {
			return compressedKey(candidate)
		}
	}
	return nil, false
}

// extractP2SHP2WPKH accepts a scriptSig that is exactly a push of the v0 key hash program.
func extractP2SHP2WPKH(in Input) ([]byte, bool) {
	sigScript := in.SignatureScript
	if len(sigScript) != 23 || sigScript[0] != txscript.OP_DATA_22 {
		return nil, false
	}
	redeemScript := sigScript[1:]
	if !txscript.IsPayToWitnessPubKeyHash(redeemScript) {
		return nil, false
	}
	if !bytes.Equal(btcutil.Hash160(redeemScript), in.PrevPkScript[2:22]) {
		return nil, false
	}
	return witnessKey(in, redeemScript[2:])
}

func extractP2WPKH(in Input) ([]byte, bool) {
	if len(in.SignatureScript) != 0 {
		return nil, false
	}
	return witnessKey(in, in.PrevPkScript[2:])
}

// witnessKey returns the key of a <signature> <pubkey> witness committing to keyHash.
func witnessKey(in Input, keyHash []byte) ([]byte, bool) {
	if len(in.Witness) != 2 {
		return nil, false
	}
	key := in.Witness[1]
	if !bytes.Equal(btcutil.Hash160(key), keyHash) {
		return nil, false
	}
	return compressedKey(key)
}

// extractP2TRKeyPath lifts the x-only output key to its even-Y compressed form.
// Script path spends contribute no key.
func extractP2TRKeyPath(in Input) ([]byte, bool) {
	if len(in.SignatureScript) != 0 {
		return nil, false
	}
	witness := btcutils.RemoveAnnex(in.Witness)
	if len(witness) != 1 {
		return nil, false
	}
	pubKey, err := schnorr.ParsePubKey(in.PrevPkScript[2:])
	if err != nil {
		return nil, false
	}
	return pubKey.SerializeCompressed(), true
}

func compressedKey(key []byte) ([]byte, bool) {
	if len(key) != btcec.PubKeyBytesLenCompressed {
		return nil, false
	}
	if key[0] != 0x02 && key[0] != 0x03 {
		return nil, false
	}
	if _, err := btcec.ParsePubKey(key); err != nil {
		return nil, false
	}
	return append([]byte(nil), key...), true
}
