package types

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/samber/lo"
)

type Transaction struct {
	BlockHeight int64
	BlockHash   chainhash.Hash
	Index       uint32
	TxHash      chainhash.Hash
	Version     int32
	LockTime    uint32
	TxIn        []*TxIn
	TxOut       []*TxOut
}

// IsCoinbase reports whether the transaction is the coinbase of its block.
func (t *Transaction) IsCoinbase() bool {
	if len(t.TxIn) != 1 {
		return false
	}
	in := t.TxIn[0]
	return in.PreviousOutIndex == wire.MaxPrevOutIndex && in.PreviousOutTxHash == (chainhash.Hash{})
}

// MsgTx converts the transaction back to btcd/wire.MsgTx.
func (t *Transaction) MsgTx() *wire.MsgTx {
	return &wire.MsgTx{
		Version: t.Version,
		TxIn: lo.Map(t.TxIn, func(item *TxIn, _ int) *wire.TxIn {
			return &wire.TxIn{
				PreviousOutPoint: item.PreviousOutPoint(),
				SignatureScript:  item.SignatureScript,
				Witness:          item.Witness,
				Sequence:         item.Sequence,
			}
		}),
		TxOut: lo.Map(t.TxOut, func(item *TxOut, _ int) *wire.TxOut {
			return wire.NewTxOut(item.Value, item.PkScript)
		}),
		LockTime: t.LockTime,
	}
}

type TxIn struct {
	SignatureScript   []byte
	Witness           wire.TxWitness
	Sequence          uint32
	PreviousOutIndex  uint32
	PreviousOutTxHash chainhash.Hash
}

// PreviousOutPoint returns the outpoint spent by the input.
func (t *TxIn) PreviousOutPoint() wire.OutPoint {
	return wire.OutPoint{Hash: t.PreviousOutTxHash, Index: t.PreviousOutIndex}
}

type TxOut struct {
	PkScript []byte
	Value    int64
}

// ParseMsgTx parses btcd/wire.MsgTx to Transaction.
func ParseMsgTx(src *wire.MsgTx, blockHeight int64, blockHash chainhash.Hash, index uint32) *Transaction {
	return &Transaction{
		BlockHeight: blockHeight,
		BlockHash:   blockHash,
		Index:       index,
		TxHash:      src.TxHash(),
		Version:     src.Version,
		LockTime:    src.LockTime,
		TxIn: lo.Map(src.TxIn, func(item *wire.TxIn, _ int) *TxIn {
			return ParseTxIn(item)
		}),
		TxOut: lo.Map(src.TxOut, func(item *wire.TxOut, _ int) *TxOut {
			return ParseTxOut(item)
		}),
	}
}

// ParseTxIn parses btcd/wire.TxIn to TxIn.
func ParseTxIn(src *wire.TxIn) *TxIn {
	return &TxIn{
		SignatureScript:   src.SignatureScript,
		Witness:           src.Witness,
		Sequence:          src.Sequence,
		PreviousOutIndex:  src.PreviousOutPoint.Index,
		PreviousOutTxHash: src.PreviousOutPoint.Hash,
	}
}

// ParseTxOut parses btcd/wire.TxOut to TxOut.
func ParseTxOut(src *wire.TxOut) *TxOut {
	return &TxOut{
		PkScript: src.PkScript,
		Value:    src.Value,
	}
}
