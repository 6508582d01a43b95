package silentpayments

import (
	"context"
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/scantweak"
	"github.com/gaze-network/silentpayments-indexer/pkg/btcclient"
	"github.com/samber/lo"
)

// Inspection is the evaluation of a single transaction fetched from the node.
type Inspection struct {
	TxHash      string             `json:"txHash"`
	BlockHeight int64              `json:"blockHeight"`
	Eligible    bool               `json:"eligible"`
	Reason      string             `json:"reason,omitempty"`
	ScanTweak   string             `json:"scanTweak,omitempty"`
	Outputs     []InspectionOutput `json:"outputs,omitempty"`
	Fault       string             `json:"fault,omitempty"`
}

type InspectionOutput struct {
	Index  uint32 `json:"index"`
	PubKey string `json:"pubkey"`
	Value  int64  `json:"value"`
}

// InspectTransaction fetches txHash and the outputs it spends from client and evaluates it.
// Malformed-data faults are reported in the result, not as an error.
func InspectTransaction(ctx context.Context, client btcclient.Contract, txHash chainhash.Hash) (*Inspection, error) {
	msgTx, height, err := client.GetRawTransactionAndHeightByTxHash(ctx, txHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	tx := types.ParseMsgTx(msgTx, height, chainhash.Hash{}, 0)
	if tx.IsCoinbase() {
		return nil, errors.Wrapf(errs.InvalidArgument, "tx %s is a coinbase transaction", txHash)
	}

	inspection := &Inspection{
		TxHash:      txHash.String(),
		BlockHeight: height,
	}

	// without a taproot output the prevouts are irrelevant
	hasTaprootOutput := lo.ContainsBy(tx.TxOut, func(txOut *types.TxOut) bool {
		return scantweak.IsTaprootOutput(txOut.PkScript)
	})
	if !hasTaprootOutput {
		inspection.Reason = scantweak.ReasonNoTaprootOutputs.String()
		return inspection, nil
	}

	prevOutScripts := make(map[wire.OutPoint][]byte, len(tx.TxIn))
	for _, txIn := range tx.TxIn {
		outPoint := txIn.PreviousOutPoint()
		if _, ok := prevOutScripts[outPoint]; ok {
			continue
		}
		prevTx, err := client.GetRawTransactionByTxHash(ctx, outPoint.Hash)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get previous transaction %s", outPoint.Hash)
		}
		if int(outPoint.Index) >= len(prevTx.TxOut) {
			return nil, errors.Wrapf(errs.InternalError, "outpoint %s is out of range", outPoint)
		}
		prevOutScripts[outPoint] = prevTx.TxOut[outPoint.Index].PkScript
	}

	result, err := scantweak.Evaluate(toScanTweakTransaction(tx, prevOutScripts))
	if err != nil {
		if !scantweak.IsMalformedData(err) {
			return nil, errors.WithStack(err)
		}
		inspection.Fault = err.Error()
		return inspection, nil
	}

	inspection.Eligible = result.Eligible
	if !result.Eligible {
		inspection.Reason = result.Reason.String()
		return inspection, nil
	}
	inspection.ScanTweak = result.ScanTweak.String()
	inspection.Outputs = lo.Map(result.Candidates, func(candidate scantweak.CandidateOutput, _ int) InspectionOutput {
		return InspectionOutput{
			Index:  candidate.Index,
			PubKey: hex.EncodeToString(candidate.PubKey[:]),
			Value:  candidate.Value,
		}
	})
	return inspection, nil
}
