package httphandler

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/usecase"
	"github.com/gaze-network/silentpayments-indexer/pkg/btcutils"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger/slogx"
	"github.com/samber/lo"
)

type HttpHandler struct {
	usecase *usecase.Usecase
	network common.Network
}

func New(network common.Network, usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
		network: network,
	}
}

type output struct {
	PubKey      string  `json:"pubKey"`
	Address     string  `json:"address,omitempty"`
	Value       int64   `json:"value"`
	ValueBTC    float64 `json:"valueBtc"`
	Vout        uint32  `json:"vout"`
	IsSpent     bool    `json:"isSpent"`
	SpentHeight *int64  `json:"spentHeight,omitempty"`
}

type tweakTransaction struct {
	TxId        string   `json:"txid"`
	BlockHeight int64    `json:"blockHeight"`
	BlockHash   string   `json:"blockHash"`
	Index       uint32   `json:"index"`
	ScanTweak   string   `json:"scanTweak"`
	Outputs     []output `json:"outputs"`
	IsSpent     bool     `json:"isSpent"`
}

func (h *HttpHandler) mapOutput(src *entity.TaprootOutput) output {
	address, err := btcutils.TaprootAddress(src.PubKey[:], h.network)
	if err != nil {
		logger.Debug("unable to encode taproot address", slogx.Error(err))
	}
	return output{
		PubKey:      hex.EncodeToString(src.PubKey[:]),
		Address:     address,
		Value:       src.Value,
		ValueBTC:    btcutils.SatoshiToBitcoin(src.Value),
		Vout:        src.TxIdx,
		IsSpent:     src.IsSpent(),
		SpentHeight: lo.Ternary(src.IsSpent(), lo.ToPtr(src.SpentHeight), nil),
	}
}

func (h *HttpHandler) mapTweakTransaction(src *entity.TweakTransaction) tweakTransaction {
	return tweakTransaction{
		TxId:        src.TxHash.String(),
		BlockHeight: src.BlockHeight,
		BlockHash:   src.BlockHash.String(),
		Index:       src.TxIndex,
		ScanTweak:   src.ScanTweak.String(),
		Outputs:     lo.Map(src.Outputs, func(o *entity.TaprootOutput, _ int) output { return h.mapOutput(o) }),
		IsSpent:     src.IsSpent,
	}
}

type heightRequest struct {
	Height string `params:"height"`
}

func (r heightRequest) ParseHeight() (int64, error) {
	if r.Height == "" {
		return 0, errs.NewPublicError("height is required")
	}
	height, err := strconv.ParseInt(r.Height, 10, 64)
	if err != nil || height < 0 {
		return 0, errs.NewPublicError(fmt.Sprintf("invalid height %q", r.Height))
	}
	return height, nil
}
