package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type utxo struct {
	TxId string `json:"txid"`
	output
}

type getUTXOsResponse = common.HttpResponse[[]utxo]

func (h *HttpHandler) GetUTXOs(ctx *fiber.Ctx) (err error) {
	var params heightRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errors.WithStack(err)
	}
	height, err := params.ParseHeight()
	if err != nil {
		return errors.WithStack(err)
	}

	outputs, err := h.usecase.GetUnspentOutputsByHeight(ctx.UserContext(), height)
	if err != nil {
		return errors.Wrap(err, "error during GetUnspentOutputsByHeight")
	}

	result := lo.Map(outputs, func(o *entity.TaprootOutput, _ int) utxo {
		return utxo{
			TxId:   o.TxHash.String(),
			output: h.mapOutput(o),
		}
	})
	return errors.WithStack(ctx.JSON(getUTXOsResponse{
		Result: &result,
	}))
}
