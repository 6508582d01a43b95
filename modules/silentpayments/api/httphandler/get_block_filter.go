package httphandler

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gofiber/fiber/v2"
)

type getBlockFilterResult struct {
	BlockHeight int64  `json:"blockHeight"`
	BlockHash   string `json:"blockHash"`
	FilterType  string `json:"filterType"`
	Data        string `json:"data"`
}

type getBlockFilterResponse = common.HttpResponse[getBlockFilterResult]

func (h *HttpHandler) GetBlockFilter(ctx *fiber.Ctx) (err error) {
	var params heightRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errors.WithStack(err)
	}
	height, err := params.ParseHeight()
	if err != nil {
		return errors.WithStack(err)
	}

	filter, err := h.usecase.GetBlockFilter(ctx.UserContext(), height, entity.BlockFilterTypeTaproot)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "block filter not found")
		}
		return errors.Wrap(err, "error during GetBlockFilter")
	}

	return errors.WithStack(ctx.JSON(getBlockFilterResponse{
		Result: &getBlockFilterResult{
			BlockHeight: filter.BlockHeight,
			BlockHash:   filter.BlockHash.String(),
			FilterType:  string(filter.FilterType),
			Data:        hex.EncodeToString(filter.Data),
		},
	}))
}
