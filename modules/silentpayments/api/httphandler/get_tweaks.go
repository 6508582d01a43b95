package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getTweaksQuery struct {
	DustLimit   *int64 `query:"dustLimit"`
	UnspentOnly bool   `query:"unspentOnly"`
}

func (r getTweaksQuery) Validate() error {
	if r.DustLimit != nil && *r.DustLimit < 0 {
		return errs.NewPublicError("dustLimit must be greater than or equal to 0")
	}
	return nil
}

// getTweaksResponse lists the scan tweaks (hex compressed points) of a block.
type getTweaksResponse = common.HttpResponse[[]string]

func (h *HttpHandler) GetTweaks(ctx *fiber.Ctx) (err error) {
	var params heightRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errors.WithStack(err)
	}
	height, err := params.ParseHeight()
	if err != nil {
		return errors.WithStack(err)
	}
	var query getTweaksQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errors.WithStack(err)
	}
	if err := query.Validate(); err != nil {
		return errors.WithStack(err)
	}

	txs, err := h.usecase.GetTweaksByHeight(ctx.UserContext(), height, usecase.GetTweaksOptions{
		DustLimit:   query.DustLimit,
		UnspentOnly: query.UnspentOnly,
	})
	if err != nil {
		return errors.Wrap(err, "error during GetTweaksByHeight")
	}

	tweaks := lo.Map(txs, func(tx *entity.TweakTransaction, _ int) string {
		return tx.ScanTweak.String()
	})
	return errors.WithStack(ctx.JSON(getTweaksResponse{
		Result: &tweaks,
	}))
}

type getTweakIndexResponse = common.HttpResponse[[]tweakTransaction]

func (h *HttpHandler) GetTweakIndex(ctx *fiber.Ctx) (err error) {
	var params heightRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errors.WithStack(err)
	}
	height, err := params.ParseHeight()
	if err != nil {
		return errors.WithStack(err)
	}

	txs, err := h.usecase.GetTweakIndexByHeight(ctx.UserContext(), height)
	if err != nil {
		return errors.Wrap(err, "error during GetTweakIndexByHeight")
	}

	result := lo.Map(txs, func(tx *entity.TweakTransaction, _ int) tweakTransaction {
		return h.mapTweakTransaction(tx)
	})
	return errors.WithStack(ctx.JSON(getTweakIndexResponse{
		Result: &result,
	}))
}
