package httphandler

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getTransactionByHashRequest struct {
	TxId string `params:"txid"`
}

func (r getTransactionByHashRequest) Validate() error {
	var errList []error
	if len(r.TxId) == 0 {
		errList = append(errList, errs.NewPublicError("txid is required"))
	}
	if len(r.TxId) > chainhash.MaxHashStringSize {
		errList = append(errList, errs.NewPublicError(fmt.Sprintf("txid length must be less than or equal to %d bytes", chainhash.MaxHashStringSize)))
	}
	if len(errList) == 0 {
		return nil
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getTransactionByHashResponse = common.HttpResponse[tweakTransaction]

func (h *HttpHandler) GetTransactionByHash(ctx *fiber.Ctx) (err error) {
	var req getTransactionByHashRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	hash, err := chainhash.NewHashFromStr(req.TxId)
	if err != nil {
		return errs.NewPublicError("invalid transaction hash")
	}

	tx, err := h.usecase.GetTweakTransaction(ctx.UserContext(), *hash)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "transaction not found")
		}
		return errors.Wrap(err, "error during GetTweakTransaction")
	}

	result := h.mapTweakTransaction(tx)
	return errors.WithStack(ctx.JSON(getTransactionByHashResponse{
		Result: &result,
	}))
}
