package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type errorResponse = common.HttpResponse[any]

// NewHTTPErrorHandler maps handler errors to JSON responses.
//
//   - errs.PublicError: 400 with the public message (404 if it wraps errs.NotFound)
//   - *fiber.Error: its own status code
//   - anything else: logged, 500
func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(errs.PublicError); errors.As(err, &e) {
			status := http.StatusBadRequest
			if errors.Is(err, errs.NotFound) {
				status = http.StatusNotFound
			}
			return errors.WithStack(ctx.Status(status).JSON(errorResponse{
				Error: lo.ToPtr(e.Message()),
			}))
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).JSON(errorResponse{
				Error: lo.ToPtr(e.Message),
			}))
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error",
			slogx.String("event", "api_unhandled_error"),
			slogx.Error(err),
		)

		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(errorResponse{
			Error: lo.ToPtr("Internal Server Error"),
		}))
	}
}
