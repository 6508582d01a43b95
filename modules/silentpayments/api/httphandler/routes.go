package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/silentpayments")

	r.Get("/block", h.GetCurrentBlock)
	r.Get("/tweaks/:height", h.GetTweaks)
	r.Get("/tweak-index/:height", h.GetTweakIndex)
	r.Get("/transactions/:txid", h.GetTransactionByHash)
	r.Get("/filter/:height", h.GetBlockFilter)
	r.Get("/utxos/:height", h.GetUTXOs)
	return nil
}
