package usecase

import (
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/datagateway"
)

type Usecase struct {
	spDg      datagateway.SilentPaymentsDataGateway
	dustLimit int64
}

func New(spDg datagateway.SilentPaymentsDataGateway, dustLimit int64) *Usecase {
	return &Usecase{
		spDg:      spDg,
		dustLimit: dustLimit,
	}
}
