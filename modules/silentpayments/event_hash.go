package silentpayments

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/wire"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
)

const eventHashSeparator = "|"

func getTweakEventString(tx *entity.TweakTransaction) string {
	var sb strings.Builder
	sb.WriteString("tweak;")
	sb.WriteString(tx.TxHash.String() + ";")
	sb.WriteString(tx.ScanTweak.String() + ";")
	for i, output := range tx.Outputs {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(strconv.FormatUint(uint64(output.TxIdx), 10) + ":")
		sb.WriteString(hex.EncodeToString(output.PubKey[:]) + ":")
		sb.WriteString(strconv.FormatInt(output.Value, 10))
	}
	return sb.String()
}

func getSpendEventString(outPoint wire.OutPoint) string {
	return "spend;" + outPoint.String()
}

func (p *Processor) appendEventString(event string) {
	p.eventHashString += event + eventHashSeparator
}
