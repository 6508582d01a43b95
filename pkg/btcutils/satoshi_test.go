package btcutils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatoshiConversion(t *testing.T) {
	testcases := []struct {
		btc  float64
		sats int64
	}{
		{2.29980951, 229980951},
		{0.1251, 12510000},
		{0.00012345, 12345},
		{0.00000546, 546},
		{21, 2100000000},
	}
	for _, testcase := range testcases {
		t.Run(fmt.Sprintf("BtcToSats/%v", testcase.btc), func(t *testing.T) {
			assert.Equal(t, testcase.sats, BitcoinToSatoshi(testcase.btc))
		})
		t.Run(fmt.Sprintf("SatsToBtc/%v", testcase.sats), func(t *testing.T) {
			assert.Equal(t, testcase.btc, SatoshiToBitcoin(testcase.sats))
		})
	}
}

func TestSatoshiToBitcoinDecimal(t *testing.T) {
	assert.Equal(t, "0.00000546", SatoshiToBitcoinDecimal(546).StringFixed(BitcoinDecimals))
}
