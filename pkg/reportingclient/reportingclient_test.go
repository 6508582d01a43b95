package reportingclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresName(t *testing.T) {
	_, err := New(Config{BaseURL: "http://localhost"})
	assert.Error(t, err)
}

func TestSubmitReports(t *testing.T) {
	received := make(map[string]map[string]any)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)
		received[r.URL.Path] = payload
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, Name: "test-node"})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, client.SubmitNodeReport(ctx, common.ModuleSilentPayments, common.NetworkMainnet))
	require.NoError(t, client.SubmitBlockReport(ctx, SubmitBlockReportPayload{
		Type:            common.ModuleSilentPayments.String(),
		Network:         common.NetworkMainnet,
		BlockHeight:     709632,
		BlockHash:       chainhash.Hash{0x01},
		EligibleTxCount: 3,
	}))

	require.Contains(t, received, "/v1/report/node")
	assert.Equal(t, "test-node", received["/v1/report/node"]["name"])
	assert.Equal(t, "silentpayments", received["/v1/report/node"]["type"])

	require.Contains(t, received, "/v1/report/block")
	assert.EqualValues(t, 709632, received["/v1/report/block"]["blockHeight"])
	assert.EqualValues(t, 3, received["/v1/report/block"]["eligibleTxCount"])
}
