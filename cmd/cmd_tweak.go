package cmd

import (
	"encoding/json"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/core/datasources"
	"github.com/gaze-network/silentpayments-indexer/internal/config"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments"
	"github.com/spf13/cobra"
)

func NewTweakCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tweak <txid>",
		Short:   "Evaluate a transaction from the Bitcoin node and print its scan tweak",
		Args:    cobra.ExactArgs(1),
		Example: `gaze-sp tweak 5d5f0ca1d1a6b0b2b6c0b8c6b1a8e2c3f0b3f0d6c1a2b3c4d5e6f708192a3b4c`,
		RunE:    tweakHandler,
	}
	return cmd
}

func tweakHandler(cmd *cobra.Command, args []string) error {
	conf := config.Load()

	txHash, err := chainhash.NewHashFromStr(args[0])
	if err != nil {
		return errors.Wrapf(errs.InvalidArgument, "invalid txid %q", args[0])
	}

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         conf.BitcoinNode.Host,
		User:         conf.BitcoinNode.User,
		Pass:         conf.BitcoinNode.Pass,
		DisableTLS:   conf.BitcoinNode.DisableTLS,
		HTTPPostMode: true,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "invalid Bitcoin node configuration")
	}
	defer client.Shutdown()

	inspection, err := silentpayments.InspectTransaction(cmd.Context(), datasources.NewBitcoinNode(client), *txHash)
	if err != nil {
		return errors.WithStack(err)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return errors.WithStack(encoder.Encode(inspection))
}
