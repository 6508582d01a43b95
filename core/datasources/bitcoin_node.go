package datasources

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/core/types"
	"github.com/gaze-network/silentpayments-indexer/internal/subscription"
	"github.com/gaze-network/silentpayments-indexer/pkg/btcclient"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger"
	"github.com/gaze-network/silentpayments-indexer/pkg/logger/slogx"
	cstream "github.com/planxnx/concurrent-stream"
	"github.com/samber/lo"
)

const (
	blockStreamChunkSize = 25
	blockStreamWorkers   = 8
)

// Make sure to implement the Datasource and btcclient.Contract interfaces
var (
	_ Datasource[*types.Block] = (*BitcoinNodeDatasource)(nil)
	_ btcclient.Contract       = (*BitcoinNodeDatasource)(nil)
)

// BitcoinNodeDatasource fetch data from Bitcoin node for Bitcoin Indexer
type BitcoinNodeDatasource struct {
	btcclient *rpcclient.Client
}

// NewBitcoinNode create new BitcoinNodeDatasource with Bitcoin Core RPC Client
func NewBitcoinNode(btcclient *rpcclient.Client) *BitcoinNodeDatasource {
	return &BitcoinNodeDatasource{
		btcclient: btcclient,
	}
}

func (d BitcoinNodeDatasource) Name() string {
	return "bitcoin_node"
}

// Fetch polling blocks from Bitcoin node
//
//   - from: block height to start fetching, if -1, it will start from genesis block
//   - to: block height to stop fetching, if -1, it will fetch until the latest block
func (d *BitcoinNodeDatasource) Fetch(ctx context.Context, from, to int64) ([]*types.Block, error) {
	ch := make(chan []*types.Block)
	subscription, err := d.FetchAsync(ctx, from, to, ch)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer subscription.Unsubscribe()

	blocks := make([]*types.Block, 0)
	for {
		select {
		case b := <-ch:
			blocks = append(blocks, b...)
		case <-subscription.Done():
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "context done")
			}
			return blocks, nil
		case err := <-subscription.Err():
			if err != nil {
				return nil, errors.Wrap(err, "got error while fetch async")
			}
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "context done")
		}
	}
}

// FetchAsync polling blocks from Bitcoin node asynchronously (non-blocking)
//
//   - from: block height to start fetching, if -1, it will start from genesis block
//   - to: block height to stop fetching, if -1, it will fetch until the latest block
func (d *BitcoinNodeDatasource) FetchAsync(ctx context.Context, from, to int64, ch chan<- []*types.Block) (*subscription.ClientSubscription[[]*types.Block], error) {
	from, to, skip, err := d.prepareRange(from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare fetch range")
	}

	subscription := subscription.NewSubscription(ch)
	if skip {
		subscription.Close()
		return subscription.Client(), nil
	}

	out := make(chan []*types.Block)
	stream := cstream.NewStream(ctx, blockStreamWorkers, out)

	blockHeights := make([]int64, 0, to-from+1)
	for i := from; i <= to; i++ {
		blockHeights = append(blockHeights, i)
	}

	go func() {
		defer close(out)
		_ = stream.Wait()
	}()

	// Fan-out blocks to subscription channel
	go func() {
		defer subscription.Close()
		for {
			select {
			case data, ok := <-out:
				if !ok {
					return
				}
				if len(data) == 0 {
					continue
				}
				if err := subscription.Send(ctx, data); err != nil {
					logger.ErrorContext(ctx, "Failed while dispatch block",
						slogx.Error(err),
						slogx.Int64("start", data[0].Header.Height),
						slogx.Int64("end", data[len(data)-1].Header.Height),
					)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// Parallel fetch blocks from Bitcoin node until all heights are fetched or the subscription is done.
	go func() {
		defer stream.Close()
		done := subscription.Done()
		for _, chunk := range lo.Chunk(blockHeights, blockStreamChunkSize) {
			chunk := chunk
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			default:
				stream.Go(func() []*types.Block {
					blocks, err := d.fetchBlocks(chunk)
					if err != nil {
						logger.ErrorContext(ctx, "Failed to get blocks",
							slogx.Error(err),
							slogx.Int64("from_height", chunk[0]),
							slogx.Int64("to_height", chunk[len(chunk)-1]),
						)
						if err := subscription.SendError(ctx, errors.Wrapf(err, "failed to get blocks: from_height: %d, to_height: %d", chunk[0], chunk[len(chunk)-1])); err != nil {
							logger.WarnContext(ctx, "Failed to send error", slogx.Error(err))
						}
						return nil
					}
					return blocks
				})
			}
		}
	}()

	return subscription.Client(), nil
}

func (d *BitcoinNodeDatasource) fetchBlocks(heights []int64) ([]*types.Block, error) {
	blocks := make([]*types.Block, 0, len(heights))
	for _, height := range heights {
		hash, err := d.btcclient.GetBlockHash(height)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get block hash, height: %d", height)
		}

		block, err := d.btcclient.GetBlock(hash)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get block, hash: %s", hash)
		}

		blocks = append(blocks, types.ParseMsgBlock(block, height))
	}
	return blocks, nil
}

func (d *BitcoinNodeDatasource) prepareRange(fromHeight, toHeight int64) (start, end int64, skip bool, err error) {
	start = fromHeight
	end = toHeight

	latestBlockHeight, err := d.btcclient.GetBlockCount()
	if err != nil {
		return -1, -1, false, errors.Wrap(err, "failed to get block count")
	}

	if start < 0 {
		start = 0
	}

	// clamp end to the node tip
	if end < 0 || end > latestBlockHeight {
		end = latestBlockHeight
	}

	if start > end {
		return -1, -1, true, nil
	}

	return start, end, false, nil
}

// GetBlockHeader fetch block header from Bitcoin node
func (d *BitcoinNodeDatasource) GetBlockHeader(ctx context.Context, height int64) (types.BlockHeader, error) {
	hash, err := d.btcclient.GetBlockHash(height)
	if err != nil {
		return types.BlockHeader{}, errors.Wrapf(err, "failed to get block hash, height: %d", height)
	}

	header, err := d.btcclient.GetBlockHeader(hash)
	if err != nil {
		return types.BlockHeader{}, errors.Wrapf(err, "failed to get block header, hash: %s", hash)
	}

	return types.ParseMsgBlockHeader(*header, height), nil
}

// GetRawTransactionByTxHash fetch a transaction from Bitcoin node. The node must run with txindex enabled.
func (d *BitcoinNodeDatasource) GetRawTransactionByTxHash(ctx context.Context, txHash chainhash.Hash) (*wire.MsgTx, error) {
	tx, err := d.btcclient.GetRawTransaction(&txHash)
	if err != nil {
		if isRPCNotFound(err) {
			return nil, errors.Wrapf(errs.NotFound, "transaction %s not found", txHash)
		}
		return nil, errors.Wrapf(err, "failed to get raw transaction, hash: %s", txHash)
	}
	return tx.MsgTx(), nil
}

// GetRawTransactionAndHeightByTxHash fetch a transaction and the height of its block from Bitcoin node.
// Unconfirmed transactions are reported with height -1.
func (d *BitcoinNodeDatasource) GetRawTransactionAndHeightByTxHash(ctx context.Context, txHash chainhash.Hash) (*wire.MsgTx, int64, error) {
	msgTx, err := d.GetRawTransactionByTxHash(ctx, txHash)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	verbose, err := d.btcclient.GetRawTransactionVerbose(&txHash)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to get verbose transaction, hash: %s", txHash)
	}
	if verbose.BlockHash == "" {
		return msgTx, -1, nil
	}

	blockHash, err := chainhash.NewHashFromStr(verbose.BlockHash)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "invalid block hash %q", verbose.BlockHash)
	}
	header, err := d.btcclient.GetBlockHeaderVerbose(blockHash)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to get block header, hash: %s", blockHash)
	}

	return msgTx, int64(header.Height), nil
}

func isRPCNotFound(err error) bool {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Code == btcjson.ErrRPCInvalidAddressOrKey
	}
	return false
}
