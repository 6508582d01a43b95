package btcclient

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/decred/dcrd/container/lru"
)

const DefaultCacheSize = 50_000

var _ Contract = (*CachedClient)(nil)

// CachedClient keeps recently fetched transactions in an LRU map.
// Prevouts are usually spent within a few blocks, so repeated lookups hit the cache.
type CachedClient struct {
	Contract

	cache *lru.Map[chainhash.Hash, *wire.MsgTx]
}

func NewCachedClient(client Contract, size uint32) *CachedClient {
	if size == 0 {
		size = DefaultCacheSize
	}
	return &CachedClient{
		Contract: client,
		cache:    lru.NewMap[chainhash.Hash, *wire.MsgTx](size),
	}
}

func (c *CachedClient) GetRawTransactionByTxHash(ctx context.Context, txHash chainhash.Hash) (*wire.MsgTx, error) {
	if tx, ok := c.cache.Get(txHash); ok {
		return tx, nil
	}

	tx, err := c.Contract.GetRawTransactionByTxHash(ctx, txHash)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c.Put(tx)
	return tx, nil
}

// Put adds a transaction to the cache. The processor warms the cache with the transactions of every indexed block.
func (c *CachedClient) Put(tx *wire.MsgTx) {
	c.cache.Put(tx.TxHash(), tx)
}
