package postgres

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/repository/postgres/gen"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/scantweak"
	"github.com/jackc/pgx/v5/pgtype"
)

func mapIndexerStateModelToType(src gen.SilentpaymentsIndexerState) entity.IndexerState {
	var createdAt time.Time
	if src.CreatedAt.Valid {
		createdAt = src.CreatedAt.Time
	}
	return entity.IndexerState{
		ClientVersion:    src.ClientVersion,
		Network:          common.Network(src.Network),
		DBVersion:        src.DbVersion,
		EventHashVersion: src.EventHashVersion,
		CreatedAt:        createdAt,
	}
}

func mapIndexerStateTypeToParams(src entity.IndexerState) gen.CreateIndexerStateParams {
	return gen.CreateIndexerStateParams{
		ClientVersion:    src.ClientVersion,
		Network:          string(src.Network),
		DbVersion:        src.DBVersion,
		EventHashVersion: src.EventHashVersion,
	}
}

func mapIndexedBlockModelToType(src gen.SilentpaymentsIndexedBlock) (entity.IndexedBlock, error) {
	hash, err := chainhash.NewHashFromStr(src.Hash)
	if err != nil {
		return entity.IndexedBlock{}, errors.Wrap(err, "invalid block hash")
	}
	prevHash, err := chainhash.NewHashFromStr(src.PrevHash)
	if err != nil {
		return entity.IndexedBlock{}, errors.Wrap(err, "invalid prev block hash")
	}
	eventHash, err := chainhash.NewHashFromStr(src.EventHash)
	if err != nil {
		return entity.IndexedBlock{}, errors.Wrap(err, "invalid event hash")
	}
	cumulativeEventHash, err := chainhash.NewHashFromStr(src.CumulativeEventHash)
	if err != nil {
		return entity.IndexedBlock{}, errors.Wrap(err, "invalid cumulative event hash")
	}
	return entity.IndexedBlock{
		Height:              int64(src.Height),
		Hash:                *hash,
		PrevHash:            *prevHash,
		EventHash:           *eventHash,
		CumulativeEventHash: *cumulativeEventHash,
		EligibleTxCount:     src.EligibleTxCount,
	}, nil
}

func mapIndexedBlockTypeToParams(src entity.IndexedBlock) gen.CreateIndexedBlockParams {
	return gen.CreateIndexedBlockParams{
		Height:              int32(src.Height),
		Hash:                src.Hash.String(),
		PrevHash:            src.PrevHash.String(),
		EventHash:           src.EventHash.String(),
		CumulativeEventHash: src.CumulativeEventHash.String(),
		EligibleTxCount:     src.EligibleTxCount,
	}
}

func mapTweakModelToType(src gen.SilentpaymentsTweak) (entity.TweakTransaction, error) {
	txHash, err := chainhash.NewHashFromStr(src.TxHash)
	if err != nil {
		return entity.TweakTransaction{}, errors.Wrap(err, "invalid tx hash")
	}
	blockHash, err := chainhash.NewHashFromStr(src.BlockHash)
	if err != nil {
		return entity.TweakTransaction{}, errors.Wrap(err, "invalid block hash")
	}
	tweak, err := hex.DecodeString(src.ScanTweak)
	if err != nil {
		return entity.TweakTransaction{}, errors.Wrap(err, "failed to decode scan tweak")
	}
	if len(tweak) != len(scantweak.ScanTweak{}) {
		return entity.TweakTransaction{}, errors.Errorf("invalid scan tweak length: %d", len(tweak))
	}
	return entity.TweakTransaction{
		TxHash:      *txHash,
		BlockHeight: int64(src.BlockHeight),
		BlockHash:   *blockHash,
		TxIndex:     uint32(src.TxIndex),
		ScanTweak:   scantweak.ScanTweak(tweak),
		IsSpent:     src.IsSpent,
	}, nil
}

func mapTweakTypeToParams(src []*entity.TweakTransaction) (gen.BatchCreateTweaksParams, gen.BatchCreateOutputsParams) {
	var tweaks gen.BatchCreateTweaksParams
	var outputs gen.BatchCreateOutputsParams
	for _, tx := range src {
		tweaks.TxHashArr = append(tweaks.TxHashArr, tx.TxHash.String())
		tweaks.BlockHeightArr = append(tweaks.BlockHeightArr, int32(tx.BlockHeight))
		tweaks.BlockHashArr = append(tweaks.BlockHashArr, tx.BlockHash.String())
		tweaks.TxIndexArr = append(tweaks.TxIndexArr, int32(tx.TxIndex))
		tweaks.ScanTweakArr = append(tweaks.ScanTweakArr, tx.ScanTweak.String())
		tweaks.IsSpentArr = append(tweaks.IsSpentArr, tx.IsSpent)

		for _, output := range tx.Outputs {
			outputs.TxHashArr = append(outputs.TxHashArr, output.TxHash.String())
			outputs.TxIdxArr = append(outputs.TxIdxArr, int32(output.TxIdx))
			outputs.PubkeyArr = append(outputs.PubkeyArr, hex.EncodeToString(output.PubKey[:]))
			outputs.ValueArr = append(outputs.ValueArr, output.Value)
			outputs.BlockHeightArr = append(outputs.BlockHeightArr, int32(output.BlockHeight))
		}
	}
	return tweaks, outputs
}

func mapOutputModelToType(src gen.SilentpaymentsOutput) (entity.TaprootOutput, error) {
	txHash, err := chainhash.NewHashFromStr(src.TxHash)
	if err != nil {
		return entity.TaprootOutput{}, errors.Wrap(err, "invalid tx hash")
	}
	pubKey, err := hex.DecodeString(src.Pubkey)
	if err != nil {
		return entity.TaprootOutput{}, errors.Wrap(err, "failed to decode pubkey")
	}
	if len(pubKey) != 32 {
		return entity.TaprootOutput{}, errors.Errorf("invalid pubkey length: %d", len(pubKey))
	}
	spentHeight := int64(-1)
	if src.SpentHeight.Valid {
		spentHeight = int64(src.SpentHeight.Int32)
	}
	return entity.TaprootOutput{
		TxHash:      *txHash,
		TxIdx:       uint32(src.TxIdx),
		PubKey:      [32]byte(pubKey),
		Value:       src.Value,
		BlockHeight: int64(src.BlockHeight),
		SpentHeight: spentHeight,
	}, nil
}

func mapBlockFilterModelToType(src gen.SilentpaymentsBlockFilter) (entity.BlockFilter, error) {
	blockHash, err := chainhash.NewHashFromStr(src.BlockHash)
	if err != nil {
		return entity.BlockFilter{}, errors.Wrap(err, "invalid block hash")
	}
	data, err := hex.DecodeString(src.Data)
	if err != nil {
		return entity.BlockFilter{}, errors.Wrap(err, "failed to decode filter data")
	}
	return entity.BlockFilter{
		BlockHeight: int64(src.BlockHeight),
		BlockHash:   *blockHash,
		FilterType:  entity.BlockFilterType(src.FilterType),
		Data:        data,
	}, nil
}

func mapBlockFilterTypeToParams(src entity.BlockFilter) gen.CreateBlockFilterParams {
	return gen.CreateBlockFilterParams{
		BlockHeight: int32(src.BlockHeight),
		BlockHash:   src.BlockHash.String(),
		FilterType:  string(src.FilterType),
		Data:        hex.EncodeToString(src.Data),
	}
}

func heightParam(height int64) pgtype.Int4 {
	return pgtype.Int4{Int32: int32(height), Valid: true}
}
