// Package archive exports indexed scan tweaks as parquet files, locally or to S3.
package archive

import (
	"bytes"
	"context"
	"encoding/hex"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
	"github.com/gaze-network/silentpayments-indexer/modules/silentpayments/internal/entity"
	"github.com/gaze-network/silentpayments-indexer/pkg/parquetutils"
)

// Row is one candidate output of an eligible transaction.
type Row struct {
	TxHash      string `parquet:"name=tx_hash, type=BYTE_ARRAY, convertedtype=UTF8"`
	BlockHeight int64  `parquet:"name=block_height, type=INT64"`
	BlockHash   string `parquet:"name=block_hash, type=BYTE_ARRAY, convertedtype=UTF8"`
	TxIndex     int64  `parquet:"name=tx_index, type=INT64"`
	ScanTweak   string `parquet:"name=scan_tweak, type=BYTE_ARRAY, convertedtype=UTF8"`
	OutputIndex int64  `parquet:"name=output_index, type=INT64"`
	PubKey      string `parquet:"name=pubkey, type=BYTE_ARRAY, convertedtype=UTF8"`
	Value       int64  `parquet:"name=value, type=INT64"`
	SpentHeight int64  `parquet:"name=spent_height, type=INT64"`
}

func ToRows(txs []*entity.TweakTransaction) []Row {
	rows := make([]Row, 0, len(txs))
	for _, tx := range txs {
		for _, output := range tx.Outputs {
			rows = append(rows, Row{
				TxHash:      tx.TxHash.String(),
				BlockHeight: tx.BlockHeight,
				BlockHash:   tx.BlockHash.String(),
				TxIndex:     int64(tx.TxIndex),
				ScanTweak:   tx.ScanTweak.String(),
				OutputIndex: int64(output.TxIdx),
				PubKey:      hex.EncodeToString(output.PubKey[:]),
				Value:       output.Value,
				SpentHeight: output.SpentHeight,
			})
		}
	}
	return rows
}

// Encode writes rows into an in-memory parquet file.
func Encode(rows []Row) ([]byte, error) {
	file := parquetutils.NewBufferFile(nil)
	if err := parquetutils.WriteAll(file, rows); err != nil {
		return nil, errors.WithStack(err)
	}
	return file.Bytes(), nil
}

func Decode(data []byte) ([]Row, error) {
	rows, err := parquetutils.ReadAll[Row](parquetutils.NewBufferFile(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return rows, nil
}

// Sink stores an encoded archive under a name.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) (location string, err error)
}

type FileSink struct {
	Dir string
}

func (s FileSink) Put(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", errors.Wrap(err, "can't create output directory")
	}
	location := path.Join(s.Dir, name)
	if err := os.WriteFile(location, data, 0o644); err != nil {
		return "", errors.Wrap(err, "can't write archive file")
	}
	return location, nil
}

type S3Sink struct {
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

func NewS3Sink(ctx context.Context, bucket, region, prefix string) (*S3Sink, error) {
	if bucket == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "archive bucket is required")
	}
	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't load aws user config")
	}
	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return &S3Sink{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   prefix,
	}, nil
}

func (s *S3Sink) Put(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(s.prefix, name)
	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/vnd.apache.parquet"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "can't upload archive to s3://%s/%s", s.bucket, key)
	}
	return out.Location, nil
}
