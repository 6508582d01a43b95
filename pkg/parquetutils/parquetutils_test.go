package parquetutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	Name  string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Value int64  `parquet:"name=value, type=INT64"`
}

func TestWriteReadAll(t *testing.T) {
	rows := []testRow{
		{Name: "a", Value: 1},
		{Name: "b", Value: 2},
		{Name: "c", Value: 3},
	}

	file := NewBufferFile(nil)
	require.NoError(t, WriteAll(file, rows))

	got, err := ReadAll[testRow](NewBufferFile(file.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
