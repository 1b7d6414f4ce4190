package store

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/mantlenetworkio/mantle-relayer/op-service/testlog"
)

func openMem(t *testing.T) *Store {
	s, err := Open("", testlog.Logger(t, log.LevelInfo))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMarkRelayedAndGet(t *testing.T) {
	s := openMem(t)
	rec := Record{
		MessageHash: common.Hash{0x01},
		TxHash:      common.Hash{0xaa},
		BlockNumber: 42,
		BatchID:     "batch-1",
		RelayedAt:   1700000000,
	}
	require.NoError(t, s.MarkRelayed(rec))

	got, err := s.Get(rec.MessageHash)
	require.NoError(t, err)
	require.Equal(t, rec, got)

	ok, err := s.IsRelayed(rec.MessageHash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.IsRelayed(common.Hash{0x02})
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.Get(common.Hash{0x02})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListOrderedAndLimited(t *testing.T) {
	s := openMem(t)
	require.NoError(t, s.MarkRelayed(
		Record{MessageHash: common.Hash{0x03}, BatchID: "b"},
		Record{MessageHash: common.Hash{0x01}, BatchID: "a"},
		Record{MessageHash: common.Hash{0x02}, BatchID: "a"},
	))

	all, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, common.Hash{0x01}, all[0].MessageHash)
	require.Equal(t, common.Hash{0x02}, all[1].MessageHash)
	require.Equal(t, common.Hash{0x03}, all[2].MessageHash)

	two, err := s.List(2)
	require.NoError(t, err)
	require.Len(t, two, 2)
}

func TestOverwrite(t *testing.T) {
	s := openMem(t)
	h := common.Hash{0x05}
	require.NoError(t, s.MarkRelayed(Record{MessageHash: h, BlockNumber: 1}))
	require.NoError(t, s.MarkRelayed(Record{MessageHash: h, BlockNumber: 2}))
	got, err := s.Get(h)
	require.NoError(t, err)
	require.Equal(t, uint64(2), got.BlockNumber)
}

func TestPersistsOnDisk(t *testing.T) {
	dir := t.TempDir()
	logger := testlog.Logger(t, log.LevelInfo)
	s, err := Open(dir, logger)
	require.NoError(t, err)
	require.NoError(t, s.MarkRelayed(Record{MessageHash: common.Hash{0x07}, BatchID: "x"}))
	require.NoError(t, s.Close())

	s, err = Open(dir, logger)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(common.Hash{0x07})
	require.NoError(t, err)
	require.Equal(t, "x", got.BatchID)
}

func TestClosed(t *testing.T) {
	s, err := Open("", testlog.Logger(t, log.LevelInfo))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.ErrorIs(t, s.Close(), ErrClosed)
	require.ErrorIs(t, s.MarkRelayed(Record{}), ErrClosed)
	_, err = s.Get(common.Hash{})
	require.ErrorIs(t, err, ErrClosed)
	_, err = s.List(0)
	require.ErrorIs(t, err, ErrClosed)
}

func TestPrefixEnd(t *testing.T) {
	require.Equal(t, []byte("relayed0"), prefixEnd([]byte("relayed/")))
	require.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xff}))
	require.Nil(t, prefixEnd([]byte{0xff}))
}
