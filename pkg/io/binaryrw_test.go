package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteU64LE(t *testing.T) {
	var (
		val     uint64 = 0xbadc0de15a11dead
		readval uint64
		bin     = []byte{0xad, 0xde, 0x11, 0x5a, 0xe1, 0x0d, 0xdc, 0xba}
	)
	bw := NewBufBinWriter()
	bw.WriteU64LE(val)
	assert.Nil(t, bw.Err)
	wrotebin := bw.Bytes()
	assert.Equal(t, wrotebin, bin)
	br := NewBinReaderFromBuf(bin)
	readval = br.ReadU64LE()
	assert.Nil(t, br.Err)
	assert.Equal(t, val, readval)
}

func TestWriteU32LE(t *testing.T) {
	var (
		val     uint32 = 0xdeadbeef
		readval uint32
		bin     = []byte{0xef, 0xbe, 0xad, 0xde}
	)
	bw := NewBufBinWriter()
	bw.WriteU32LE(val)
	assert.Nil(t, bw.Err)
	wrotebin := bw.Bytes()
	assert.Equal(t, wrotebin, bin)
	br := NewBinReaderFromBuf(bin)
	readval = br.ReadU32LE()
	assert.Nil(t, br.Err)
	assert.Equal(t, val, readval)
}

func TestWriteVarUint1(t *testing.T) {
	var (
		val = uint64(1)
	)
	bw := NewBufBinWriter()
	bw.WriteVarUint(val)
	assert.Nil(t, bw.Err)
	buf := bw.Bytes()
	assert.Equal(t, 1, len(buf))
	assert.Equal(t, byte(1), buf[0])
}

func TestWriteVarUint1000(t *testing.T) {
	var (
		val = uint64(1000)
	)
	bw := NewBufBinWriter()
	bw.WriteVarUint(val)
	assert.Nil(t, bw.Err)
	buf := bw.Bytes()
	assert.Equal(t, 3, len(buf))
	assert.Equal(t, byte(0xfd), buf[0])
	br := NewBinReaderFromBuf(buf)
	res := br.ReadVarUint()
	assert.Nil(t, br.Err)
	assert.Equal(t, val, res)
}

func TestWriteVarUint100000(t *testing.T) {
	var (
		val = uint64(100000)
	)
	bw := NewBufBinWriter()
	bw.WriteVarUint(val)
	assert.Nil(t, bw.Err)
	buf := bw.Bytes()
	assert.Equal(t, 5, len(buf))
	assert.Equal(t, byte(0xfe), buf[0])
	br := NewBinReaderFromBuf(buf)
	res := br.ReadVarUint()
	assert.Nil(t, br.Err)
	assert.Equal(t, val, res)
}

func TestWriteVarUint100000000000(t *testing.T) {
	var (
		val = uint64(1000000000000)
	)
	bw := NewBufBinWriter()
	bw.WriteVarUint(val)
	assert.Nil(t, bw.Err)
	buf := bw.Bytes()
	assert.Equal(t, 9, len(buf))
	assert.Equal(t, byte(0xff), buf[0])
	br := NewBinReaderFromBuf(buf)
	res := br.ReadVarUint()
	assert.Nil(t, br.Err)
	assert.Equal(t, val, res)
}

func TestWriteVarBytes(t *testing.T) {
	var (
		bin = []byte{0xde, 0xad, 0xbe, 0xef}
	)
	bw := NewBufBinWriter()
	bw.WriteVarBytes(bin)
	assert.Nil(t, bw.Err)
	buf := bw.Bytes()
	br := NewBinReaderFromBuf(buf)
	res := br.ReadVarBytes()
	assert.Nil(t, br.Err)
	assert.Equal(t, bin, res)
}

func TestReadVarBytesMaxSize(t *testing.T) {
	bw := NewBufBinWriter()
	bw.WriteVarBytes(make([]byte, 16))
	require.NoError(t, bw.Err)
	buf := bw.Bytes()

	br := NewBinReaderFromBuf(buf)
	br.ReadVarBytes(8)
	require.Error(t, br.Err)
}

func TestWriteString(t *testing.T) {
	var (
		str = "teststring"
	)
	bw := NewBufBinWriter()
	bw.WriteString(str)
	assert.Nil(t, bw.Err)
	buf := bw.Bytes()
	br := NewBinReaderFromBuf(buf)
	res := br.ReadString()
	assert.Nil(t, br.Err)
	assert.Equal(t, str, res)
}

func TestWriteBool(t *testing.T) {
	bw := NewBufBinWriter()
	bw.WriteBool(true)
	bw.WriteBool(false)
	assert.Nil(t, bw.Err)
	buf := bw.Bytes()
	assert.Equal(t, []byte{1, 0}, buf)
	br := NewBinReaderFromBuf(buf)
	assert.True(t, br.ReadBool())
	assert.False(t, br.ReadBool())
	assert.Nil(t, br.Err)
}

func TestBufBinWriterReset(t *testing.T) {
	bw := NewBufBinWriter()
	bw.WriteU32LE(1)
	require.NoError(t, bw.Err)
	_ = bw.Bytes()
	require.Error(t, bw.Err)
	bw.Reset()
	require.NoError(t, bw.Err)
	bw.WriteU32LE(2)
	b := bw.Bytes()
	require.Equal(t, []byte{2, 0, 0, 0}, b)
}

func TestBufBinWriterErrorDrained(t *testing.T) {
	bw := NewBufBinWriter()
	bw.WriteU32LE(1)
	_ = bw.Bytes()
	bw.WriteU32LE(2)
	require.Equal(t, 4, bw.Len())
}

func TestReaderEOF(t *testing.T) {
	br := NewBinReaderFromBuf([]byte{0x01})
	_ = br.ReadB()
	require.NoError(t, br.Err)
	_ = br.ReadB()
	require.Error(t, br.Err)

	br = NewBinReaderFromIO(bytes.NewReader(nil))
	_ = br.ReadU32LE()
	require.Error(t, br.Err)
}
