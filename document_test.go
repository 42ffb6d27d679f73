package sol

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc := New("settings")
	assert.Equal(t, "settings", doc.RootName)
	assert.Equal(t, AMF0, doc.Version)
	assert.Equal(t, BodyLength, doc.Framing)
	assert.Empty(t, doc.Pairs)
}

func TestDocumentGetSet(t *testing.T) {
	doc := New("x")
	doc.Set("a", Number(1))
	doc.Set("b", String("two"))
	doc.Pairs = append(doc.Pairs, Pair{Key: "a", Value: Number(3)})

	v, ok := doc.Get("a")
	require.True(t, ok)
	assert.Equal(t, Number(1), v, "Get returns the first match")

	_, ok = doc.Get("missing")
	assert.False(t, ok)

	doc.Set("a", Boolean(true))
	assert.Equal(t, []Pair{
		{Key: "a", Value: Boolean(true)},
		{Key: "b", Value: String("two")},
		{Key: "a", Value: Number(3)},
	}, doc.Pairs, "Set replaces in place and leaves later duplicates alone")
}

func TestDocumentMarshalTo(t *testing.T) {
	doc := &Document{RootName: "x", Pairs: []Pair{{Key: "n", Value: Number(3.5)}}}

	buf := make([]byte, 64)
	n, err := doc.MarshalTo(buf)
	require.NoError(t, err)
	assert.Equal(t, minimal, buf[:n])

	_, err = doc.MarshalTo(make([]byte, len(minimal)-1))
	assert.ErrorIs(t, err, io.ErrShortBuffer)
}

func TestDocumentMarshalToShortBufferKeepsLength(t *testing.T) {
	doc := &Document{Length: 77, RootName: "x", Pairs: []Pair{{Key: "n", Value: Number(3.5)}}}
	_, err := doc.MarshalTo(make([]byte, 4))
	require.ErrorIs(t, err, io.ErrShortBuffer)
	assert.EqualValues(t, 77, doc.Length)
}

func TestDocumentWriteToReadFrom(t *testing.T) {
	doc := &Document{RootName: "x", Pairs: []Pair{{Key: "n", Value: Number(3.5)}}}

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, len(minimal), n)
	assert.Equal(t, minimal, buf.Bytes())

	var got Document
	m, err := got.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, *doc, got)

	_, err = doc.WriteTo(nil)
	assert.ErrorIs(t, err, ErrNilIO)
	_, err = got.ReadFrom(nil)
	assert.ErrorIs(t, err, ErrNilIO)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestDocumentReadFromError(t *testing.T) {
	var doc Document
	_, err := doc.ReadFrom(failingReader{})
	assert.EqualError(t, err, "disk on fire")
}

func TestUnmarshalBinaryLeavesDocumentOnError(t *testing.T) {
	doc := New("keep")
	doc.Set("a", Number(1))
	before := *doc

	bad := clone(minimal)
	bad[0] = 0xFF
	assert.ErrorIs(t, doc.UnmarshalBinary(bad), ErrUnsupportedFormat)
	assert.Equal(t, before, *doc)

	require.NoError(t, doc.UnmarshalBinary(minimal))
	assert.Equal(t, "x", doc.RootName)
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "AMF0", AMF0.String())
	assert.Equal(t, "AMF3", AMF3.String())
	assert.Equal(t, "Version(5)", Version(5).String())
	assert.True(t, AMF3.Known())
	assert.False(t, Version(1).Known())
}

func TestFramingString(t *testing.T) {
	assert.Equal(t, "body-length", BodyLength.String())
	assert.Equal(t, "file-length", FileLength.String())
}
