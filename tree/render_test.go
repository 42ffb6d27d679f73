package tree

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/sol"
	"github.com/oy3o/sol/amf3"
)

func TestRenderAMF0(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "settings", samplePairs(), nil))
	assert.Equal(t, `settings {
  volume = 0.8
  player = {
    name = "ada"
    stats = {
      hp = 100
    }
  }
  muted = false
}
`, buf.String())
}

func TestRenderAMF3(t *testing.T) {
	pairs := []sol.Pair{
		{Key: "arr", Value: amf3.Array{
			Assoc: []sol.Pair{{Key: "k", Value: amf3.Integer(1)}},
			Dense: []sol.Value{amf3.String("a"), amf3.Null{}},
		}},
		{Key: "obj", Value: amf3.Object{ClassName: "Point", Entries: []sol.Pair{{Key: "x", Value: amf3.Double(1.25)}}}},
		{Key: "anon", Value: amf3.Object{}},
		{Key: "raw", Value: amf3.ByteArray{1, 2}},
		{Key: "when", Value: amf3.Date(0)},
		{Key: "u", Value: amf3.Undefined{}},
		{Key: "gone", Value: nil},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "root", pairs, nil))
	assert.Equal(t, `root {
  arr = [
    k = 1
    "a"
    null
  ]
  obj = Point {
    x = 1.25
  }
  anon = {
  }
  raw = <unsupported amf3.ByteArray>
  when = 1970-01-01T00:00:00Z
  u = undefined
  gone = <missing value>
}
`, buf.String())
}

func TestRenderOptions(t *testing.T) {
	pairs := []sol.Pair{
		{Key: "a", Value: sol.Number(1)},
		{Key: "b", Value: sol.Object{{Key: "c", Value: sol.String("x")}}},
		{Key: "raw", Value: amf3.XML("<x/>")},
	}
	opts := &Options{
		Filter:           func(k string) bool { return k != "a" },
		Indent:           "\t",
		KeyStyle:         func(s string) string { return "<" + s + ">" },
		PlaceholderStyle: func(s string) string { return "!" + s },
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "r", pairs, opts))
	assert.Equal(t, "r {\n\t<b> = {\n\t\t<c> = \"x\"\n\t}\n\t<raw> = !<unsupported amf3.XML>\n}\n", buf.String())
}

func TestRenderDocument(t *testing.T) {
	doc := sol.New("x")
	doc.Set("n", sol.Number(3.5))
	var buf bytes.Buffer
	require.NoError(t, RenderDocument(&buf, doc, nil))
	assert.Equal(t, "x {\n  n = 3.5\n}\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderWriteError(t *testing.T) {
	err := Render(brokenWriter{}, "x", samplePairs(), nil)
	assert.EqualError(t, err, "closed")
}

func TestFormatScalar(t *testing.T) {
	assert.Equal(t, "0.1", FormatScalar(sol.Number(0.1)))
	assert.Equal(t, "1e+21", FormatScalar(sol.Number(1e21)))
	assert.Equal(t, `"say \"hi\""`, FormatScalar(sol.String(`say "hi"`)))
	assert.Equal(t, "true", FormatScalar(amf3.Boolean(true)))
	assert.Equal(t, "-7", FormatScalar(amf3.Integer(-7)))
	assert.Equal(t, "<unsupported sol.Object>", FormatScalar(sol.Object{}))
}
