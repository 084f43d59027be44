// Package compat exercises the gosmile package facade end to end against
// the golden byte sequences also used, at the token level, by writer's and
// reader's own unit tests. It lives in its own module so its test-only
// dependency graph never leaks into the main module's go.mod.
package compat

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhosmer/gosmile"
)

func TestScenario1SingleElementArray(t *testing.T) {
	golden := []byte{0x3A, 0x29, 0x0A, 0x03, 0xF8, 0xC2, 0xF9}

	got, err := smile.Decode(golden)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1)}, got)

	encoded, err := smile.Encode(got)
	require.NoError(t, err)
	assert.Equal(t, golden, encoded)
}

func TestScenario4SimpleObject(t *testing.T) {
	golden := []byte{0x3A, 0x29, 0x0A, 0x03, 0xFA, 0x80, 0x61, 0xC2, 0xFB}

	got, err := smile.Decode(golden)
	require.NoError(t, err)
	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(1), m["a"])

	ordered, err := smile.DecodeObject(golden)
	require.NoError(t, err)
	_ = ordered
}

func TestScenario5MixedObjectOrderedRoundTrip(t *testing.T) {
	golden := []byte{
		0x3A, 0x29, 0x0A, 0x03,
		0xFA,
		0x80, 0x61, 0x40, 0x31,
		0x80, 0x63, 0xF8, 0xC6, 0xF9,
		0x80, 0x62, 0xC4,
		0x80, 0x65, 0x28, 0x66, 0x4C, 0x19, 0x04, 0x04,
		0x80, 0x64, 0xC1,
		0xFB,
	}

	got, err := smile.DecodeObject(golden)
	require.NoError(t, err)

	encoded, err := smile.Encode(got)
	require.NoError(t, err)
	assert.Equal(t, golden, encoded)
}

func TestScenario6DeeplyNestedObjectsRoundTrip(t *testing.T) {
	golden := []byte{
		0x3A, 0x29, 0x0A, 0x03,
		0xFA, 0x80, 0x61,
		0xFA, 0x80, 0x62,
		0xFA, 0x80, 0x63,
		0xFA, 0x80, 0x64,
		0xF8, 0x40, 0x65, 0xF9,
		0xFB, 0xFB, 0xFB, 0xFB,
	}

	got, err := smile.DecodeObject(golden)
	require.NoError(t, err)

	encoded, err := smile.Encode(got)
	require.NoError(t, err)
	assert.Equal(t, golden, encoded)
}

func TestRoundTripThroughFacade(t *testing.T) {
	in := map[string]any{
		"name":  "gosmile",
		"count": int64(7),
		"big":   new(big.Int).Lsh(big.NewInt(1), 100),
		"ratio": 3.5,
		"tags":  []any{"a", "b", nil, true, false},
	}

	encoded, err := smile.Marshal(in)
	require.NoError(t, err)

	var out any
	require.NoError(t, smile.Unmarshal(encoded, &out))

	m, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "gosmile", m["name"])
	assert.Equal(t, int64(7), m["count"])
	assert.Equal(t, 3.5, m["ratio"])
	assert.Equal(t, []any{"a", "b", nil, true, false}, m["tags"])

	bi, ok := m["big"].(*big.Int)
	require.True(t, ok)
	assert.Equal(t, 0, in["big"].(*big.Int).Cmp(bi))
}

func TestScenario5SingleByteCorruptionNeverPanics(t *testing.T) {
	golden := []byte{
		0x3A, 0x29, 0x0A, 0x03,
		0xFA,
		0x80, 0x61, 0x40, 0x31,
		0x80, 0x63, 0xF8, 0xC6, 0xF9,
		0x80, 0x62, 0xC4,
		0x80, 0x65, 0x28, 0x66, 0x4C, 0x19, 0x04, 0x04,
		0x80, 0x64, 0xC1,
		0xFB,
	}

	for i := range golden {
		corrupt := append([]byte(nil), golden...)
		corrupt[i] ^= 0xFF

		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("byte %d: decode panicked: %v", i, r)
				}
			}()
			_, _ = smile.Decode(corrupt)
		}()
	}
}
