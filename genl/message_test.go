package genl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	netcore "github.com/packetkit/netcore"
	"github.com/packetkit/netcore/genl"
)

func TestEncodeGetAttribute_RoundTrip(t *testing.T) {
	var buf []byte
	buf = genl.EncodeAttribute(buf, 7, []byte("value"))
	buf = genl.EncodeAttribute(buf, 9, []byte{1, 2, 3})

	got, err := genl.GetAttribute(buf, 7)
	require.NoError(t, err)
	assert.Equal(t, "value", string(got))

	got, err = genl.GetAttribute(buf, 9)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	assert.Equal(t, 0, len(buf)%4, "stream must stay 4-byte aligned")
}

func TestGetAttribute_MissingReturnsNotFound(t *testing.T) {
	var buf []byte
	buf = genl.EncodeAttribute(buf, 1, []byte("x"))

	_, err := genl.GetAttribute(buf, 2)
	assert.ErrorIs(t, err, netcore.ErrNotFound)
}

func TestGetAttribute_TruncatedStreamEndsWalk(t *testing.T) {
	buf := []byte{0xff, 0xff, 0, 0} // declares a length far beyond the buffer
	_, err := genl.GetAttribute(buf, 0)
	assert.ErrorIs(t, err, netcore.ErrNotFound)
}
