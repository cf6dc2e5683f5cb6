package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allocator/internal/common"
)

func TestParseMessage_Orders(t *testing.T) {
	m, err := ParseMessage("DF\tm1\tSELL\t10\t100.0\tX")
	require.NoError(t, err)
	require.Equal(t, Declare, m.GetType())

	df := m.(OrderMessage)
	assert.Equal(t, "m1", df.MessageID)
	assert.Equal(t, common.Sell, df.Side)
	assert.Equal(t, int64(10), df.Size)
	assert.Equal(t, "100", df.Price.String())
	assert.Equal(t, "X", df.Product)

	m, err = ParseMessage("VE\tm2\tBUY\t4\t99.125\tY\textra\tfields\r")
	require.NoError(t, err)
	require.Equal(t, Venue, m.GetType())

	order := m.(OrderMessage).Order()
	assert.Equal(t, common.Buy, order.Side)
	assert.Equal(t, int64(4), order.Size)
	assert.Equal(t, "99.125", order.Price.String())
	assert.Equal(t, "Y", order.Product)
}

func TestParseMessage_SideTagsNotValidated(t *testing.T) {
	m, err := ParseMessage("DF\tm1\tsell\t1\t1\tX")
	require.NoError(t, err)
	assert.Equal(t, common.UnknownSide, m.(OrderMessage).Side)

	m, err = ParseMessage("VE\tm1\t\t-3\t1\tX")
	require.NoError(t, err)
	assert.Equal(t, common.UnknownSide, m.(OrderMessage).Side)
	assert.Equal(t, int64(-3), m.(OrderMessage).Size)
}

func TestParseMessage_FinishAndIgnored(t *testing.T) {
	cases := map[string]MessageType{
		"FINISH":      Finish,
		"FINISH\r":    Finish,
		"FINISH\tnow": Ignored,
		" FINISH":     Ignored,
		"finish":      Ignored,
		"":            Ignored,
		"XX\tm1":      Ignored,
		"DFX\tm1":     Ignored,
		"# comment":   Ignored,
	}
	for line, want := range cases {
		m, err := ParseMessage(line)
		require.NoError(t, err, "line %q", line)
		assert.Equal(t, want, m.GetType(), "line %q", line)
	}
}

func TestParseMessage_Malformed(t *testing.T) {
	cases := []struct {
		line string
		want error
	}{
		{"DF", ErrMalformedMessage},
		{"VE\tm1\tBUY\t4\t100.0", ErrMalformedMessage},
		{"DF\tm1\tBUY\tfour\t100.0\tX", ErrInvalidSize},
		{"DF\tm1\tBUY\t4.5\t100.0\tX", ErrInvalidSize},
		{"VE\tm1\tBUY\t\t100.0\tX", ErrInvalidSize},
		{"VE\tm1\tBUY\t4\tcheap\tX", ErrInvalidPrice},
		{"DF\tm1\tSELL\t4\t\tX", ErrInvalidPrice},
	}
	for _, c := range cases {
		_, err := ParseMessage(c.line)
		assert.ErrorIs(t, err, c.want, "line %q", c.line)
	}
}
