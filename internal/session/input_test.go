package session

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "plain", input: "12", want: 12},
		{name: "padded", input: "  3 \t", want: 3},
		{name: "zero", input: "0", want: 0},
		{name: "negative", input: "-4", want: -4},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "word", input: "two", wantErr: true},
		{name: "decimal", input: "1.5", wantErr: true},
		{name: "int32 max", input: "2147483647", want: 2147483647},
		{name: "int32 min", input: "-2147483648", want: -2147483648},
		{name: "above int32", input: "2147483648", wantErr: true},
		{name: "wraps to one as int32", input: "4294967297", wantErr: true},
		{name: "int64 max", input: "9223372036854775807", wantErr: true},
		{name: "overflow", input: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNumber(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestScannerReader(t *testing.T) {
	src := &closeTracker{Reader: strings.NewReader("Asha\r\n1\n\nlast")}
	r := NewScannerReader(src)

	for _, want := range []string{"Asha", "1", "", "last"} {
		line, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, r.Close())
	assert.True(t, src.closed)
}

func TestScannerReader_CloseWithoutCloser(t *testing.T) {
	r := NewScannerReader(strings.NewReader(""))
	assert.NoError(t, r.Close())
}

func TestScriptReader(t *testing.T) {
	r := NewScriptReader("a", "b")
	assert.Equal(t, 2, r.Remaining())

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a", line)
	assert.Equal(t, 1, r.Remaining())

	require.NoError(t, r.Close())
	assert.True(t, r.Closed())

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}
