package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  cat dog \r\n"), "Enter keywords to search: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "cat dog", got)
	assert.Equal(t, "Enter keywords to search:\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.True(t, errors.Is(err, io.EOF))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestGetSimpleText_WriteError(t *testing.T) {
	_, err := GetSimpleText(rdr("x\n"), "Name?", failingWriter{})
	require.Error(t, err)
}
