package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	assert.NotNil(t, NewStdio())
}

func TestStream_Output(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(""), &out)

	s.Println("hello", "world")
	s.Printf("test %d %s\n", 1, "abc")
	_, err := s.Write([]byte("raw"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestStream_ReadInput(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader("  first  \nsecond\nlast"), &out)

	first, err := s.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "first", first)

	second, err := s.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", second)

	// строка без завершающего \n
	last, err := s.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "last", last)

	_, err = s.ReadInput("")
	assert.ErrorIs(t, err, io.EOF)

	assert.True(t, strings.HasPrefix(out.String(), "Prompt: "))
}

func TestStream_ReadPasswordWithoutTerminal(t *testing.T) {
	s := NewStream(strings.NewReader("s3cret-pass\n"), io.Discard)

	password, err := s.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret-pass", password)
}
