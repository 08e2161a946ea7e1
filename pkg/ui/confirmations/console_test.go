package confirmations

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsYes(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{"YeS", true},
		{"  yes \n", true},
		{"", false},
		{"n", false},
		{"no", false},
		{"yess", false},
		{"sure", false},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, IsYes(tt.answer))
		})
	}
}

func TestConsoleDialog_Confirm(t *testing.T) {
	var out bytes.Buffer
	d := NewConsoleDialog(strings.NewReader("Yes\n"), &out)

	ok, err := d.Confirm("Are you sure?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Are you sure? [y/N] ", out.String())
}

func TestConsoleDialog_EOFDeclines(t *testing.T) {
	d := NewConsoleDialog(strings.NewReader(""), &bytes.Buffer{})

	ok, err := d.Confirm("Are you sure?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsoleDialog_AnswerWithoutNewline(t *testing.T) {
	d := NewConsoleDialog(strings.NewReader("y"), &bytes.Buffer{})

	ok, err := d.Confirm("Are you sure?")
	require.NoError(t, err)
	assert.True(t, ok)
}
