package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCodes__CSV(t *testing.T) {
	rows, err := codeTable([]byte("aabbcc"), false)
	require.NoError(t, err)

	output := bytes.Buffer{}
	require.NoError(t, writeCodes(&output, rows, true))

	expected := "value,symbol,frequency,length,code\n" +
		"97,'a',2,2,10\n" +
		"98,'b',2,2,11\n" +
		"99,'c',2,1,0\n"
	assert.Equal(t, expected, output.String())
}

func TestWriteCodes__Table(t *testing.T) {
	rows, err := codeTable([]byte("aabbcc"), false)
	require.NoError(t, err)

	output := bytes.Buffer{}
	require.NoError(t, writeCodes(&output, rows, false))

	lines := strings.Split(strings.TrimSuffix(output.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	expected := [][]string{
		{"VALUE", "SYMBOL", "FREQUENCY", "LENGTH", "CODE"},
		{"97", "'a'", "2", "2", "10"},
		{"98", "'b'", "2", "2", "11"},
		{"99", "'c'", "2", "1", "0"},
	}
	for i, line := range lines {
		assert.Equal(t, expected[i], strings.Fields(line), "line %d is wrong", i)
	}
	assert.Equal(t, strings.Index(lines[0], "CODE"), strings.Index(lines[1], "10"),
		"columns aren't aligned")
}
