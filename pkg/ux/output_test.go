// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"bytes"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

func TestPrintToUserAndError(t *testing.T) {
	var out, errOut bytes.Buffer
	ul := &UserLog{
		log:       logging.NoLog{},
		Writer:    &out,
		ErrWriter: &errOut,
	}
	ul.PrintToUser("deployed %s", "gpn-core")
	ul.PrintError("Error: %s", "insufficient funds")
	require.Equal(t, "deployed gpn-core\n", out.String())
	require.Equal(t, "Error: insufficient funds\n", errOut.String())
}

func TestConvertToStringWithThousandSeparator(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{input: 0, expected: "0"},
		{input: 999, expected: "999"},
		{input: 21000, expected: "21_000"},
		{input: 1234567, expected: "1_234_567"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, ConvertToStringWithThousandSeparator(tt.input))
	}
}

func TestKeyValueTable(t *testing.T) {
	rendered := KeyValueTable("gpn-core", [][2]string{
		{"Address", "0x0000000000000000000000000000000000000001"},
		{"Block", "12"},
	})
	require.Contains(t, rendered, "GPN-CORE")
	require.Contains(t, rendered, "0x0000000000000000000000000000000000000001")
	require.Contains(t, rendered, "Block")
}
