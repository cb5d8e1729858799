// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/dimazhornyk/gpn-deploy/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestHandleErrors(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	ux.Logger = nil
	ux.NewUserLog(logging.NoLog{}, stdout, stderr)
	t.Cleanup(func() { ux.Logger = nil })

	require.Equal(t, 0, HandleErrors(nil))
	require.Empty(t, stderr.String())

	require.Equal(t, 1, HandleErrors(errors.New("boom")))
	require.Equal(t, "Error: boom\n", stderr.String())
	require.Empty(t, stdout.String())
}

func TestHandleUsageErrors(t *testing.T) {
	cmdErr := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "deploy"}
	cmd.SetErr(cmdErr)
	err := fmt.Errorf("wrapped: %w", NewUsageError(cmd, errors.New("accepts 0 arg(s), received 1")))
	require.Equal(t, 1, HandleErrors(err))
	require.Contains(t, cmdErr.String(), "Usage:")
	require.Contains(t, cmdErr.String(), "Usage error: accepts 0 arg(s), received 1")
}

func TestExactArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "deploy"}
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, ExactArgs(0)(cmd, nil))
	err := ExactArgs(0)(cmd, []string{"extra"})
	var usageErr UsageError
	require.ErrorAs(t, err, &usageErr)
}
