// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingLog struct {
	logging.NoLog
	mu    sync.Mutex
	infos []string
}

func (r *recordingLog) Info(msg string, _ ...zap.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, msg)
}

func TestSpinnerLogsMessagesVerbatim(t *testing.T) {
	rec := &recordingLog{}
	Logger = &UserLog{log: rec, Writer: io.Discard, ErrWriter: io.Discard}
	t.Cleanup(func() { Logger = nil })

	spinSession := NewUserSpinner()
	failed := spinSession.SpinToUser("waiting 100%% mined")
	SpinFailWithError(failed, "", errors.New("fee cap 100%d too low"))
	done := spinSession.SpinToUser("confirming")
	SpinComplete(done)
	spinSession.Stop()

	require.Equal(t, []string{
		"waiting 100% mined [Spinner Start]",
		"waiting 100% mined err:fee cap 100%d too low [Spinner Err]",
		"confirming [Spinner Start]",
		"confirming [Spinner Complete]",
	}, rec.infos)
}
