// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/dimazhornyk/gpn-deploy/internal/mocks/deployermocks"
	"github.com/dimazhornyk/gpn-deploy/pkg/config"
	"github.com/dimazhornyk/gpn-deploy/pkg/constants"
	"github.com/dimazhornyk/gpn-deploy/pkg/contract"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *GPN {
	t.Helper()
	app := New()
	app.Fs = afero.NewMemMapFs()
	app.Setup(t.TempDir(), logging.NoLog{}, config.New())
	return app
}

func TestDirs(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, filepath.Join(app.GetBaseDir(), constants.LogDir), app.GetLogDir())
}

func TestGetDeployerUsesFactory(t *testing.T) {
	app := newTestApp(t)
	deployer := deployermocks.NewDeployer(t)
	calls := 0
	app.NewDeployer = func(_ context.Context, got *GPN) (contract.Deployer, error) {
		calls++
		require.Equal(t, app, got)
		return deployer, nil
	}
	d, err := app.GetDeployer(context.Background())
	require.NoError(t, err)
	require.Equal(t, deployer, d)
	require.Equal(t, 1, calls)
}

func TestDialDeployerRequiresPrivateKey(t *testing.T) {
	t.Setenv("GPN_PRIVATE_KEY", "")
	t.Setenv("GPN_PRIVATE_KEY_FILE", "")
	app := newTestApp(t)
	_, err := app.GetDeployer(context.Background())
	require.ErrorIs(t, err, constants.ErrNoPrivateKey)
}
