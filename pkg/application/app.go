// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/dimazhornyk/gpn-deploy/pkg/artifact"
	"github.com/dimazhornyk/gpn-deploy/pkg/config"
	"github.com/dimazhornyk/gpn-deploy/pkg/constants"
	"github.com/dimazhornyk/gpn-deploy/pkg/contract"
	"github.com/spf13/afero"
)

// DeployerFactory builds the deployment collaborator for a command run
type DeployerFactory func(ctx context.Context, app *GPN) (contract.Deployer, error)

type GPN struct {
	Log         logging.Logger
	Conf        *config.Config
	Fs          afero.Fs
	NewDeployer DeployerFactory
	baseDir     string
}

func New() *GPN {
	return &GPN{
		Fs:          afero.NewOsFs(),
		NewDeployer: DialDeployer,
	}
}

func (app *GPN) Setup(baseDir string, log logging.Logger, conf *config.Config) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
}

func (app *GPN) GetBaseDir() string {
	return app.baseDir
}

func (app *GPN) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

// GetDeployer returns a deployer configured from the environment
func (app *GPN) GetDeployer(ctx context.Context) (contract.Deployer, error) {
	factory := app.NewDeployer
	if factory == nil {
		factory = DialDeployer
	}
	return factory(ctx, app)
}

// DialDeployer connects to the configured RPC endpoint and signs with the
// configured private key
func DialDeployer(ctx context.Context, app *GPN) (contract.Deployer, error) {
	rpcURL := app.Conf.RPCURL()
	if rpcURL == "" {
		return nil, constants.ErrNoRPCURL
	}
	privateKey, err := contract.PrivateKeySource{
		PrivateKey:     app.Conf.PrivateKey(),
		PrivateKeyFile: app.Conf.PrivateKeyFile(),
	}.GetPrivateKey(app.Fs)
	if err != nil {
		return nil, err
	}
	resolver := artifact.NewResolver(app.Fs, app.Conf.ArtifactsDir(), app.Log)
	return contract.Dial(ctx, rpcURL, resolver, privateKey, app.Log)
}
