// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/dimazhornyk/gpn-deploy/sdk/evm"
	"go.uber.org/zap"
)

var _ Deployer = (*EVMDeployer)(nil)

var ErrNoTransaction = errors.New("deployment has no transaction")

// EVMDeployer deploys hardhat artifacts on an EVM chain
type EVMDeployer struct {
	client     evm.Client
	resolver   ArtifactResolver
	privateKey string
	log        logging.Logger
}

func NewEVMDeployer(
	client evm.Client,
	resolver ArtifactResolver,
	privateKey string,
	log logging.Logger,
) *EVMDeployer {
	if log == nil {
		log = logging.NoLog{}
	}
	return &EVMDeployer{
		client:     client,
		resolver:   resolver,
		privateKey: privateKey,
		log:        log,
	}
}

// Dial connects to [rpcURL] and returns a deployer using it
func Dial(
	ctx context.Context,
	rpcURL string,
	resolver ArtifactResolver,
	privateKey string,
	log logging.Logger,
) (*EVMDeployer, error) {
	client, err := evm.GetClient(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return NewEVMDeployer(client, resolver, privateKey, log), nil
}

func (d *EVMDeployer) Close() {
	d.client.Close()
}

func (d *EVMDeployer) Deploy(ctx context.Context, name string) (*Deployment, error) {
	a, err := d.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}
	bytecode, err := a.CreationCode()
	if err != nil {
		return nil, err
	}
	contractABI, err := a.ParsedABI()
	if err != nil {
		return nil, err
	}
	if inputs := len(contractABI.Constructor.Inputs); inputs != 0 {
		return nil, fmt.Errorf("constructor of %s expects %d arguments, none given", a.FullyQualifiedName(), inputs)
	}
	txOpts, err := d.client.GetTxOptsWithSigner(ctx, d.privateKey)
	if err != nil {
		return nil, err
	}
	d.log.Info("deploying contract",
		zap.String("artifact", a.FullyQualifiedName()),
		zap.String("deployer", txOpts.From.Hex()),
		zap.String("rpc", d.client.URL),
	)
	address, tx, err := d.client.DeployContract(txOpts, contractABI, bytecode)
	if err != nil {
		return nil, err
	}
	d.log.Info("deployment submitted",
		zap.String("artifact", a.FullyQualifiedName()),
		zap.Stringer("txHash", tx.Hash()),
		zap.String("address", address.Hex()),
	)
	return &Deployment{
		Name:     name,
		Artifact: a,
		Address:  address,
		Tx:       tx,
	}, nil
}

func (d *EVMDeployer) WaitForDeployment(ctx context.Context, deployment *Deployment) error {
	if deployment == nil || deployment.Tx == nil {
		return ErrNoTransaction
	}
	receipt, err := d.client.WaitForDeployment(ctx, deployment.Tx)
	deployment.Receipt = receipt
	if err != nil {
		return err
	}
	d.log.Info("deployment confirmed",
		zap.String("name", deployment.Name),
		zap.String("address", receipt.ContractAddress.Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
	return nil
}
