// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"

	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/types"
	"github.com/dimazhornyk/gpn-deploy/pkg/artifact"
)

// Deployment tracks a contract creation from submission until it is mined
type Deployment struct {
	Name     string
	Artifact *artifact.Artifact
	// address the contract is created at, derived from deployer and nonce
	Address common.Address
	Tx      *types.Transaction
	// set once the deployment is confirmed
	Receipt *types.Receipt
}

// Confirmed indicates if a receipt was obtained for the deployment
func (d *Deployment) Confirmed() bool {
	return d != nil && d.Receipt != nil
}

// Deployer submits named artifacts to a network and follows them until confirmation
type Deployer interface {
	// Deploy resolves the artifact [name] and submits its creation tx
	Deploy(ctx context.Context, name string) (*Deployment, error)
	// WaitForDeployment blocks until the deployment tx is mined and the
	// contract code is present at its address
	WaitForDeployment(ctx context.Context, deployment *Deployment) error
	// Close releases the network connection
	Close()
}

// ArtifactResolver finds compiled artifacts by name
type ArtifactResolver interface {
	Resolve(name string) (*artifact.Artifact, error)
}
