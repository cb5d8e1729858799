// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

const (
	rootUse   = "gpn-deploy"
	rootShort = "Deploy the gpn contracts"
	rootLong  = `gpn-deploy deploys the compiled gpn contracts to an EVM network.

Network and deployer account are taken from the environment: a config file
given with --config, GPN_* environment variables, or the global flags below.

To get started, compile the contracts and run gpn-deploy deploy.`
)
