// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

const (
	CLIBinary     = "../../bin/gpn-deploy"
	ArtifactsPath = "assets/artifacts"

	// ewoq test key, funded on local networks
	EwoqPrivateKey = "56289e99c94b6912bfc12adc093c9b51124f0dc54ac7a766b2bc5ccf558d8027"

	// nothing listens here
	UnreachableRPCURL = "http://127.0.0.1:1"

	e2eEnvVar    = "RUN_CLI_E2E"
	rpcURLEnvVar = "GPN_E2E_RPC_URL"
)
