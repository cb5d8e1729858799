// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import "os"

func IsE2E() bool {
	return os.Getenv(e2eEnvVar) != ""
}

// LiveRPCURL returns the endpoint of a funded dev network, if one was given
func LiveRPCURL() string {
	return os.Getenv(rpcURLEnvVar)
}
