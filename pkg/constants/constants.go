// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	// CoreContractName is the artifact deployed by the deploy task
	CoreContractName = "gpn-core"

	BaseDirName = ".gpn-deploy"
	LogDir      = "logs"
	LogName     = "gpn-deploy"

	DefaultRPCURL       = "http://127.0.0.1:8545"
	DefaultArtifactsDir = "artifacts"
	DefaultLogLevel     = "ERROR"

	// hardhat artifacts layout
	BuildInfoDir          = "build-info"
	ArtifactSuffix        = ".json"
	DebugArtifactSuffix   = ".dbg.json"
	HardhatArtifactFormat = "hh-sol-artifact-1"

	EnvPrefix = "GPN"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files
)
