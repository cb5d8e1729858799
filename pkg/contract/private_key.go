// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"fmt"
	"strings"

	"github.com/dimazhornyk/gpn-deploy/pkg/constants"
	"github.com/dimazhornyk/gpn-deploy/sdk/evm"
	"github.com/spf13/afero"
)

// PrivateKeySource holds the configured ways of obtaining the deployer key
type PrivateKeySource struct {
	PrivateKey     string
	PrivateKeyFile string
}

// GetPrivateKey returns the hex encoded deployer key, reading it from
// [fs] if it was given as a file
func (pks PrivateKeySource) GetPrivateKey(fs afero.Fs) (string, error) {
	if pks.PrivateKey != "" && pks.PrivateKeyFile != "" {
		return "", fmt.Errorf("private-key and private-key-file are mutually exclusive")
	}
	privateKey := pks.PrivateKey
	if pks.PrivateKeyFile != "" {
		bs, err := afero.ReadFile(fs, pks.PrivateKeyFile)
		if err != nil {
			return "", fmt.Errorf("failure reading private key file %s: %w", pks.PrivateKeyFile, err)
		}
		privateKey = string(bs)
	}
	privateKey = strings.TrimSpace(privateKey)
	if privateKey == "" {
		return "", constants.ErrNoPrivateKey
	}
	if _, err := evm.ParsePrivateKey(privateKey); err != nil {
		return "", err
	}
	return privateKey, nil
}
