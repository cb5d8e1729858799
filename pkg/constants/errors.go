// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrNoPrivateKey = errors.New("\n\nNo deployer key configured. To resolve this:\n- Set GPN_PRIVATE_KEY or pass --private-key with a hex encoded key.\n- Or point GPN_PRIVATE_KEY_FILE / --private-key-file to a file holding it.\n") //nolint:stylecheck
	ErrNoRPCURL     = errors.New("no rpc url configured")
)
