// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package main

import (
	"os"

	"github.com/dimazhornyk/gpn-deploy/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
