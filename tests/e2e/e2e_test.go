// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package e2e

import (
	"testing"

	"github.com/dimazhornyk/gpn-deploy/tests/e2e/utils"

	_ "github.com/dimazhornyk/gpn-deploy/tests/e2e/testcases/deploy"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/format"
)

func TestE2e(t *testing.T) {
	if !utils.IsE2E() {
		t.Skip("Environment variable RUN_CLI_E2E not set; skipping E2E tests")
	}
	gomega.RegisterFailHandler(ginkgo.Fail)
	format.UseStringerRepresentation = true
	ginkgo.RunSpecs(t, "gpn-deploy e2e test suites")
}
