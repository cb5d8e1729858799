// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploy

import (
	"os"

	"github.com/dimazhornyk/gpn-deploy/tests/e2e/commands"
	"github.com/dimazhornyk/gpn-deploy/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Deploy gpn-core]", ginkgo.Ordered, func() {
	var homeDir string

	ginkgo.BeforeEach(func() {
		var err error
		homeDir, err = os.MkdirTemp("", "gpn-deploy-e2e")
		gomega.Expect(err).Should(gomega.BeNil())
	})

	ginkgo.AfterEach(func() {
		gomega.Expect(os.RemoveAll(homeDir)).Should(gomega.Succeed())
	})

	ginkgo.It("fails without a deployer key", func() {
		res, err := commands.Deploy(homeDir, map[string]string{
			"GPN_ARTIFACTS_DIR": utils.ArtifactsPath,
		})
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(res.ExitCode).Should(gomega.Equal(1))
		gomega.Expect(res.Stderr).Should(gomega.ContainSubstring("No deployer key configured"))
	})

	ginkgo.It("fails when the artifact is missing", func() {
		res, err := commands.Deploy(homeDir, map[string]string{
			"GPN_PRIVATE_KEY":   utils.EwoqPrivateKey,
			"GPN_ARTIFACTS_DIR": homeDir,
		})
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(res.ExitCode).Should(gomega.Equal(1))
		gomega.Expect(res.Stderr).Should(gomega.ContainSubstring("artifact not found"))
	})

	ginkgo.It("fails when the network is unreachable", func() {
		res, err := commands.Deploy(homeDir, map[string]string{
			"GPN_PRIVATE_KEY":   utils.EwoqPrivateKey,
			"GPN_ARTIFACTS_DIR": utils.ArtifactsPath,
			"GPN_RPC_URL":       utils.UnreachableRPCURL,
		})
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(res.ExitCode).Should(gomega.Equal(1))
		gomega.Expect(res.Stderr).Should(gomega.ContainSubstring("Error: failure deploying gpn-core"))
	})

	ginkgo.It("rejects positional arguments", func() {
		res, err := commands.Deploy(homeDir, nil, "gpn-other")
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(res.ExitCode).Should(gomega.Equal(1))
		gomega.Expect(res.Stderr).Should(gomega.ContainSubstring("Usage error"))
	})

	ginkgo.It("deploys to a live network", func() {
		rpcURL := utils.LiveRPCURL()
		if rpcURL == "" {
			ginkgo.Skip("GPN_E2E_RPC_URL not set")
		}
		res, err := commands.Deploy(homeDir, map[string]string{
			"GPN_PRIVATE_KEY":   utils.EwoqPrivateKey,
			"GPN_ARTIFACTS_DIR": utils.ArtifactsPath,
			"GPN_RPC_URL":       rpcURL,
		})
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(res.ExitCode).Should(gomega.Equal(0), res.Stderr)
		gomega.Expect(res.Stdout).Should(gomega.ContainSubstring("gpn-core deployed at 0x"))
	})
})
