// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploycmd

import (
	"context"
	"fmt"

	"github.com/dimazhornyk/gpn-deploy/pkg/application"
	"github.com/dimazhornyk/gpn-deploy/pkg/cobrautils"
	"github.com/dimazhornyk/gpn-deploy/pkg/constants"
	"github.com/dimazhornyk/gpn-deploy/pkg/contract"
	"github.com/dimazhornyk/gpn-deploy/pkg/ux"
	"github.com/spf13/cobra"
)

var app *application.GPN

// gpn-deploy deploy
func NewCmd(injectedApp *application.GPN) *cobra.Command {
	app = injectedApp
	return &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the gpn-core contract",
		Long: `The deploy command deploys the compiled gpn-core contract to the configured
network and waits until its deployment transaction is mined.

The command fails, exiting with a non zero status, if the artifact can not be
found, the transaction can not be sent, or it reverts.`,
		Args: cobrautils.ExactArgs(0),
		RunE: deploy,
	}
}

func deploy(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	deployer, err := app.GetDeployer(ctx)
	if err != nil {
		return err
	}
	defer deployer.Close()
	deployment, err := DeployCore(ctx, deployer)
	if err != nil {
		return err
	}
	printSummary(deployment)
	return nil
}

// DeployCore deploys the gpn-core artifact with [deployer] and blocks until
// its deployment is confirmed
func DeployCore(ctx context.Context, deployer contract.Deployer) (*contract.Deployment, error) {
	deployment, err := deployer.Deploy(ctx, constants.CoreContractName)
	if err != nil {
		return nil, fmt.Errorf("failure deploying %s: %w", constants.CoreContractName, err)
	}
	spinSession := ux.NewUserSpinner()
	spinner := spinSession.SpinToUser("Waiting for %s deployment %s to be mined", constants.CoreContractName, deployment.Tx.Hash().Hex())
	err = deployer.WaitForDeployment(ctx, deployment)
	if err != nil {
		ux.SpinFailWithError(spinner, "", err)
	} else {
		ux.SpinComplete(spinner)
	}
	spinSession.Stop()
	if err != nil {
		ux.Logger.RedXToUser("%s deployment %s was not confirmed", constants.CoreContractName, deployment.Tx.Hash().Hex())
		return nil, fmt.Errorf("failure deploying %s: %w", constants.CoreContractName, err)
	}
	return deployment, nil
}

func printSummary(deployment *contract.Deployment) {
	rows := [][2]string{}
	if deployment.Artifact != nil {
		rows = append(rows, [2]string{"Artifact", deployment.Artifact.FullyQualifiedName()})
	}
	rows = append(rows,
		[2]string{"Address", deployment.Address.Hex()},
		[2]string{"Transaction", deployment.Tx.Hash().Hex()},
	)
	if deployment.Receipt != nil {
		rows = append(rows,
			[2]string{"Block", ux.ConvertToStringWithThousandSeparator(deployment.Receipt.BlockNumber.Uint64())},
			[2]string{"Gas Used", ux.ConvertToStringWithThousandSeparator(deployment.Receipt.GasUsed)},
		)
	}
	ux.Logger.PrintToUser("%s", ux.KeyValueTable(constants.CoreContractName, rows))
	ux.Logger.GreenCheckmarkToUser("%s deployed at %s", constants.CoreContractName, deployment.Address.Hex())
}
