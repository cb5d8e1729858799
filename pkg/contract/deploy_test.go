// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ava-labs/libevm/core/types"
	"github.com/ava-labs/libevm/crypto"
	"github.com/dimazhornyk/gpn-deploy/internal/mocks"
	"github.com/dimazhornyk/gpn-deploy/pkg/artifact"
	"github.com/dimazhornyk/gpn-deploy/sdk/evm"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPrivateKey = "56289e99c94b6912bfc12adc093c9b51124f0dc54ac7a766b2bc5ccf558d8027"
	artifactsDir   = "/project/artifacts"
	coreBytecode   = "0x6001600c60003960016000f300"
)

func newResolver(t *testing.T, abiJSON string) *artifact.Resolver {
	t.Helper()
	fs := afero.NewMemMapFs()
	bs, err := json.Marshal(artifact.Artifact{
		Format:       "hh-sol-artifact-1",
		ContractName: "gpn-core",
		SourceName:   "contracts/Core.sol",
		ABI:          json.RawMessage(abiJSON),
		Bytecode:     coreBytecode,
	})
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, artifactsDir+"/contracts/Core.sol/gpn-core.json", bs, 0o644))
	return artifact.NewResolver(fs, artifactsDir, nil)
}

func expectSubmission(mockClient *mocks.EthClient) {
	mockClient.On("ChainID", mock.Anything).Return(big.NewInt(31337), nil)
	mockClient.On("HeaderByNumber", mock.Anything, mock.Anything).
		Return(&types.Header{BaseFee: big.NewInt(1_000_000_000)}, nil)
	mockClient.On("SuggestGasTipCap", mock.Anything).Return(big.NewInt(1_000_000_000), nil)
	mockClient.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(90_000), nil)
	mockClient.On("PendingNonceAt", mock.Anything, mock.Anything).Return(uint64(0), nil)
}

func TestDeployAndWait(t *testing.T) {
	mockClient := mocks.NewEthClient(t)
	client := evm.Client{EthClient: mockClient, URL: "http://localhost:8545"}
	expectSubmission(mockClient)
	var sent *types.Transaction
	mockClient.On("SendTransaction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*types.Transaction) }).
		Return(nil).Once()

	deployer := NewEVMDeployer(client, newResolver(t, "[]"), testPrivateKey, nil)
	deployment, err := deployer.Deploy(context.Background(), "gpn-core")
	require.NoError(t, err)
	require.Equal(t, "gpn-core", deployment.Name)
	require.Equal(t, sent.Hash(), deployment.Tx.Hash())
	require.Equal(t, "contracts/Core.sol:gpn-core", deployment.Artifact.FullyQualifiedName())
	from, err := evm.PrivateKeyToAddress(testPrivateKey)
	require.NoError(t, err)
	require.Equal(t, crypto.CreateAddress(from, 0), deployment.Address)
	require.False(t, deployment.Confirmed())

	receipt := &types.Receipt{
		Status:          types.ReceiptStatusSuccessful,
		ContractAddress: deployment.Address,
		BlockNumber:     big.NewInt(3),
		GasUsed:         85_000,
	}
	mockClient.On("TransactionReceipt", mock.Anything, sent.Hash()).Return(receipt, nil).Once()
	mockClient.On("CodeAt", mock.Anything, deployment.Address, mock.Anything).Return([]byte{0x60, 0x80}, nil).Once()
	require.NoError(t, deployer.WaitForDeployment(context.Background(), deployment))
	require.True(t, deployment.Confirmed())
	require.Equal(t, receipt, deployment.Receipt)
}

func TestDeployFailures(t *testing.T) {
	t.Run("artifact not found does not touch the network", func(t *testing.T) {
		mockClient := mocks.NewEthClient(t)
		client := evm.Client{EthClient: mockClient, URL: "http://localhost:8545"}
		deployer := NewEVMDeployer(client, newResolver(t, "[]"), testPrivateKey, nil)
		_, err := deployer.Deploy(context.Background(), "gpn-other")
		require.ErrorIs(t, err, artifact.ErrArtifactNotFound)
		mockClient.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
	})

	t.Run("constructor arguments are not supported", func(t *testing.T) {
		mockClient := mocks.NewEthClient(t)
		client := evm.Client{EthClient: mockClient, URL: "http://localhost:8545"}
		constructorABI := `[{"inputs":[{"internalType":"uint256","name":"fee","type":"uint256"}],"stateMutability":"nonpayable","type":"constructor"}]`
		deployer := NewEVMDeployer(client, newResolver(t, constructorABI), testPrivateKey, nil)
		_, err := deployer.Deploy(context.Background(), "gpn-core")
		require.ErrorContains(t, err, "expects 1 arguments")
	})

	t.Run("reverted deployment", func(t *testing.T) {
		mockClient := mocks.NewEthClient(t)
		client := evm.Client{EthClient: mockClient, URL: "http://localhost:8545"}
		expectSubmission(mockClient)
		mockClient.On("SendTransaction", mock.Anything, mock.Anything).Return(nil).Once()
		deployer := NewEVMDeployer(client, newResolver(t, "[]"), testPrivateKey, nil)
		deployment, err := deployer.Deploy(context.Background(), "gpn-core")
		require.NoError(t, err)
		receipt := &types.Receipt{
			Status:          types.ReceiptStatusFailed,
			ContractAddress: deployment.Address,
			BlockNumber:     big.NewInt(3),
		}
		mockClient.On("TransactionReceipt", mock.Anything, deployment.Tx.Hash()).Return(receipt, nil).Once()
		err = deployer.WaitForDeployment(context.Background(), deployment)
		require.ErrorIs(t, err, evm.ErrTransactionReverted)
		require.Equal(t, receipt, deployment.Receipt)
	})

	t.Run("wait without transaction", func(t *testing.T) {
		deployer := NewEVMDeployer(evm.Client{}, newResolver(t, "[]"), testPrivateKey, nil)
		require.ErrorIs(t, deployer.WaitForDeployment(context.Background(), &Deployment{}), ErrNoTransaction)
	})
}
