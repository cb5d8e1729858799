// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	ethereum "github.com/ava-labs/libevm"
	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/accounts/abi/bind"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/core/types"
	"github.com/ava-labs/libevm/ethclient"
)

var (
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrNoCodeAfterDeploy   = errors.New("no contract code at the deployed address")
	ErrNotContractCreation = errors.New("receipt has no contract address")
)

// interval between receipt queries while a transaction is pending
var receiptPollInterval = 1 * time.Second

// EthClient is the subset of the ethclient API needed to deploy contracts
// and follow their transactions
type EthClient interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// used to mock the connection function
var ethclientDialContext = func(ctx context.Context, rawurl string) (EthClient, error) {
	client, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// wraps over ethclient for calls used on deployments. features:
// - adds a default scheme to urls missing one
// - logs rpc url in case of failure
// - receives private keys as strings
//
// no call is repeated on failure: the first error is returned to the caller
type Client struct {
	EthClient EthClient
	URL       string
}

// indicates if the given rpc url has schema or not
func HasScheme(rpcURL string) (bool, error) {
	if parsedURL, err := url.Parse(rpcURL); err != nil {
		if !strings.Contains(err.Error(), "first path segment in URL cannot contain colon") {
			return false, err
		}
		return false, nil
	} else {
		return strings.Contains(rpcURL, "://") && parsedURL.Scheme != "", nil
	}
}

// NormalizeURL returns [rpcURL] with http:// prepended if it has no scheme
func NormalizeURL(rpcURL string) (string, error) {
	rpcURL = strings.TrimSpace(rpcURL)
	if rpcURL == "" {
		return "", fmt.Errorf("empty rpc url")
	}
	hasScheme, err := HasScheme(rpcURL)
	if err != nil {
		return "", fmt.Errorf("failure determining the scheme of url %s: %w", rpcURL, err)
	}
	if !hasScheme {
		rpcURL = "http://" + rpcURL
	}
	return rpcURL, nil
}

// connects an evm client to the given [rpcURL]
func GetClient(ctx context.Context, rpcURL string) (Client, error) {
	normalized, err := NormalizeURL(rpcURL)
	if err != nil {
		return Client{URL: rpcURL}, err
	}
	client := Client{
		URL: normalized,
	}
	client.EthClient, err = ethclientDialContext(ctx, normalized)
	if err != nil {
		err = fmt.Errorf("failure connecting to %s: %w", normalized, err)
	}
	return client, err
}

// closes underlying ethclient connection
func (client Client) Close() {
	if client.EthClient != nil {
		client.EthClient.Close()
	}
}

// returns the chain ID
func (client Client) GetChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := client.EthClient.ChainID(ctx)
	if err != nil {
		err = fmt.Errorf("failure getting chain id from %s: %w", client.URL, err)
	}
	return chainID, err
}

// returns the contract bytecode at [contractAddress]
func (client Client) GetContractBytecode(
	ctx context.Context,
	contractAddress common.Address,
) ([]byte, error) {
	code, err := client.EthClient.CodeAt(ctx, contractAddress, nil)
	if err != nil {
		err = fmt.Errorf(
			"failure obtaining code from %s at address %s: %w",
			client.URL,
			contractAddress.Hex(),
			err,
		)
	}
	return code, err
}

// indicates wether a contract is deployed on [contractAddress]
func (client Client) ContractAlreadyDeployed(
	ctx context.Context,
	contractAddress common.Address,
) (bool, error) {
	if bs, err := client.GetContractBytecode(ctx, contractAddress); err != nil {
		return false, err
	} else {
		return len(bs) != 0, nil
	}
}

// returns tx options that include signer for [privateKeyStr]
func (client Client) GetTxOptsWithSigner(
	ctx context.Context,
	privateKeyStr string,
) (*bind.TransactOpts, error) {
	privateKey, err := ParsePrivateKey(privateKeyStr)
	if err != nil {
		return nil, err
	}
	chainID, err := client.GetChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failure generating signer: %w", err)
	}
	txOpts, err := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
	if err != nil {
		return nil, err
	}
	txOpts.Context = ctx
	return txOpts, nil
}

// issues a single contract creation tx for [bytecode] with constructor [params]
// it does not wait for the tx to be mined
func (client Client) DeployContract(
	txOpts *bind.TransactOpts,
	contractABI abi.ABI,
	bytecode []byte,
	params ...interface{},
) (common.Address, *types.Transaction, error) {
	address, tx, _, err := bind.DeployContract(txOpts, contractABI, bytecode, client.EthClient, params...)
	if err != nil {
		return common.Address{}, nil, TransactionError(tx, err, "failure deploying contract on %s", client.URL)
	}
	return address, tx, nil
}

// waits for [tx] to be mined, returning its receipt
// the node answering NotFound means the tx is still pending. any other
// error is returned as is
func (client Client) WaitForTransaction(
	ctx context.Context,
	tx *types.Transaction,
) (*types.Receipt, error) {
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()
	for {
		receipt, err := client.EthClient.TransactionReceipt(ctx, tx.Hash())
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, TransactionError(tx, err, "failure waiting for tx on %s", client.URL)
		}
		select {
		case <-ctx.Done():
			return nil, TransactionError(tx, ctx.Err(), "failure waiting for tx on %s", client.URL)
		case <-ticker.C:
		}
	}
}

// waits for the contract creation [tx] to be mined, and checks that it
// succeeded and left code at the new contract address
func (client Client) WaitForDeployment(
	ctx context.Context,
	tx *types.Transaction,
) (*types.Receipt, error) {
	receipt, err := client.WaitForTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, TransactionError(tx, ErrTransactionReverted, "deployment failed at block %d", receipt.BlockNumber)
	}
	if receipt.ContractAddress == (common.Address{}) {
		return receipt, TransactionError(tx, ErrNotContractCreation, "deployment failed")
	}
	deployed, err := client.ContractAlreadyDeployed(ctx, receipt.ContractAddress)
	if err != nil {
		return receipt, err
	}
	if !deployed {
		return receipt, TransactionError(tx, ErrNoCodeAfterDeploy, "deployment to %s failed", receipt.ContractAddress.Hex())
	}
	return receipt, nil
}
