// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common/hexutil"
)

var (
	ErrArtifactNotFound  = errors.New("artifact not found")
	ErrAmbiguousArtifact = errors.New("multiple artifacts match")
	ErrMissingBytecode   = errors.New("artifact has no creation bytecode")
	ErrUnlinkedLibraries = errors.New("artifact bytecode has unlinked libraries")
	ErrInvalidArtifact   = errors.New("invalid artifact")
)

// solc placeholder prefix for library addresses not yet linked
const unlinkedLibraryMarker = "__$"

type LinkReference struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// LinkReferences maps source name -> library name -> bytecode offsets
type LinkReferences map[string]map[string][]LinkReference

// Artifact is the compiler output hardhat writes for a single contract
type Artifact struct {
	Format                 string          `json:"_format"`
	ContractName           string          `json:"contractName"`
	SourceName             string          `json:"sourceName"`
	ABI                    json.RawMessage `json:"abi"`
	Bytecode               string          `json:"bytecode"`
	DeployedBytecode       string          `json:"deployedBytecode"`
	LinkReferences         LinkReferences  `json:"linkReferences"`
	DeployedLinkReferences LinkReferences  `json:"deployedLinkReferences"`
}

// Parse decodes an artifact json file contents
func Parse(bs []byte) (*Artifact, error) {
	var a Artifact
	if err := json.Unmarshal(bs, &a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}
	if a.ContractName == "" {
		return nil, fmt.Errorf("%w: missing contractName", ErrInvalidArtifact)
	}
	return &a, nil
}

// FullyQualifiedName returns the artifact name in the form sourceName:contractName
func (a *Artifact) FullyQualifiedName() string {
	if a.SourceName == "" {
		return a.ContractName
	}
	return a.SourceName + ":" + a.ContractName
}

// ParsedABI returns the contract ABI
func (a *Artifact) ParsedABI() (abi.ABI, error) {
	abiBytes := a.ABI
	if len(abiBytes) == 0 {
		abiBytes = []byte("[]")
	}
	parsed, err := abi.JSON(bytes.NewReader(abiBytes))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failure parsing abi of %s: %w", a.FullyQualifiedName(), err)
	}
	return parsed, nil
}

// CreationCode returns the decoded bytecode used to deploy the contract.
// Abstract contracts and contracts that need library linking are rejected.
func (a *Artifact) CreationCode() ([]byte, error) {
	code := strings.TrimSpace(a.Bytecode)
	if code == "" || code == "0x" {
		return nil, fmt.Errorf("%w: %s (is it abstract or an interface?)", ErrMissingBytecode, a.FullyQualifiedName())
	}
	if libs := a.LinkReferences.libraries(); len(libs) > 0 {
		return nil, fmt.Errorf("%w: %s needs %s", ErrUnlinkedLibraries, a.FullyQualifiedName(), strings.Join(libs, ", "))
	}
	if strings.Contains(code, unlinkedLibraryMarker) {
		return nil, fmt.Errorf("%w: %s", ErrUnlinkedLibraries, a.FullyQualifiedName())
	}
	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	bs, err := hexutil.Decode(code)
	if err != nil {
		return nil, fmt.Errorf("%w: bytecode of %s: %w", ErrInvalidArtifact, a.FullyQualifiedName(), err)
	}
	return bs, nil
}

func (refs LinkReferences) libraries() []string {
	libs := []string{}
	for source, byName := range refs {
		for name := range byName {
			libs = append(libs, source+":"+name)
		}
	}
	sort.Strings(libs)
	return libs
}
