// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/dimazhornyk/gpn-deploy/pkg/constants"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Resolver finds hardhat artifacts by contract name under an artifacts directory
type Resolver struct {
	fs  afero.Fs
	dir string
	log logging.Logger
}

func NewResolver(fs afero.Fs, dir string, log logging.Logger) *Resolver {
	if log == nil {
		log = logging.NoLog{}
	}
	return &Resolver{
		fs:  fs,
		dir: dir,
		log: log,
	}
}

// Resolve returns the artifact for [name], which is either a bare contract
// name or a fully qualified one (path/To.sol:Name)
func (r *Resolver) Resolve(name string) (*Artifact, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty contract name", ErrArtifactNotFound)
	}
	exists, err := afero.DirExists(r.fs, r.dir)
	if err != nil {
		return nil, fmt.Errorf("failure accessing artifacts directory %s: %w", r.dir, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: artifacts directory %s does not exist, was the project compiled?", ErrArtifactNotFound, r.dir)
	}
	if sourceName, contractName, ok := splitFullyQualifiedName(name); ok {
		return r.resolveFullyQualified(sourceName, contractName)
	}
	candidates, err := r.candidates(name)
	if err != nil {
		return nil, err
	}
	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: no artifact for contract %q under %s", ErrArtifactNotFound, name, r.dir)
	case 1:
		r.log.Debug("resolved artifact",
			zap.String("name", name),
			zap.String("artifact", candidates[0].FullyQualifiedName()),
		)
		return candidates[0], nil
	default:
		fqns := make([]string, 0, len(candidates))
		for _, c := range candidates {
			fqns = append(fqns, c.FullyQualifiedName())
		}
		sort.Strings(fqns)
		return nil, fmt.Errorf(
			"%w: %q, use one of the fully qualified names: %s",
			ErrAmbiguousArtifact,
			name,
			strings.Join(fqns, ", "),
		)
	}
}

func (r *Resolver) resolveFullyQualified(sourceName string, contractName string) (*Artifact, error) {
	path := filepath.Join(r.dir, filepath.FromSlash(sourceName), contractName+constants.ArtifactSuffix)
	a, err := r.read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s:%s not found at %s", ErrArtifactNotFound, sourceName, contractName, path)
	}
	if err != nil {
		return nil, err
	}
	if a.ContractName != contractName || a.SourceName != sourceName {
		return nil, fmt.Errorf("%w: %s holds %s", ErrInvalidArtifact, path, a.FullyQualifiedName())
	}
	return a, nil
}

func (r *Resolver) candidates(contractName string) ([]*Artifact, error) {
	fileName := contractName + constants.ArtifactSuffix
	candidates := []*Artifact{}
	err := afero.Walk(r.fs, r.dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == constants.BuildInfoDir {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() != fileName || strings.HasSuffix(info.Name(), constants.DebugArtifactSuffix) {
			return nil
		}
		a, err := r.read(path)
		if err != nil {
			r.log.Debug("skipping unreadable artifact", zap.String("path", path), zap.Error(err))
			return nil
		}
		if a.ContractName == contractName {
			candidates = append(candidates, a)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failure walking artifacts directory %s: %w", r.dir, err)
	}
	return candidates, nil
}

func (r *Resolver) read(path string) (*Artifact, error) {
	bs, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, err
	}
	a, err := Parse(bs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if a.Format != "" && a.Format != constants.HardhatArtifactFormat {
		r.log.Warn("unexpected artifact format", zap.String("path", path), zap.String("format", a.Format))
	}
	return a, nil
}

func splitFullyQualifiedName(name string) (string, string, bool) {
	i := strings.LastIndex(name, ":")
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}
