// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package commands

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	"github.com/dimazhornyk/gpn-deploy/tests/e2e/utils"
)

type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Deploy runs gpn-deploy deploy with [env] appended to a clean GPN_* environment
func Deploy(homeDir string, env map[string]string, args ...string) (Result, error) {
	cmd := exec.Command(utils.CLIBinary, append([]string{"deploy"}, args...)...)
	cmd.Env = []string{
		"HOME=" + homeDir,
		"PATH=" + os.Getenv("PATH"),
	}
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	default:
		return res, err
	}
}
