// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"syscall"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/dimazhornyk/gpn-deploy/cmd/deploycmd"
	"github.com/dimazhornyk/gpn-deploy/pkg/application"
	"github.com/dimazhornyk/gpn-deploy/pkg/cobrautils"
	"github.com/dimazhornyk/gpn-deploy/pkg/config"
	"github.com/dimazhornyk/gpn-deploy/pkg/constants"
	"github.com/dimazhornyk/gpn-deploy/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = ""

func NewRootCmd(app *application.GPN) *cobra.Command {
	conf := config.New()
	rootCmd := &cobra.Command{
		Use:   rootUse,
		Short: rootShort,
		Long:  rootLong,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupEnv(cmd, app, conf)
		},
		RunE:          cobrautils.CommandSuiteUsage,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cobrautils.ConfigureRootCmd(rootCmd)

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	config.AddFlags(rootCmd.PersistentFlags())

	// gpn-deploy deploy
	rootCmd.AddCommand(deploycmd.NewCmd(app))
	return rootCmd
}

func setupEnv(cmd *cobra.Command, app *application.GPN, conf *config.Config) error {
	if err := conf.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString(config.ConfigFileKey)
	if err != nil {
		return err
	}
	if err := conf.SetConfig(configPath); err != nil {
		return err
	}

	baseDir := app.GetBaseDir()
	if baseDir == "" {
		usr, err := user.Current()
		if err != nil {
			return fmt.Errorf("unable to get system user: %w", err)
		}
		baseDir = filepath.Join(usr.HomeDir, constants.BaseDirName)
	}
	if err := os.MkdirAll(baseDir, perms.ReadWriteExecute); err != nil {
		return fmt.Errorf("failed creating the basedir %s: %w", baseDir, err)
	}

	app.Setup(baseDir, app.Log, conf)
	log := app.Log
	if log == nil {
		log, err = setupLogging(app.GetLogDir(), conf.LogLevel())
		if err != nil {
			return err
		}
	}
	if path := conf.GetConfigPath(); path != "" {
		log.Info("Using config file", zap.String("config-file", path))
	}

	// create the user facing logger as a global var
	ux.NewUserLog(log, cmd.OutOrStdout(), cmd.ErrOrStderr())
	app.Setup(baseDir, log, conf)
	return nil
}

func setupLogging(logDir string, logLevel string) (logging.Logger, error) {
	var err error

	logConfig := logging.Config{}
	logConfig.LogLevel = logging.Info
	logConfig.DisplayLevel, err = logging.ToLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logConfig.Directory = logDir
	if err := os.MkdirAll(logConfig.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	logConfig.LogFormat = logging.Colors
	logConfig.MaxSize = constants.MaxLogFileSize
	logConfig.MaxFiles = constants.MaxNumOfLogFiles
	logConfig.MaxAge = constants.RetainOldFiles

	factory := logging.NewFactory(logConfig)
	log, err := factory.Make(constants.LogName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	return log, nil
}

// Run executes the command line [args] against [app] and returns the exit code
func Run(ctx context.Context, app *application.GPN, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && ux.Logger == nil {
		// setup failed before the user logger was created
		ux.NewUserLog(logging.NoLog{}, stdout, stderr)
	}
	return cobrautils.HandleErrors(err)
}

// Execute runs the CLI with the process arguments, cancelling on SIGINT or SIGTERM.
// This is called by main.main().
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Run(ctx, application.New(), os.Args[1:], os.Stdout, os.Stderr)
}
