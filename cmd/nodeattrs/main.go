// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/opentofu/nodeattrs/internal/command"
	"github.com/opentofu/nodeattrs/internal/didyoumean"
	"github.com/opentofu/nodeattrs/internal/logging"
	"github.com/opentofu/nodeattrs/internal/tracing"
	"github.com/opentofu/nodeattrs/version"
)

// envTmpLogPath names a file, created by a wrapping process, that receives
// a copy of every log line regardless of NODEATTRS_LOG.
const envTmpLogPath = "NODEATTRS_TEMP_LOG_PATH"

func init() {
	Ui = command.NewBasicUI()
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	defer logging.PanicHandler()

	ctx, err := tracing.OpenTelemetryInit(context.Background())
	if err != nil {
		// Only reachable when telemetry was explicitly requested.
		Ui.Error(fmt.Sprintf("Could not initialize telemetry: %s", err))
		Ui.Error(fmt.Sprintf("Unset environment variable %s if you don't intend to collect telemetry from nodeattrs.", tracing.OTELExporterEnvVar))
		return 1
	}
	defer tracing.ForceFlush(5 * time.Second)

	ctx, span := tracing.Tracer().Start(ctx, "nodeattrs")
	defer span.End()

	if path := os.Getenv(envTmpLogPath); path != "" {
		f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("[ERROR] Could not open temp log file: %v", err)
		} else {
			defer f.Close()
			log.Printf("[DEBUG] Adding temp file log sink: %s", f.Name())
			logging.RegisterSink(f)
		}
	}

	logStartup()

	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	log.Printf("[TRACE] Stdout is a terminal: %t", color)

	fs := afero.NewOsFs()

	// Tests install their own commands.
	if commands == nil {
		initCommands(ctx, fs, color)
	}

	args, err := prepareArgs(fs, os.Args[1:])
	if err != nil {
		Ui.Error(err.Error())
		return 1
	}
	log.Printf("[INFO] CLI command args: %#v", args)

	cliRunner := &cli.CLI{
		Name:       filepath.Base(os.Args[0]),
		Args:       args,
		Commands:   commands,
		HelpFunc:   helpFunc,
		HelpWriter: os.Stdout,
	}

	if cmd := cliRunner.Subcommand(); cmd != "" {
		if _, exists := commands[cmd]; !exists {
			fmt.Fprint(os.Stderr, unknownCommandMessage(cmd))
			return 1
		}
	}

	exitCode, err := cliRunner.Run()
	if err != nil {
		Ui.Error(fmt.Sprintf("Error executing CLI: %s", err.Error()))
		return 1
	}
	if exitCode != 0 {
		tracing.SetSpanError(span, fmt.Sprintf("command exited with status %d", exitCode))
	}
	return exitCode
}

func logStartup() {
	log.Printf("[INFO] nodeattrs version: %s %s", Version, VersionPrerelease)
	if logging.IsDebugOrHigher() {
		for _, depMod := range version.InterestingDependencies() {
			log.Printf("[DEBUG] using %s %s", depMod.Path, depMod.Version)
		}
	}
	log.Printf("[INFO] Go runtime version: %s", runtime.Version())
	log.Printf("[INFO] Log level: %s", logging.CurrentLogLevel())
	log.Printf("[INFO] CLI args: %#v", os.Args)
}

// prepareArgs builds the final argument list: @file arguments are expanded,
// then NODEATTRS_CLI_ARGS and NODEATTRS_CLI_ARGS_<SUBCOMMAND> are inserted
// after the subcommand, and a -v or -version flag becomes the version
// subcommand.
func prepareArgs(fs afero.Fs, rawArgs []string) ([]string, error) {
	args, err := expandFileBasedArgs(fs, rawArgs)
	if err != nil {
		return nil, err
	}

	// Only used to find the subcommand.
	probe := &cli.CLI{Args: args, Commands: commands}
	subcommand := probe.Subcommand()

	args, err = mergeEnvArgs(EnvCLI, subcommand, args)
	if err != nil {
		return nil, err
	}
	suffix := strings.NewReplacer("-", "_", " ", "_").Replace(subcommand)
	args, err = mergeEnvArgs(EnvCLI+"_"+strings.ToUpper(suffix), subcommand, args)
	if err != nil {
		return nil, err
	}

	if slices.ContainsFunc(args, isVersionFlag) {
		args = append([]string{"version"}, args...)
	}
	return args, nil
}

func isVersionFlag(arg string) bool {
	return arg == "-v" || arg == "-version" || arg == "--version"
}

func unknownCommandMessage(cmd string) string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	suggestion := didyoumean.NameSuggestion(cmd, names)
	if suggestion != "" {
		suggestion = fmt.Sprintf(" Did you mean %q?", suggestion)
	}
	return fmt.Sprintf("nodeattrs has no command named %q.%s\n\nTo see all of the commands, run:\n  nodeattrs -help\n\n", cmd, suggestion)
}
