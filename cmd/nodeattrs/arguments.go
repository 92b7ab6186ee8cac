// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/spf13/afero"
)

const (
	// EnvCLI is the environment variable name to set additional CLI args.
	// A variant suffixed with the upper-cased subcommand name applies to
	// that subcommand only, such as NODEATTRS_CLI_ARGS_SHOW.
	EnvCLI = "NODEATTRS_CLI_ARGS"
)

// expandFileBasedArgs replaces each "@filename" argument with the arguments
// tokenized from that file using shell quoting rules.
//
// An argument whose file cannot be read is kept verbatim, so a literal
// argument starting with "@" still reaches the subcommand. A file that
// fails to tokenize is an error.
func expandFileBasedArgs(fs afero.Fs, args []string) ([]string, error) {
	// ret stays nil until the first expansion so the common case returns
	// args as given.
	var ret []string
	for i, arg := range args {
		filename, isFile := strings.CutPrefix(arg, "@")
		var raw []byte
		if isFile {
			var err error
			raw, err = afero.ReadFile(fs, filename)
			if err != nil {
				log.Printf("[TRACE] keeping argument %q verbatim: %s", arg, err)
				isFile = false
			}
		}
		if !isFile {
			if ret != nil {
				ret = append(ret, arg)
			}
			continue
		}

		extra, err := shellwords.Parse(string(raw))
		if err != nil {
			return args, fmt.Errorf("failed to expand %q argument: %w", arg, err)
		}
		if ret == nil {
			ret = make([]string, 0, len(args)+len(extra)-1)
			ret = append(ret, args[:i]...)
		}
		ret = append(ret, extra...)
	}
	if ret == nil {
		return args, nil
	}
	return ret, nil
}

// mergeEnvArgs inserts the arguments held in the named environment variable
// directly after the subcommand name in args.
func mergeEnvArgs(envName string, cmd string, args []string) ([]string, error) {
	v := os.Getenv(envName)
	if v == "" {
		return args, nil
	}

	log.Printf("[INFO] %s value: %q", envName, v)
	extra, err := shellwords.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("error parsing extra CLI args from %s: %w", envName, err)
	}

	// For a nested subcommand only the last word appears as its own arg.
	search := cmd
	if idx := strings.LastIndex(search, " "); idx >= 0 {
		search = cmd[idx+1:]
	}

	// Insertion point is just after the subcommand, or the very start
	// when it is not present.
	at := 0
	for i, v := range args {
		if v == search {
			at = i + 1
			break
		}
	}

	merged := make([]string, 0, len(args)+len(extra))
	merged = append(merged, args[:at]...)
	merged = append(merged, extra...)
	merged = append(merged, args[at:]...)
	return merged, nil
}
