// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

func TestMain_cliArgsFromEnv(t *testing.T) {
	// Restore original CLI args
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	commands = make(map[string]cli.CommandFactory)
	defer func() {
		commands = nil
	}()
	testCommandName := "unit-test-cli-args"
	testCommand := &testCommandCLI{}
	commands[testCommandName] = func() (cli.Command, error) {
		return testCommand, nil
	}

	cases := []struct {
		Name     string
		Args     []string
		Value    string
		Expected []string
		Err      bool
	}{
		{
			"no env",
			[]string{testCommandName, "foo", "bar"},
			"",
			[]string{"foo", "bar"},
			false,
		},
		{
			"both env var and CLI",
			[]string{testCommandName, "foo", "bar"},
			"-dir baz",
			[]string{"-dir", "baz", "foo", "bar"},
			false,
		},
		{
			"only env var",
			[]string{testCommandName},
			"-dir bar",
			[]string{"-dir", "bar"},
			false,
		},
		{
			"cli string has blank values",
			[]string{testCommandName, "bar", "", "baz"},
			"-dir bar",
			[]string{"-dir", "bar", "bar", "", "baz"},
			false,
		},
		{
			"no command",
			[]string{},
			"-dir bar",
			nil,
			true,
		},
		{
			"single quoted strings",
			[]string{testCommandName, "foo"},
			"-dir 'bar baz'",
			[]string{"-dir", "bar baz", "foo"},
			false,
		},
		{
			"double quoted single quoted strings",
			[]string{testCommandName, "foo"},
			`-dir "'bar baz'"`,
			[]string{"-dir", "'bar baz'", "foo"},
			false,
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d-%s", i, tc.Name), func(t *testing.T) {
			if tc.Value != "" {
				t.Setenv(EnvCLI, tc.Value)
			}

			args := make([]string, len(tc.Args)+1)
			args[0] = oldArgs[0] // process name
			copy(args[1:], tc.Args)

			os.Args = args
			testCommand.Args = nil
			exit := realMain()
			if (exit != 0) != tc.Err {
				t.Fatalf("bad: %d", exit)
			}
			if tc.Err {
				return
			}

			if diff := cmp.Diff(tc.Expected, testCommand.Args); diff != "" {
				t.Fatalf("wrong args\n%s", diff)
			}
		})
	}
}

func TestMain_cliArgsFromEnvTargeted(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	commands = make(map[string]cli.CommandFactory)
	defer func() {
		commands = nil
	}()

	cases := []struct {
		Name     string
		Command  string
		EnvVar   string
		Args     []string
		Value    string
		Expected []string
	}{
		{
			"targeted to another command",
			"show",
			EnvCLI + "_GET",
			[]string{"show", "foo"},
			"-json",
			[]string{"foo"},
		},
		{
			"targeted to this command",
			"show",
			EnvCLI + "_SHOW",
			[]string{"show", "foo"},
			"-json",
			[]string{"-json", "foo"},
		},
		{
			"targeted to a command with a hyphen",
			"show-all",
			EnvCLI + "_SHOW_ALL",
			[]string{"show-all", "foo"},
			"-json",
			[]string{"-json", "foo"},
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d-%s", i, tc.Name), func(t *testing.T) {
			testCommand := &testCommandCLI{}
			defer func() { delete(commands, tc.Command) }()
			commands[tc.Command] = func() (cli.Command, error) {
				return testCommand, nil
			}

			t.Setenv(tc.EnvVar, tc.Value)

			os.Args = append([]string{oldArgs[0]}, tc.Args...)
			if exit := realMain(); exit != 0 {
				t.Fatalf("unexpected exit status %d; want 0", exit)
			}
			if diff := cmp.Diff(tc.Expected, testCommand.Args); diff != "" {
				t.Fatalf("wrong args\n%s", diff)
			}
		})
	}
}

func TestMain_versionShortcut(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	commands = make(map[string]cli.CommandFactory)
	defer func() {
		commands = nil
	}()
	testCommand := &testCommandCLI{}
	commands["version"] = func() (cli.Command, error) {
		return testCommand, nil
	}

	os.Args = []string{oldArgs[0], "-v"}
	if exit := realMain(); exit != 0 {
		t.Fatalf("unexpected exit status %d; want 0", exit)
	}
	if diff := cmp.Diff([]string{"-v"}, testCommand.Args); diff != "" {
		t.Fatalf("wrong args\n%s", diff)
	}
}

func TestMain_unknownCommand(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	commands = map[string]cli.CommandFactory{
		"show": func() (cli.Command, error) {
			return &testCommandCLI{}, nil
		},
	}
	defer func() {
		commands = nil
	}()

	os.Args = []string{oldArgs[0], "shwo"}
	if exit := realMain(); exit != 1 {
		t.Fatalf("unexpected exit status %d; want 1", exit)
	}
}

func TestExpandFileBasedArgs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "args.txt", []byte(`-dir "my attrs" -json`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "bad.txt", []byte(`-dir "unterminated`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		args    []string
		want    []string
		wantErr string
	}{
		"no file args": {
			args: []string{"show", "a.b"},
			want: []string{"show", "a.b"},
		},
		"expanded in place": {
			args: []string{"show", "@args.txt", "a.b"},
			want: []string{"show", "-dir", "my attrs", "-json", "a.b"},
		},
		"missing file kept verbatim": {
			args: []string{"get", "@nope", "@args.txt"},
			want: []string{"get", "@nope", "-dir", "my attrs", "-json"},
		},
		"tokenize error": {
			args:    []string{"show", "@bad.txt"},
			wantErr: `failed to expand "@bad.txt" argument`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := expandFileBasedArgs(fs, test.args)
			if test.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), test.wantErr) {
					t.Fatalf("wrong error %v; want %q", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("wrong result\n%s", diff)
			}
		})
	}
}

func TestHelpFunc(t *testing.T) {
	got := helpFunc(map[string]cli.CommandFactory{
		"show": func() (cli.Command, error) {
			return &testCommandCLI{synopsis: "Show things"}, nil
		},
		"version": func() (cli.Command, error) {
			return &testCommandCLI{synopsis: "Show the version"}, nil
		},
	})

	for _, want := range []string{
		"Usage: nodeattrs",
		"  show     Show things\n",
		"  version  Show the version\n",
		"-version",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("help output is missing %q\n%s", want, got)
		}
	}
}

type testCommandCLI struct {
	Args     []string
	synopsis string
}

func (c *testCommandCLI) Run(args []string) int {
	c.Args = args
	return 0
}

func (c *testCommandCLI) Synopsis() string { return c.synopsis }
func (c *testCommandCLI) Help() string     { return "" }

func TestUnknownCommandMessage(t *testing.T) {
	commands = map[string]cli.CommandFactory{
		"show":  nil,
		"trace": nil,
	}
	defer func() {
		commands = nil
	}()

	got := unknownCommandMessage("shwo")
	if want := `nodeattrs has no command named "shwo". Did you mean "show"?`; !strings.HasPrefix(got, want) {
		t.Errorf("wrong message\ngot:  %q\nwant prefix: %q", got, want)
	}

	got = unknownCommandMessage("frobnicate")
	if strings.Contains(got, "Did you mean") {
		t.Errorf("unexpected suggestion in %q", got)
	}
}
