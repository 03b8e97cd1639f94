// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paramunit/paramunit/cmd/paramunit/report"
)

var (
	stylePass = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).Bold(true)
	styleFail = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).Bold(true)
	styleSkip = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))
	styleDim = lipgloss.NewStyle().Faint(true)
)

// errTestsFailed reported through the command's RunE lets main exit
// non-zero without an additional usage message.
var errTestsFailed = fmt.Errorf("paramunit: tests failed")

func newRootCmd(log *zap.Logger) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "paramunit [packages]",
		Short: "runs go tests and reports parameterized suites",
		Long: "Paramunit runs \"go test -json\" over the configured\n" +
			"packages and reports suite tests with their\n" +
			"parameterized invocations grouped by test.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, aa []string) error {
			cfg, err := loadConfig(
				configFile, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}
			if len(aa) > 0 {
				cfg.Packages = aa
			}
			return run(cmd, cfg, log)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c",
		DefaultConfigFile, "yaml config file")
	cmd.Flags().Bool("race", false, "turn the race detector on")
	cmd.Flags().BoolP("verbose", "v", false, "report each test")
	cmd.Flags().Bool("no-color", false, "suppress styled output")
	return cmd
}

// applyFlags lets set command-line flags overwrite config-file
// settings.
func applyFlags(cmd *cobra.Command, cfg *Config) error {
	for flag, target := range map[string]*bool{
		"race":     &cfg.Race,
		"verbose":  &cfg.Verbose,
		"no-color": &cfg.NoColor,
	} {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, err := cmd.Flags().GetBool(flag)
		if err != nil {
			return err
		}
		*target = value
	}
	return nil
}

// run executes "go test -json" with given configuration and prints
// the parsed results.
func run(cmd *cobra.Command, cfg *Config, log *zap.Logger) error {
	aa := cfg.goTestArgs()
	log.Debug("running go test", zap.Strings("args", aa))

	var stdout, stderr bytes.Buffer
	gotest := exec.CommandContext(cmd.Context(), "go", aa...)
	gotest.Stdout, gotest.Stderr = &stdout, &stderr
	runErr := gotest.Run()
	if runErr != nil && stdout.Len() == 0 {
		return fmt.Errorf("paramunit: go test: %w: %s",
			runErr, stderr.String())
	}

	rr, err := report.Parse(stdout.Bytes())
	if err != nil {
		return err
	}
	rr.SetErr(stderr.String())

	fmt.Fprint(cmd.OutOrStdout(), render(rr, cfg))
	if !rr.Passed() || rr.HasErr() {
		return errTestsFailed
	}
	return nil
}

// render lays out given results according to given configuration.
func render(rr *report.Results, cfg *Config) string {
	pass, fail, skip, dim := stylePass.Render, styleFail.Render,
		styleSkip.Render, styleDim.Render
	if cfg.NoColor {
		identity := func(ss ...string) string {
			return strings.Join(ss, " ")
		}
		pass, fail, skip, dim = identity, identity, identity, identity
	}

	var b strings.Builder
	if cfg.Verbose {
		rr.For(func(tr *report.TestResult) {
			renderTest(&b, tr, pass, fail, skip)
		})
	}

	failed := rr.LenFailed()
	switch {
	case rr.HasErr():
		fmt.Fprintf(&b, "%s %s\n", fail("FAIL"),
			strings.TrimSpace(rr.Err()))
	case failed > 0:
		fmt.Fprintf(&b, "%s %d of %d tests failed %s\n", fail("FAIL"),
			failed, rr.Len(), dim(rr.Duration.String()))
	default:
		fmt.Fprintf(&b, "%s %d tests %s\n", pass("PASS"),
			rr.Len(), dim(rr.Duration.String()))
	}
	return b.String()
}

type styler func(...string) string

// renderTest writes a line per test grouping the invocations of
// parameterized tests, e.g. "Adds 2/3".
func renderTest(
	b *strings.Builder, tr *report.TestResult, pass, fail, skip styler,
) {
	fmt.Fprintf(b, "%s %s\n", verdict(tr.Result, pass, fail, skip),
		tr.Name)
	for _, test := range tr.Tests() {
		ii := tr.Invocations(test)
		if len(ii) == 0 {
			sub := tr.Of(test)
			fmt.Fprintf(b, "    %s %s\n",
				verdict(sub.Result, pass, fail, skip), test)
			continue
		}
		failed := 0
		for _, i := range ii {
			failed += i.LenFailed()
		}
		v := pass("pass")
		if failed > 0 {
			v = fail("fail")
		}
		fmt.Fprintf(b, "    %s %s %d/%d\n",
			v, test, len(ii)-failed, len(ii))
	}
}

func verdict(r *report.Result, pass, fail, skip styler) string {
	switch {
	case r.Skipped:
		return skip("skip")
	case r.LenFailed() > 0:
		return fail("fail")
	}
	return pass("pass")
}
