/*
Paramunit runs the go tests of a module's packages and reports
parameterized suite-tests with their invocations grouped by test.

Usage:

	paramunit [packages...] [flags]

Without arguments paramunit tests the current directory and its
descending packages.  Packages, additional "go test" arguments and the
reporting style may also be configured through a .paramunit.yaml file
in the working directory:

	packages: [./pkg/..., ./cmd/...]
	args: [-count=1]
	race: true
	verbose: true

Command-line flags overwrite config-file settings.  Sample output:

	pass TestParsing
	    pass Reports_a_passing_test
	    pass Groups_invocations_of_parameterized_tests
	fail TestCalculator
	    fail Adds 2/3
	    pass Works
	FAIL 1 of 6 tests failed 250ms

Paramunit exits non-zero iff a test failed or the test run itself
errored.
*/
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	log := newLogger()
	defer log.Sync()
	if err := newRootCmd(log).Execute(); err != nil {
		if err != errTestsFailed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// newLogger provides diagnostics on stderr; -v output of tests is
// rendered by the run-command, not logged.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if os.Getenv("PARAMUNIT_DEBUG") == "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
