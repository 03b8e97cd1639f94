// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/paramunit/paramunit"
	"github.com/paramunit/paramunit/cmd/paramunit/report"
)

type config struct{ paramunit.Suite }

func (s *config) SetUp(t *paramunit.T) { t.Parallel() }

func (s *config) Defaults_to_all_descending_packages(t *paramunit.T) {
	cfg := &Config{}
	t.Eq("test -json ./...", strings.Join(cfg.goTestArgs(), " "))
}

func (s *config) Passes_race_args_and_packages_on(t *paramunit.T) {
	cfg := &Config{
		Packages: []string{"./pkg/..."},
		Args:     []string{"-count=1"},
		Race:     true,
	}
	t.Eq("test -json -race -count=1 ./pkg/...",
		strings.Join(cfg.goTestArgs(), " "))
}

func (s *config) Is_read_from_a_yaml_file(t *paramunit.T) {
	d := t.FS().Tmp()
	d.MkFile(DefaultConfigFile, []byte(
		"packages: [./cmd/...]\nrace: true\nverbose: true\n"))
	cfg, err := loadConfig(
		d.Path()+"/"+DefaultConfigFile, true)
	t.FatalOn(err)
	t.Eq("./cmd/...", cfg.Packages[0])
	t.True(cfg.Race)
	t.True(cfg.Verbose)
	t.Not().True(cfg.NoColor)
}

func (s *config) Tolerates_a_missing_default_file(t *paramunit.T) {
	cfg, err := loadConfig(
		t.FS().Tmp().Path()+"/"+DefaultConfigFile, false)
	t.FatalOn(err)
	t.Eq(0, len(cfg.Packages))
}

func (s *config) Fails_on_a_missing_requested_file(t *paramunit.T) {
	_, err := loadConfig(
		t.FS().Tmp().Path()+"/"+DefaultConfigFile, true)
	t.Err(err)
}

func TestConfig(t *testing.T) {
	t.Parallel()
	paramunit.Run(&config{}, t)
}

type rendering struct{ paramunit.Suite }

func (s *rendering) SetUp(t *paramunit.T) { t.Parallel() }

func (s *rendering) sample(t *paramunit.T) *report.Results {
	rr, err := report.Parse([]byte(strings.Join([]string{
		`{"Time":"2025-05-01T10:00:00Z","Action":"run",` +
			`"Package":"p","Test":"TestRun"}`,
		`{"Time":"2025-05-01T10:00:00Z","Action":"run",` +
			`"Package":"p","Test":"TestRun/Adds#0"}`,
		`{"Time":"2025-05-01T10:00:00Z","Action":"pass",` +
			`"Package":"p","Test":"TestRun/Adds#0"}`,
		`{"Time":"2025-05-01T10:00:00Z","Action":"run",` +
			`"Package":"p","Test":"TestRun/Adds#1"}`,
		`{"Time":"2025-05-01T10:00:00Z","Action":"fail",` +
			`"Package":"p","Test":"TestRun/Adds#1"}`,
		`{"Time":"2025-05-01T10:00:00Z","Action":"run",` +
			`"Package":"p","Test":"TestRun/Works"}`,
		`{"Time":"2025-05-01T10:00:00Z","Action":"pass",` +
			`"Package":"p","Test":"TestRun/Works"}`,
		`{"Time":"2025-05-01T10:00:00Z","Action":"fail",` +
			`"Package":"p","Test":"TestRun"}`,
	}, "\n")))
	t.FatalOn(err)
	return rr
}

func (s *rendering) Summarizes_a_failing_run(t *paramunit.T) {
	out := render(s.sample(t), &Config{NoColor: true})
	t.Contains(out, "FAIL 1 of 3 tests failed")
}

func (s *rendering) Groups_parameterized_invocations(t *paramunit.T) {
	out := render(s.sample(t), &Config{NoColor: true, Verbose: true})
	t.Contains(out, "fail Adds 1/2")
	t.Contains(out, "pass Works")
}

func (s *rendering) Summarizes_a_passing_run(t *paramunit.T) {
	rr, err := report.Parse([]byte(
		`{"Time":"2025-05-01T10:00:00Z","Action":"run",` +
			`"Package":"p","Test":"TestWorks"}` + "\n" +
			`{"Time":"2025-05-01T10:00:00Z","Action":"pass",` +
			`"Package":"p","Test":"TestWorks"}`))
	t.FatalOn(err)
	t.Contains(render(rr, &Config{NoColor: true}), "PASS 1 tests")
}

func TestRendering(t *testing.T) {
	t.Parallel()
	paramunit.Run(&rendering{}, t)
}
