// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package scan implements the sonar analysis build step: it turns the
// step's configuration into the command line that launches the bundled
// SonarQube Runner, a separate Java process the agent spawns and
// monitors.
package scan

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mattermost/sonar-step-sdk/pkg/java"
	"github.com/mattermost/sonar-step-sdk/pkg/params"
)

// MainClass is the entry point of the SonarQube Runner distribution
const MainClass = "org.sonar.runner.Main"

// ReportSource exposes the test report paths collected while the build
// ran. The agent's process listener implements this; tests use a stub.
type ReportSource interface {
	CollectedReports() []string
}

// Options holds the per-build settings of the step
type Options struct {
	PluginRoot string // Installation root of the plugin, holds the runner jar
	Workdir    string // Checkout directory the scanner runs in
}

var DefaultOptions = &Options{
	Workdir: ".",
}

// Service composes the scanner invocation for one build. It is created
// by the agent once per build and discarded afterwards.
type Service struct {
	opts    *Options
	reports ReportSource
}

// NewService returns a scan service with the default options
func NewService(reports ReportSource) *Service {
	return NewServiceWithOptions(reports, DefaultOptions)
}

func NewServiceWithOptions(reports ReportSource, opts *Options) *Service {
	return &Service{
		opts:    opts,
		reports: reports,
	}
}

// Options returns the service's option set
func (s *Service) Options() *Options {
	return s.opts
}

// MakeProgramCommandLine builds the full scanner invocation from the
// runner and shared config parameter maps. Failing to resolve the
// runtime or the bundled jar is a configuration error that fails the
// step; missing optional parameters just leave their arguments out.
func (s *Service) MakeProgramCommandLine(
	runnerParameters, sharedParameters map[string]string,
) (*java.ProgramCommandLine, error) {
	accessor := params.NewAccessor(runnerParameters)

	classpath, err := LocateRunnerJar(s.opts.PluginRoot)
	if err != nil {
		return nil, errors.Wrap(err, "resolving the scanner classpath")
	}

	javaHome, _ := accessor.TargetJREHome()
	builder := &java.Builder{
		JavaHome:         javaHome,
		Workdir:          s.opts.Workdir,
		EnvVars:          map[string]string{},
		SystemProperties: map[string]string{},
		JvmArgs:          java.ExtractJVMArgs(runnerParameters, params.KeyJVMArgs),
		Classpath:        classpath,
		MainClass:        MainClass,
		ProgramArgs:      ComposeArgs(accessor, sharedParameters, s.reports.CollectedReports()),
	}

	cmd, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building the scanner command line")
	}

	logrus.Info("Starting SonarQube Runner")
	for _, arg := range cmd.Args {
		logrus.Info(arg)
	}

	return cmd, nil
}
