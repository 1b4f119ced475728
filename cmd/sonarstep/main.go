// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// sonarstep composes the SonarQube Runner invocation for a build from
// a step config file. It stands in for the agent's process layer when
// running outside a CI host.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/util"

	"github.com/mattermost/sonar-step-sdk/pkg/gitinfo"
	"github.com/mattermost/sonar-step-sdk/pkg/java"
	"github.com/mattermost/sonar-step-sdk/pkg/params"
	"github.com/mattermost/sonar-step-sdk/pkg/reports"
	"github.com/mattermost/sonar-step-sdk/pkg/scan"
)

type stepOptions struct {
	configPath    string
	pluginRoot    string
	workdir       string
	reportPaths   []string
	jacocoExec    string
	provenanceDir string
}

func main() {
	opts := &stepOptions{}

	rootCmd := &cobra.Command{
		Use:           "sonarstep",
		Short:         "Compose and launch SonarQube Runner invocations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "sonar.yaml", "path to the step config file")
	rootCmd.PersistentFlags().StringVar(&opts.pluginRoot, "plugin-root", "", "installation root holding the bundled runner jar")
	rootCmd.PersistentFlags().StringVarP(&opts.workdir, "workdir", "w", ".", "checkout directory the scanner runs in")
	rootCmd.PersistentFlags().StringSliceVar(&opts.reportPaths, "report", []string{}, "test report path to reuse (repeatable)")
	rootCmd.PersistentFlags().StringVar(&opts.jacocoExec, "jacoco-exec", "", "path to the jacoco coverage datafile")

	composeCmd := &cobra.Command{
		Use:   "compose",
		Short: "Print the scanner command line without running it",
		RunE: func(cmd *cobra.Command, args []string) error {
			pcl, _, err := makeCommandLine(opts)
			if err != nil {
				return err
			}
			fmt.Println(pcl.Executable + " " + strings.Join(pcl.Args, " "))
			return nil
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Launch the scanner and wait for it to finish",
		RunE: func(cmd *cobra.Command, args []string) error {
			pcl, svc, err := makeCommandLine(opts)
			if err != nil {
				return err
			}
			if opts.provenanceDir != "" {
				if _, err := svc.WriteProvenance(pcl.Args, opts.provenanceDir); err != nil {
					return errors.Wrap(err, "writing invocation attestation")
				}
			}
			return errors.Wrap(pcl.Command().RunSuccess(), "running the scanner")
		},
	}
	runCmd.Flags().StringVar(&opts.provenanceDir, "provenance-dir", "", "directory to write the invocation attestation to")

	rootCmd.AddCommand(composeCmd, runCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// makeCommandLine loads the step config and composes the scanner
// invocation the way the agent would
func makeCommandLine(opts *stepOptions) (*java.ProgramCommandLine, *scan.Service, error) {
	if !util.Exists(opts.workdir) {
		return nil, nil, errors.Errorf("workdir %s does not exist", opts.workdir)
	}

	conf, err := scan.LoadConfig(opts.configPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading step config")
	}
	if err := conf.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "validating step config")
	}

	runnerParams := conf.RunnerParameters()

	// Without configured coordinates, fall back to the checkout's git
	// metadata
	if _, ok := runnerParams[params.KeyProjectVersion]; !ok {
		if version, ok := gitinfo.Version(opts.workdir); ok {
			logrus.Infof("Using git HEAD %s as project version", version)
			runnerParams[params.KeyProjectVersion] = version
		}
	}
	if _, ok := runnerParams[params.KeyProjectBranch]; !ok {
		if branch, ok := gitinfo.Branch(opts.workdir); ok {
			logrus.Infof("Using git branch %s as project branch", branch)
			runnerParams[params.KeyProjectBranch] = branch
		}
	}

	sharedParams := map[string]string{}
	if opts.jacocoExec != "" {
		sharedParams[params.KeyJacocoExecFile] = opts.jacocoExec
	}

	collector := reports.NewCollector()
	for _, path := range opts.reportPaths {
		collector.Add(path)
	}

	svc := scan.NewServiceWithOptions(collector, &scan.Options{
		PluginRoot: opts.pluginRoot,
		Workdir:    opts.workdir,
	})

	pcl, err := svc.MakeProgramCommandLine(runnerParams, sharedParams)
	if err != nil {
		return nil, nil, errors.Wrap(err, "composing scanner command line")
	}
	return pcl, svc, nil
}
