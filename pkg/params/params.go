// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package params models the two key-value maps a CI agent hands to a
// build step: runner parameters scoped to the step and shared config
// parameters visible across the whole build.
package params

// Runner parameter keys known to the sonar step
const (
	KeyHostURL              = "sonarHostUrl"
	KeyJDBCURL              = "sonarJDBCUrl"
	KeyJDBCUsername         = "sonarJDBCUsername"
	KeyJDBCPassword         = "sonarJDBCPassword"
	KeyProjectKey           = "sonarProjectKey"
	KeyProjectName          = "sonarProjectName"
	KeyProjectVersion       = "sonarProjectVersion"
	KeyProjectBranch        = "sonarProjectBranch"
	KeyProjectSources       = "sonarProjectSources"
	KeyProjectTests         = "sonarProjectTests"
	KeyProjectBinaries      = "sonarProjectBinaries"
	KeyProjectModules       = "sonarProjectModules"
	KeyAdditionalParameters = "additionalParameters"
	KeyJVMArgs              = "jvmArgs"
	KeyTargetJREHome        = "targetJREHome"
)

// Shared config parameter keys consumed by the sonar step. The jacoco
// datafile is published by the coverage step earlier in the build.
const (
	KeyJacocoExecFile = "build.jacoco.coverage.datafile"
)

// Accessor wraps a runner parameter map with typed lookups for the keys
// the step understands. A key missing from the map is absent; an empty
// string stored under a key is a present, empty value.
type Accessor struct {
	params map[string]string
}

// NewAccessor returns an accessor over the given runner parameters
func NewAccessor(runnerParameters map[string]string) *Accessor {
	return &Accessor{params: runnerParameters}
}

// Get looks up an arbitrary runner parameter
func (a *Accessor) Get(key string) (string, bool) {
	v, ok := a.params[key]
	return v, ok
}

func (a *Accessor) HostURL() (string, bool) { return a.Get(KeyHostURL) }

func (a *Accessor) JDBCURL() (string, bool) { return a.Get(KeyJDBCURL) }

func (a *Accessor) JDBCUsername() (string, bool) { return a.Get(KeyJDBCUsername) }

func (a *Accessor) JDBCPassword() (string, bool) { return a.Get(KeyJDBCPassword) }

func (a *Accessor) ProjectKey() (string, bool) { return a.Get(KeyProjectKey) }

func (a *Accessor) ProjectName() (string, bool) { return a.Get(KeyProjectName) }

func (a *Accessor) ProjectVersion() (string, bool) { return a.Get(KeyProjectVersion) }

func (a *Accessor) ProjectBranch() (string, bool) { return a.Get(KeyProjectBranch) }

func (a *Accessor) ProjectSources() (string, bool) { return a.Get(KeyProjectSources) }

func (a *Accessor) ProjectTests() (string, bool) { return a.Get(KeyProjectTests) }

func (a *Accessor) ProjectBinaries() (string, bool) { return a.Get(KeyProjectBinaries) }

func (a *Accessor) ProjectModules() (string, bool) { return a.Get(KeyProjectModules) }

// AdditionalParameters returns the free-text extra arguments block
func (a *Accessor) AdditionalParameters() (string, bool) {
	return a.Get(KeyAdditionalParameters)
}

// TargetJREHome returns the JRE home configured for the step, if any
func (a *Accessor) TargetJREHome() (string, bool) {
	return a.Get(KeyTargetJREHome)
}
