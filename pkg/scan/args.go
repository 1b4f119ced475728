// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package scan

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mattermost/sonar-step-sdk/pkg/params"
)

// ComposeArgs translates the step configuration into the ordered
// program argument list for the scanner. Configured values become one
// -Dkey=value argument each, in a fixed order; values that were never
// configured are skipped without complaint.
func ComposeArgs(
	accessor *params.Accessor, sharedParameters map[string]string, collectedReports []string,
) []string {
	args := []string{}

	args = addArg(args, "-Dsonar.host.url", accessor.HostURL)
	args = addArg(args, "-Dsonar.jdbc.url", accessor.JDBCURL)
	args = addArg(args, "-Dsonar.jdbc.username", accessor.JDBCUsername)
	args = addArg(args, "-Dsonar.jdbc.password", accessor.JDBCPassword)
	args = addArg(args, "-Dsonar.projectKey", accessor.ProjectKey)
	args = addArg(args, "-Dsonar.projectName", accessor.ProjectName)
	args = addArg(args, "-Dsonar.projectVersion", accessor.ProjectVersion)
	args = addArg(args, "-Dsonar.branch", accessor.ProjectBranch)
	args = addArg(args, "-Dsonar.sources", accessor.ProjectSources)
	args = addArg(args, "-Dsonar.tests", accessor.ProjectTests)
	args = addArg(args, "-Dsonar.binaries", accessor.ProjectBinaries)
	args = addArg(args, "-Dsonar.modules", accessor.ProjectModules)

	// The additional parameters block is free text, one argument per
	// line, appended verbatim
	if additional, ok := accessor.AdditionalParameters(); ok {
		args = append(args, strings.Split(additional, "\n")...)
	}

	if len(collectedReports) > 0 {
		args = append(args, "-Dsonar.dynamicAnalysis=reuseReports")
		args = append(args, "-Dsonar.junit.reportsPath="+strings.Join(collectedReports, ","))
	}

	// Coverage data is only referenced when the exec file the coverage
	// step announced is actually there and readable. Anything else
	// means coverage was not gathered and the scanner runs without it.
	if execFile, ok := sharedParameters[params.KeyJacocoExecFile]; ok {
		if isReadableFile(execFile) {
			args = append(args, "-Dsonar.java.coveragePlugin=jacoco")
			args = append(args, "-Dsonar.jacoco.reportPath="+execFile)
		} else {
			logrus.Debugf("Jacoco exec file %s not readable, skipping coverage arguments", execFile)
		}
	}

	return args
}

// addArg appends key=value to the list only when the getter reports
// the value as present
func addArg(args []string, key string, get func() (string, bool)) []string {
	value, ok := get()
	if !ok {
		return args
	}
	return append(args, key+"="+value)
}
