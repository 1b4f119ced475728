// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package java assembles command lines for external Java processes
// launched by build steps.
package java

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/release-utils/command"
)

// Builder collects the pieces of a Java process invocation. Zero values
// are fine for everything except MainClass; Build resolves the runtime
// and flattens the pieces into a ProgramCommandLine.
type Builder struct {
	JavaHome         string            // JRE home, falls back to JAVA_HOME when blank
	Workdir          string            // Working directory for the process
	EnvVars          map[string]string // Extra environment, empty for the sonar step
	SystemProperties map[string]string // -D properties set before the classpath
	JvmArgs          []string          // Raw JVM arguments
	Classpath        string            // Single string handed to -classpath
	MainClass        string            // Entry point, required
	ProgramArgs      []string          // Arguments after the main class
}

// ProgramCommandLine is a fully resolved process invocation ready to be
// handed to the agent's process layer.
type ProgramCommandLine struct {
	Executable string
	Workdir    string
	EnvVars    map[string]string
	Args       []string
}

// Build resolves the java binary and flattens the invocation
func (b *Builder) Build() (*ProgramCommandLine, error) {
	if b.MainClass == "" {
		return nil, errors.New("unable to build java command line: no main class set")
	}

	javaBin, err := resolveJavaBinary(b.JavaHome)
	if err != nil {
		return nil, errors.Wrap(err, "resolving java runtime")
	}

	args := []string{}
	args = append(args, b.JvmArgs...)

	// System properties are emitted in lexical key order to keep the
	// command line stable
	propKeys := make([]string, 0, len(b.SystemProperties))
	for k := range b.SystemProperties {
		propKeys = append(propKeys, k)
	}
	sort.Strings(propKeys)
	for _, k := range propKeys {
		args = append(args, fmt.Sprintf("-D%s=%s", k, b.SystemProperties[k]))
	}

	if b.Classpath != "" {
		args = append(args, "-classpath", b.Classpath)
	}
	args = append(args, b.MainClass)
	args = append(args, b.ProgramArgs...)

	envVars := map[string]string{}
	for k, v := range b.EnvVars {
		envVars[k] = v
	}

	return &ProgramCommandLine{
		Executable: javaBin,
		Workdir:    b.Workdir,
		EnvVars:    envVars,
		Args:       args,
	}, nil
}

// Command wraps the invocation in an executable command object. Running
// it (or not) is the caller's business.
func (p *ProgramCommandLine) Command() *command.Command {
	cmd := command.NewWithWorkDir(p.Workdir, p.Executable, p.Args...)
	if len(p.EnvVars) > 0 {
		envStr := []string{}
		for k, v := range p.EnvVars {
			envStr = append(envStr, fmt.Sprintf("%s=%s", k, v))
		}
		cmd = cmd.Env(envStr...)
	}
	return cmd
}

// ExtractJVMArgs pulls the free-text JVM arguments value out of a
// runner parameter map and splits it on whitespace. Missing or blank
// values yield an empty list.
func ExtractJVMArgs(runnerParameters map[string]string, key string) []string {
	return strings.Fields(runnerParameters[key])
}

// resolveJavaBinary locates the java executable under the given home
// directory, falling back to JAVA_HOME. Failing to resolve a home is a
// configuration error, the step cannot continue without a runtime.
func resolveJavaBinary(javaHome string) (string, error) {
	home := javaHome
	if home == "" {
		home = os.Getenv("JAVA_HOME")
	}
	if home == "" {
		return "", errors.New("no JRE home configured and JAVA_HOME is not set")
	}
	return filepath.Join(home, "bin", "java"), nil
}
