// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package scan

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// The runner jar ships bundled with the plugin under a fixed relative
// location inside the installation root
const (
	runnerJarName = "sonar-runner-dist-2.3.jar"
	runnerJarDir  = "sonar-qube-runner"
	runnerLibDir  = "lib"
)

// Each jar resolution failure keeps its own sentinel so callers can
// tell the conditions apart with errors.Is
var (
	ErrJarMissing     = errors.New("sonar runner jar does not exist")
	ErrJarNotFile     = errors.New("sonar runner jar is not a regular file")
	ErrJarNotReadable = errors.New("sonar runner jar cannot be read")
)

// LocateRunnerJar resolves the bundled runner jar beneath the plugin
// installation root and verifies it is a readable regular file. The
// returned absolute path is the whole classpath of the launched
// process.
func LocateRunnerJar(pluginRoot string) (string, error) {
	jarPath, err := filepath.Abs(
		filepath.Join(pluginRoot, runnerJarDir, runnerLibDir, runnerJarName),
	)
	if err != nil {
		return "", errors.Wrap(err, "resolving absolute path to runner jar")
	}

	info, err := os.Stat(jarPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrJarMissing, "path %s", jarPath)
		}
		return "", errors.Wrapf(err, "checking runner jar on path %s", jarPath)
	}
	if !info.Mode().IsRegular() {
		return "", errors.Wrapf(ErrJarNotFile, "path %s", jarPath)
	}

	f, err := os.Open(jarPath)
	if err != nil {
		return "", errors.Wrapf(ErrJarNotReadable, "path %s", jarPath)
	}
	f.Close()

	return jarPath, nil
}

// isReadableFile reports whether path names an existing regular file
// the current process can open for reading
func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
