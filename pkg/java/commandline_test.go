// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package java

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderBuild(t *testing.T) {
	b := &Builder{
		JavaHome:  "/opt/jre",
		Workdir:   "/tmp/checkout",
		JvmArgs:   []string{"-Xmx512m"},
		Classpath: "/plugins/tool/lib/tool.jar",
		MainClass: "org.example.Main",
		ProgramArgs: []string{
			"-Dsonar.projectKey=key",
			"-Dsonar.sources=src",
		},
		SystemProperties: map[string]string{
			"b.prop": "2",
			"a.prop": "1",
		},
	}

	cmd, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/opt/jre", "bin", "java"), cmd.Executable)
	require.Equal(t, "/tmp/checkout", cmd.Workdir)
	require.NotNil(t, cmd.EnvVars)
	require.Empty(t, cmd.EnvVars)
	require.Equal(t, []string{
		"-Xmx512m",
		"-Da.prop=1",
		"-Db.prop=2",
		"-classpath", "/plugins/tool/lib/tool.jar",
		"org.example.Main",
		"-Dsonar.projectKey=key",
		"-Dsonar.sources=src",
	}, cmd.Args)
}

func TestBuilderRequiresMainClass(t *testing.T) {
	b := &Builder{JavaHome: "/opt/jre"}
	_, err := b.Build()
	require.Error(t, err)
}

func TestBuilderJavaHomeFallback(t *testing.T) {
	t.Setenv("JAVA_HOME", "/usr/lib/jvm/default")
	b := &Builder{MainClass: "org.example.Main"}
	cmd, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/usr/lib/jvm/default", "bin", "java"), cmd.Executable)

	t.Setenv("JAVA_HOME", "")
	_, err = b.Build()
	require.Error(t, err)
}

func TestExtractJVMArgs(t *testing.T) {
	params := map[string]string{
		"jvmArgs": "-Xmx512m\n-XX:MaxPermSize=256m -Dfile.encoding=UTF-8",
	}
	require.Equal(t, []string{
		"-Xmx512m", "-XX:MaxPermSize=256m", "-Dfile.encoding=UTF-8",
	}, ExtractJVMArgs(params, "jvmArgs"))

	require.Empty(t, ExtractJVMArgs(params, "missing"))
	require.Empty(t, ExtractJVMArgs(map[string]string{"jvmArgs": "   "}, "jvmArgs"))
}
