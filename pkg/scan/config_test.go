package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattermost/sonar-step-sdk/pkg/params"
)

func TestParseConfig(t *testing.T) {
	testfile := `---
server:
  url: http://sonar.example.com:9000
jdbc:
  url: jdbc:postgresql://db/sonar
  username: sonar
project:
  key: com.example:app
  name: Example App
  branch: release-1.4
  sources: src
  tests: test
jre: /opt/jre
jvmArgs: -Xmx512m
additionalParameters: |-
  -Dsonar.language=java
  -Dsonar.verbose=true
`
	path := filepath.Join(t.TempDir(), "sonar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testfile), os.FileMode(0o644)))

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, conf.Validate())

	require.Equal(t, "http://sonar.example.com:9000", conf.Server.URL)
	require.Equal(t, "jdbc:postgresql://db/sonar", conf.JDBC.URL)
	require.Equal(t, "sonar", conf.JDBC.Username)
	require.Equal(t, "com.example:app", conf.Project.Key)
	require.Equal(t, "/opt/jre", conf.JRE)

	p := conf.RunnerParameters()
	require.Equal(t, "Example App", p[params.KeyProjectName])
	require.Equal(t, "release-1.4", p[params.KeyProjectBranch])
	require.Equal(t, "-Dsonar.language=java\n-Dsonar.verbose=true", p[params.KeyAdditionalParameters])

	// Blank config fields must not end up in the map as empty values
	_, ok := p[params.KeyJDBCPassword]
	require.False(t, ok)
	_, ok = p[params.KeyProjectBinaries]
	require.False(t, ok)
}

func TestConfigValidate(t *testing.T) {
	config := Config{
		Project: ProjectConfig{
			Key:     "com.example:app",
			Sources: "src",
		},
	}

	tests := []struct {
		Setup       func(*Config)
		ShouldError bool
	}{
		{func(c *Config) {}, false},                      // No error
		{func(c *Config) { c.Project.Key = "" }, true},   // Lacks project key
		{func(c *Config) { c.Project.Sources = "" }, true}, // Lacks sources
	}

	for _, tc := range tests {
		sut := config
		tc.Setup(&sut)
		if tc.ShouldError {
			require.Error(t, sut.Validate())
		} else {
			require.NoError(t, sut.Validate())
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
