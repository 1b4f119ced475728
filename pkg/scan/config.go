package scan

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mattermost/sonar-step-sdk/pkg/params"
)

// LoadConfig reads a step config file and returns a config object
func LoadConfig(path string) (*Config, error) {
	yamlData, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading step configuration file")
	}
	conf := &Config{}
	if err := yaml.Unmarshal(yamlData, conf); err != nil {
		return nil, errors.Wrap(err, "parsing config yaml data")
	}

	return conf, nil
}

// Config declares an analysis step in a file instead of the agent UI
type Config struct {
	Server  ServerConfig  `yaml:"server"`  // SonarQube server to report to
	JDBC    JDBCConfig    `yaml:"jdbc"`    // Database connection for older servers
	Project ProjectConfig `yaml:"project"` // Project coordinates and layout
	JRE     string        `yaml:"jre"`     // JRE home to launch the scanner with
	JVMArgs string        `yaml:"jvmArgs"` // Raw JVM arguments, whitespace separated
	// Extra scanner arguments, one per line, passed through verbatim
	AdditionalParameters string `yaml:"additionalParameters"`
}

type ServerConfig struct {
	URL string `yaml:"url"`
}

type JDBCConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type ProjectConfig struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	Branch   string `yaml:"branch"`
	Sources  string `yaml:"sources"`
	Tests    string `yaml:"tests"`
	Binaries string `yaml:"binaries"`
	Modules  string `yaml:"modules"`
}

// Validate checks the configuration values to make sure they are complete
func (conf *Config) Validate() error {
	if conf.Project.Key == "" {
		return errors.New("project key is missing")
	}
	if conf.Project.Sources == "" {
		return errors.New("project sources path is missing")
	}
	logrus.Info("Step configuration is valid")
	return nil
}

// RunnerParameters flattens the config into the runner parameter map
// the step consumes. Blank fields stay out of the map so the composer
// treats them as absent.
func (conf *Config) RunnerParameters() map[string]string {
	p := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			p[key] = value
		}
	}
	set(params.KeyHostURL, conf.Server.URL)
	set(params.KeyJDBCURL, conf.JDBC.URL)
	set(params.KeyJDBCUsername, conf.JDBC.Username)
	set(params.KeyJDBCPassword, conf.JDBC.Password)
	set(params.KeyProjectKey, conf.Project.Key)
	set(params.KeyProjectName, conf.Project.Name)
	set(params.KeyProjectVersion, conf.Project.Version)
	set(params.KeyProjectBranch, conf.Project.Branch)
	set(params.KeyProjectSources, conf.Project.Sources)
	set(params.KeyProjectTests, conf.Project.Tests)
	set(params.KeyProjectBinaries, conf.Project.Binaries)
	set(params.KeyProjectModules, conf.Project.Modules)
	set(params.KeyAdditionalParameters, conf.AdditionalParameters)
	set(params.KeyJVMArgs, conf.JVMArgs)
	set(params.KeyTargetJREHome, conf.JRE)
	return p
}
