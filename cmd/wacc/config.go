/*
File : wacc/cmd/wacc/config.go
Config supplies the three host-configurable exit codes spec.md §6 leaves
to the CLI: one each for Syntax, Semantic, and Type errors. A wacc.yaml in
the directory the checker is run from overrides the defaults; its absence is not an error, since the compiler works fine with
the built-in codes.
*/
package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the exit codes returned for each CheckerError kind.
type Config struct {
	SyntaxExitCode   int `yaml:"syntax_exit_code"`
	SemanticExitCode int `yaml:"semantic_exit_code"`
	TypeExitCode     int `yaml:"type_exit_code"`
}

// defaultConfig mirrors a conventional compiler's exit-code convention:
// every failure kind exits 1 unless wacc.yaml says otherwise.
func defaultConfig() Config {
	return Config{SyntaxExitCode: 1, SemanticExitCode: 1, TypeExitCode: 1}
}

// loadConfig reads path if it exists and merges it over defaultConfig.
// A missing file is not an error; a malformed one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
