package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v8"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ---------------------------

type ConfigMap struct {
	Debug bool `yaml:"debug"`
	// Pretty log output
	PrettyLogOutput bool `yaml:"prettyLogOutput"`
	// HTTP Parameters
	HttpHost string `yaml:"httpHost"`
	HttpPort int    `yaml:"httpPort"`
	// Metric used when a request does not name one. The eval core itself
	// always defaults to euclidean, this only fills in absent request types.
	DefaultType string `yaml:"defaultType"`
}

var Cfg ConfigMap

// ---------------------------

func init() {
	Cfg = LoadConfig()
}

func LoadConfig() ConfigMap {
	configMap := ConfigMap{
		HttpHost: "localhost",
		HttpPort: 8081,
	}
	// First parse yaml file
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get working directory")
	}
	cFilePath := filepath.Join(cwd, "config.yaml")
	cFile, err := os.Open(cFilePath)
	if err != nil {
		log.Debug().Err(err).Str("path", cFilePath).Msg("No config file, using defaults")
	} else {
		decoder := yaml.NewDecoder(cFile)
		err = decoder.Decode(&configMap)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to parse config file")
		}
	}
	// Then parse environment variables
	opts := env.Options{Prefix: "DISTMAT_", UseFieldNameByDefault: true}
	if err := env.ParseWithOptions(&configMap, opts); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse env")
	}
	return configMap
}
