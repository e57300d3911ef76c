package main

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultInput      = "docs.json"
	defaultOutputRoot = "site/docs/apis"
	defaultSuffix     = "Plugin"
	defaultFileName   = "api.html"
	defaultConfigPath = "plugin-docs.yaml"
)

// config mirrors the optional YAML file. Empty fields fall back to the
// defaults above.
type config struct {
	Input    string `yaml:"input"`
	Out      string `yaml:"out"`
	Suffix   string `yaml:"suffix"`
	FileName string `yaml:"file_name"`
}

func defaultConfig() config {
	return config{
		Input:    defaultInput,
		Out:      defaultOutputRoot,
		Suffix:   defaultSuffix,
		FileName: defaultFileName,
	}
}

// loadConfig reads path. A missing file is only an error when required is
// set, i.e. the path was given explicitly.
func loadConfig(fs afero.Fs, path string, required bool) (config, error) {
	cfg := defaultConfig()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, errors.Errorf("read config: %w", err)
	}
	var file config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(file)
	return cfg, nil
}

// merge overlays the non-empty fields of other.
func (c *config) merge(other config) {
	if other.Input != "" {
		c.Input = other.Input
	}
	if other.Out != "" {
		c.Out = other.Out
	}
	if other.Suffix != "" {
		c.Suffix = other.Suffix
	}
	if other.FileName != "" {
		c.FileName = other.FileName
	}
}

func (c config) validate() error {
	if c.Input == "" {
		return errors.New("input path is required")
	}
	if c.Out == "" {
		return errors.New("output root is required")
	}
	if c.FileName == "" {
		return errors.New("output file name is required")
	}
	return nil
}
