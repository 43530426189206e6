package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/foomo/htmlcompare"
)

type Log struct {
	Env   string `yaml:"env" validate:"oneof=dev prod"`
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

type Loader struct {
	RespectRobots bool   `yaml:"respectRobots"`
	Agent         string `yaml:"agent"`
}

type Config struct {
	// CountElements compares the number of elements, defaults to true
	CountElements bool                     `yaml:"countElements"`
	IgnoreTags    []string                 `yaml:"ignoreTags" validate:"dive,required"`
	Ignore        []htmlcompare.IgnoreRule `yaml:"ignore" validate:"dive"`
	CacheSize     int                      `yaml:"cacheSize" validate:"gte=0"`
	Loader        Loader                   `yaml:"loader"`
	Log           Log                      `yaml:"log"`
}

// Default configuration
func Default() *Config {
	return &Config{
		CountElements: true,
		Loader: Loader{
			Agent: "htmlcompare",
		},
		Log: Log{
			Env:   "prod",
			Level: "info",
		},
	}
}

// Get loads a config file
func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		return nil, fmt.Errorf("could not read config: %w", errRead)
	}
	return Load(yamlBytes)
}

// Load parses and validates yaml, missing values are taken from Default.
func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = Default()
	if errUnmarshal := yaml.Unmarshal(yamlBytes, conf); errUnmarshal != nil {
		return nil, fmt.Errorf("could not parse config: %w", errUnmarshal)
	}
	if errValidate := conf.Validate(); errValidate != nil {
		return nil, errValidate
	}
	return conf, nil
}

// Validate checks values and ignore rules.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(validateIgnoreRule, htmlcompare.IgnoreRule{})
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// a rule without tag, attributes and classes ignores nothing
func validateIgnoreRule(sl validator.StructLevel) {
	rule := sl.Current().Interface().(htmlcompare.IgnoreRule)
	if rule.TagName == "" && rule.Attributes == nil && rule.ClassNames == nil {
		sl.ReportError(rule.TagName, "TagName", "tag", "ignorerule", "")
	}
}

// Options turns the config into validator options.
func (c *Config) Options() []htmlcompare.Option {
	opts := []htmlcompare.Option{
		htmlcompare.WithIgnoredTags(c.IgnoreTags...),
		htmlcompare.WithIgnoreRules(c.Ignore...),
	}
	if !c.CountElements {
		opts = append(opts, htmlcompare.WithoutElementCount())
	}
	if c.CacheSize > 0 {
		opts = append(opts, htmlcompare.WithDocumentCache(c.CacheSize))
	}
	return append(opts, htmlcompare.WithLoader(c.NewLoader()))
}

// NewLoader creates a source loader with the loader settings.
func (c *Config) NewLoader() *htmlcompare.Loader {
	loader := htmlcompare.NewLoader()
	loader.RespectRobots = c.Loader.RespectRobots
	if c.Loader.Agent != "" {
		loader.Agent = c.Loader.Agent
	}
	return loader
}
