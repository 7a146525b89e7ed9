package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	defaultEnvFile   = ".env"
)

// Option customizes Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	envFile   string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// WithEnvFile names the dotenv file merged into the environment before the
// APP_ overrides are read. "" skips dotenv; the default is ".env".
func WithEnvFile(path string) Option {
	return func(o *loadOptions) { o.envFile = path }
}

// layer is one source in the configuration stack.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the configuration for profile. Later layers override earlier
// ones:
//
//	defaults  built into the binary
//	base      {configDir}/base.yaml
//	profile   {configDir}/{profile}.yaml
//	env       APP_* variables, including any from the dotenv file that are
//	          not already set in the process environment
//
// An APP_ variable is matched against the keys already loaded, so
// APP_DATABASE_CONNECT_RETRY_MAX_ATTEMPTS sets database.connect_retry.max_attempts
// rather than database.connect.retry.max.attempts. Comma-separated values
// fill list keys such as http.cors.allowed_origins.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir, envFile: defaultEnvFile}
	for _, opt := range opts {
		opt(&o)
	}
	if err := loadEnvFile(o.envFile); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	for _, l := range []layer{
		{name: "defaults", load: func(k *koanf.Koanf) error {
			return k.Load(confmap.Provider(defaults(), "."), nil)
		}},
		{name: "base config", load: yamlLayer(filepath.Join(o.configDir, "base.yaml"))},
		{name: "profile config", load: yamlLayer(filepath.Join(o.configDir, profile+".yaml"))},
		{name: "environment", load: envLayer},
	} {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func yamlLayer(path string) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
}

// envLayer applies APP_ variables on top of k, resolving each name against
// the keys the earlier layers produced.
func envLayer(k *koanf.Koanf) error {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			flat := strings.ToLower(strings.TrimPrefix(name, envPrefix))
			key, ok := known[flat]
			if !ok {
				return strings.ReplaceAll(flat, "_", "."), value
			}
			switch k.Get(key).(type) {
			case []any, []string:
				return key, strings.Split(value, ",")
			}
			return key, value
		},
	}), nil)
}

// loadEnvFile merges a dotenv file into the process environment. A missing
// file is fine.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
