package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type options struct {
	files   []string
	prefix  string
	environ map[string]string
}

// Option configures Load.
type Option func(*options)

// WithEnvFiles reads the given dotenv files instead of ./.env. Later files
// override earlier ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// WithPrefix prepends prefix to every variable name the struct declares.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnviron replaces the process environment as the base layer. Tests use
// it to stay independent of the shell.
func WithEnviron(vars map[string]string) Option {
	return func(o *options) { o.environ = vars }
}

// Load parses T from the environment.
func Load[T any](opts ...Option) (T, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	vars, err := o.environment()
	if err != nil {
		var zero T
		return zero, err
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	})
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func (o options) environment() (map[string]string, error) {
	files, optional := o.files, false
	if len(files) == 0 {
		files, optional = []string{defaultEnvFile}, true
	}

	vars := make(map[string]string)
	for _, path := range files {
		fileVars, err := godotenv.Read(path)
		if optional && errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	base := o.environ
	if base == nil {
		base = env.ToMap(os.Environ())
	}
	for k, v := range base {
		vars[k] = v
	}
	return vars, nil
}
