// Package config contains the code to load the locator configuration and create the provider
// chain and resolver that it describes.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/archive"
	"github.com/lyraproj/locator/matcher"
	"github.com/lyraproj/locator/provider"
	"github.com/lyraproj/locator/resolver"
	"github.com/lyraproj/locator/vfs"
	"gopkg.in/yaml.v3"
)

// FileName is the default file name for the locator configuration file.
const FileName = `locator.yaml`

// EnvConfig is the name of the environment variable that can hold the path of the configuration
// file.
const EnvConfig = `LOCATOR_CONFIG`

// Version is the only supported configuration version
const Version = 1

// DefaultProviderName is the name of the provider of the default configuration
const DefaultProviderName = `default`

type (
	// Provider describes one provider in the chain
	Provider struct {
		Name  string   `yaml:"name"`
		Base  string   `yaml:"base,omitempty"`
		Roots []string `yaml:"roots,omitempty"`
	}

	// Virtual describes the virtual filesystem
	Virtual struct {
		Dir string `yaml:"dir"`
	}

	// Config is a locator configuration. The providers are ordered from the top of the chain
	// down to the primary provider.
	Config struct {
		Version         int         `yaml:"version"`
		CaseInsensitive bool        `yaml:"case_insensitive,omitempty"`
		Providers       []*Provider `yaml:"providers"`
		Virtual         *Virtual    `yaml:"virtual,omitempty"`

		root string
		path string
	}
)

// DefaultPath returns the path of the configuration file. It is the value of the LOCATOR_CONFIG
// environment variable when set and otherwise FileName in the given directory.
func DefaultPath(dir string) string {
	if p, ok := os.LookupEnv(EnvConfig); ok && p != `` {
		return p
	}
	return filepath.Join(dir, FileName)
}

// Default returns the configuration used when no configuration file exists. It has one provider
// whose only root is the given directory.
func Default(dir string) *Config {
	return &Config{
		Version:   Version,
		Providers: []*Provider{{Name: DefaultProviderName, Roots: []string{`.`}}},
		root:      dir,
	}
}

// Load reads the configuration from the given path. If the path does not exist, the default
// configuration for the directory of the path is returned.
func Load(configPath string) (*Config, error) {
	content, err := ioutil.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			hclog.Default().Debug(`no configuration file found, using defaults`, `path`, configPath)
			return Default(filepath.Dir(configPath)), nil
		}
		return nil, err
	}
	return Parse(configPath, content)
}

// Parse creates a configuration from the given YAML content. The path is used for relative
// paths and error messages.
func Parse(configPath string, content []byte) (*Config, error) {
	cfg := &Config{root: filepath.Dir(configPath), path: configPath}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, api.Error(api.ConfigParseFailed, issue.H{`path`: configPath, `detail`: err.Error()})
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Version == 0 {
		c.Version = Version
	}
	if c.Version != Version {
		return api.Error(api.UnsupportedConfigVersion, issue.H{`version`: c.Version, `path`: c.path})
	}
	if len(c.Providers) == 0 {
		return api.Error(api.NoProviders, issue.H{`path`: c.path})
	}
	uniqueNames := make(map[string]bool, len(c.Providers))
	for i, p := range c.Providers {
		if p == nil || p.Name == `` {
			return api.Error(api.MissingProviderName, issue.H{`index`: i, `path`: c.path})
		}
		if uniqueNames[p.Name] {
			return api.Error(api.ProviderNameMultiplyDefined, issue.H{`name`: p.Name})
		}
		uniqueNames[p.Name] = true
	}
	return nil
}

// Root returns the directory holding this Config
func (c *Config) Root() string {
	return c.root
}

// Path is the full path to this Config. It is empty for a default configuration.
func (c *Config) Path() string {
	return c.path
}

// Base returns the absolute directory that relative roots of the given provider are resolved
// against.
func (c *Config) Base(p *Provider) string {
	base := c.root
	if p.Base != `` {
		if filepath.IsAbs(p.Base) {
			base = p.Base
		} else {
			base = filepath.Join(c.root, p.Base)
		}
	}
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	return base
}

// VirtualFilesystem returns the configured virtual filesystem or nil when none is configured
func (c *Config) VirtualFilesystem() *vfs.FS {
	if c.Virtual == nil || c.Virtual.Dir == `` {
		return nil
	}
	dir := c.Virtual.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.root, dir)
	}
	return vfs.NewOS(dir)
}

// Matcher returns the matcher described by the configuration
func (c *Config) Matcher() *matcher.Matcher {
	if c.CaseInsensitive {
		return matcher.New(matcher.CaseInsensitive())
	}
	return matcher.Default
}

// CreateProvider creates the provider chain and returns the primary provider. Archive
// connections are shared through the given cache, which may be nil.
func (c *Config) CreateProvider(cache *archive.Cache) (api.Provider, error) {
	return c.createProvider(cache, c.VirtualFilesystem())
}

func (c *Config) createProvider(cache *archive.Cache, fs *vfs.FS) (api.Provider, error) {
	var parent api.Provider
	for _, pc := range c.Providers {
		base := c.Base(pc)
		roots, err := ExpandRoots(base, pc.Roots)
		if err != nil {
			return nil, err
		}
		opts := []provider.Option{provider.WithBase(base), provider.WithCache(cache)}
		if fs != nil {
			opts = append(opts, provider.WithVirtualFilesystem(fs))
		}
		hclog.Default().Debug(`creating provider`, `name`, pc.Name, `roots`, fmt.Sprint(roots))
		parent = provider.New(pc.Name, parent, roots, opts...)
	}
	return parent, nil
}

// ResolverOptions returns the resolver options described by the configuration
func (c *Config) ResolverOptions() []resolver.Option {
	return c.resolverOptions(c.VirtualFilesystem())
}

func (c *Config) resolverOptions(fs *vfs.FS) []resolver.Option {
	opts := []resolver.Option{resolver.WithMatcher(c.Matcher())}
	if fs != nil {
		opts = append(opts, resolver.WithVirtualFilesystem(fs))
	}
	return opts
}

// CreateResolver creates the provider chain and a resolver for its primary provider
func (c *Config) CreateResolver(cache *archive.Cache, opts ...resolver.Option) (*resolver.Resolver, error) {
	fs := c.VirtualFilesystem()
	p, err := c.createProvider(cache, fs)
	if err != nil {
		return nil, err
	}
	return resolver.New(p, append(c.resolverOptions(fs), opts...)...), nil
}
