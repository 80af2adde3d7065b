package models

// Repository is a package source described by a non-options section
type Repository struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Servers     []string `json:"servers" yaml:"servers" toml:"servers"`
	SigLevel    string   `json:"sig_level" yaml:"sig_level" toml:"sig_level"`
	Usage       Usage    `json:"usage" yaml:"usage" toml:"usage"`
	CacheServer *string  `json:"cache_server,omitempty" yaml:"cache_server,omitempty" toml:"cache_server,omitempty"`
}

// NewRepository creates a repository with default SigLevel and Usage
func NewRepository(name string) Repository {
	return Repository{
		Name:     name,
		Servers:  []string{},
		SigLevel: DefaultSigLevel,
		Usage:    UsageSync,
	}
}
