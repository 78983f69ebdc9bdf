// Package gateway wires the DIS and C-DIS codecs (internal/dis,
// internal/cdis) into the bidirectional UDP pipeline described in
// spec.md §4.D: two sockets, an encoder task, a decoder task, a command
// bus, and a stats bus.
package gateway

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// UnknownPolicy selects what the encoder does with a DIS PduType it has no
// C-DIS translator for, per spec.md §4.C and §9.
type UnknownPolicy string

const (
	PolicyPassthrough UnknownPolicy = "passthrough"
	PolicyDrop        UnknownPolicy = "drop"
)

// SocketConfig describes one UDP endpoint: its bind address, optional
// multicast group/interface/TTL, and the remote address translated traffic
// is sent to, per spec.md §6.
type SocketConfig struct {
	Address            string `mapstructure:"address"`
	Port               int    `mapstructure:"port"`
	MulticastGroup     string `mapstructure:"multicast_group"`
	MulticastInterface string `mapstructure:"multicast_interface"`
	MulticastTTL       int    `mapstructure:"multicast_ttl"`

	// RemoteAddress/RemotePort is where the write task sends translated
	// datagrams. Defaults to MulticastGroup:Port when a multicast group is
	// configured, else to the limited broadcast address 255.255.255.255
	// on Port.
	RemoteAddress string `mapstructure:"remote_address"`
	RemotePort    int    `mapstructure:"remote_port"`
}

// Metadata names the running gateway instance, per spec.md §6.
type Metadata struct {
	Name    string `mapstructure:"name"`
	Author  string `mapstructure:"author"`
	Version string `mapstructure:"version"`
}

// Config is the gateway's full runtime configuration, loaded from a file by
// LoadConfig, per spec.md §6. Once loaded it is treated as immutable and
// each component holds its own copy by value, per spec.md §5.
type Config struct {
	DIS  SocketConfig `mapstructure:"dis"`
	CDIS SocketConfig `mapstructure:"cdis"`

	SiteHTTPPort int `mapstructure:"site_http_port"`

	ChannelCapacity int           `mapstructure:"channel_capacity"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	UnknownPolicy   UnknownPolicy `mapstructure:"unknown_policy"`

	Metadata Metadata `mapstructure:"metadata"`
}

// defaults mirrors the zero-config fallbacks a fresh gateway should run
// with, so a missing config file is a ConfigError only when the file was
// explicitly named.
func defaults(v *viper.Viper) {
	v.SetDefault("dis.address", "0.0.0.0")
	v.SetDefault("dis.port", 3000)
	v.SetDefault("cdis.address", "0.0.0.0")
	v.SetDefault("cdis.port", 3001)
	v.SetDefault("site_http_port", 8080)
	v.SetDefault("channel_capacity", 1024)
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("unknown_policy", string(PolicyPassthrough))
	v.SetDefault("metadata.name", "cdis-gateway")
}

// ConfigError wraps a fatal startup configuration failure, per spec.md §7.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gateway: loading config %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LoadConfig reads a gateway configuration file at path using viper, merging
// over the package defaults. An empty path loads only the defaults.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	defaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, &ConfigError{Path: path, Err: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}
	if cfg.DIS.Port == cfg.CDIS.Port && cfg.DIS.Address == cfg.CDIS.Address {
		return Config{}, &ConfigError{Path: path, Err: fmt.Errorf("dis and cdis endpoints must differ")}
	}
	return cfg, nil
}
