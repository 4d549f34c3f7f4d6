package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent cadenza configuration stored as config.toml
// in the .cadenza/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version     int               `toml:"version"`
	API         APIConfig         `toml:"api"`
	Embedding   EmbeddingConfig   `toml:"embedding"`
	VectorStore VectorStoreConfig `toml:"vector_store"`
	Eventstream EventstreamConfig `toml:"eventstream"`
	Knowledge   KnowledgeConfig   `toml:"knowledge"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// EmbeddingConfig holds embedding provider settings. Provider "charhash"
// selects the deterministic local embedder; "ollama" selects the pre-trained
// encoder with charhash failover.
type EmbeddingConfig struct {
	Provider   string `toml:"provider,omitempty"`
	Target     string `toml:"target,omitempty"`
	Model      string `toml:"model,omitempty"`
	Dimensions uint   `toml:"dimensions,omitempty"`
}

// VectorStoreConfig holds knowledge-index settings. Provider "memory" keeps
// the index in-process; "sqlite" uses a sqlite-vec table (":memory:" target
// by default, so nothing survives the session).
type VectorStoreConfig struct {
	Provider string `toml:"provider,omitempty"`
	Target   string `toml:"target,omitempty"`
}

// EventstreamConfig holds user-action telemetry settings. Provider "nop"
// discards events; "kafka" publishes them to the configured brokers.
type EventstreamConfig struct {
	Provider string `toml:"provider,omitempty"`
	Brokers  string `toml:"brokers,omitempty"`
	Topic    string `toml:"topic,omitempty"`
}

// KnowledgeConfig holds knowledge-base query settings.
type KnowledgeConfig struct {
	TopK int `toml:"top_k,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"api.listen": {
		get: func(c *Config) string { return c.API.Listen },
		set: func(c *Config, v string) error { c.API.Listen = v; return nil },
	},
	"embedding.provider": {
		get: func(c *Config) string { return c.Embedding.Provider },
		set: func(c *Config, v string) error { c.Embedding.Provider = v; return nil },
	},
	"embedding.target": {
		get: func(c *Config) string { return c.Embedding.Target },
		set: func(c *Config, v string) error { c.Embedding.Target = v; return nil },
	},
	"embedding.model": {
		get: func(c *Config) string { return c.Embedding.Model },
		set: func(c *Config, v string) error { c.Embedding.Model = v; return nil },
	},
	"embedding.dimensions": {
		get: func(c *Config) string { return strconv.FormatUint(uint64(c.Embedding.Dimensions), 10) },
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil || n == 0 {
				return fmt.Errorf("embedding.dimensions must be a positive integer")
			}
			c.Embedding.Dimensions = uint(n)
			return nil
		},
	},
	"vector_store.provider": {
		get: func(c *Config) string { return c.VectorStore.Provider },
		set: func(c *Config, v string) error { c.VectorStore.Provider = v; return nil },
	},
	"vector_store.target": {
		get: func(c *Config) string { return c.VectorStore.Target },
		set: func(c *Config, v string) error { c.VectorStore.Target = v; return nil },
	},
	"eventstream.provider": {
		get: func(c *Config) string { return c.Eventstream.Provider },
		set: func(c *Config, v string) error { c.Eventstream.Provider = v; return nil },
	},
	"eventstream.brokers": {
		get: func(c *Config) string { return c.Eventstream.Brokers },
		set: func(c *Config, v string) error { c.Eventstream.Brokers = v; return nil },
	},
	"eventstream.topic": {
		get: func(c *Config) string { return c.Eventstream.Topic },
		set: func(c *Config, v string) error { c.Eventstream.Topic = v; return nil },
	},
	"knowledge.top_k": {
		get: func(c *Config) string { return strconv.Itoa(c.Knowledge.TopK) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fmt.Errorf("knowledge.top_k must be a positive integer")
			}
			c.Knowledge.TopK = n
			return nil
		},
	},
}
