package config

const (
	defaultAPIListen = ":8090"

	defaultEmbeddingProvider   = "charhash"
	defaultEmbeddingTarget     = "http://localhost:11434"
	defaultEmbeddingModel      = "all-minilm"
	defaultEmbeddingDimensions = 384

	defaultVectorProvider = "memory"
	defaultVectorTarget   = ":memory:"

	defaultEventstreamProvider = "nop"
	defaultEventstreamTopic    = "cadenza.actions"

	defaultKnowledgeTopK = 5
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		Embedding: EmbeddingConfig{
			Provider:   defaultEmbeddingProvider,
			Target:     defaultEmbeddingTarget,
			Model:      defaultEmbeddingModel,
			Dimensions: defaultEmbeddingDimensions,
		},
		VectorStore: VectorStoreConfig{
			Provider: defaultVectorProvider,
			Target:   defaultVectorTarget,
		},
		Eventstream: EventstreamConfig{
			Provider: defaultEventstreamProvider,
			Topic:    defaultEventstreamTopic,
		},
		Knowledge: KnowledgeConfig{
			TopK: defaultKnowledgeTopK,
		},
	}
}
