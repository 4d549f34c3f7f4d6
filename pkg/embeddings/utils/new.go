// Package embeddingsutils is the embedder utility package
package embeddingsutils

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/embeddings"
	"github.com/cadenzahq/cadenza/pkg/embeddings/charhash"
	"github.com/cadenzahq/cadenza/pkg/embeddings/failover"
	"github.com/cadenzahq/cadenza/pkg/embeddings/ollama"
)

type NewEmbedderOpts struct {
	ProviderType string
	Target       string
	Model        string
	Dimensions   uint
	Logger       *zap.Logger
}

// NewEmbedder builds the embedder stack for a provider type. The "ollama"
// provider is always wrapped in a charhash failover so embedding never hard
// fails when the encoder is unreachable.
func NewEmbedder(o *NewEmbedderOpts) (embeddings.Embedder, error) {
	ch := charhash.NewEmbedder(int(o.Dimensions))

	switch o.ProviderType {
	case "charhash":
		return ch, nil
	case "ollama":
		primary, err := ollama.NewEmbedder(ollama.EmbedderConfig{
			BaseURL: o.Target,
			Model:   o.Model,
		})
		if err != nil {
			return nil, err
		}
		return failover.NewEmbedder(primary, ch, o.Logger), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", o.ProviderType)
	}
}
