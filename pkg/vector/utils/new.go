// Package vectorutils is the vector driver utility package
package vectorutils

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/vector"
	"github.com/cadenzahq/cadenza/pkg/vector/memory"
	"github.com/cadenzahq/cadenza/pkg/vector/sqlitevec"
)

type NewDriverOpts struct {
	ProviderType string
	Target       string
	Dimensions   uint
	Logger       *zap.Logger
}

func NewDriver(o *NewDriverOpts) (vector.Driver, error) {
	switch o.ProviderType {
	case "memory":
		return memory.NewDriver(), nil
	case "sqlite":
		logger := o.Logger
		if logger == nil {
			logger = zap.NewNop()
		}
		return sqlitevec.NewSQLiteVecDriver(sqlitevec.Config{
			DBPath:     o.Target,
			Dimensions: o.Dimensions,
		}, logger)
	default:
		return nil, fmt.Errorf("unsupported vector store provider: %s", o.ProviderType)
	}
}
