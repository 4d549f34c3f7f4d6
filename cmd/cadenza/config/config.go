// Package configcmder provides the config command for managing persistent
// cadenza configuration stored in the .cadenza/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent cadenza configuration.

Configuration is stored as config.toml in the .cadenza/ directory and provides
default values for command flags. CLI flags always take precedence over
config file values.

Keys use dotted notation matching the TOML section structure:
  api.listen,
  embedding.provider, embedding.target, embedding.model, embedding.dimensions,
  vector_store.provider, vector_store.target,
  eventstream.provider, eventstream.brokers, eventstream.topic,
  knowledge.top_k

Use subcommands to get, set, or list configuration values:
  cadenza config set <key> <value>    Set a configuration value
  cadenza config get <key>            Get a configuration value
  cadenza config list                 List all configuration values

Examples:
  cadenza config set embedding.provider ollama
  cadenza config set embedding.model nomic-embed-text
  cadenza config get embedding.provider
  cadenza config list`

const configShortDesc string = "Manage persistent cadenza configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.PersistentFlags().String("config-dir", "", "Directory holding config.toml (default: local or home .cadenza)")

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
