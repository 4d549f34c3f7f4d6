// Package cadenzacmder
package cadenzacmder

import (
	"github.com/spf13/cobra"

	analyzecmder "github.com/cadenzahq/cadenza/cmd/cadenza/analyze"
	configcmder "github.com/cadenzahq/cadenza/cmd/cadenza/config"
	rulescmder "github.com/cadenzahq/cadenza/cmd/cadenza/rules"
	servecmder "github.com/cadenzahq/cadenza/cmd/cadenza/serve"
	versioncmder "github.com/cadenzahq/cadenza/cmd/version"
)

const cadenzaLongDesc string = `Cadenza analyzes symbolic music scores: structure segmentation,
relationship detection, emotion tagging, form identification, and
preference-aware visual scheme recommendation.

Common commands:
  cadenza analyze <score.json>   Analyze a score
  cadenza rules search <query>   Search the theory rule catalog
  cadenza serve                  Run the HTTP API server`

const cadenzaShortDesc string = "Cadenza - Symbolic Music Analysis"

func NewCadenzaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cadenza",
		Short: cadenzaShortDesc,
		Long:  cadenzaLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(analyzecmder.NewAnalyzeCmd())
	cmd.AddCommand(rulescmder.NewRulesCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
