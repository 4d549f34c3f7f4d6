// Package analyzecmder provides the analyze command: run the full analysis
// pipeline on a score file and print the results.
package analyzecmder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/cliui"
	"github.com/cadenzahq/cadenza/pkg/config"
	embeddingsutils "github.com/cadenzahq/cadenza/pkg/embeddings/utils"
	"github.com/cadenzahq/cadenza/pkg/engine"
	eventstreamutils "github.com/cadenzahq/cadenza/pkg/eventstream/utils"
	"github.com/cadenzahq/cadenza/pkg/logger"
	"github.com/cadenzahq/cadenza/pkg/score"
	vectorutils "github.com/cadenzahq/cadenza/pkg/vector/utils"
)

type analyzeCommander struct {
	report bool
	debug  bool
	logger *zap.Logger
}

const analyzeLongDesc string = `Analyze a symbolic score.

Reads a score JSON file (measures of notes with pitch and duration), segments
it into structures, detects relationships, tags emotions, groups similar
sections, and identifies the overall form.

Examples:
  cadenza analyze score.json
  cadenza analyze score.json --report`

const analyzeShortDesc string = "Analyze a score file"

func NewAnalyzeCmd() *cobra.Command {
	cmder := &analyzeCommander{}

	cmd := &cobra.Command{
		Use:   "analyze <score.json>",
		Short: analyzeShortDesc,
		Long:  analyzeLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			return cmder.run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVarP(&cmder.report, "report", "r", false, "Render a markdown analysis report")

	return cmd
}

func (c *analyzeCommander) run(ctx context.Context, path string) error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading score: %w", err)
	}

	var sc score.Score
	if err := json.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("parsing score: %w", err)
	}

	eng, err := newEngine(c.logger)
	if err != nil {
		return err
	}
	defer eng.Close()

	var result *engine.Analysis
	err = cliui.Step(os.Stdout, fmt.Sprintf("Analyzing %s", path), func() error {
		var stepErr error
		result, stepErr = eng.Analyze(ctx, &sc)
		return stepErr
	})
	if err != nil {
		return err
	}

	if c.report {
		rendered, err := cliui.RenderMarkdown(buildReport(result))
		if err != nil {
			c.logger.Warn("markdown rendering failed, printing plain", zap.Error(err))
		}
		fmt.Print(rendered)
		return nil
	}

	printSummary(result)
	return nil
}

// newEngine assembles the engine from the layered configuration.
func newEngine(log *zap.Logger) (*engine.Engine, error) {
	v, err := config.InitViper("")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg := config.FromViper(v)

	embedder, err := embeddingsutils.NewEmbedder(&embeddingsutils.NewEmbedderOpts{
		ProviderType: cfg.Embedding.Provider,
		Target:       cfg.Embedding.Target,
		Model:        cfg.Embedding.Model,
		Dimensions:   cfg.Embedding.Dimensions,
		Logger:       log,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	driver, err := vectorutils.NewDriver(&vectorutils.NewDriverOpts{
		ProviderType: cfg.VectorStore.Provider,
		Target:       cfg.VectorStore.Target,
		Dimensions:   cfg.Embedding.Dimensions,
		Logger:       log,
	})
	if err != nil {
		return nil, fmt.Errorf("creating vector driver: %w", err)
	}

	var brokers []string
	if cfg.Eventstream.Brokers != "" {
		brokers = strings.Split(cfg.Eventstream.Brokers, ",")
	}
	publisher, err := eventstreamutils.NewPublisher(&eventstreamutils.NewPublisherOpts{
		ProviderType: cfg.Eventstream.Provider,
		Brokers:      brokers,
		Topic:        cfg.Eventstream.Topic,
		Logger:       log,
	})
	if err != nil {
		return nil, fmt.Errorf("creating eventstream publisher: %w", err)
	}

	return engine.New(engine.Config{
		Embedder:  embedder,
		Driver:    driver,
		Publisher: publisher,
		Logger:    log,
	})
}

func printSummary(result *engine.Analysis) {
	fmt.Printf("\n  %s %s\n", cliui.KeyStyle.Render("Form:"), result.Form)
	fmt.Printf("  %s %d structures, %d relationships, %d groups\n\n",
		cliui.KeyStyle.Render("Found:"),
		len(result.Structures), len(result.Relationships), len(result.Groups))

	for i, s := range result.Structures {
		label := s.GroupID
		if label == "" {
			label = "-"
		}
		fmt.Printf("  %-12s measures %2d-%-2d  group %s  %-8s confidence %.2f\n",
			s.ID, s.StartMeasure, s.EndMeasure, label, result.Emotions[i].Primary, s.Confidence)
	}
	fmt.Println()
}

// buildReport renders the analysis as markdown for glamour.
func buildReport(result *engine.Analysis) string {
	var b strings.Builder

	title := result.Title
	if title == "" {
		title = "Score Analysis"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Form:** %s\n\n", result.Form)

	b.WriteString("## Structures\n\n")
	b.WriteString("| ID | Measures | Level | Emotion | Group | Confidence |\n")
	b.WriteString("|----|----------|-------|---------|-------|------------|\n")
	for i, s := range result.Structures {
		group := s.GroupID
		if group == "" {
			group = "-"
		}
		fmt.Fprintf(&b, "| %s | %d-%d | %s | %s | %s | %.2f |\n",
			s.ID, s.StartMeasure, s.EndMeasure, s.Level, result.Emotions[i].Primary, group, s.Confidence)
	}

	if len(result.Relationships) > 0 {
		b.WriteString("\n## Relationships\n\n")
		for _, rel := range result.Relationships {
			fmt.Fprintf(&b, "- **%s ↔ %s** (%s, %.2f): %s\n",
				rel.ID1, rel.ID2, rel.Type, rel.Similarity, rel.Description)
		}
	}

	if len(result.Groups) > 0 {
		b.WriteString("\n## Groups\n\n")
		for _, g := range result.Groups {
			fmt.Fprintf(&b, "- **%s**: %s (similarity %.2f)\n",
				g.GroupID, strings.Join(g.StructureIDs, ", "), g.SimilarityScore)
		}
	}

	return b.String()
}
