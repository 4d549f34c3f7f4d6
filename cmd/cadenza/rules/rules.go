// Package rulescmder provides the rules command for searching and listing
// the theory rule catalog.
package rulescmder

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/cliui"
	"github.com/cadenzahq/cadenza/pkg/config"
	embeddingsutils "github.com/cadenzahq/cadenza/pkg/embeddings/utils"
	"github.com/cadenzahq/cadenza/pkg/knowledge"
	"github.com/cadenzahq/cadenza/pkg/logger"
	vectorutils "github.com/cadenzahq/cadenza/pkg/vector/utils"
)

const rulesLongDesc string = `Search and browse the music-theory rule catalog.

The catalog is built in and searched semantically: queries are embedded and
matched against rule descriptions by cosine similarity.

Examples:
  cadenza rules search "authentic cadence"
  cadenza rules search "phrase boundary" --topk 3
  cadenza rules list
  cadenza rules list --category cadence`

const rulesShortDesc string = "Search and browse theory rules"

func NewRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: rulesShortDesc,
		Long:  rulesLongDesc,
	}

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

func newSearchCmd() *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Semantic search over the rule catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			return runSearch(cmd.Context(), strings.Join(args, " "), topK, debug)
		},
	}

	cmd.Flags().IntVarP(&topK, "topk", "k", 0, "Number of results (default from config)")

	return cmd
}

func newListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog rules",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(category)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category (cadence, phrase, form, tonality, texture, rhythm, melody)")

	return cmd
}

func runSearch(ctx context.Context, query string, topK int, debug bool) error {
	log := logger.NewLogger(debug)
	defer log.Sync()

	base, cfg, err := newBase(log)
	if err != nil {
		return err
	}

	if topK < 1 {
		topK = cfg.Knowledge.TopK
	}

	results, err := base.SearchText(ctx, query, topK)
	if err != nil {
		return fmt.Errorf("searching rules: %w", err)
	}

	fmt.Printf("\n  %s %q\n\n", cliui.KeyStyle.Render("Query:"), query)
	for _, r := range results {
		fmt.Printf("  %.3f  %s  %s\n         %s\n",
			r.Similarity,
			cliui.KeyStyle.Render(r.Rule.Name),
			cliui.DimStyle.Render(fmt.Sprintf("[%s]", r.Rule.Category)),
			cliui.ValueStyle.Render(r.Rule.Description),
		)
	}
	fmt.Println()

	return nil
}

func runList(category string) error {
	catalog := knowledge.Catalog()

	categories := knowledge.Categories
	if category != "" {
		categories = []knowledge.Category{knowledge.Category(category)}
	}

	for _, c := range categories {
		var rules []knowledge.TheoryRule
		for _, r := range catalog {
			if r.Category == c {
				rules = append(rules, r)
			}
		}
		if rules == nil {
			return fmt.Errorf("unknown category: %s", category)
		}

		fmt.Printf("\n  %s\n", cliui.KeyStyle.Render(strings.ToUpper(string(c))))
		for _, r := range rules {
			fmt.Printf("    %-28s %s\n", r.Name, cliui.DimStyle.Render(r.Description))
		}
	}
	fmt.Println()

	return nil
}

// newBase assembles a knowledge base from the layered configuration.
func newBase(log *zap.Logger) (*knowledge.Base, *config.Config, error) {
	v, err := config.InitViper("")
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
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
		return nil, nil, fmt.Errorf("creating embedder: %w", err)
	}

	driver, err := vectorutils.NewDriver(&vectorutils.NewDriverOpts{
		ProviderType: cfg.VectorStore.Provider,
		Target:       cfg.VectorStore.Target,
		Dimensions:   cfg.Embedding.Dimensions,
		Logger:       log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating vector driver: %w", err)
	}

	return knowledge.NewBase(embedder, driver, log), cfg, nil
}
