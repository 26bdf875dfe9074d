// newsprism — industry news collection and categorization pipeline
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prismworks/newsprism/api"
	"github.com/prismworks/newsprism/internal/config"
	"github.com/prismworks/newsprism/internal/logging"
	"github.com/prismworks/newsprism/internal/service"
	"github.com/prismworks/newsprism/pkg/models"
	"github.com/prismworks/newsprism/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "newsprism",
	Short: "newsprism — industry news collection and categorization",
	Long: `newsprism collects recent news for a company and its industry,
extracts article bodies, screens out local-outlet coverage, and files
every article into one of four categories: industry trend, regulation,
competitor, or company news. Results export as JSON.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		return logging.Init(cfg.Logging)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(industryCmd)
	rootCmd.AddCommand(competitorsCmd)
	rootCmd.AddCommand(industriesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newsprism %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Collect Command ---

var collectCmd = &cobra.Command{
	Use:   "collect [company]",
	Short: "Collect categorized news for a company",
	Long: `Collect recent news around a company: industry trend and regulation
coverage, competitor updates, and news about the company itself. The
combined bundle is exported as a JSON file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		company := args[0]
		ind, _ := cmd.Flags().GetString("industry")
		comps, _ := cmd.Flags().GetStringSlice("competitors")
		days, _ := cmd.Flags().GetInt("days")
		maxPer, _ := cmd.Flags().GetInt("max")
		noCrawl, _ := cmd.Flags().GetBool("no-crawl")
		output, _ := cmd.Flags().GetString("output")

		if noCrawl {
			cfg.Crawl.Enabled = false
		}

		svc := service.NewService(cfg)
		fmt.Printf("🔍 Collecting news for %s", company)
		if ind != "" {
			fmt.Printf(" — %s", svc.NormalizeIndustry(ind))
		}
		fmt.Println()

		bundle := svc.CompanyBundle(cmd.Context(), company, ind, comps, days, maxPer)
		printBundle(bundle)

		path, err := svc.Export(bundle.All, output)
		if err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		fmt.Printf("\n✅ Exported %d articles to %s\n", len(bundle.All), path)
		return nil
	},
}

func init() {
	collectCmd.Flags().String("industry", "", "industry name or label (falls back to the default registry entry)")
	collectCmd.Flags().StringSlice("competitors", nil, "competitor company names")
	collectCmd.Flags().Int("days", 0, "look-back window in days (0 = config default)")
	collectCmd.Flags().Int("max", 0, "max articles per category (0 = config default)")
	collectCmd.Flags().Bool("no-crawl", false, "skip body extraction, keep feed metadata only")
	collectCmd.Flags().String("output", "", "export file path (default: timestamped file under the output dir)")
}

// --- Industry Command ---

var industryCmd = &cobra.Command{
	Use:   "industry [name]",
	Short: "Collect trend and regulation news for an industry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		maxPer, _ := cmd.Flags().GetInt("max")
		save, _ := cmd.Flags().GetBool("save")

		svc := service.NewService(cfg)
		ind := svc.NormalizeIndustry(args[0])
		fmt.Printf("🔍 Collecting industry news — %s\n", ind)

		articles := svc.IndustryNews(cmd.Context(), ind, days, maxPer, false)
		printArticles(articles)

		if save {
			path, err := svc.Export(articles, "")
			if err != nil {
				return fmt.Errorf("failed to export results: %w", err)
			}
			fmt.Printf("\n✅ Exported %d articles to %s\n", len(articles), path)
		}
		return nil
	},
}

func init() {
	industryCmd.Flags().Int("days", 0, "look-back window in days (0 = config default)")
	industryCmd.Flags().Int("max", 0, "max articles per category (0 = config default)")
	industryCmd.Flags().Bool("save", false, "export collected articles as JSON")
}

// --- Competitors Command ---

var competitorsCmd = &cobra.Command{
	Use:   "competitors [name]...",
	Short: "Collect recent news for competitor companies",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ind, _ := cmd.Flags().GetString("industry")
		days, _ := cmd.Flags().GetInt("days")
		maxPer, _ := cmd.Flags().GetInt("max")

		svc := service.NewService(cfg)
		fmt.Printf("🔍 Collecting competitor news — %s\n", strings.Join(args, ", "))

		articles := svc.CompetitorNews(cmd.Context(), args, ind, days, maxPer)
		printArticles(articles)
		return nil
	},
}

func init() {
	competitorsCmd.Flags().String("industry", "", "industry context for tagging")
	competitorsCmd.Flags().Int("days", 0, "look-back window in days (0 = config default)")
	competitorsCmd.Flags().Int("max", 0, "max articles per company (0 = config default)")
}

// --- Industries Command ---

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List industries with keyword coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewService(cfg)
		fmt.Println("📚 Industries with keyword coverage:")
		for _, name := range svc.Industries() {
			fmt.Printf("  - %s\n", name)
		}
		return nil
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewService(cfg)
		srv := api.NewServer(cfg, svc)
		srv.SetVersion(version)

		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		fmt.Printf("🌐 Starting newsprism API server on %s\n", addr)
		return srv.ListenAndServe(addr)
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewService(cfg)

		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  newsprism — System Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:     %s (%s)\n", version, commit)
		fmt.Printf("  Time (KST):  %s\n", utils.FormatISOKST(utils.NowKST()))
		fmt.Println()

		// Config summary
		fmt.Println("  Configuration:")
		fmt.Printf("    Feed:        %s (%s/%s)\n", cfg.Search.BaseURL, cfg.Search.Language, cfg.Search.Country)
		fmt.Printf("    Crawling:    %s\n", onOff(cfg.Crawl.Enabled))
		fmt.Printf("    Look-back:   %dd industry / %dd competitor\n", cfg.Collect.DefaultDays, cfg.Collect.CompetitorDays)
		fmt.Printf("    Output Dir:  %s\n", cfg.Output.Dir)
		fmt.Printf("    API Server:  %s:%d\n", cfg.API.Host, cfg.API.Port)
		fmt.Println()

		// Feed health
		fmt.Println("  Feed health:")
		statuses := svc.CheckSources(cmd.Context())
		queries := make([]string, 0, len(statuses))
		for q := range statuses {
			queries = append(queries, q)
		}
		sort.Strings(queries)
		for _, q := range queries {
			mark := "✅"
			if statuses[q] != "ok" {
				mark = "❌"
			}
			fmt.Printf("    %-14s %s %s\n", q+":", mark, statuses[q])
		}

		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}

// --- Output helpers ---

// printBundle writes a per-category summary of a collection run in
// display order.
func printBundle(b *models.CollectionBundle) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("  Collected %d articles\n", b.Count())
	fmt.Println("═══════════════════════════════════════")
	printCategory(models.CategoryIndustryTrend, b.IndustryTrend)
	printCategory(models.CategoryRegulation, b.Regulation)
	printCategory(models.CategoryCompetitor, b.Competitor)
	printCategory(models.CategoryCompany, b.CompanyNews)
}

func printCategory(cat models.Category, articles []models.Article) {
	fmt.Printf("\n  📰 %s (%d)\n", cat.Label(), len(articles))
	for _, a := range articles {
		printArticle(a)
	}
}

func printArticles(articles []models.Article) {
	fmt.Printf("\n  📰 %d articles\n", len(articles))
	for _, a := range articles {
		printArticle(a)
	}
}

func printArticle(a models.Article) {
	tag := a.Source
	if a.Company != "" {
		tag = a.Company
	}
	if tag != "" {
		fmt.Printf("    - [%s] %s\n", tag, utils.TruncateRunes(a.Title, 70))
	} else {
		fmt.Printf("    - %s\n", utils.TruncateRunes(a.Title, 70))
	}
	fmt.Printf("      %s\n", a.URL)
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
