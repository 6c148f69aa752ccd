package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"contentforge/internal/logger"
	"contentforge/internal/seo"
)

var seoCmd = &cobra.Command{
	Use:   "seo [content-file]",
	Short: "Analyze and score an HTML content file",
	Long: `Run the SEO analysis over an HTML file and print the 100-point score
breakdown.

Example:
  contentforge seo draft.html --keywords "plumbing,austin plumber" --title "..." --meta "..."`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		keywords, _ := cmd.Flags().GetStringSlice("keywords")
		title, _ := cmd.Flags().GetString("title")
		meta, _ := cmd.Flags().GetString("meta")

		if err := runSEO(args[0], keywords, title, meta); err != nil {
			logger.Error("SEO analysis failed", err)
			os.Exit(1)
		}
	},
}

func runSEO(path string, keywords []string, title, meta string) error {
	html, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read content file: %w", err)
	}

	analysis, err := seo.Analyze(string(html), keywords)
	if err != nil {
		return err
	}

	score, err := seo.ComputeScore(analysis, seo.Page{Title: title, MetaDescription: meta})
	if err != nil {
		return err
	}

	fmt.Printf("Words: %d  Reading time: %d min  Sentences: %d  Flesch: %.1f\n",
		analysis.WordCount, analysis.ReadingTime, analysis.SentenceCount, analysis.FleschScore)
	fmt.Printf("Headings: %v  Paragraphs: %d (%d long)\n",
		analysis.Headings, analysis.ParagraphCount, analysis.LongParagraphs)
	fmt.Printf("Links: %d internal, %d external  Images: %d (%d with alt)\n",
		analysis.InternalLinks, analysis.ExternalLinks, analysis.ImageCount, analysis.ImagesWithAlt)
	for _, k := range analysis.Keywords {
		fmt.Printf("  %-30s %3d uses  %.2f%%\n", k.Keyword, k.Occurrences, k.Density)
	}
	fmt.Printf("Total keyword density: %.2f%%\n", analysis.TotalDensity)

	fmt.Println()
	fmt.Printf("Content:     %5.1f / 20\n", score.Content)
	fmt.Printf("Readability: %5.1f / 20\n", score.Readability)
	fmt.Printf("Keywords:    %5.1f / 20\n", score.Keywords)
	fmt.Printf("Structure:   %5.1f / 20\n", score.Structure)
	fmt.Printf("Technical:   %5.1f / 20\n", score.Technical)
	fmt.Printf("Total:       %5.1f / 100\n", score.Total)

	return nil
}

func init() {
	rootCmd.AddCommand(seoCmd)
	seoCmd.Flags().StringSlice("keywords", nil, "keywords to measure density for")
	seoCmd.Flags().String("title", "", "page title for the technical checks")
	seoCmd.Flags().String("meta", "", "meta description for the technical checks")
}
