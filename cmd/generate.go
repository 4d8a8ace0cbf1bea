// Package cmd — generate command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → generate slides → render → write.
//
// It handles flag validation, renderer selection, and the --all mode.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/gaurav-prasanna/storypress/core"
	"github.com/gaurav-prasanna/storypress/core/extract"
	"github.com/gaurav-prasanna/storypress/core/fetch"
	"github.com/gaurav-prasanna/storypress/core/normalize"
	"github.com/gaurav-prasanna/storypress/core/output"
	"github.com/gaurav-prasanna/storypress/core/render"
	"github.com/gaurav-prasanna/storypress/core/story"
	"github.com/gaurav-prasanna/storypress/core/templates"
	"github.com/gaurav-prasanna/storypress/crawl"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagAll           bool
	flagTemplate      string
	flagMaxSlides     int
	flagNoTitle       bool
	flagNoCTA         bool
	flagCTAText       string
	flagCTAURL        string
	flagHTML          bool
	flagJSON          bool
	flagMarkdown      bool
	flagPDF           bool
	flagScript        bool
	flagOutputDir     string
	flagPublisher     string
	flagPublisherLogo string
	flagSeed          int64
)

var generateCmd = &cobra.Command{
	Use:   "generate <url>",
	Short: "Generate a web story from an article URL",
	Long: `Generate fetches an article page, extracts the post body and metadata,
segments the content into slides, and renders the story in the chosen
output format.

Examples:
  storypress generate https://example.com/posts/hello --html
  storypress generate https://example.com/posts/hello --json --template midnight
  storypress generate https://example.com --all --html --output_dir ./stories
  storypress generate https://example.com/posts/hello --script`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&flagAll, "all", false, "Generate a story for every discovered article")

	// Story options.
	generateCmd.Flags().StringVar(&flagTemplate, "template", "classic", "Story template id")
	generateCmd.Flags().IntVar(&flagMaxSlides, "max-slides", 10, "Maximum number of slides (minimum 2)")
	generateCmd.Flags().BoolVar(&flagNoTitle, "no-title", false, "Skip the opening title slide")
	generateCmd.Flags().BoolVar(&flagNoCTA, "no-cta", false, "Skip the closing CTA slide")
	generateCmd.Flags().StringVar(&flagCTAText, "cta-text", "Read Full Article", "CTA button text")
	generateCmd.Flags().StringVar(&flagCTAURL, "cta-url", "", "CTA button URL (default: the article URL)")
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Seed for animation selection (0 = random)")

	// Output format flags (mutually exclusive).
	generateCmd.Flags().BoolVar(&flagHTML, "html", false, "Output an AMP story document")
	generateCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the story document as JSON")
	generateCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown storyboard")
	generateCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF storyboard")
	generateCmd.Flags().BoolVar(&flagScript, "script", false, "Output the article script as Markdown (no slides)")

	// Publishing metadata.
	generateCmd.Flags().StringVar(&flagPublisher, "publisher", "StoryPress", "Publisher name for the story shell")
	generateCmd.Flags().StringVar(&flagPublisherLogo, "publisher-logo", "", "Publisher logo URL")

	generateCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	if err := validateFormatFlags(); err != nil {
		return err
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	generator, err := story.NewGenerator(flagTemplate, templates.Builtin())
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		generator.Pick = story.RandomPicker(flagSeed)
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	fetcher := fetch.New()
	extractor := extract.New()
	ctx := context.Background()

	if flagAll {
		return generateAll(ctx, rawURL, fetcher, extractor, generator, writer)
	}
	return generateOne(ctx, rawURL, fetcher, extractor, generator, writer, false)
}

// generateOne runs a single article through the pipeline.
func generateOne(
	ctx context.Context,
	articleURL string,
	fetcher core.Fetcher,
	extractor core.Extractor,
	generator *story.Generator,
	writer *output.Writer,
	mirrored bool,
) error {
	data, title, ext, err := processArticle(ctx, articleURL, fetcher, extractor, generator)
	if err != nil {
		return err
	}

	var path string
	if mirrored {
		path, err = writer.WriteMirrored(articleURL, data, ext)
	} else {
		path, err = writer.WriteStory(title, data, ext)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// generateAll discovers all articles and generates a story for each.
func generateAll(
	ctx context.Context,
	baseURL string,
	fetcher core.Fetcher,
	extractor core.Extractor,
	generator *story.Generator,
	writer *output.Writer,
) error {
	fmt.Fprintf(os.Stdout, "Discovering articles from %s...\n", baseURL)

	urls, err := crawl.DiscoverArticles(ctx, baseURL, fetcher)
	if err != nil {
		return fmt.Errorf("discovering articles: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Found %d articles to process\n", len(urls))

	var errCount int
	for i, articleURL := range urls {
		fmt.Fprintf(os.Stdout, "[%d/%d] Processing %s\n", i+1, len(urls), articleURL)
		if err := generateOne(ctx, articleURL, fetcher, extractor, generator, writer, true); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
		}
	}

	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "\n%d/%d articles failed\n", errCount, len(urls))
	}
	return nil
}

// processArticle fetches and extracts one article, then produces the
// selected output. Returns the rendered bytes, the post title (for
// file naming), and the output extension.
func processArticle(
	ctx context.Context,
	articleURL string,
	fetcher core.Fetcher,
	extractor core.Extractor,
	generator *story.Generator,
) ([]byte, string, string, error) {
	result, err := fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return nil, "", "", fmt.Errorf("fetch: %w", err)
	}

	post, err := extractor.Extract(result.HTML, articleURL)
	if err != nil {
		return nil, "", "", fmt.Errorf("extract: %w", err)
	}

	// --script exports the article text itself, skipping slide assembly.
	if flagScript {
		script, err := normalize.New().Normalize(post.Title, post.HTMLContent)
		if err != nil {
			return nil, "", "", fmt.Errorf("normalize: %w", err)
		}
		return []byte(script), post.Title, ".md", nil
	}

	opts := generateOptions(articleURL)
	slides := generator.GenerateStory(*post, opts)
	doc := &core.StoryDocument{
		Slides:   slides,
		Metadata: documentMetadata(post, articleURL),
	}

	renderer := selectRenderer()
	data, err := renderer.Render(doc)
	if err != nil {
		return nil, "", "", fmt.Errorf("render: %w", err)
	}
	return data, post.Title, renderer.Extension(), nil
}

// generateOptions maps flags onto GenerateOptions. The CTA links back
// to the source article unless overridden.
func generateOptions(articleURL string) core.GenerateOptions {
	opts := core.DefaultOptions()
	opts.MaxSlides = flagMaxSlides
	opts.IncludeTitle = !flagNoTitle
	opts.IncludeCTA = !flagNoCTA
	opts.CTAText = flagCTAText
	opts.CTAURL = flagCTAURL
	if opts.CTAURL == "" {
		opts.CTAURL = articleURL
	}
	return opts
}

// documentMetadata builds the shell metadata from the extracted post.
func documentMetadata(post *core.RawPost, articleURL string) core.Metadata {
	return core.Metadata{
		Title:         post.Title,
		Description:   post.Excerpt,
		Author:        post.Author,
		PublisherName: flagPublisher,
		PublisherLogo: flagPublisherLogo,
		CanonicalURL:  articleURL,
	}
}

// validateFormatFlags checks that exactly one output format is chosen.
func validateFormatFlags() error {
	formatCount := 0
	for _, set := range []bool{flagHTML, flagJSON, flagMarkdown, flagPDF, flagScript} {
		if set {
			formatCount++
		}
	}
	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --html, --json, --markdown, --pdf, or --script")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
// --script is handled before rendering and never reaches here.
func selectRenderer() core.Renderer {
	switch {
	case flagJSON:
		return render.NewJSONRenderer()
	case flagMarkdown:
		return render.NewMarkdownRenderer()
	case flagPDF:
		return render.NewPDFRenderer()
	default:
		return render.NewAMPRenderer()
	}
}
