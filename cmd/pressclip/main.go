// Command pressclip extracts a clean article body and metadata from an
// already-fetched HTML document and prints the composed article as
// JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rkaczmarek/pressclip"
	"github.com/rkaczmarek/pressclip/config"
	pcgoquery "github.com/rkaczmarek/pressclip/goquery"
	pcslog "github.com/rkaczmarek/pressclip/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface.
type CLI struct {
	File     string `arg:"" optional:"" help:"HTML file to extract. Reads stdin when omitted."`
	URL      string `help:"Source URL of the document, used for profile lookup." placeholder:"URL"`
	Profiles string `help:"YAML selector profile file merged over the built-ins." placeholder:"PATH"`
	Verbose  bool   `short:"v" help:"Enable debug logging."`
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(_ context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pressclip"),
		kong.Description("Extract a clean article body and metadata from fetched HTML"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies.
	registry, err := loadRegistry(cli.Profiles)
	if err != nil {
		return err
	}
	profiles := pcslog.NewLoggingRegistry(registry, logger)
	extractor := pcslog.NewLoggingExtractor(pcgoquery.NewExtractor(), logger)
	metadata := pcslog.NewLoggingMetadataParser(pcgoquery.NewMetadataParser(), logger)

	html, err := readInput(cli.File, stdin)
	if err != nil {
		return err
	}

	domain := domainOf(cli.URL)
	profile := profiles.Lookup(domain)

	result := extractor.Extract(html, profile)
	meta := metadata.Parse(html, profile)

	article := pressclip.ComposeArticle(meta, result, pressclip.FetchInfo{
		URL:       cli.URL,
		Domain:    domain,
		FetchedAt: time.Now().UTC(),
	})

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(article)
}

// loadRegistry builds the profile registry, merging an optional YAML
// file over the built-in profiles.
func loadRegistry(path string) (pressclip.ProfileRegistry, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}

// readInput reads HTML from a file, or stdin when no file is given.
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// domainOf extracts the host from a URL for profile lookup.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
