package tokenbundler

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hellenic-development/token-bundler/pkg/bundler"
	"github.com/hellenic-development/token-bundler/pkg/extractor"
	"github.com/hellenic-development/token-bundler/pkg/figma"
	"github.com/hellenic-development/token-bundler/pkg/formatter"
	"github.com/hellenic-development/token-bundler/pkg/matcher"
	"github.com/hellenic-development/token-bundler/pkg/sink"
	"github.com/hellenic-development/token-bundler/pkg/token"
)

// Options configures extraction and bundle compilation.
type Options struct {
	AccessToken string
	FileURL     string   // Figma file URL
	NodeIDs     []string // empty = take node IDs from the URL, or the whole file

	Project    string // bundle key; defaults to the Figma file name when extracting
	TokensFile string // path to a token file; empty = auto-discover under TokensDir
	TokensDir  string // root for token-file discovery, default "."
	OutputDir  string // bundle storage root, default "token-bundles"

	// DisableModeFallback suppresses the default :root block that follows
	// mode-scoped blocks in multi-mode style sheets.
	DisableModeFallback bool

	Logger Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// ExtractResult contains the extraction output: one property bag per
// requested node, the file's variables resolved against the project tokens,
// and a markdown report of both.
type ExtractResult struct {
	FileName string
	Bags     []extractor.PropertyBag
	Matches  []matcher.Match
	Markdown string
}

// CompileResult contains a compiled bundle and where the sink stored it.
type CompileResult struct {
	Bundle        *bundler.Bundle
	Stored        *sink.StoredBundle
	UnmatchedRefs []string // component compilation only
}

// Extract fetches the requested design nodes and the file's local variables,
// extracts a property bag per node, and matches the variables against the
// project's token set.
func Extract(opts Options) (*ExtractResult, error) {
	opts.logInfo("Extracting file key from URL...")
	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, fmt.Errorf("extract file key: %w", err)
	}

	targetNodeIDs := opts.NodeIDs
	if len(targetNodeIDs) == 0 {
		targetNodeIDs, err = figma.ExtractNodeIDs(opts.FileURL)
		if err != nil {
			return nil, fmt.Errorf("extract node IDs from URL: %w", err)
		}
	}

	client := figma.NewClient(opts.AccessToken)

	var bags []extractor.PropertyBag
	var fileName string

	if len(targetNodeIDs) > 0 {
		opts.logInfo("Fetching %d node(s) from Figma...", len(targetNodeIDs))
		nodesResp, err := client.GetFileNodes(fileKey, targetNodeIDs)
		if err != nil {
			return nil, fmt.Errorf("fetch nodes: %w", err)
		}
		fileName = nodesResp.Name

		for _, id := range targetNodeIDs {
			if nd, ok := nodesResp.Nodes[id]; ok {
				bags = append(bags, extractor.ExtractNodeProperties(&nd.Document))
			} else {
				opts.logWarn("Node %s not found in file", id)
			}
		}
	} else {
		opts.logInfo("Fetching file from Figma...")
		fileResp, err := client.GetFile(fileKey)
		if err != nil {
			return nil, fmt.Errorf("fetch file: %w", err)
		}
		fileName = fileResp.Name

		// Without explicit targets, extract every top-level frame of every
		// page.
		for i := range fileResp.Document.Children {
			page := &fileResp.Document.Children[i]
			for j := range page.Children {
				bags = append(bags, extractor.ExtractNodeProperties(&page.Children[j]))
			}
		}
	}
	opts.logInfo("Extracted %d node(s)", len(bags))

	variables := fetchVariables(&opts, client, fileKey)

	var matches []matcher.Match
	if len(variables) > 0 {
		tokens, err := loadTokens(opts)
		if err != nil {
			opts.logWarn("Could not load project tokens: %v", err)
		}
		if len(tokens) > 0 {
			opts.logInfo("Matching %d variable(s) against %d token(s)...", len(variables), len(tokens))
			matches = matcher.New().Match(variables, tokens)
		} else {
			opts.logWarn("No project tokens available, skipping variable matching")
		}
	}

	return &ExtractResult{
		FileName: fileName,
		Bags:     bags,
		Matches:  matches,
		Markdown: formatter.ToMarkdown(bags, matches, fileName),
	}, nil
}

// fetchVariables retrieves the file's local variables, sorted by name for
// deterministic output. Variable access requires an extra token scope, so a
// failure degrades to no variables rather than aborting extraction.
func fetchVariables(opts *Options, client *figma.Client, fileKey string) []figma.Variable {
	opts.logInfo("Fetching local variables...")
	varsResp, err := client.GetLocalVariables(fileKey)
	if err != nil {
		opts.logWarn("Could not fetch variables (token may lack file_variables scope): %v", err)
		return nil
	}

	variables := make([]figma.Variable, 0, len(varsResp.Meta.Variables))
	for _, v := range varsResp.Meta.Variables {
		variables = append(variables, v)
	}
	sort.Slice(variables, func(i, j int) bool {
		if variables[i].Name != variables[j].Name {
			return variables[i].Name < variables[j].Name
		}
		return variables[i].ID < variables[j].ID
	})

	return variables
}

// CompileGlobal loads the project's active tokens, compiles them into a
// global bundle versioned against the previously stored one, and stores the
// result. Compiling with no tokens available is an error, not an empty
// bundle.
func CompileGlobal(opts Options) (*CompileResult, error) {
	tokens, err := loadTokens(opts)
	if err != nil {
		return nil, err
	}

	s := sink.NewDirSink(outputDir(opts))
	key := sink.Key{Project: projectName(opts), Type: bundler.TypeGlobal}

	previous, err := s.Previous(key)
	if err != nil {
		return nil, fmt.Errorf("read previous bundle: %w", err)
	}

	opts.logInfo("Compiling global bundle from %d token(s)...", len(tokens))
	c := &bundler.Compiler{DisableModeFallback: opts.DisableModeFallback}
	b, err := c.CompileGlobal(tokens, previous)
	if err != nil {
		return nil, err
	}

	stored, err := s.Store(key, b)
	if err != nil {
		return nil, fmt.Errorf("store bundle: %w", err)
	}
	opts.logInfo("Stored bundle v%s (%d tokens)", b.Version, b.TokenCount)

	return &CompileResult{Bundle: b, Stored: stored}, nil
}

// CompileComponent compiles a bundle scoped to one component's generated
// source file: token references found in the source are resolved against the
// project's tokens, and only the matched ones land in the bundle's alias map.
// Unresolved references are reported, never fatal.
func CompileComponent(opts Options, component, sourcePath string) (*CompileResult, error) {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("read component source: %w", err)
	}

	tokens, err := loadTokens(opts)
	if err != nil {
		return nil, err
	}

	s := sink.NewDirSink(outputDir(opts))
	key := sink.Key{Project: projectName(opts), Type: bundler.TypeComponent, Component: component}

	previous, err := s.Previous(key)
	if err != nil {
		return nil, fmt.Errorf("read previous bundle: %w", err)
	}

	opts.logInfo("Compiling component bundle for %q...", component)
	c := &bundler.Compiler{DisableModeFallback: opts.DisableModeFallback}
	res, err := c.CompileComponent(string(source), component, tokens, previous)
	if err != nil {
		return nil, err
	}

	for _, ref := range res.UnmatchedRefs {
		opts.logWarn("Token not found for reference %s", ref)
	}

	stored, err := s.Store(key, res.Bundle)
	if err != nil {
		return nil, fmt.Errorf("store bundle: %w", err)
	}
	opts.logInfo("Stored component bundle v%s (%d tokens, %d unmatched refs)",
		res.Bundle.Version, res.Bundle.TokenCount, len(res.UnmatchedRefs))

	return &CompileResult{Bundle: res.Bundle, Stored: stored, UnmatchedRefs: res.UnmatchedRefs}, nil
}

// loadTokens reads the project's active token list from the configured file,
// or discovers token files when no path is set.
func loadTokens(opts Options) ([]token.Token, error) {
	if opts.TokensFile != "" {
		return token.LoadFile(opts.TokensFile)
	}

	dir := opts.TokensDir
	if dir == "" {
		dir = "."
	}
	return token.LoadDir(dir)
}

func projectName(opts Options) string {
	if opts.Project != "" {
		return opts.Project
	}
	return "default"
}

func outputDir(opts Options) string {
	if opts.OutputDir != "" {
		return opts.OutputDir
	}
	return "token-bundles"
}

// ParseNodeIDs parses a comma-separated string of node IDs and returns a slice.
func ParseNodeIDs(nodeIDsStr string) []string {
	parts := strings.Split(nodeIDsStr, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
