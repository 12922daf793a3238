package main

import (
	"fmt"
	"os"

	tokenbundler "github.com/hellenic-development/token-bundler"
	"github.com/hellenic-development/token-bundler/pkg/figma"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = figma.Version

var (
	figmaURL     string
	accessToken  string
	outputFile   string
	nodeIDs      string
	project      string
	tokensFile   string
	tokensDir    string
	outputDir    string
	noModeFallback bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "token-bundler",
		Short: "Normalize design tokens and compile versioned style bundles",
		Long:  "A tool to extract node properties from Figma files, match design variables against project tokens, and compile versioned CSS/JSON bundles",
	}

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract node properties and variable matches from a Figma file",
		Run:   runExtract,
	}
	extractCmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL (required)")
	extractCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (required)")
	extractCmd.Flags().StringVarP(&outputFile, "output", "o", "DESIGN_PROPERTIES.md", "Output markdown file")
	extractCmd.Flags().StringVarP(&nodeIDs, "node-ids", "n", "", "Comma-separated node IDs to extract (optional, extracts specific nodes instead of entire file)")
	extractCmd.Flags().StringVar(&tokensFile, "tokens", "", "Path to a design-token file (optional, auto-discovered when omitted)")
	extractCmd.Flags().StringVar(&tokensDir, "tokens-dir", ".", "Root directory for token-file discovery")
	extractCmd.MarkFlagRequired("url")
	extractCmd.MarkFlagRequired("token")

	compileCmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the project's tokens into a versioned global bundle",
		Run:   runCompile,
	}
	compileCmd.Flags().StringVarP(&project, "project", "p", "default", "Project name the bundle is keyed under")
	compileCmd.Flags().StringVar(&tokensFile, "tokens", "", "Path to a design-token file (optional, auto-discovered when omitted)")
	compileCmd.Flags().StringVar(&tokensDir, "tokens-dir", ".", "Root directory for token-file discovery")
	compileCmd.Flags().StringVar(&outputDir, "output-dir", "token-bundles", "Directory bundles are stored under")
	compileCmd.Flags().BoolVar(&noModeFallback, "no-mode-fallback", false, "Omit the default :root block after mode-scoped blocks")

	componentCmd := &cobra.Command{
		Use:   "component <name> <source-file>",
		Short: "Compile a bundle scoped to one component's token references",
		Args:  cobra.ExactArgs(2),
		Run:   runComponent,
	}
	componentCmd.Flags().StringVarP(&project, "project", "p", "default", "Project name the bundle is keyed under")
	componentCmd.Flags().StringVar(&tokensFile, "tokens", "", "Path to a design-token file (optional, auto-discovered when omitted)")
	componentCmd.Flags().StringVar(&tokensDir, "tokens-dir", ".", "Root directory for token-file discovery")
	componentCmd.Flags().StringVar(&outputDir, "output-dir", "token-bundles", "Directory bundles are stored under")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("token-bundler version %s\n", version)
		},
	}

	rootCmd.AddCommand(extractCmd, compileCmd, componentCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Token Bundler Extract")
	cyan.Println("==========================")
	cyan.Println()

	// Parse node IDs from CLI string.
	var parsedNodeIDs []string
	if nodeIDs != "" {
		parsedNodeIDs = tokenbundler.ParseNodeIDs(nodeIDs)
	}

	opts := tokenbundler.Options{
		AccessToken: accessToken,
		FileURL:     figmaURL,
		NodeIDs:     parsedNodeIDs,
		TokensFile:  tokensFile,
		TokensDir:   tokensDir,
		Logger:      &cliLogger{},
	}

	result, err := tokenbundler.Extract(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cyan.Println("\n📊 Extraction Summary:")
	fmt.Printf("  • File: %s\n", result.FileName)
	fmt.Printf("  • Nodes: %d\n", len(result.Bags))
	if len(result.Matches) > 0 {
		matched := 0
		for _, m := range result.Matches {
			if m.Token != nil {
				matched++
			}
		}
		fmt.Printf("  • Variables: %d (%d matched to tokens)\n", len(result.Matches), matched)
	}

	// Write markdown to file.
	green.Printf("\n💾 Writing to %s... ", outputFile)
	err = os.WriteFile(outputFile, []byte(result.Markdown), 0644)
	if err != nil {
		red.Printf("✗\n")
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	green.Println("✓")

	green.Printf("\n✨ Successfully extracted design properties to %s\n\n", outputFile)
}

func runCompile(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n📦 Token Bundler Compile")
	cyan.Println("==========================")
	cyan.Println()

	opts := tokenbundler.Options{
		Project:             project,
		TokensFile:          tokensFile,
		TokensDir:           tokensDir,
		OutputDir:           outputDir,
		DisableModeFallback: noModeFallback,
		Logger:              &cliLogger{},
	}

	result, err := tokenbundler.CompileGlobal(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printBundleSummary(cyan, result)
	green.Printf("\n✨ Global bundle v%s stored\n\n", result.Bundle.Version)
}

func runComponent(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	component, sourcePath := args[0], args[1]

	cyan.Println("\n📦 Token Bundler Component")
	cyan.Println("============================")
	cyan.Println()

	opts := tokenbundler.Options{
		Project:    project,
		TokensFile: tokensFile,
		TokensDir:  tokensDir,
		OutputDir:  outputDir,
		Logger:     &cliLogger{},
	}

	result, err := tokenbundler.CompileComponent(opts, component, sourcePath)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printBundleSummary(cyan, result)
	if len(result.UnmatchedRefs) > 0 {
		fmt.Printf("  • Unmatched references: %d\n", len(result.UnmatchedRefs))
	}
	green.Printf("\n✨ Component bundle v%s stored for %q\n\n", result.Bundle.Version, component)
}

func printBundleSummary(cyan *color.Color, result *tokenbundler.CompileResult) {
	cyan.Println("\n📊 Bundle Summary:")
	fmt.Printf("  • Version: %s\n", result.Bundle.Version)
	fmt.Printf("  • Tokens: %d\n", result.Bundle.TokenCount)
	if len(result.Bundle.Modes) > 0 {
		fmt.Printf("  • Modes: %v\n", result.Bundle.Modes)
	}
	if result.Stored.StylesheetPath != "" {
		fmt.Printf("  • Stylesheet: %s\n", result.Stored.StylesheetPath)
	}
	fmt.Printf("  • Alias map: %s\n", result.Stored.AliasMapPath)
}

// cliLogger implements tokenbundler.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
