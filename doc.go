// Package tokenbundler turns Figma node graphs and a project's design tokens
// into normalized property descriptions and versioned, mode-aware style
// bundles (CSS custom-property sheets plus JSON alias maps).
//
// The CLI lives in cmd/token-bundler; this root package exposes the same
// pipeline as a Go API so that callers can embed extraction and bundle
// compilation in their own tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named tokenbundler:
//
//	import "github.com/hellenic-development/token-bundler" // package tokenbundler
//
// # Quick start
//
//	result, err := tokenbundler.CompileGlobal(tokenbundler.Options{
//	    Project:    "acme-web",
//	    TokensFile: "design-tokens.json",
//	    OutputDir:  "bundles",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stored.StylesheetPath)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Node-scoped extraction
//
// To extract specific frames or components rather than the entire file,
// populate [Options.NodeIDs] or include node-id query parameters in the
// Figma URL. Extraction also fetches the file's local variables and resolves
// them against the project's tokens with confidence scores.
//
// # Bundles
//
// [CompileGlobal] compiles the full active token set into one bundle per
// project; [CompileComponent] compiles a bundle scoped to the variable
// references found in one component's generated source. Both hand their
// output to a storage sink and derive the next semantic version from the
// previously stored bundle.
package tokenbundler
