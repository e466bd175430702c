// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Command clara-redact scans filled PDF forms for patient and commercial
// information and writes redacted copies plus an audit trail.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"clara-redact/internal/config"
	"clara-redact/internal/engine"
	"clara-redact/internal/fieldstore"
	"clara-redact/internal/formatters"
	_ "clara-redact/internal/formatters/csv"
	_ "clara-redact/internal/formatters/json"
	_ "clara-redact/internal/formatters/text"
	"clara-redact/internal/ner"
	"clara-redact/internal/observability"
	"clara-redact/internal/usertags"
	"clara-redact/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	inputPath := flag.String("input", "", "Path to the input PDF or a directory of PDFs")
	outputDir := flag.String("output", "./redacted", "Directory where redacted PDFs and audit files are written")
	batch := flag.Bool("batch", false, "Process every PDF in the input directory")
	tagFile := flag.String("tags", "", "Path to a YAML user-tag definition file")
	configFile := flag.String("config", "", "Path to engine configuration file (YAML)")
	outputFormat := flag.String("format", "text", "Audit output format: text, json, csv")
	mode := flag.String("mode", "", "Replacement mode: category or entity (overrides config)")
	only := flag.String("only", "", "Limit audit output to one classification: B4 or B6")
	showOriginal := flag.Bool("show-original", false, "Include original matched text in audit output")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	debug := flag.Bool("debug", false, "Enable debug logging of pipeline operations")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("clara-redact %s\n", version.Get())
		return 0
	}
	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "error: -input is required")
		flag.Usage()
		return 2
	}
	if *noColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	// .env may carry the NER endpoint; missing files are fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if endpoint := os.Getenv("CLARA_NER_ENDPOINT"); endpoint != "" {
		cfg.NER.Endpoint = endpoint
	}

	level := observability.LevelMetrics
	if *debug {
		level = observability.LevelDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)

	var classifier ner.Classifier
	if cfg.NER.Endpoint != "" {
		classifier = ner.NewHTTPClassifier(cfg.NER.Endpoint, cfg.NER.Timeout())
	}
	eng := engine.New(cfg, classifier, observer)

	var tags *usertags.TagFile
	if *tagFile != "" {
		tags, err = usertags.LoadTagFile(*tagFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
	}

	inputs, err := collectInputs(*inputPath, *batch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if err := os.MkdirAll(*outputDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to create output directory: %v\n", err)
		return 2
	}

	opts := formatters.Options{ShowOriginal: *showOriginal, NoColor: *noColor}
	failed := 0
	for _, input := range inputs {
		if err := processDocument(eng, input, *outputDir, *outputFormat, *only, tags, opts); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", input, err)
			failed++
		}
		eng.ResetCaches()
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d documents failed\n", failed, len(inputs))
		return 1
	}
	return 0
}

// collectInputs expands the input path into the list of PDFs to process.
func collectInputs(path string, batch bool) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat input: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}
	if !batch {
		return nil, fmt.Errorf("%s is a directory; use -batch to process it", path)
	}

	matches, err := filepath.Glob(filepath.Join(path, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", path)
	}
	return matches, nil
}

// processDocument redacts one PDF and writes its outputs. An AcroForm-less
// PDF is scanned read-only via page text; its audit trail is still
// produced but no redacted copy can be written.
func processDocument(eng *engine.Engine, input, outputDir, format, only string, tags *usertags.TagFile, opts formatters.Options) error {
	store, writable, err := openStore(input)
	if err != nil {
		return err
	}

	result, err := eng.ProcessDocument(context.Background(), store, tags)
	if err != nil {
		return err
	}
	if result.Failed() {
		return fmt.Errorf("fields need manual review: %s", strings.Join(result.NeedsReview, ", "))
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if writable && result.WrittenFields > 0 {
		redactedPath := filepath.Join(outputDir, base+"_redacted.pdf")
		if err := store.Save(redactedPath); err != nil {
			return err
		}
	}

	records := result.Records
	if only != "" {
		records = engine.FilterByClassification(records, strings.ToUpper(only))
	}

	out, err := formatters.Export(format, filepath.Base(input), records, opts)
	if err != nil {
		return err
	}
	fmt.Print(out)

	if format != "text" {
		f, ok := formatters.DefaultRegistry.Get(format)
		if ok {
			auditPath := filepath.Join(outputDir, base+"_audit"+f.FileExtension())
			if err := os.WriteFile(auditPath, []byte(out), 0o600); err != nil {
				return fmt.Errorf("failed to write audit file: %w", err)
			}
		}
	}
	return nil
}

// openStore opens the document's field store, falling back to read-only
// page text when the PDF has no form fields.
func openStore(input string) (fieldstore.Store, bool, error) {
	pdfStore, err := fieldstore.OpenPDF(input)
	if err == nil {
		fields, ferr := pdfStore.ListFields()
		if ferr == nil && len(fields) > 0 {
			return pdfStore, true, nil
		}
	}

	pageStore, perr := fieldstore.OpenPageText(input)
	if perr != nil {
		if err != nil {
			return nil, false, fmt.Errorf("failed to open document: %w", err)
		}
		return nil, false, fmt.Errorf("no form fields and text extraction failed: %w", perr)
	}
	return pageStore, false, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
