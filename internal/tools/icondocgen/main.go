// Command icondocgen writes the markdown icon catalog and, optionally, the
// SVG sprite sheet for the default registry.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/louisbranch/iconhub/internal/platform/icons"
)

const defaultOutPath = "docs/icon-catalog.md"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fatal(err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var outPath string
	var spritePath string
	var rootFlag string
	flags := flag.NewFlagSet("icondocgen", flag.ContinueOnError)
	flags.StringVar(&outPath, "out", defaultOutPath, "output path for the icon catalog")
	flags.StringVar(&spritePath, "sprite", "", "optional output path for the SVG sprite sheet")
	flags.StringVar(&rootFlag, "root", "", "repo root (defaults to locating go.mod)")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	root, err := resolveRoot(rootFlag)
	if err != nil {
		return err
	}

	content := fmt.Sprintf(`---
title: "Icon Catalog"
nav_order: 30
---

%s`, icons.CatalogMarkdown())
	catalogOut := resolveOutput(root, outPath)
	if err := writeOutput(catalogOut, content); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %d icons to %s\n", len(icons.IDs()), catalogOut)

	if spritePath != "" {
		spriteOut := resolveOutput(root, spritePath)
		if err := writeOutput(spriteOut, icons.Sprite()+"\n"); err != nil {
			return fmt.Errorf("write sprite: %w", err)
		}
		fmt.Fprintf(stdout, "wrote sprite to %s\n", spriteOut)
	}
	return nil
}

func resolveOutput(root, output string) string {
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(root, output)
}

func writeOutput(output, content string) error {
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return err
	}
	return nil
}

// resolveRoot chooses the repository root so generated docs land in the right tree.
func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Clean(flagRoot), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	return findModuleRoot(wd)
}

// findModuleRoot walks upward to locate the module root for generation.
func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("go.mod not found above %s", start)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
