// Package main renders translator-friendly i18n status artifacts, including
// which icons lack a localized accessible label.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	i18ncatalog "github.com/louisbranch/iconhub/internal/platform/i18n/catalog"
	"github.com/louisbranch/iconhub/internal/platform/icons"
)

// iconLabelPrefix prefixes the catalog key of each icon's accessible label.
const iconLabelPrefix = "icons.label."

// errIncomplete reports missing translations under -strict.
var errIncomplete = errors.New("translations are incomplete")

type report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []localeStatus `json:"locales"`
}

type localeStatus struct {
	Locale            string            `json:"locale"`
	BaseKeys          int               `json:"base_keys"`
	Translated        int               `json:"translated"`
	Missing           int               `json:"missing"`
	Extra             int               `json:"extra"`
	Completion        float64           `json:"completion"`
	Namespaces        []namespaceStatus `json:"namespaces"`
	MissingKeys       []string          `json:"missing_keys"`
	ExtraKeys         []string          `json:"extra_keys"`
	MissingIconLabels []string          `json:"missing_icon_labels"`
}

type namespaceStatus struct {
	Namespace  string  `json:"namespace"`
	BaseKeys   int     `json:"base_keys"`
	Translated int     `json:"translated"`
	Missing    int     `json:"missing"`
	Extra      int     `json:"extra"`
	Completion float64 `json:"completion"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var baseLocale string
	var markdownOut string
	var jsonOut string
	var catalogDir string
	var strict bool

	flags := flag.NewFlagSet("i18nstatus", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&baseLocale, "base-locale", i18ncatalog.BaseLocale, "base locale used as translation source of truth")
	flags.StringVar(&markdownOut, "out", "docs/i18n-status.md", "markdown output path")
	flags.StringVar(&jsonOut, "json-out", "docs/i18n-status.json", "json output path")
	flags.StringVar(&catalogDir, "catalog-dir", "", "directory holding locales/<locale>/<namespace>.yaml (defaults to the embedded catalogs)")
	flags.BoolVar(&strict, "strict", false, "fail when any locale misses a base key or icon label")
	if err := flags.Parse(args); err != nil {
		return err
	}

	bundle, err := loadBundle(catalogDir)
	if err != nil {
		return fmt.Errorf("load i18n catalogs: %w", err)
	}
	if !bundle.HasLocale(baseLocale) {
		return fmt.Errorf("base locale %q is missing from catalogs", baseLocale)
	}

	rep := buildReport(bundle, baseLocale, icons.IDs())
	if err := writeJSON(jsonOut, rep); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	if err := writeMarkdown(markdownOut, rep); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %s and %s\n", markdownOut, jsonOut)

	if strict {
		for _, locale := range rep.Locales {
			if locale.Missing > 0 || len(locale.MissingIconLabels) > 0 {
				return fmt.Errorf("%w: %s misses %d keys and %d icon labels", errIncomplete, locale.Locale, locale.Missing, len(locale.MissingIconLabels))
			}
		}
	}
	return nil
}

func loadBundle(catalogDir string) (*i18ncatalog.Bundle, error) {
	if strings.TrimSpace(catalogDir) == "" {
		return i18ncatalog.LoadEmbedded()
	}
	var catalogFS fs.FS = os.DirFS(catalogDir)
	return i18ncatalog.LoadFromFS(catalogFS)
}

func buildReport(bundle *i18ncatalog.Bundle, baseLocale string, iconIDs []icons.ID) report {
	baseMessages := bundle.LocaleMessages(baseLocale)
	baseNamespaceSet := map[string]struct{}{}
	for _, namespace := range bundle.Namespaces(baseLocale) {
		baseNamespaceSet[namespace] = struct{}{}
	}

	locales := bundle.Locales()
	statuses := make([]localeStatus, 0, len(locales))
	for _, locale := range locales {
		localeMessages := bundle.LocaleMessages(locale)
		missingKeyList := missingKeys(baseMessages, localeMessages)
		extraKeyList := extraKeys(baseMessages, localeMessages)
		translated := len(baseMessages) - len(missingKeyList)

		namespaceUnionSet := map[string]struct{}{}
		for namespace := range baseNamespaceSet {
			namespaceUnionSet[namespace] = struct{}{}
		}
		for _, namespace := range bundle.Namespaces(locale) {
			namespaceUnionSet[namespace] = struct{}{}
		}

		namespaceStatuses := make([]namespaceStatus, 0, len(namespaceUnionSet))
		for _, namespace := range sortedSetKeys(namespaceUnionSet) {
			baseNS := bundle.NamespaceMessages(baseLocale, namespace)
			localeNS := bundle.NamespaceMessages(locale, namespace)
			nsMissing := missingKeys(baseNS, localeNS)
			nsExtra := extraKeys(baseNS, localeNS)
			nsTranslated := len(baseNS) - len(nsMissing)
			namespaceStatuses = append(namespaceStatuses, namespaceStatus{
				Namespace:  namespace,
				BaseKeys:   len(baseNS),
				Translated: nsTranslated,
				Missing:    len(nsMissing),
				Extra:      len(nsExtra),
				Completion: percent(nsTranslated, len(baseNS)),
			})
		}

		missingLabels := make([]string, 0)
		for _, id := range iconIDs {
			if _, ok := localeMessages[iconLabelPrefix+id.String()]; !ok {
				missingLabels = append(missingLabels, id.String())
			}
		}

		statuses = append(statuses, localeStatus{
			Locale:            locale,
			BaseKeys:          len(baseMessages),
			Translated:        translated,
			Missing:           len(missingKeyList),
			Extra:             len(extraKeyList),
			Completion:        percent(translated, len(baseMessages)),
			Namespaces:        namespaceStatuses,
			MissingKeys:       missingKeyList,
			ExtraKeys:         extraKeyList,
			MissingIconLabels: missingLabels,
		})
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Locale < statuses[j].Locale
	})

	return report{BaseLocale: baseLocale, Locales: statuses}
}

func writeJSON(path string, rep report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeMarkdown(path string, rep report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: \"I18n status\"\n")
	b.WriteString("nav_order: 20\n")
	b.WriteString("---\n\n")
	b.WriteString("# I18n Status\n\n")
	b.WriteString("Generated by `go run ./internal/tools/i18nstatus`.\n\n")
	b.WriteString("Base locale: `")
	b.WriteString(rep.BaseLocale)
	b.WriteString("`.\n\n")

	b.WriteString("## Locale Summary\n\n")
	b.WriteString("| Locale | Base Keys | Translated | Missing | Extra | Completion | Missing Icon Labels |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: | ---: |\n")
	for _, locale := range rep.Locales {
		b.WriteString(fmt.Sprintf("| `%s` | %d | %d | %d | %d | %.1f%% | %d |\n", locale.Locale, locale.BaseKeys, locale.Translated, locale.Missing, locale.Extra, locale.Completion, len(locale.MissingIconLabels)))
	}

	for _, locale := range rep.Locales {
		b.WriteString("\n## Locale: `")
		b.WriteString(locale.Locale)
		b.WriteString("`\n\n")

		b.WriteString("### Namespace Summary\n\n")
		b.WriteString("| Namespace | Base Keys | Translated | Missing | Extra | Completion |\n")
		b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
		for _, ns := range locale.Namespaces {
			b.WriteString(fmt.Sprintf("| `%s` | %d | %d | %d | %d | %.1f%% |\n", ns.Namespace, ns.BaseKeys, ns.Translated, ns.Missing, ns.Extra, ns.Completion))
		}

		writeKeyList(&b, "Missing Keys", locale.MissingKeys)
		writeKeyList(&b, "Extra Keys", locale.ExtraKeys)
		writeKeyList(&b, "Icons Without a Label", locale.MissingIconLabels)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeKeyList(b *strings.Builder, heading string, keys []string) {
	if len(keys) == 0 {
		return
	}
	b.WriteString("\n### " + heading + "\n\n")
	for _, key := range keys {
		b.WriteString("- `")
		b.WriteString(key)
		b.WriteString("`\n")
	}
}

func missingKeys(base map[string]string, target map[string]string) []string {
	out := make([]string, 0)
	for key := range base {
		if _, ok := target[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func extraKeys(base map[string]string, target map[string]string) []string {
	out := make([]string, 0)
	for key := range target {
		if _, ok := base[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func sortedSetKeys(entries map[string]struct{}) []string {
	out := make([]string, 0, len(entries))
	for key := range entries {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func percent(numerator int, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
