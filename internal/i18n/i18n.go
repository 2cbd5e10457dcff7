// Package i18n maps canonical statistic keys to display labels.
package i18n

import (
	"sort"

	"golang.org/x/text/language"
)

var (
	supported = []language.Tag{language.English, language.Hungarian}
	tables    = []map[string]string{english, hungarian}
	matcher   = language.NewMatcher(supported)
)

// Translator resolves labels for one language.
type Translator struct {
	tag    language.Tag
	labels map[string]string
}

// Lookup returns the translator best matching lang ("hu", "hu-HU", "en-GB").
// Unparseable or unsupported languages resolve to English.
func Lookup(lang string) Translator {
	idx := 0
	if tag, err := language.Parse(lang); err == nil {
		_, idx, _ = matcher.Match(tag)
	}
	return Translator{tag: supported[idx], labels: tables[idx]}
}

// Languages lists the supported language codes.
func Languages() []string {
	out := make([]string, 0, len(supported))
	for _, t := range supported {
		out = append(out, t.String())
	}
	return out
}

// Language is the base language code of the translator.
func (t Translator) Language() string {
	if t.labels == nil {
		return language.English.String()
	}
	return t.tag.String()
}

// T returns the label for key, or key itself when no label exists.
func (t Translator) T(key string) string {
	if label, ok := t.table()[key]; ok {
		return label
	}
	return key
}

// Has reports whether key has a label.
func (t Translator) Has(key string) bool {
	_, ok := t.table()[key]
	return ok
}

// Keys returns the labelled keys in sorted order.
func (t Translator) Keys() []string {
	keys := make([]string, 0, len(t.table()))
	for k := range t.table() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DiagramTitle returns the localized title of a classification diagram.
// It prefers a dataset specific title ("quartiles_ludas_diagram_title") and
// falls back to the scheme title followed by the dataset name.
func (t Translator) DiagramTitle(scheme, dataset string) string {
	if key := scheme + "_" + dataset + "_diagram_title"; t.Has(key) {
		return t.T(key)
	}
	generic := scheme + "_diagram_title"
	if !t.Has(generic) {
		return dataset
	}
	if dataset == "" {
		return t.T(generic)
	}
	return t.T(generic) + " (" + dataset + ")"
}

func (t Translator) table() map[string]string {
	if t.labels == nil {
		return english
	}
	return t.labels
}
