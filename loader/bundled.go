package loader

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	langsync "github.com/YonasValentin/langsync.xyz-sub000"
)

// Bundled resolves languages from a fixed, compiled-in mapping. It performs
// no I/O: unknown languages fall back to the default language's dictionary.
type Bundled struct {
	translations map[string]langsync.Dictionary
	defaultLang  string

	// matcher operates over the parseable subset of bundled languages;
	// matchLangs is index-aligned with the tags the matcher was built from.
	matcher    language.Matcher
	matchLangs []string
}

// NewBundled creates a bundled loader. The default language must be present
// in the mapping; construction fails otherwise.
func NewBundled(translations map[string]langsync.Dictionary, defaultLanguage string) (*Bundled, error) {
	if defaultLanguage == "" {
		return nil, &langsync.ConfigError{Field: "defaultLanguage", Message: "is required"}
	}
	if _, ok := translations[defaultLanguage]; !ok {
		return nil, &langsync.ConfigError{Field: "defaultLanguage", Message: "not present in bundled translations"}
	}

	b := &Bundled{
		translations: make(map[string]langsync.Dictionary, len(translations)),
		defaultLang:  defaultLanguage,
	}

	var tags []language.Tag
	for lang, dict := range translations {
		b.translations[lang] = dict
	}
	for _, lang := range b.Languages() {
		tag, err := language.Parse(normalizeTag(lang))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		b.matchLangs = append(b.matchLangs, lang)
	}
	if len(tags) > 0 {
		b.matcher = language.NewMatcher(tags)
	}

	return b, nil
}

// LoadTranslations returns the dictionary for lang. Unknown languages first
// try a BCP 47 best match (so "pt-BR" resolves to a bundled "pt"), then fall
// back to the default language.
func (b *Bundled) LoadTranslations(lang string) (langsync.Dictionary, error) {
	if dict, ok := b.translations[lang]; ok {
		return dict, nil
	}
	if matched, ok := b.match(lang); ok {
		return b.translations[matched], nil
	}
	dict, ok := b.translations[b.defaultLang]
	if !ok {
		return nil, &langsync.NotFoundError{Message: "no bundled dictionary for default language " + b.defaultLang}
	}
	return dict, nil
}

// HasLanguage reports whether lang is bundled exactly. Pure lookup, no
// matching.
func (b *Bundled) HasLanguage(lang string) bool {
	_, ok := b.translations[lang]
	return ok
}

// Resolve returns the bundled language that serves lang: the language itself
// when bundled, otherwise its BCP 47 best match.
func (b *Bundled) Resolve(lang string) (string, bool) {
	if b.HasLanguage(lang) {
		return lang, true
	}
	return b.match(lang)
}

// Languages returns the bundled language codes, sorted.
func (b *Bundled) Languages() []string {
	langs := make([]string, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultLanguage returns the configured fallback language.
func (b *Bundled) DefaultLanguage() string {
	return b.defaultLang
}

// match finds a bundled language for lang via BCP 47 matching. Low-confidence
// matches are rejected so unrelated languages still reach the default
// fallback.
func (b *Bundled) match(lang string) (string, bool) {
	if b.matcher == nil {
		return "", false
	}
	tag, err := language.Parse(normalizeTag(lang))
	if err != nil {
		return "", false
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return b.matchLangs[idx], true
}

// normalizeTag accepts locale codes in underscore form ("pt_BR") as well as
// BCP 47 form ("pt-BR").
func normalizeTag(lang string) string {
	return strings.ReplaceAll(lang, "_", "-")
}
