package loader

import (
	"errors"
	"reflect"
	"testing"

	langsync "github.com/YonasValentin/langsync.xyz-sub000"
)

func TestNewBundled_RequiresDefaultLanguage(t *testing.T) {
	translations := map[string]langsync.Dictionary{
		"en": {"greeting": "Hello"},
	}

	_, err := NewBundled(translations, "")
	var cerr *langsync.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError for empty default, got %T: %v", err, err)
	}

	_, err = NewBundled(translations, "fr")
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError for missing default, got %T: %v", err, err)
	}
}

func TestBundled_FallbackToDefault(t *testing.T) {
	b, err := NewBundled(map[string]langsync.Dictionary{
		"en": {"greeting": "Hello"},
	}, "en")
	if err != nil {
		t.Fatalf("NewBundled failed: %v", err)
	}

	// Unknown language falls back to the default dictionary.
	dict, err := b.LoadTranslations("sw")
	if err != nil {
		t.Fatalf("LoadTranslations(sw) failed: %v", err)
	}
	if got, _ := dict.Lookup("greeting"); got != "Hello" {
		t.Errorf("fallback greeting = %q, want %q", got, "Hello")
	}

	// Present language returns its own dictionary, no fallback.
	dict, err = b.LoadTranslations("en")
	if err != nil {
		t.Fatalf("LoadTranslations(en) failed: %v", err)
	}
	if got, _ := dict.Lookup("greeting"); got != "Hello" {
		t.Errorf("greeting = %q, want %q", got, "Hello")
	}
}

func TestBundled_TagMatching(t *testing.T) {
	b, err := NewBundled(map[string]langsync.Dictionary{
		"en": {"greeting": "Hello"},
		"pt": {"greeting": "Olá"},
	}, "en")
	if err != nil {
		t.Fatalf("NewBundled failed: %v", err)
	}

	// Regional variant resolves to its bundled base language.
	dict, err := b.LoadTranslations("pt-BR")
	if err != nil {
		t.Fatalf("LoadTranslations(pt-BR) failed: %v", err)
	}
	if got, _ := dict.Lookup("greeting"); got != "Olá" {
		t.Errorf("pt-BR greeting = %q, want %q", got, "Olá")
	}

	// Underscore locale form works too.
	dict, err = b.LoadTranslations("pt_BR")
	if err != nil {
		t.Fatalf("LoadTranslations(pt_BR) failed: %v", err)
	}
	if got, _ := dict.Lookup("greeting"); got != "Olá" {
		t.Errorf("pt_BR greeting = %q, want %q", got, "Olá")
	}

	// Unrelated language still reaches the default fallback.
	dict, err = b.LoadTranslations("ja")
	if err != nil {
		t.Fatalf("LoadTranslations(ja) failed: %v", err)
	}
	if got, _ := dict.Lookup("greeting"); got != "Hello" {
		t.Errorf("ja greeting = %q, want default %q", got, "Hello")
	}
}

func TestBundled_Lookups(t *testing.T) {
	b, err := NewBundled(map[string]langsync.Dictionary{
		"en": {"greeting": "Hello"},
		"es": {"greeting": "Hola"},
	}, "en")
	if err != nil {
		t.Fatalf("NewBundled failed: %v", err)
	}

	if !b.HasLanguage("es") {
		t.Error("HasLanguage(es) = false, want true")
	}
	if b.HasLanguage("es-MX") {
		t.Error("HasLanguage is an exact lookup; es-MX should be false")
	}

	if got := b.Languages(); !reflect.DeepEqual(got, []string{"en", "es"}) {
		t.Errorf("Languages() = %v, want [en es]", got)
	}
	if got := b.DefaultLanguage(); got != "en" {
		t.Errorf("DefaultLanguage() = %q, want %q", got, "en")
	}

	if matched, ok := b.Resolve("es-MX"); !ok || matched != "es" {
		t.Errorf("Resolve(es-MX) = (%q, %v), want (es, true)", matched, ok)
	}
	if _, ok := b.Resolve("ja"); ok {
		t.Error("Resolve(ja) should not match any bundled language")
	}
}
