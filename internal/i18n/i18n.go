// Package i18n holds the display names for traits and phenotypes and picks
// the catalog that best matches a request.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale     string            `yaml:"locale"`
	Traits     map[string]string `yaml:"traits"`
	Phenotypes map[string]string `yaml:"phenotypes"`
}

// Bundle is the set of loaded catalogs plus a matcher over their tags.
type Bundle struct {
	catalogs map[language.Tag]*catalogFile
	tags     []language.Tag
	matcher  language.Matcher
}

// LoadEmbedded loads the catalogs compiled into the binary. defaultLocale is
// returned whenever nothing in a request matches.
func LoadEmbedded(defaultLocale string) (*Bundle, error) {
	return LoadFromFS(embeddedLocales, defaultLocale)
}

// LoadFromFS loads every locales/*.yaml file in fsys.
func LoadFromFS(fsys fs.FS, defaultLocale string) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	def, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	b := &Bundle{catalogs: make(map[language.Tag]*catalogFile)}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var cf catalogFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		tag, err := language.Parse(cf.Locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: invalid locale %q: %w", path, cf.Locale, err)
		}
		if _, dup := b.catalogs[tag]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate locale %s", path, tag)
		}
		b.catalogs[tag] = &cf
		b.tags = append(b.tags, tag)
	}

	if _, ok := b.catalogs[def]; !ok {
		return nil, fmt.Errorf("default locale %s has no catalog", def)
	}
	// The matcher falls back to its first tag.
	ordered := []language.Tag{def}
	for _, t := range b.tags {
		if t != def {
			ordered = append(ordered, t)
		}
	}
	b.tags = ordered
	b.matcher = language.NewMatcher(ordered)
	return b, nil
}

// Supported returns the catalog tags, default first.
func (b *Bundle) Supported() []language.Tag {
	return append([]language.Tag(nil), b.tags...)
}

func (b *Bundle) Default() language.Tag {
	return b.tags[0]
}

// Match picks the best catalog for an explicit lang value and an
// Accept-Language header, in that order of precedence.
func (b *Bundle) Match(lang, acceptLanguage string) language.Tag {
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if _, idx, conf := b.matcher.Match(tag); conf != language.No {
				return b.tags[idx]
			}
		}
	}
	if acceptLanguage = strings.TrimSpace(acceptLanguage); acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			_, idx, _ := b.matcher.Match(tags...)
			return b.tags[idx]
		}
	}
	return b.Default()
}

// ResolveRequest matches the ?lang= parameter and Accept-Language header of r.
func (b *Bundle) ResolveRequest(r *http.Request) language.Tag {
	if r == nil {
		return b.Default()
	}
	return b.Match(r.URL.Query().Get(LangParam), r.Header.Get("Accept-Language"))
}

// Localizer returns the names for tag. Tags without a catalog use the
// default one.
func (b *Bundle) Localizer(tag language.Tag) *Localizer {
	cat, ok := b.catalogs[tag]
	if !ok {
		tag = b.Default()
		cat = b.catalogs[tag]
	}
	return &Localizer{tag: tag, cat: cat, fallback: b.catalogs[b.Default()]}
}

// Localizer translates trait keys and phenotype labels for one locale.
type Localizer struct {
	tag      language.Tag
	cat      *catalogFile
	fallback *catalogFile
}

func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// TraitTitle returns the display title of a trait key, or the key itself.
func (l *Localizer) TraitTitle(key string) string {
	return lookup(key, l.cat.Traits, l.fallback.Traits)
}

// Phenotype returns the display name of a phenotype label, or the label
// itself. Blood groups are shown as-is in every locale.
func (l *Localizer) Phenotype(label string) string {
	return lookup(label, l.cat.Phenotypes, l.fallback.Phenotypes)
}

func lookup(key string, primary, fallback map[string]string) string {
	if v, ok := primary[key]; ok && v != "" {
		return v
	}
	if v, ok := fallback[key]; ok && v != "" {
		return v
	}
	return key
}
