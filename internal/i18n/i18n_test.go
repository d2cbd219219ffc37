package i18n

import (
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadEmbedded(t *testing.T) {
	b, err := LoadEmbedded("en")
	require.NoError(t, err)
	assert.Equal(t, language.English, b.Default())
	assert.ElementsMatch(t, []language.Tag{language.English, language.Ukrainian}, b.Supported())

	_, err = LoadEmbedded("fr")
	assert.Error(t, err)
}

func TestMatch(t *testing.T) {
	b, err := LoadEmbedded("en")
	require.NoError(t, err)

	tests := []struct {
		name   string
		lang   string
		accept string
		want   language.Tag
	}{
		{name: "nothing", want: language.English},
		{name: "accept uk", accept: "uk-UA,uk;q=0.9,en;q=0.8", want: language.Ukrainian},
		{name: "accept unsupported", accept: "fr-FR,fr;q=0.9", want: language.English},
		{name: "lang wins", lang: "uk", accept: "en-US", want: language.Ukrainian},
		{name: "bad lang falls through", lang: "!!", accept: "uk", want: language.Ukrainian},
		{name: "unsupported lang falls through", lang: "de", accept: "uk", want: language.Ukrainian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Match(tt.lang, tt.accept))
		})
	}
}

func TestResolveRequest(t *testing.T) {
	b, err := LoadEmbedded("uk")
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/v1/traits?lang=en", nil)
	assert.Equal(t, language.English, b.ResolveRequest(r))

	r = httptest.NewRequest("GET", "/v1/traits", nil)
	assert.Equal(t, language.Ukrainian, b.ResolveRequest(r))
	assert.Equal(t, language.Ukrainian, b.ResolveRequest(nil))
}

func TestLocalizer(t *testing.T) {
	b, err := LoadEmbedded("en")
	require.NoError(t, err)

	uk := b.Localizer(language.Ukrainian)
	assert.Equal(t, "Колір очей", uk.TraitTitle("eye_color"))
	assert.Equal(t, "Карі", uk.Phenotype("brown"))
	assert.Equal(t, "Немає", uk.Phenotype("no"))
	assert.Equal(t, "AB", uk.Phenotype("AB"))
	assert.Equal(t, "unknown_trait", uk.TraitTitle("unknown_trait"))

	en := b.Localizer(language.English)
	assert.Equal(t, "Rh factor", en.TraitTitle("rh"))
	assert.Equal(t, "Present", en.Phenotype("yes"))

	fallback := b.Localizer(language.French)
	assert.Equal(t, language.English, fallback.Tag())
}

func TestLocalizerFallsBackToDefaultCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("locale: en\ntraits:\n  rh: Rh factor\n  height: Height\n")},
		"locales/uk.yaml": {Data: []byte("locale: uk\ntraits:\n  rh: Резус-фактор\n")},
	}
	b, err := LoadFromFS(fsys, "en")
	require.NoError(t, err)

	uk := b.Localizer(language.Ukrainian)
	assert.Equal(t, "Резус-фактор", uk.TraitTitle("rh"))
	assert.Equal(t, "Height", uk.TraitTitle("height"))
}

func TestLoadFromFSErrors(t *testing.T) {
	_, err := LoadFromFS(fstest.MapFS{}, "en")
	assert.Error(t, err)

	_, err = LoadFromFS(fstest.MapFS{
		"locales/a.yaml": {Data: []byte("locale: en\n")},
		"locales/b.yaml": {Data: []byte("locale: en\n")},
	}, "en")
	assert.Error(t, err)

	_, err = LoadFromFS(fstest.MapFS{
		"locales/en.yaml": {Data: []byte("locale: [\n")},
	}, "en")
	assert.Error(t, err)
}
