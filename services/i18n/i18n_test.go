package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	nested := map[string]interface{}{
		"nav": map[string]interface{}{
			"faq": "FAQ",
			"lead": map[string]interface{}{
				"title": "Form",
			},
		},
		"count": 123,
	}

	flat := make(map[string]string)
	flatten("", nested, flat)

	assert.Equal(t, "FAQ", flat["nav.faq"])
	assert.Equal(t, "Form", flat["nav.lead.title"])
	assert.Equal(t, "123", flat["count"])
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		args     map[string]interface{}
		expected string
	}{
		{
			name:     "No placeholders",
			text:     "Hello World",
			expected: "Hello World",
		},
		{
			name:     "Single placeholder",
			text:     "© {year} RetailNexa AI.",
			args:     map[string]interface{}{"year": 2026},
			expected: "© 2026 RetailNexa AI.",
		},
		{
			name:     "Missing argument",
			text:     "Hello {name}",
			args:     map[string]interface{}{"other": "val"},
			expected: "Hello {name}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result string
			if tt.args == nil {
				result = format(tt.text)
			} else {
				result = format(tt.text, tt.args)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetLocale(t *testing.T) {
	t.Run("Default locale", func(t *testing.T) {
		assert.Equal(t, "en", GetLocale(context.Background()))
	})

	t.Run("Locale from context", func(t *testing.T) {
		assert.Equal(t, "es", GetLocale(WithLocale(context.Background(), "es")))
	})

	t.Run("Empty locale falls back", func(t *testing.T) {
		assert.Equal(t, "en", GetLocale(WithLocale(context.Background(), "")))
	})
}

func TestTranslateLogic(t *testing.T) {
	mutex.Lock()
	oldTrans := translations
	translations = map[string]map[string]string{
		"en": {
			"test.hello":   "Hello",
			"test.welcome": "Welcome {name}",
		},
		"es": {
			"test.hello": "Hola",
		},
	}
	mutex.Unlock()

	defer func() {
		mutex.Lock()
		translations = oldTrans
		mutex.Unlock()
	}()

	t.Run("Direct lookup", func(t *testing.T) {
		assert.Equal(t, "Hola", Translate("es", "test.hello"))
		assert.Equal(t, "Hello", Translate("en", "test.hello"))
	})

	t.Run("Fallback to default", func(t *testing.T) {
		assert.Equal(t, "Welcome Juan", Translate("es", "test.welcome", map[string]interface{}{"name": "Juan"}))
	})

	t.Run("Fallback to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", Translate("es", "missing.key"))
	})

	t.Run("T uses context locale", func(t *testing.T) {
		ctx := WithLocale(context.Background(), "es")
		assert.Equal(t, "Hola", T(ctx, "test.hello"))
	})
}

func TestLoad(t *testing.T) {
	require.NoError(t, Load())

	assert.Equal(t, []string{"en", "es"}, Languages())
	assert.Equal(t, "Please enter your name.", Translate("en", "lead.error.name"))
	assert.Equal(t, "Please enter your email.", Translate("en", "lead.error.email"))
	assert.Equal(t, "Por favor ingresa tu nombre.", Translate("es", "lead.error.name"))
	assert.Equal(t, "Acceso Anticipado", Translate("es", "lead.request_type.Early Access"))
}

func TestLocaleFilesHaveSameKeys(t *testing.T) {
	require.NoError(t, Load())

	mutex.RLock()
	defer mutex.RUnlock()
	for key := range translations["en"] {
		assert.Contains(t, translations["es"], key, "es is missing %s", key)
	}
	for key := range translations["es"] {
		assert.Contains(t, translations["en"], key, "en is missing %s", key)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name        string
		preferences []string
		expected    string
	}{
		{"Nothing", nil, "en"},
		{"BareCode", []string{"es"}, "es"},
		{"Region", []string{"es-MX"}, "es"},
		{"AcceptLanguage", []string{"es-ES,es;q=0.9,en;q=0.8"}, "es"},
		{"EnglishHeader", []string{"en-US,en;q=0.9"}, "en"},
		{"Unsupported", []string{"de-DE"}, "en"},
		{"FirstUsableWins", []string{"", "es"}, "es"},
		{"QueryBeatsHeader", []string{"en", "es-ES"}, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Match(tt.preferences...))
		})
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("en"))
	assert.True(t, IsSupported("es"))
	assert.False(t, IsSupported("fr"))
	assert.False(t, IsSupported(""))
}
