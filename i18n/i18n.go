// Package i18n loads the embedded report translations and resolves message
// IDs for a language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle     *i18n.Bundle
	bundleErr  error
	bundleOnce sync.Once
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

		files, err := fs.ReadDir(localeFS, "locales")
		if err != nil {
			bundleErr = err
			return
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			data, err := localeFS.ReadFile("locales/" + f.Name())
			if err != nil {
				bundleErr = err
				return
			}
			if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
				bundleErr = fmt.Errorf("failed to parse %s: %w", f.Name(), err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Translator resolves message IDs for one language, falling back to English.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
}

// New returns a Translator for lang ("en", "zh", or any BCP 47 tag).
func New(lang string) (*Translator, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	return &Translator{
		lang:      lang,
		localizer: i18n.NewLocalizer(b, lang, language.English.String()),
	}, nil
}

// Lang returns the language the translator was created for.
func (t *Translator) Lang() string {
	return t.lang
}

// T translates messageID with the optional template data. Unknown IDs are
// returned unchanged.
func (t *Translator) T(messageID string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
