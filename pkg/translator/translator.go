package translator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // files for other languages are skipped
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator builds the bundle from <lang>.toml files in the folder.
// A missing folder leaves an empty English bundle, so lookups fall back to
// message keys instead of panicking.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		if !isSupported(cfg.SupportedLanguages, strings.TrimSuffix(entry.Name(), ".toml")) {
			zap.L().Debug("skipping unsupported translation file", zap.String("file", entry.Name()))
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, entry.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}
}

// Localize translates messageID for the Accept-Language value lang and
// returns the key itself when no translation exists.
func Localize(lang, messageID string) string {
	if Translator == nil {
		return messageID
	}

	msg, err := i18n.NewLocalizer(Translator, lang, LanguageEn).Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", messageID), zap.Error(err))
		return messageID
	}
	return msg
}

func isSupported(supported []string, lang string) bool {
	if len(supported) == 0 {
		return true
	}
	for _, s := range supported {
		if strings.EqualFold(s, lang) {
			return true
		}
	}
	return false
}
