package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"tasklist/pkg/translator"
)

const langKey = "lang"

var supportedLanguages = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

// LanguageMiddleware picks the response language from Accept-Language,
// falling back to English for unknown or missing values.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func matchLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := supportedLanguages.Match(tags...)
	if confidence == language.No || index != 1 {
		return translator.LanguageEn
	}
	return translator.LanguageFr
}
