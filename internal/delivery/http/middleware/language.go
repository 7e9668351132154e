package middleware

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// languageKey is the Locals key holding the negotiated language code.
const languageKey = "language"

// Language negotiates the request language: an explicit `lang` query
// parameter wins when it names a supported language, otherwise the
// Accept-Language header is matched against the supported set, otherwise
// the default applies. The resolved code is stored in Locals and threaded
// explicitly into usecase calls.
func Language(supported []string, defaultLang string) fiber.Handler {
	codes := make([]string, 0, len(supported)+1)
	codes = append(codes, defaultLang)
	for _, code := range supported {
		if code != defaultLang {
			codes = append(codes, code)
		}
	}

	tags := make([]language.Tag, len(codes))
	for i, code := range codes {
		tags[i] = language.Make(code)
	}
	matcher := language.NewMatcher(tags)

	return func(c *fiber.Ctx) error {
		if lang := c.Query("lang"); lang != "" {
			for _, code := range codes {
				if code == lang {
					c.Locals(languageKey, code)
					return c.Next()
				}
			}
		}

		resolved := defaultLang
		if accept := c.Get(fiber.HeaderAcceptLanguage); accept != "" {
			if wanted, _, err := language.ParseAcceptLanguage(accept); err == nil {
				_, idx, _ := matcher.Match(wanted...)
				resolved = codes[idx]
			}
		}

		c.Locals(languageKey, resolved)
		return c.Next()
	}
}

// Lang returns the language code negotiated for the request.
func Lang(c *fiber.Ctx) string {
	if code, ok := c.Locals(languageKey).(string); ok {
		return code
	}
	return ""
}
