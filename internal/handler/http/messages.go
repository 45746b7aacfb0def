package http

import "strings"

// messageID keys the localized error catalog. IDs follow an
// "<area>.<condition>" convention so client-side translation tables can
// reuse them.
type messageID string

const (
	msgUserNotFound      messageID = "auth.user_not_found"
	msgLoginFailed       messageID = "auth.login_failed"
	msgUserAlreadyExists messageID = "auth.user_already_exists"
	msgInvalidGrantType  messageID = "auth.invalid_granty_type"
	msgUnhandled         messageID = "auth.status.unhandled"
	msgInvalidJSON       messageID = "request.invalid_json"
	msgUnauthorized      messageID = "request.unauthorized"
	msgProductNotFound   messageID = "catalog.product_not_found"
)

const fallbackLanguage = "en"

// catalog holds the per-language message tables.
var catalog = map[string]map[messageID]string{
	"en": {
		msgUserNotFound:      "user not found",
		msgLoginFailed:       "invalid email or password",
		msgUserAlreadyExists: "user already exists",
		msgInvalidGrantType:  "invalid grant type",
		msgUnhandled:         "internal server error",
		msgInvalidJSON:       "invalid JSON was passed",
		msgUnauthorized:      "unauthorized",
		msgProductNotFound:   "product not found",
	},
	"es": {
		msgUserNotFound:      "usuario no encontrado",
		msgLoginFailed:       "correo o contraseña inválidos",
		msgUserAlreadyExists: "el usuario ya existe",
		msgInvalidGrantType:  "tipo de concesión inválido",
		msgUnhandled:         "error interno del servidor",
		msgInvalidJSON:       "JSON inválido",
		msgUnauthorized:      "no autorizado",
		msgProductNotFound:   "producto no encontrado",
	},
}

// translate resolves a message ID against the first language tag of the
// Accept-Language header, falling back to English for unknown languages
// or untranslated IDs.
func translate(id messageID, acceptLanguage string) string {
	lang := primaryLanguage(acceptLanguage)

	if table, ok := catalog[lang]; ok {
		if msg, ok := table[id]; ok {
			return msg
		}
	}

	if msg, ok := catalog[fallbackLanguage][id]; ok {
		return msg
	}

	return string(id)
}

// primaryLanguage extracts the base of the first tag of an
// Accept-Language header ("es-MX,es;q=0.9" → "es").
func primaryLanguage(acceptLanguage string) string {
	first, _, _ := strings.Cut(acceptLanguage, ",")
	base, _, _ := strings.Cut(strings.TrimSpace(first), "-")
	base, _, _ = strings.Cut(base, ";")

	if base == "" {
		return fallbackLanguage
	}

	return strings.ToLower(base)
}
