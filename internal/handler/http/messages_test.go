package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.Equal(t, "user not found", translate(msgUserNotFound, "en"))
	assert.Equal(t, "usuario no encontrado", translate(msgUserNotFound, "es"))
	assert.Equal(t, "usuario no encontrado", translate(msgUserNotFound, "es-MX,es;q=0.9,en;q=0.8"))
}

func TestTranslate_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "user not found", translate(msgUserNotFound, ""))
	assert.Equal(t, "user not found", translate(msgUserNotFound, "fr-FR"))
	assert.Equal(t, "user not found", translate(msgUserNotFound, "de,en;q=0.5"))
}

func TestTranslate_UnknownIDReturnsTheID(t *testing.T) {
	assert.Equal(t, "auth.bogus", translate(messageID("auth.bogus"), "en"))
}

func TestPrimaryLanguage(t *testing.T) {
	assert.Equal(t, "en", primaryLanguage(""))
	assert.Equal(t, "es", primaryLanguage("es"))
	assert.Equal(t, "es", primaryLanguage("ES"))
	assert.Equal(t, "es", primaryLanguage("es-MX"))
	assert.Equal(t, "es", primaryLanguage("es;q=0.9"))
	assert.Equal(t, "es", primaryLanguage(" es-MX , en;q=0.8"))
}
