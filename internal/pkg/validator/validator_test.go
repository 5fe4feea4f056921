package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("intern@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidContactNumber(t *testing.T) {
	assert.True(t, IsValidContactNumber("09171234567"))
	assert.False(t, IsValidContactNumber("0917123456"))   // too short
	assert.False(t, IsValidContactNumber("091712345678")) // too long
	assert.False(t, IsValidContactNumber("08171234567"))  // wrong prefix
	assert.False(t, IsValidContactNumber("09a71234567"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Passw0rd!"))
	assert.False(t, IsStrongPassword("short1!"))
	assert.False(t, IsStrongPassword("alllowercase1!"))
	assert.False(t, IsStrongPassword("ALLUPPERCASE1!"))
	assert.False(t, IsStrongPassword("NoDigits!!"))
	assert.False(t, IsStrongPassword("NoSpecial123"))
}

func TestIsValidImageExt(t *testing.T) {
	assert.True(t, IsValidImageExt("proof.jpg"))
	assert.True(t, IsValidImageExt("PROOF.JPEG"))
	assert.True(t, IsValidImageExt("capture.png"))
	assert.True(t, IsValidImageExt("scan.jfif"))
	assert.True(t, IsValidImageExt("anim.gif"))
	assert.False(t, IsValidImageExt("document.pdf"))
	assert.False(t, IsValidImageExt("noextension"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-06-30")
	assert.True(t, ok)
	_, ok = IsValidDate("30-06-2025")
	assert.False(t, ok)
}
