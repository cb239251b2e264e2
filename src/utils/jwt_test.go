package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("64f000000000000000000001", "Sara Ahmed", "student")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.UserID)
	assert.Equal(t, "Sara Ahmed", claims.FullName)
	assert.Equal(t, "student", claims.Role)
}

func TestParseJWTRejectsBadInput(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)

	_, err = ParseJWT("not.a.token")
	assert.Error(t, err)

	token, err := GenerateJWT("64f000000000000000000001", "Sara Ahmed", "student")
	assert.NoError(t, err)

	// flip a character in the signature
	tampered := token[:len(token)-2] + "xx"
	_, err = ParseJWT(tampered)
	assert.Error(t, err)
}
