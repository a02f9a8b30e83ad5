//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{Username: "jane", Password: "long enough"}
	assert.NoError(t, valid.Validate())

	shortPassword := RegisterRequest{Username: "jane", Password: "short"}
	assert.Error(t, shortPassword.Validate())

	shortUsername := RegisterRequest{Username: "jd", Password: "long enough"}
	assert.Error(t, shortUsername.Validate())
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Username: "jane", Password: "pw"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{Username: "jane"}
	assert.Error(t, missing.Validate())
}
