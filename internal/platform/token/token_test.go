package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("test-signing-key", "strongroom-test", time.Minute)
	caller := domain.NewAddress()

	tokenStr, err := svc.Generate(caller)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	parsed, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	require.Equal(t, caller, parsed)
}

func TestValidate_WrongKey(t *testing.T) {
	svc := NewService("key-one", "strongroom-test", time.Minute)
	other := NewService("key-two", "strongroom-test", time.Minute)

	tokenStr, err := svc.Generate(domain.NewAddress())
	require.NoError(t, err)

	_, err = other.Validate(tokenStr)
	require.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidate_Expired(t *testing.T) {
	svc := NewService("test-signing-key", "strongroom-test", -time.Minute)

	tokenStr, err := svc.Generate(domain.NewAddress())
	require.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	require.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidate_WrongIssuer(t *testing.T) {
	svc := NewService("test-signing-key", "someone-else", time.Minute)
	verifier := NewService("test-signing-key", "strongroom-test", time.Minute)

	tokenStr, err := svc.Generate(domain.NewAddress())
	require.NoError(t, err)

	_, err = verifier.Validate(tokenStr)
	require.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestGenerate_RequiresAddress(t *testing.T) {
	svc := NewService("test-signing-key", "strongroom-test", time.Minute)

	_, err := svc.Generate("")
	require.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
