package authenticator_test

import (
	"testing"
	"time"

	"github.com/trailpoint/backend/config"
	"github.com/trailpoint/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[string](config.TokenConfigs{
		Secret:     "secret",
		Expiration: config.Duration{Duration: time.Minute},
	})

	token, err := engine.Generate("user1", "abc")
	require.NoError(t, err)

	msg, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "abc", msg)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[string](config.TokenConfigs{
		Secret:     "secret",
		Expiration: config.Duration{Duration: time.Nanosecond},
	})

	token, err := engine.Generate("user1", "abc")
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	engine := authenticator.NewTokenEngine[string](config.TokenConfigs{
		Secret:     "secret",
		Expiration: config.Duration{Duration: time.Minute},
	})

	token, err := engine.Generate("user1", "abc")
	require.NoError(t, err)

	other := authenticator.NewTokenEngine[string](config.TokenConfigs{
		Secret:     "another-secret",
		Expiration: config.Duration{Duration: time.Minute},
	})

	_, err = other.Verify(token)
	require.Error(t, err)
}
