package errors_test

import (
	"errors"
	"testing"

	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := rpgerr.NotFoundf("character %s not found", "abc").WithMeta("character_id", "abc")

	wrapped := rpgerr.Wrap(base, "failed to load character")

	require.NotNil(t, wrapped)
	assert.Equal(t, rpgerr.CodeNotFound, wrapped.Code)
	assert.True(t, rpgerr.IsNotFound(wrapped))
	assert.Equal(t, "abc", rpgerr.GetMeta(wrapped)["character_id"])
	assert.Equal(t, "failed to load character: character abc not found", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := rpgerr.Wrap(errors.New("boom"), "redis get")

	assert.Equal(t, rpgerr.CodeUnknown, rpgerr.GetCode(wrapped))
	assert.Nil(t, rpgerr.Wrap(nil, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := rpgerr.WrapWithCode(errors.New("dial tcp"), rpgerr.CodeUnavailable, "spell catalog")

	assert.True(t, rpgerr.Is(wrapped, rpgerr.CodeUnavailable))
	assert.False(t, rpgerr.IsInvalidArgument(wrapped))
}

func TestCodeHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "invalid argument", err: rpgerr.InvalidArgument("id is required"), check: rpgerr.IsInvalidArgument},
		{name: "already exists", err: rpgerr.AlreadyExistsf("character %s exists", "x"), check: rpgerr.IsAlreadyExists},
		{name: "failed precondition", err: rpgerr.FailedPreconditionf("level %d", 3), check: rpgerr.IsFailedPrecondition},
		{name: "not found", err: rpgerr.NotFound("missing"), check: rpgerr.IsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(errors.New("plain")))
		})
	}
}
