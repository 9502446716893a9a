package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=10"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,max=8"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(sampleRequest{Message: "hello"}))
	})

	t.Run("errors name fields by their JSON tag", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{})
		require.Error(t, err)
		assert.Equal(t, "message is required", err.Error())
	})

	t.Run("multiple failures join with semicolons", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Message: "this is far too long", SessionID: "also-too-long"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "message must be at most 10 characters")
		assert.Contains(t, err.Error(), "session_id must be at most 8 characters")
		assert.Contains(t, err.Error(), "; ")
	})
}
