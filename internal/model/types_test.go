package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateArgumentName covers the lower_snake_case naming rule.
func TestValidateArgumentName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "namespace", false},
		{"snake case", "use_composition", false},
		{"with digits", "world_sdf_file2", false},
		{"single letter", "x", false},
		{"empty", "", true},
		{"leading underscore", "_namespace", true},
		{"leading digit", "2fast", true},
		{"uppercase", "Namespace", true},
		{"hyphen", "log-level", true},
		{"colon", "ns:arg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArgumentName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestCLIError_ErrorAndUnwrap verifies message formatting and the
// errors.Is/As wrapping contract.
func TestCLIError_ErrorAndUnwrap(t *testing.T) {
	plain := NewCLIError(ExitPackageNotFound, "package not found")
	assert.Equal(t, "package not found", plain.Error())
	assert.Nil(t, plain.Unwrap())

	underlying := fmt.Errorf("stat failed")
	wrapped := WrapCLIError(ExitConfigFileError, "bad config", underlying)
	assert.Equal(t, "bad config: stat failed", wrapped.Error())
	assert.ErrorIs(t, wrapped, underlying)

	// A CLIError nested under further wrapping is still recoverable.
	outer := fmt.Errorf("resolving: %w", wrapped)
	var cliErr *CLIError
	require.True(t, errors.As(outer, &cliErr))
	assert.Equal(t, ExitConfigFileError, cliErr.Code)
}
