package holidayapi

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "zero key", key: "00000000-0000-0000-0000-000000000000"},
		{name: "lowercase hex", key: "daaaaaab-aaaa-aaaa-aaaa-2aaaada37e14"},
		{name: "uppercase hex", key: "DAAAAAAB-AAAA-AAAA-AAAA-2AAAADA37E14"},
		{name: "empty", key: "", wantErr: true},
		{name: "not a uuid", key: "invalid-key-format", wantErr: true},
		{name: "non-hex character", key: "g0000000-0000-0000-0000-000000000000", wantErr: true},
		{name: "missing separators", key: "00000000000000000000000000000000", wantErr: true},
		{name: "short group", key: "0000000-0000-0000-0000-000000000000", wantErr: true},
		{name: "long last group", key: "00000000-0000-0000-0000-0000000000000", wantErr: true},
		{name: "embedded in longer string", key: "x00000000-0000-0000-0000-000000000000", wantErr: true},
		{name: "braces", key: "{00000000-0000-0000-0000-000000000000}", wantErr: true},
		{name: "urn prefix", key: "urn:uuid:00000000-0000-0000-0000-000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidKeyFormat)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateKeyAcceptsGeneratedUUIDs(t *testing.T) {
	for range 200 {
		key := uuid.NewString()
		assert.NoError(t, ValidateKey(key), key)
		assert.NoError(t, ValidateKey(strings.ToUpper(key)), key)
	}
}

func TestValidateKeyRejectsMutatedUUIDs(t *testing.T) {
	for range 200 {
		key := uuid.NewString()

		// Drop one character
		assert.ErrorIs(t, ValidateKey(key[1:]), ErrInvalidKeyFormat, key)
		// Replace a separator
		assert.ErrorIs(t, ValidateKey(strings.Replace(key, "-", "_", 1)), ErrInvalidKeyFormat, key)
		// Inject a non-hex character
		assert.ErrorIs(t, ValidateKey("z"+key[1:]), ErrInvalidKeyFormat, key)
	}
}

func TestValidateVersion(t *testing.T) {
	assert.NoError(t, ValidateVersion(1))

	for _, v := range []int{-1, 0, 2, 3, 10, 100} {
		err := ValidateVersion(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidVersion)
	}
}
