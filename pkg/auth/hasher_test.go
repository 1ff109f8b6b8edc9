package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_HashAndCompare(t *testing.T) {
	hasher := NewHasher(nil)

	encoded, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.True(t, IsEncoded(encoded))

	assert.NoError(t, hasher.Compare(encoded, "hunter2"))
	assert.ErrorIs(t, hasher.Compare(encoded, "hunter3"), ErrMismatch)
}

func TestHasher_SaltsDiffer(t *testing.T) {
	hasher := NewHasher(nil)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Compare(first, "same-password"))
	assert.NoError(t, hasher.Compare(second, "same-password"))
}

func TestHasher_CompareRejectsGarbage(t *testing.T) {
	hasher := NewHasher(nil)

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plaintext", "hunter2"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"truncated", "$argon2id$v=19$m=65536,t=3,p=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, hasher.Compare(tt.encoded, "hunter2"))
		})
	}
}

func TestIsEncoded(t *testing.T) {
	assert.False(t, IsEncoded("hunter2"))
	assert.True(t, IsEncoded("$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"))
}
