package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCredential(t *testing.T) {
	hashed, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	require.True(t, IsHashed(hashed))

	tests := []struct {
		name   string
		stored string
		plain  string
		want   bool
	}{
		{name: "plain match", stored: "s3cret", plain: "s3cret", want: true},
		{name: "plain mismatch", stored: "s3cret", plain: "wrong", want: false},
		{name: "plain prefix", stored: "s3cret", plain: "s3c", want: false},
		{name: "hash match", stored: hashed, plain: "s3cret", want: true},
		{name: "hash mismatch", stored: hashed, plain: "wrong", want: false},
		{name: "hash is not accepted as plaintext", stored: hashed, plain: hashed, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyCredential(tt.stored, tt.plain))
		})
	}
}
