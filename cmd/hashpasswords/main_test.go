package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/evaluacion-docente/internal/auth"
	"github.com/spec-kit/evaluacion-docente/internal/persistence"
)

func TestHashSnapshotSkipsHashedValues(t *testing.T) {
	existing, err := auth.HashPassword("kept", 4)
	require.NoError(t, err)

	snap := &persistence.Snapshot{
		Students:   []persistence.StudentRecord{{Code: "A01", Password: "secret"}},
		Professors: []persistence.ProfessorRecord{{DNI: "1", Password: existing}},
		Admins:     []persistence.AdminRecord{{DNI: "9", Password: "root"}, {DNI: "10"}},
	}

	count, err := hashSnapshot(snap, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.True(t, auth.IsHashed(snap.Students[0].Password))
	assert.True(t, auth.VerifyCredential(snap.Students[0].Password, "secret"))
	assert.Equal(t, existing, snap.Professors[0].Password)
	assert.True(t, auth.VerifyCredential(snap.Admins[0].Password, "root"))
	assert.Empty(t, snap.Admins[1].Password)
}
