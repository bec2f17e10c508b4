package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chateaupet/petshop-api/internal/httperr"
)

func TestParseStatus_AcceptsEnum(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"pendente", StatusPending},
		{"confirmado", StatusConfirmed},
		{"cancelado", StatusCancelled},
		{"finalizado", StatusCompleted},
		{"CONFIRMADO", StatusConfirmed},
		{"  Finalizado  ", StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus_RejectsAnythingElse(t *testing.T) {
	for _, raw := range []string{"", "agendado", "done", "cancelada"} {
		_, err := ParseStatus(raw)
		assert.Error(t, err, "raw=%q", raw)
		assert.True(t, httperr.IsBusiness(err, "status_invalido"))
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusCompleted))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus())
}
