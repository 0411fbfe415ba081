package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: NotFound("berita %d tidak ditemukan", 7), want: KindNotFound},
		{name: "wrapped bad request", err: fmt.Errorf("op: %w", BadRequest("invalid id")), want: KindBadRequest},
		{name: "forbidden", err: Forbidden("no access"), want: KindForbidden},
		{name: "plain error", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestInternalKeepsUpstreamMessage(t *testing.T) {
	upstream := errors.New("connection refused")
	err := Internal("gagal mengambil data", upstream)

	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, "gagal mengambil data: connection refused", Message(err))
	assert.Equal(t, "internal_error", KindOf(err).String())
}

func TestMessageHidesUnclassified(t *testing.T) {
	assert.Equal(t, "internal server error", Message(errors.New("secret dsn")))
	assert.Equal(t, "invalid id", Message(fmt.Errorf("x: %w", BadRequest("invalid id"))))
}
