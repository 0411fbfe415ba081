package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_HealthCheck(t *testing.T) {
	mr := miniredis.RunT(t)

	client := NewClient(mr.Addr(), "", 0)
	defer client.Close()

	require.NoError(t, client.HealthCheck(context.Background()))

	mr.Close()
	assert.Error(t, client.HealthCheck(context.Background()))
}
