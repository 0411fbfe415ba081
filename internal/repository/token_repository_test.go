package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	redisapp "cabdin/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockTokenRepo() (*RedisTokenRepo, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return NewRedisTokenRepo(&redisapp.Client{Client: db}), mock
}

func TestRedisTokenRepo_SaveRefreshToken(t *testing.T) {
	repo, mock := newMockTokenRepo()
	mock.ExpectSet("refresh:u1:tok", "1", time.Hour).SetVal("OK")

	err := repo.SaveRefreshToken(context.Background(), "u1", "tok", time.Hour)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisTokenRepo_GetRefreshToken(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock redismock.ClientMock)
		want    bool
		wantErr bool
	}{
		{
			name: "present",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("refresh:u1:tok").SetVal("1")
			},
			want: true,
		},
		{
			name: "missing",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("refresh:u1:tok").RedisNil()
			},
			want: false,
		},
		{
			name: "redis error",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("refresh:u1:tok").SetErr(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockTokenRepo()
			tt.setup(mock)

			got, err := repo.GetRefreshToken(context.Background(), "u1", "tok")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisTokenRepo_DeleteAllUserTokens(t *testing.T) {
	t.Run("deletes every key of the user", func(t *testing.T) {
		repo, mock := newMockTokenRepo()
		mock.ExpectKeys("refresh:u1:*").SetVal([]string{"refresh:u1:a", "refresh:u1:b"})
		mock.ExpectDel("refresh:u1:a", "refresh:u1:b").SetVal(2)

		require.NoError(t, repo.DeleteAllUserTokens(context.Background(), "u1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no keys is a no-op", func(t *testing.T) {
		repo, mock := newMockTokenRepo()
		mock.ExpectKeys("refresh:u1:*").SetVal([]string{})

		require.NoError(t, repo.DeleteAllUserTokens(context.Background(), "u1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
