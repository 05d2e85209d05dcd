package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/nutriplan/backend/config"
)

func TestNewRedisClientBadURL(t *testing.T) {
	client, err := NewRedisClient(context.Background(), &config.Config{RedisURL: "ftp://nope"})
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "failed to parse Redis URL")
}

func TestNewRedisClientUnreachable(t *testing.T) {
	client, err := NewRedisClient(context.Background(), &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"})
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}
