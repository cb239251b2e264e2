package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisURI string
var RedisCtx = context.Background()

// InitRedis connects to Redis when REDIS_URI is set. Redis is optional: it
// only backs the broadcast fan-out worker, so a missing address simply
// disables that feature instead of failing startup.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Broadcast fan-out disabled.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "",
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		RedisClient = nil
		RedisURI = ""
	}
}
