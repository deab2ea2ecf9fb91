package mock

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type Redis struct {
	server *miniredis.Miniredis
}

func NewRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	return &Redis{server: server}
}

// NewClient returns a fresh client for the same server. The application
// closes its client on shutdown, so a restart needs a new one.
func (r *Redis) NewClient() *redis.Client {
	return redis.NewClient(
		&redis.Options{
			Addr: r.server.Addr(),
		},
	)
}

func (r *Redis) Get(key string) (string, error) {
	return r.server.Get(key)
}

func (r *Redis) Close() {
	r.server.Close()
}
