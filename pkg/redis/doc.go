// Package redis connects to Redis with go-redis and exposes a readiness probe.
// The session store in pkg/session runs on the client it returns.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := session.NewRedisStore(client, cfg.KeyPrefix)
//	ready := redis.Healthcheck(client)
package redis
