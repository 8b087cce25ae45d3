// Package session tracks signed-in users across requests.
//
// A session is created only at sign-in (Manager.Authenticate), so the
// absence of a session is simply the anonymous case. The session token
// travels in an AES-GCM encrypted cookie (CookieTransport) and indexes a
// record held by a Store: MemoryStore for single-process deployments and
// tests, RedisStore when several instances share sessions.
//
// Expiry is sliding: every request refreshes the idle deadline, capped by a
// maximum lifetime counted from sign-in. Activity writes are throttled by
// ActivityUpdateThreshold and performed by a background worker so request
// handling never waits on them.
//
//	mgr := session.New(
//		session.WithCookieManager(cookies),
//		session.WithStore(session.NewRedisStore(client, "")),
//		session.WithConfig(cfg),
//	)
//	defer mgr.Close()
//
//	r.Use(mgr.Middleware)
//
// Manager implements Resolver, which is all that route guards need.
package session
