// Package remote provides asynchronous validation rules backed by remote
// lookups, for checks such as "this email is not registered yet" or "this
// invite code exists".
//
// Redis rules test set membership (SISMEMBER); Postgres rules run an
// existence query that scans into a single bool. Both accept narrow
// interfaces satisfied by *redis.Client and *pgxpool.Pool, so tests can
// substitute fakes.
//
//	rdb, err := remote.ConnectRedis(ctx, redisCfg)
//	pool, err := remote.ConnectPostgres(ctx, pgCfg)
//
//	m.AddValidator(
//	    validation.NewAsync("email", remote.RedisAbsent(rdb, "users:emails", "email already registered")),
//	    validation.NewAsync("invite", remote.PostgresExists(pool,
//	        "SELECT EXISTS(SELECT 1 FROM invites WHERE code = $1)", "unknown invite code")),
//	)
//
// Blank values are not looked up and pass; combine with rules.Required when a
// value is mandatory. A failed lookup is returned as an error wrapping
// ErrLookup and fails the validation call.
package remote
