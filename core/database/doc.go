// Package database handles SQL connections and connection lifecycles.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration, and provides Keeper, a generic holder for one long-lived
// connection handle that dials in the background with exponential backoff.
//
// # Connect
//
// Connect opens the pool, applies pool limits and pings with the configured
// timeout. MySQL DSNs set clientFoundRows so UPDATE reports matched rows.
//
// # Keeper
//
// The results stores never dial per request. A Keeper is created once per
// process, started, and shared; until the first dial succeeds, Get returns an
// error wrapping results.ErrStoreUnavailable.
//
// # Usage
//
//	k := database.NewKeeper("mysql", func(ctx context.Context) (*gorm.DB, error) {
//	    return database.ConnectContext(ctx, cfg.Database)
//	}, database.Close, database.Backoff{Initial: 5 * time.Second, Max: time.Minute}, logger)
//	k.Start(ctx)
//	defer k.Close()
package database
