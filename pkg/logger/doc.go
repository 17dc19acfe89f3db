// Package logger provides slog attribute helpers shared by the observer
// registry packages. Helpers follow the empty Attr pattern: passing a nil
// error or an empty identifier yields an attribute slog silently drops, so
// call sites never need nil checks.
//
//	log.Debug("value delivered",
//		logger.Channel("user.created"),
//		logger.Count("subscribers", n),
//	)
package logger
