// Package logger provides a structured logging facility based on Zap.
//
// New builds a development logger for the debug level and a production
// logger otherwise, encoded as JSON or console text. WithRayID extracts the
// request ray id that the rayid middleware stores in the Fiber context and
// attaches it to the log entry, so every line of one request can be
// correlated.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Upload failed", zap.Error(err))
package logger
