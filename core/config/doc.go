// Package config provides configuration management for the Result Checker.
//
// It loads an optional .env file with godotenv, registers defaults from the
// `default` struct tags of every section, and lets environment variables
// override them (SERVER_PORT -> server.port, MONGO_URI -> mongo.uri).
//
// # Configuration Structure
//
//   - Server: port, admin API key, body limit, shutdown window
//   - Log: level and format
//   - Store: backend driver, reconciler chunk size, reconnect backoff
//   - Mongo: connection string, database, collection, pool and timeouts
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and archive bucket
//   - Auth: admin email allow-list
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
