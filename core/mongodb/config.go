package mongodb

// Config holds configuration for the MongoDB connection.
type Config struct {
	// URI is the MongoDB connection string.
	URI string `mapstructure:"uri" default:"mongodb://localhost:27017"`
	// Database is the database holding the results collection.
	Database string `mapstructure:"database" default:"resultweb"`
	// Collection is the results collection name.
	Collection string `mapstructure:"collection" default:"results"`
	// MaxPoolSize caps open connections.
	MaxPoolSize uint64 `mapstructure:"max_pool" default:"100"`
	// MinPoolSize keeps connections warm.
	MinPoolSize uint64 `mapstructure:"min_pool" default:"20"`
	// MaxIdleMS closes connections idle for longer.
	MaxIdleMS int `mapstructure:"max_idle_ms" default:"30000"`
	// ServerSelectionMS bounds how long an operation waits for a usable server.
	ServerSelectionMS int `mapstructure:"server_selection_ms" default:"5000"`
	// SocketMS bounds each socket read/write.
	SocketMS int `mapstructure:"socket_ms" default:"30000"`
	// ConnectMS bounds connection setup.
	ConnectMS int `mapstructure:"connect_ms" default:"5000"`
}
