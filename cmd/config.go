package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr selects the cache backend: empty means the in-process
	// cache, anything else is a Redis address like "localhost:6379".
	RedisAddr string

	CacheWarmupEnabled bool
}
