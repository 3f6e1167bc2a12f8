package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The values are read once at startup and the
// resulting struct is passed by value into the components that need it;
// nothing mutates it afterwards.
type Config struct {
    Env       string // application environment (e.g. "dev", "prod")
    Port      string // HTTP port to listen on
    MongoURI  string // MongoDB connection string
    DBName    string // database name inside the MongoDB deployment
    JWTSecret string // secret used to sign identity tokens
}

// Load reads configuration values from environment variables and returns a
// Config.  The database connection string and the token signing secret are
// required; a missing value causes the program to exit with a fatal log
// message before the server ever starts.  The port falls back to 3000.
func Load() Config {
    return Config{
        Env:       getenv("APP_ENV", "dev"),            // environment (dev/test/prod)
        Port:      getenv("PORT", "3000"),              // port to bind the HTTP server
        MongoURI:  must("MONGODB_URI"),                 // MongoDB connection string
        DBName:    getenv("DB_NAME", "currentcruiser"), // database name
        JWTSecret: must("JWT_SECRET"),                  // secret used for signing JWTs
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// getenv returns the value of an environment variable or a default when it
// is unset or empty.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
