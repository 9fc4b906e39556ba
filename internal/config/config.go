package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Identity tokens are issued by the external
// auth provider; this service only needs the shared verification secret.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	JWTSecret     string // secret used to verify externally issued JWTs
	WebhookSecret string // shared secret for invoice webhook signatures

	// Object storage settings for avatar/logo uploads.  All optional:
	// when the bucket is empty the upload endpoints report storage as
	// unconfigured instead of failing at startup.
	S3Bucket        string // bucket name
	S3Region        string // bucket region
	S3Endpoint      string // custom endpoint, empty for AWS default
	S3AccessKey     string // static access key id
	S3SecretKey     string // static secret access key
	S3PublicBaseURL string // base URL public object links are built from
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),        // environment (dev/test/prod)
		Port:          must("APP_PORT"),       // port to bind the HTTP server
		DBUser:        must("DB_USER"),        // database user
		DBPass:        os.Getenv("DB_PASS"),   // database password (empty allowed)
		DBHost:        must("DB_HOST"),        // database host
		DBPort:        must("DB_PORT"),        // database port
		DBName:        must("DB_NAME"),        // database name
		JWTSecret:     must("JWT_SECRET"),     // secret for verifying bearer tokens
		WebhookSecret: must("WEBHOOK_SECRET"), // secret for invoice webhook HMAC checks

		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3Region:        os.Getenv("S3_REGION"),
		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
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
