package config // package config loads application configuration from environment variables

import (
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and costs.
type Config struct {
	Env               string // application environment (e.g. "dev", "prod")
	Port              string // HTTP port to listen on
	DBUser            string // database username
	DBPass            string // database password (optional)
	DBHost            string // database host address
	DBPort            string // database port number
	DBName            string // database name
	JWTSecret         string // secret used to sign JWTs
	TokenTTLDays      int    // session token time-to-live in days
	BcryptCost        int    // bcrypt cost for password hashing
	RazorpayKeyID     string // payment gateway key id
	RazorpayKeySecret string // payment gateway shared signing secret
}

// Load reads configuration values from environment variables and returns a
// Config.  Development defaults are applied for anything unset so the server
// can boot on a workstation without a full .env; production deployments are
// expected to override the secrets.
func Load() Config {
	return Config{
		Env:               getenv("APP_ENV", "dev"),                         // environment (dev/test/prod)
		Port:              getenv("PORT", "4000"),                           // port to bind the HTTP server
		DBUser:            getenv("DB_USER", "root"),                        // database user
		DBPass:            os.Getenv("DB_PASS"),                             // database password (empty allowed)
		DBHost:            getenv("DB_HOST", "127.0.0.1"),                   // database host
		DBPort:            getenv("DB_PORT", "3306"),                        // database port
		DBName:            getenv("DB_NAME", "in_out"),                      // database name
		JWTSecret:         getenv("JWT_SECRET", "secret_dev_change_me"),     // secret used for signing JWTs
		TokenTTLDays:      getenvInt("TOKEN_TTL_DAYS", 7),                   // session tokens live for a week
		BcryptCost:        getenvInt("BCRYPT_COST", 10),                     // bcrypt cost factor
		RazorpayKeyID:     getenv("RAZORPAY_KEY_ID", "rzp_test_key"),        // gateway key id
		RazorpayKeySecret: getenv("RAZORPAY_KEY_SECRET", "rzp_test_secret"), // gateway signing secret
	}
}

// getenv retrieves an environment variable, falling back to def when the
// variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt is like getenv() but converts the retrieved string into an
// integer.  Unparseable values fall back to the default.
func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
