package config

import "os"

var API_ENV = os.Getenv("API_ENV")

const TIME_PARSE_FORMAT = "2006-01-02 15:04:05 -07:00"

// AppHost is where the frontend lives; sign-up and admin links are built
// against it. Read lazily so values from a .env loaded at startup are seen.
func AppHost() string {
	host := os.Getenv("APP_HOST")
	if host == "" {
		host = "http://localhost:3000"
	}
	return host
}
