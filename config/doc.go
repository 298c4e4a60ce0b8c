/*
Package config loads environment-based configuration.

Configuration is plain environment variables processed with
go-envconfig struct tags; main loads a .env file first in development.
Every setting has a default, so a local Postgres needs no setup:

	SERVER_PORT=8080
	DB_HOST=localhost DB_PORT=5432 DB_NAME=questboard
	VOTE_RATE_PER_MINUTE=10 VOTE_BURST=5

The resulting Config is passed explicitly into constructors; nothing
reads the environment after startup.
*/
package config
