// Package config loads configuration structs from environment variables.
//
// A .env file in the working directory is loaded once per process, then
// struct fields are populated from `env` tags:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
package config
