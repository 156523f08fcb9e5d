// Package config provides type-safe environment variable loading with
// per-type caching. A .env file is loaded automatically on first use; struct
// fields are parsed with the caarlos0/env library.
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is loaded once per process; subsequent Load calls
// for the same type return the cached value.
package config
