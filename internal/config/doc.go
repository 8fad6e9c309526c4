// Package config provides configuration parsing for hyper servers.
//
// The configuration is stored in hyper.yaml (or hyper.yml, or hyper.json)
// in the working directory. Every field is optional; missing values take
// the defaults from New.
//
// # Configuration File Structure
//
//	server:
//	  host: localhost
//	  port: 8080
//	  shutdownTimeout: 10s
//	render:
//	  async: true
//	  flushEvery: 64
//	metrics:
//	  enabled: true
//	  path: /metrics
//	  namespace: hyper
//	tracing:
//	  enabled: false
//	  stdout: false
//	log:
//	  level: info
//	  format: text
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	fmt.Println("Listening on", cfg.Address())
package config
