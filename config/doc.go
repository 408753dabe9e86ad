// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Zero values are replaced by defaults after validation so a minimal file
// (or none at all, see Default) is enough to run the service.
package config
