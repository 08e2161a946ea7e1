// Package config provides configuration management for unbrew.
// Built-in defaults are embedded, then overlaid by the optional user file and
// by UNBREW_ environment variables, and finally decoded into Config.
package config
