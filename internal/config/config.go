// Package config provides configuration management for go-bonita.
package config

var AppVersion = "-unset-" // will be set at build time

// Default web listen port. The demo page advertises port 80 and binds
// on all interfaces, so that stays the default.
const DefaultWebPort = 80

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
	Debug      bool   `json:"debug"` // Enable debug logging
}

// NewDefaultWebConfig returns the default web configuration
func NewDefaultWebConfig() *WebConfig {
	return &WebConfig{
		ListenPort: DefaultWebPort,
		SSL:        false,
	}
}
