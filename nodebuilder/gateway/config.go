package gateway

import (
	"fmt"
	"net"
	"strconv"
)

const (
	defaultBindAddress = "localhost"
	defaultPort        = "26659"
)

type Config struct {
	Address string
	Port    string
	Enabled bool
	// ReadOnly disables appending versions over the gateway.
	ReadOnly bool
}

func DefaultConfig() Config {
	return Config{
		Address: defaultBindAddress,
		Port:    defaultPort,
		Enabled: false,
	}
}

func (cfg *Config) Validate() error {
	if cfg.Address != defaultBindAddress {
		if ip := net.ParseIP(cfg.Address); ip == nil {
			return fmt.Errorf("nodebuilder/gateway: invalid listen address format: %s", cfg.Address)
		}
	}
	_, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return fmt.Errorf("nodebuilder/gateway: invalid port: %s", err.Error())
	}
	return nil
}
