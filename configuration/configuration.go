package configuration

import "time"

type Configuration struct {
	HttpAddr      string        `usage:"HTTP address"`
	Dir           string        `usage:"data directory"`
	FlushInterval time.Duration `usage:"time between snapshots of every store"`
	LogLevel      string        `usage:"log level: DEBUG | INFO | WARN | ERROR"`
	Version       bool          `usage:"show version and exit"`
	ShowBanner    bool          `usage:"show big banner"`
	ShowConfig    bool          `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:      "127.0.0.1:8080",
		Dir:           "data",
		FlushInterval: time.Second,
		LogLevel:      "INFO",
		Version:       false,
		ShowBanner:    true,
		ShowConfig:    false,
	}
}
