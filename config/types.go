package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" env:"NAV_SERVER_PORT" validate:"gt=0"`
}

// RoutingConfig contains routing service configuration
type RoutingConfig struct {
	// OSRMURL is the base URL of the OSRM HTTP API, e.g.
	// https://router.project-osrm.org
	OSRMURL          string `yaml:"osrmURL" env:"NAV_OSRM_URL" validate:"omitempty,url"`
	Profile          string `yaml:"profile" env:"NAV_PROFILE" validate:"omitempty,oneof=normal traffic-aware"`
	TimeoutMS        int    `yaml:"timeoutMS" env:"NAV_TIMEOUT_MS" validate:"gte=0"`
	RerouteTimeoutMS int    `yaml:"rerouteTimeoutMS" env:"NAV_REROUTE_TIMEOUT_MS" validate:"gte=0"`
}

// GuidanceConfig contains guidance engine tuning
type GuidanceConfig struct {
	StepAdvanceMeters  float64   `yaml:"stepAdvanceMeters" validate:"gte=0"`
	OffRouteMeters     float64   `yaml:"offRouteMeters" validate:"gte=0"`
	AnnounceThresholds []float64 `yaml:"announceThresholds" validate:"omitempty,dive,gt=0"`
}

// ReplayConfig contains GTFS-Realtime position replay configuration
type ReplayConfig struct {
	// VehiclePositionsURL is an HTTP(S) feed URL; VehiclePositionsPath is a
	// local protobuf file. At most one should be set.
	VehiclePositionsURL  string `yaml:"vehiclePositionsURL" env:"NAV_VP_URL" validate:"omitempty,url"`
	VehiclePositionsPath string `yaml:"vehiclePositionsPath" env:"NAV_VP_PATH" validate:"omitempty,file"`
	VehicleID            string `yaml:"vehicleID"`
	TimeoutMS            int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Routing  RoutingConfig  `yaml:"routing"`
	Guidance GuidanceConfig `yaml:"guidance"`
	Replay   ReplayConfig   `yaml:"replay"`
}
