package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "TURNOS"

	ServiceName = "turnos_backend"
)
