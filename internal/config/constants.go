package config

const (
	// Configuration file paths
	ConfigPathCatalog = "configs/catalog.json"

	// DefaultPvPJoinTimeout matches the wheel spin window shown to players
	DefaultPvPJoinTimeout = "60s"
)
