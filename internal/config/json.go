package config

import (
	"encoding/json"
	"os"

	"github.com/avetrov/profilekeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty
// fields leave the corresponding Config value untouched so the file can
// override selectively.
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	AvatarDir   string `json:"avatar_dir"`
}

// parseJson overlays cfg with values loaded from the JSON file named by
// the -c/-config flags. When no file is given it does nothing; read or
// unmarshal errors panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AvatarDir != "" {
		cfg.AvatarDir = jc.AvatarDir
	}
}
