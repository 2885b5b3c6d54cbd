package app

import "github.com/charlesng35/storefeed/internal/database"

// ConnectionConfig converts the application database configuration into the
// database package representation, honouring per-driver host settings.
func (c DatabaseConfig) ConnectionConfig() database.Config {
	cfg := database.Config{
		Driver: c.Driver,
		Path:   c.Path,
		DSN:    c.DSN,
	}

	var auth DBAuthConfig
	switch c.Driver {
	case "postgres":
		auth = c.Postgres
	case "mysql":
		auth = c.MySQL
	default:
		return cfg
	}

	cfg.Host = auth.Host
	cfg.Port = auth.Port
	cfg.Name = auth.Database
	cfg.User = auth.Username
	cfg.Password = auth.Password
	return cfg
}
