package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Search.MaxLimit <= 0 {
		return fmt.Errorf("search.max_limit must be > 0 (got %d)", c.Search.MaxLimit)
	}

	if c.Browse.DefaultLimit <= 0 {
		return fmt.Errorf("browse.default_limit must be > 0 (got %d)", c.Browse.DefaultLimit)
	}
	if c.Browse.MaxLimit < c.Browse.DefaultLimit {
		return fmt.Errorf("browse.max_limit must be >= browse.default_limit (got %d < %d)",
			c.Browse.MaxLimit, c.Browse.DefaultLimit)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns must be >= database.min_conns (got %d < %d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	return nil
}
