package pattern

import "strconv"

// Config selects the base and the named starting sequence of a Store.
type Config struct {
	Base     int
	Sequence string
	Seed     int64
}

// DefaultConfig returns the classic binary pattern with a random first row.
func DefaultConfig() Config {
	return Config{Base: 2, Sequence: "random", Seed: 42}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["base"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Base = parsed
		}
	}
	if v, ok := cfg["seq"]; ok && v != "" {
		c.Sequence = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
