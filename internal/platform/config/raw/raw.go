// Package raw reads bootstrap settings from the environment without logging,
// so the logger itself can be configured from it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a namespaced, logging-free view over the environment, e.g. Prefix("LOG_")
type Conf struct {
	prefix string
	getenv func(string) string
}

// New returns a root Conf over the process environment
func New() Conf { return Conf{getenv: os.Getenv} }

// FromMap returns a root Conf over a fixed set of variables
func FromMap(env map[string]string) Conf {
	return Conf{getenv: func(k string) string { return env[k] }}
}

// Prefix returns a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, getenv: c.getenv} }

func (c Conf) value(key string) string {
	get := c.getenv
	if get == nil {
		get = os.Getenv
	}
	return strings.TrimSpace(get(c.prefix + key))
}

// Get returns the trimmed value or def when unset or blank
func (c Conf) Get(key, def string) string {
	if v := c.value(key); v != "" {
		return v
	}
	return def
}

// GetBool accepts strconv bools plus yes/no and on/off; anything else is def
func (c Conf) GetBool(key string, def bool) bool {
	switch v := strings.ToLower(c.value(key)); v {
	case "":
		return def
	case "yes", "on":
		return true
	case "no", "off":
		return false
	default:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}
}

// GetInt parses a non-negative integer; negative or malformed values are def
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.value(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
