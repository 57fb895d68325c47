package config

import (
	"strconv"

	"github.com/thoreinstein/kvcheck/internal/errors"
)

// ErrUnknownSetting indicates a key that is not a kvcheck setting.
var ErrUnknownSetting = errors.New("unknown setting")

// Keys returns the setting names in display order.
func Keys() []string {
	return []string{"version", "schema", "output"}
}

// Get returns the value of the named setting as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "version":
		return strconv.Itoa(c.Version), nil
	case "schema":
		return c.Schema, nil
	case "output":
		return c.Output, nil
	default:
		return "", errors.Wrapf(ErrUnknownSetting, "%q", key)
	}
}

// Set assigns the named setting from its string form. The result is not
// validated; Save does that.
func (c *Config) Set(key, value string) error {
	switch key {
	case "version":
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(ErrUnsupportedVersion, "%q", value)
		}
		c.Version = v
	case "schema":
		c.Schema = value
	case "output":
		c.Output = value
	default:
		return errors.Wrapf(ErrUnknownSetting, "%q", key)
	}
	return nil
}
