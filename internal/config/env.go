package config

import (
	"strconv"
	"strings"

	"github.com/un-def/ptl/internal/providers"
)

const envPrefix = "PTL_"

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

type environ struct {
	lookups []LookupFunc
}

// get returns the value of PTL_<name> from the first source that has it.
func (e environ) get(name string) (string, bool) {
	key := envPrefix + name
	for _, lookup := range e.lookups {
		if value, ok := lookup(key); ok {
			return value, true
		}
	}
	return "", false
}

func (e environ) getString(name string) *string {
	if value, ok := e.get(name); ok {
		return &value
	}
	return nil
}

func (e environ) getBool(name string) (*bool, error) {
	value, ok := e.get(name)
	if !ok {
		return nil, nil
	}
	var b bool
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		b = true
	case "0", "false", "no", "off":
		b = false
	default:
		return nil, Errorf("%s%s: invalid bool value: '%s'", envPrefix, name, value)
	}
	return &b, nil
}

func (e environ) getInt(name string) (*int, error) {
	value, ok := e.get(name)
	if !ok {
		return nil, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, Errorf("%s%s: invalid int value: '%s'", envPrefix, name, value)
	}
	return &i, nil
}

// getCommandLine splits the value with shell rules. An empty value yields a
// non-nil empty slice.
func (e environ) getCommandLine(name string) ([]string, error) {
	value, ok := e.get(name)
	if !ok {
		return nil, nil
	}
	argv, err := providers.SplitCommandLine(value)
	if err != nil {
		return nil, Errorf("%s%s: %v", envPrefix, name, err)
	}
	if argv == nil {
		argv = []string{}
	}
	return argv, nil
}
