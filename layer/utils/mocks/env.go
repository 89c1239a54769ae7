package mocks

import "github.com/Real-Dev-Squad/vertica-conn/layer/utils"

// Env returns a lookup function backed by vars.
func Env(vars map[string]string) utils.LookupFunc {
	return func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}
