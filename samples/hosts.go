package samples

import (
	"github.com/pgavlin/wisp/interpreter"
)

var hosts = map[string]func(env *interpreter.Environment) error{
	"env": newEnvHost,
}

// EnvHost implements the functions exported by the "env" host module.
type EnvHost struct{}

// Add returns the sum of a and b.
func (EnvHost) Add(a, b int32) int32 {
	return a + b
}

// Max returns the larger of a and b.
func (EnvHost) Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func newEnvHost(env *interpreter.Environment) error {
	return env.AppendHostModule("env").AppendMethodExports(EnvHost{})
}
