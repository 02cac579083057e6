package password

import "github.com/practiq/practiq_backend/config"

// ParamsFromConfig maps central config.PasswordConfig onto Argon2id params,
// falling back to defaults for any zero value.
func ParamsFromConfig(c config.PasswordConfig) *Params {
	base := DefaultParams()
	if c.LowMemoryMode {
		base = LowMemoryParams()
	}

	if c.MemoryKiB > 0 {
		base.Memory = c.MemoryKiB
	}
	if c.Iterations > 0 {
		base.Iterations = c.Iterations
	}
	if c.Parallelism > 0 {
		base.Parallelism = c.Parallelism
	}
	if c.SaltLength > 0 {
		base.SaltLength = c.SaltLength
	}
	if c.KeyLength > 0 {
		base.KeyLength = c.KeyLength
	}

	return base
}
