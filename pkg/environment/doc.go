// Package environment names the deployment environment a clubledger process
// runs in.
//
// Environment implements encoding.TextUnmarshaler, so configuration structs
// can declare an APP_ENV field of type Environment and have aliases such as
// "prod" or "dev" normalized while the environment is parsed:
//
//	type Config struct {
//		Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
package environment
