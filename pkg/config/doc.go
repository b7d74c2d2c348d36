// Package config parses clubledger configuration from the process
// environment and optional .env files into tagged structs.
//
// Parsing is delegated to github.com/caarlos0/env/v11 and dotenv files are
// read with github.com/joho/godotenv. File values never mutate the process
// environment: they are merged under it, so a variable exported in the shell
// always wins over the same name in a file.
//
//	type Config struct {
//		Env    environment.Environment `env:"APP_ENV" envDefault:"development"`
//		Driver string                  `env:"STORE_DRIVER" envDefault:"memory"`
//	}
//
//	cfg, err := config.Load[Config]()
//
// Without WithEnvFiles, Load reads ./.env when it exists. Named files must
// exist.
package config
