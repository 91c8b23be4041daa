package dotenv

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	// EnvName selects the runtime environment: dev, test or prod.
	EnvName = "SOCIALGRAPH_ENV"

	DevEnv  = "dev"
	TestEnv = "test"
	ProdEnv = "prod"
)

// LoadDotEnvs loads the .env files following the convention:
// https://github.com/bkeepers/dotenv#what-other-env-files-can-i-use
// It only needs to be called once in main, other code reads configuration
// through os.Getenv during runtime.
func LoadDotEnvs() error {
	env := os.Getenv(EnvName)
	if env == "" {
		env = DevEnv
	}

	// .env.[runtime_env].local has highest priority, usually contains
	// sensitive information such as api keys
	godotenv.Load(".env." + env + ".local")
	godotenv.Load(".env.local")
	// .env.[runtime_env] carries per-environment settings
	godotenv.Load(".env." + env)
	// .env carries shared variables, overridable by the files above
	godotenv.Load(".env")

	return nil
}

// IsProdEnv reports whether the current run is a production run.
func IsProdEnv() bool {
	return os.Getenv(EnvName) == ProdEnv
}
