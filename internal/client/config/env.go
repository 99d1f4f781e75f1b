package config

import (
	"errors"
	"io/fs"

	"github.com/dmitrijs2005/jobmatch/internal/flagx"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// defaultEnvFile is loaded when present and no -e/-env-file flag is given.
const defaultEnvFile = ".env"

// parseEnv overlays Config with JOBMATCH_* environment variables. A dotenv
// file is loaded first; variables already set in the process win over it.
// Unset variables leave the field untouched. Errors panic.
func parseEnv(cfg *Config) {
	if err := loadEnvFile(flagx.EnvFileFlag()); err != nil {
		panic(err)
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}

func loadEnvFile(path string) error {
	if path != "" {
		return godotenv.Load(path)
	}
	err := godotenv.Load(defaultEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
