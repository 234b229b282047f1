package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	// DataDir is where the timesheet files live.
	DataDir string `koanf:"datadir"`
	// Project is used when no project is given on the command line,
	// instead of prompting for one.
	Project string `koanf:"project"`
	NoColor bool   `koanf:"nocolor"`
}

// Load builds the configuration from defaults, an optional YAML file and
// HOURBOOK_* environment variables, in that order. A .env file in the
// working directory is read first so local overrides reach the env layer.
func Load(path string) (Application, error) {
	_ = godotenv.Load()

	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		DataDir: defaultDataDir(),
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "HOURBOOK_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "HOURBOOK_")), "_", ".")
			// HOURBOOK_HOME is the documented way to move the data
			// directory.
			if k == "home" {
				k = "datadir"
			}
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

// DefaultPath returns the expected location of the YAML config file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("hourbook", "config.yaml")
	}
	return filepath.Join(dir, "hourbook", "config.yaml")
}

// defaultDataDir resolves the platform's local data directory, the same
// place other personal tools keep their state.
func defaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LocalAppData"); dir != "" {
			return filepath.Join(dir, "hourbook")
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support", "hourbook")
		}
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, "hourbook")
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".local", "share", "hourbook")
		}
	}
	return "hourbook"
}
