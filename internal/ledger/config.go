package ledger

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	NodeID           int64
	DBConnStr        string
	DBMaxConnections int32
	StoreTimeout     time.Duration
	PrintCommand     string
	PrintTimeout     time.Duration
	ENV              string
}

type Config struct {
	NodeID              int64  `yaml:"nodeID"`
	DbURLFormat         string `yaml:"dbURLFormat"`
	DBMaxConnections    int32  `yaml:"dbMaxConnections"`
	DBUsername          string `yaml:"dbUsername"`
	DBPassword          string `yaml:"dbPassword"`
	StoreTimeoutSeconds int    `yaml:"storeTimeoutSeconds"`
	PrintCommand        string `yaml:"printCommand"`
	PrintTimeoutSeconds int    `yaml:"printTimeoutSeconds"`
}

// LoadConfig reads config/kidbank.yaml, then merges config/kidbank.<APP_ENV>.yaml
// over it field by field when APP_ENV is set.
func LoadConfig() (*AppConfig, error) {
	baseConfigFile, err := os.ReadFile("config/kidbank.yaml")

	if err != nil {
		return nil, fmt.Errorf("read base config failed: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(baseConfigFile, &config)

	if err != nil {
		return nil, fmt.Errorf("parse base config failed: %w", err)
	}

	appEnv := os.Getenv("APP_ENV")

	if appEnv == "" {
		return toAppConfig(config, "local")
	}

	overrideConfigFile, err := os.ReadFile("config/kidbank." + appEnv + ".yaml")

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return toAppConfig(config, appEnv)
		}

		return nil, fmt.Errorf("read override config failed: %w", err)
	}

	var overrideConfig Config
	err = yaml.Unmarshal(overrideConfigFile, &overrideConfig)

	if err != nil {
		return nil, fmt.Errorf("parse override config failed: %w", err)
	}

	if overrideConfig.NodeID != 0 {
		config.NodeID = overrideConfig.NodeID
	}
	if overrideConfig.DbURLFormat != "" {
		config.DbURLFormat = overrideConfig.DbURLFormat
	}
	if overrideConfig.DBMaxConnections != 0 {
		config.DBMaxConnections = overrideConfig.DBMaxConnections
	}
	if overrideConfig.DBUsername != "" {
		config.DBUsername = overrideConfig.DBUsername
	}
	if overrideConfig.DBPassword != "" {
		config.DBPassword = overrideConfig.DBPassword
	}
	if overrideConfig.StoreTimeoutSeconds != 0 {
		config.StoreTimeoutSeconds = overrideConfig.StoreTimeoutSeconds
	}
	if overrideConfig.PrintCommand != "" {
		config.PrintCommand = overrideConfig.PrintCommand
	}
	if overrideConfig.PrintTimeoutSeconds != 0 {
		config.PrintTimeoutSeconds = overrideConfig.PrintTimeoutSeconds
	}

	return toAppConfig(config, appEnv)
}

func validateConfig(config Config) error {
	if config.DbURLFormat == "" {
		return errors.New("DB URL format is not set")
	}

	if config.DBMaxConnections == 0 {
		return errors.New("DB max connections is not set")
	}

	if config.DBUsername == "" {
		return errors.New("DB username is not set")
	}

	if config.DBPassword == "" {
		return errors.New("DB password is not set")
	}

	return nil
}

func toAppConfig(config Config, env string) (*AppConfig, error) {
	err := validateConfig(config)

	if err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		NodeID:           config.NodeID,
		DBConnStr:        fmt.Sprintf(config.DbURLFormat, config.DBUsername, config.DBPassword),
		DBMaxConnections: config.DBMaxConnections,
		StoreTimeout:     time.Duration(config.StoreTimeoutSeconds) * time.Second,
		PrintCommand:     config.PrintCommand,
		PrintTimeout:     time.Duration(config.PrintTimeoutSeconds) * time.Second,
		ENV:              env,
	}

	if appConfig.PrintCommand == "" {
		appConfig.PrintCommand = "lp"
	}

	return appConfig, nil
}
