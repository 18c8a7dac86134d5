package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"taskmaster/types"
)

const (
	configName = ".taskmaster"
	envPrefix  = "TASKMASTER"

	// defaultDataFile is the task file name under the home directory.
	defaultDataFile = ".tasks.json"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single validator instance, it caches struct info.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. It's okay if it doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g., TASKMASTER_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home) // $HOME/.taskmaster.yaml
		}
		viper.AddConfigPath(".") // ./.taskmaster.yaml
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				fmt.Fprintln(os.Stderr, "Error: specified config file not found:", cfgFile)
			}
			// No config file found by search paths is fine.
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	viper.SetDefault("data.file", defaultDataFile)
	viper.SetDefault("data.format", "json")
	viper.SetDefault("data.backend", "file")

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Error: unable to decode configuration:", err)
		os.Exit(1)
	}
	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Error: invalid configuration:", err)
		os.Exit(1)
	}
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// GetConfig returns the resolved application configuration.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
