package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"sbd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "SBD_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "SBD_SAVE_INTERVAL")
	viper.BindEnv("analytics.interval", "SBD_ANALYTICS_INTERVAL")
	viper.BindEnv("cache.enabled", "SBD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "SBD_CACHE_SIZE")
	viper.BindEnv("blog.defaultImage", "SBD_DEFAULT_IMAGE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "SimpleBlogDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
