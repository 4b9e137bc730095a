package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
)

func validateConfig(config *Config) error {
	var result *multierror.Error

	result = multierror.Append(result,
		validateRootDir(config),
		validateListenHTTP(config),
		validateLogFormat(config),
		validateLimits(config),
	)

	return result.ErrorOrNil()
}

func validateRootDir(config *Config) error {
	fi, err := os.Stat(config.General.RootDir)
	if err != nil {
		return fmt.Errorf("root directory %q is not accessible: %w", config.General.RootDir, err)
	}

	if !fi.IsDir() {
		return fmt.Errorf("root %q must be a directory", config.General.RootDir)
	}

	return nil
}

func validateListenHTTP(config *Config) error {
	if config.General.ListenHTTP == "" {
		return errors.New("listen-http must not be empty")
	}

	return nil
}

func validateLogFormat(config *Config) error {
	switch config.Log.Format {
	case "", "text", "json":
		return nil
	}

	return fmt.Errorf("invalid log format %q, expected 'text' or 'json'", config.Log.Format)
}

func validateLimits(config *Config) error {
	var result *multierror.Error

	if config.General.MaxURILength < 0 {
		result = multierror.Append(result, errors.New("max-uri-length must not be negative"))
	}

	if config.RateLimit.SourceIPLimitPerSecond < 0 {
		result = multierror.Append(result, errors.New("rate-limit-source-ip must not be negative"))
	}

	if config.RateLimit.SourceIPLimitPerSecond > 0 && config.RateLimit.SourceIPBurstSize < 1 {
		result = multierror.Append(result, errors.New("rate-limit-source-ip-burst must be greater than 0"))
	}

	return result.ErrorOrNil()
}
