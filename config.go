package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/fingon/go-textsanitize/sanitizer"
)

// CharacterSetsFile defines the structure of the JSON config file.
//
// Custom character strings replace the platform's set when non-empty.
type CharacterSetsFile struct {
	Platform             string `json:"platform,omitempty"`
	InvalidPathChars     string `json:"invalid_path_chars,omitempty"`
	InvalidFileNameChars string `json:"invalid_file_name_chars,omitempty"`
}

// loadConfigFromFile reads the character set configuration from the specified JSON file.
// It returns nil if the path is empty or the file doesn't exist.
func loadConfigFromFile(configPath string, logger zerolog.Logger) (*CharacterSetsFile, error) {
	if configPath == "" {
		return nil, nil // No config file specified
	}

	logger.Debug().Str("path", configPath).Msg("Loading character sets from config file")
	configData, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", configPath).Msg("Config file not found, relying on CLI flags or defaults")
			return nil, nil // File not found is not a fatal error here
		}
		logger.Error().Str("path", configPath).Err(err).Msg("Failed to read config file")
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var setsFile CharacterSetsFile
	if err := json.Unmarshal(configData, &setsFile); err != nil {
		logger.Error().Str("path", configPath).Err(err).Msg("Failed to parse config file JSON")
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return &setsFile, nil
}

// mergeAndValidateConfig merges the file (if provided) into the CLI struct, giving
// precedence to the --platform flag, and resolves the resulting character sets.
func mergeAndValidateConfig(cli *CLI, fromFile *CharacterSetsFile) (sanitizer.CharacterSets, error) {
	if fromFile != nil && cli.Platform == "" {
		cli.Platform = fromFile.Platform
	}
	if cli.Platform == "" {
		cli.Platform = sanitizer.PlatformHost
	}

	sets, err := sanitizer.CharacterSetsFor(cli.Platform)
	if err != nil {
		return sanitizer.CharacterSets{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if fromFile != nil {
		if fromFile.InvalidPathChars != "" {
			sets.Path = sanitizer.CharSetFromString(fromFile.InvalidPathChars)
		}
		if fromFile.InvalidFileNameChars != "" {
			sets.FileName = sanitizer.CharSetFromString(fromFile.InvalidFileNameChars)
		}
	}
	return sets, nil
}

// loadAndValidateConfig loads configuration from file (if specified), merges it with CLI flags,
// and returns the character sets the sanitizer should use.
func loadAndValidateConfig(cli *CLI, logger zerolog.Logger) (sanitizer.CharacterSets, error) {
	fromFile, err := loadConfigFromFile(cli.ConfigFile, logger)
	if err != nil {
		// If loading failed (and it wasn't just file not found), return the error.
		return sanitizer.CharacterSets{}, err
	}
	return mergeAndValidateConfig(cli, fromFile)
}
