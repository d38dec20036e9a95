package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"

	"github.com/fingon/go-textsanitize/sanitizer"
)

func TestMergeAndValidateConfig(t *testing.T) {
	testCases := []struct {
		name             string
		cliInput         *CLI
		fileInput        *CharacterSetsFile
		expectedPlatform string
		expectedPath     []rune
		expectedFileName []rune
		expectedError    string // Substring of the expected error message
	}{
		{
			name:             "CLI only",
			cliInput:         &CLI{Platform: "unix"},
			expectedPlatform: "unix",
			expectedPath:     []rune{0},
			expectedFileName: []rune{0, '/'},
		},
		{
			name:             "File only",
			cliInput:         &CLI{},
			fileInput:        &CharacterSetsFile{Platform: "unix"},
			expectedPlatform: "unix",
			expectedPath:     []rune{0},
			expectedFileName: []rune{0, '/'},
		},
		{
			name:             "CLI overrides File",
			cliInput:         &CLI{Platform: "unix"},
			fileInput:        &CharacterSetsFile{Platform: "windows"},
			expectedPlatform: "unix",
			expectedPath:     []rune{0},
			expectedFileName: []rune{0, '/'},
		},
		{
			name:     "Custom characters replace platform sets",
			cliInput: &CLI{Platform: "unix"},
			fileInput: &CharacterSetsFile{
				InvalidPathChars:     "|",
				InvalidFileNameChars: "<>",
			},
			expectedPlatform: "unix",
			expectedPath:     []rune{'|'},
			expectedFileName: []rune{'<', '>'},
		},
		{
			name:             "Custom file name characters only",
			cliInput:         &CLI{Platform: "unix"},
			fileInput:        &CharacterSetsFile{InvalidFileNameChars: "#"},
			expectedPlatform: "unix",
			expectedPath:     []rune{0},
			expectedFileName: []rune{'#'},
		},
		{
			name:             "Nothing set defaults to host",
			cliInput:         &CLI{},
			expectedPlatform: "host",
			expectedPath:     sanitizer.HostCharacterSets().Path.Runes(),
			expectedFileName: sanitizer.HostCharacterSets().FileName.Runes(),
		},
		{
			name:          "Unknown platform from CLI",
			cliInput:      &CLI{Platform: "amiga"},
			expectedError: `invalid configuration: unknown platform "amiga"`,
		},
		{
			name:          "Unknown platform from file",
			cliInput:      &CLI{},
			fileInput:     &CharacterSetsFile{Platform: "vms"},
			expectedError: `invalid configuration: unknown platform "vms"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cliActual := *tc.cliInput // Make a copy to avoid modifying input across tests
			sets, err := mergeAndValidateConfig(&cliActual, tc.fileInput)

			if tc.expectedError != "" {
				assert.ErrorContains(t, err, tc.expectedError)
				assert.Assert(t, errors.Is(err, sanitizer.ErrUnknownPlatform))
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, cliActual.Platform, tc.expectedPlatform)
			assert.DeepEqual(t, sets.Path.Runes(), tc.expectedPath)
			assert.DeepEqual(t, sets.FileName.Runes(), tc.expectedFileName)
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	logger := zerolog.Nop() // Use a Nop logger for tests

	t.Run("Valid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		setsFile := CharacterSetsFile{
			Platform:             "windows",
			InvalidPathChars:     "\x00|",
			InvalidFileNameChars: `<>:"`,
		}
		content, _ := json.Marshal(setsFile)
		err := os.WriteFile(configPath, content, 0o644)
		assert.NilError(t, err)

		loaded, err := loadConfigFromFile(configPath, logger)
		assert.NilError(t, err)
		assert.Assert(t, loaded != nil)
		assert.DeepEqual(t, loaded, &setsFile)
	})

	t.Run("File not found", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "nonexistent.json")

		loaded, err := loadConfigFromFile(configPath, logger)
		assert.NilError(t, err) // Should not return error for file not found
		assert.Assert(t, loaded == nil)
	})

	t.Run("Empty path", func(t *testing.T) {
		loaded, err := loadConfigFromFile("", logger)
		assert.NilError(t, err)
		assert.Assert(t, loaded == nil)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.json")
		err := os.WriteFile(configPath, []byte("{invalid json"), 0o644)
		assert.NilError(t, err)

		loaded, err := loadConfigFromFile(configPath, logger)
		assert.ErrorContains(t, err, "failed to parse config file")
		assert.Assert(t, loaded == nil)
	})

	t.Run("Path is a directory", func(t *testing.T) {
		tmpDir := t.TempDir()

		loaded, err := loadConfigFromFile(tmpDir, logger)
		assert.ErrorContains(t, err, "failed to read config file")
		assert.Assert(t, loaded == nil)
	})
}

func TestLoadAndValidateConfig(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Config file only", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		err := os.WriteFile(configPath, []byte(`{"platform": "windows", "invalid_path_chars": "\u0000"}`), 0o644)
		assert.NilError(t, err)

		cli := &CLI{ConfigFile: configPath}
		sets, err := loadAndValidateConfig(cli, logger)
		assert.NilError(t, err)
		assert.Equal(t, cli.Platform, "windows")
		assert.DeepEqual(t, sets.Path.Runes(), []rune{0})
		assert.Assert(t, sets.FileName.Contains(':'))
	})

	t.Run("Flag with missing config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		cli := &CLI{
			ConfigFile: filepath.Join(tmpDir, "nonexistent.json"),
			Platform:   "windows",
		}
		sets, err := loadAndValidateConfig(cli, logger)
		assert.NilError(t, err)
		assert.Equal(t, sets.FileName.Len(), sanitizer.WindowsCharacterSets().FileName.Len())
	})

	t.Run("Invalid JSON in config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.json")
		err := os.WriteFile(configPath, []byte("{invalid json"), 0o644)
		assert.NilError(t, err)

		cli := &CLI{ConfigFile: configPath}
		_, err = loadAndValidateConfig(cli, logger)
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("Unknown platform in config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")
		err := os.WriteFile(configPath, []byte(`{"platform": "os2"}`), 0o644)
		assert.NilError(t, err)

		cli := &CLI{ConfigFile: configPath}
		_, err = loadAndValidateConfig(cli, logger)
		assert.ErrorContains(t, err, "unknown platform")
	})
}
