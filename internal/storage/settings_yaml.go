package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"brewtimer/internal/platform"
	"brewtimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	TickIntervalMillis int      `yaml:"tick_interval_ms"`
	AdjustStepSeconds  int      `yaml:"adjust_step_seconds"`
	ChimeEnabled       *bool    `yaml:"chime_enabled"`
	ChimeVolume        *float64 `yaml:"chime_volume"`
	RememberLast       *bool    `yaml:"remember_last"`
	LastTotalSeconds   int      `yaml:"last_total_seconds"`
}

// LoadSettings reads user preferences from the application config dir.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to the application config dir.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads user preferences from a YAML file.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes user preferences to a YAML file.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		TickIntervalMillis: int(settings.TickInterval / time.Millisecond),
		AdjustStepSeconds:  int(settings.AdjustStep / time.Second),
		ChimeEnabled:       &settings.ChimeEnabled,
		ChimeVolume:        &settings.ChimeVolume,
		RememberLast:       &settings.RememberLast,
		LastTotalSeconds:   int(settings.LastTotal / time.Second),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := platform.AppConfigDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, fileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.TickIntervalMillis > 0 {
		settings.TickInterval = preferences.ClampTickInterval(time.Duration(fileData.TickIntervalMillis) * time.Millisecond)
	}
	if fileData.AdjustStepSeconds > 0 {
		settings.AdjustStep = time.Duration(fileData.AdjustStepSeconds) * time.Second
	}
	if fileData.LastTotalSeconds > 0 {
		settings.LastTotal = time.Duration(fileData.LastTotalSeconds) * time.Second
	}

	if fileData.ChimeVolume != nil && *fileData.ChimeVolume >= -4 && *fileData.ChimeVolume <= 0 {
		settings.ChimeVolume = *fileData.ChimeVolume
	}
	if fileData.ChimeEnabled != nil {
		settings.ChimeEnabled = *fileData.ChimeEnabled
	}
	if fileData.RememberLast != nil {
		settings.RememberLast = *fileData.RememberLast
	}
}
