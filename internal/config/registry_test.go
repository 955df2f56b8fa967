package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "rpidisplay") {
		t.Errorf("GetConfigDir() = %v, should contain 'rpidisplay'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Profiles == nil {
		t.Error("NewRegistry().Profiles should not be nil")
	}
	if reg.Preferences == nil {
		t.Error("NewRegistry().Preferences should not be nil")
	}
}

func TestRegistryEnsureProfile(t *testing.T) {
	reg := NewRegistry()

	profile1 := reg.EnsureProfile("bedroom")
	if profile1 == nil {
		t.Fatal("EnsureProfile() returned nil")
	}

	profile2 := reg.EnsureProfile("bedroom")
	if profile1 != profile2 {
		t.Error("EnsureProfile() should return same instance for same name")
	}

	profile3 := reg.EnsureProfile("workshop")
	if profile1 == profile3 {
		t.Error("EnsureProfile() should create new instance for different name")
	}
}

func TestRegistryAddProfile(t *testing.T) {
	reg := NewRegistry()

	profile := reg.AddProfile("bedroom", "/home/pi/panel.env", "Bedroom clock panel")
	if profile.EnvFile != "/home/pi/panel.env" {
		t.Errorf("EnvFile = %q, want /home/pi/panel.env", profile.EnvFile)
	}
	if profile.Nickname != "Bedroom clock panel" {
		t.Errorf("Nickname = %q", profile.Nickname)
	}
	if reg.GetProfile("bedroom") != profile {
		t.Error("GetProfile() should return the added profile")
	}
}

func TestRegistryMarkValidated(t *testing.T) {
	reg := NewRegistry()

	before := time.Now()
	reg.MarkValidated("bedroom", true)
	after := time.Now()

	profile := reg.GetProfile("bedroom")
	if profile == nil {
		t.Fatal("profile should exist after MarkValidated()")
	}
	if !profile.Valid {
		t.Error("Valid should be true")
	}
	if profile.LastValidated.Before(before) || profile.LastValidated.After(after) {
		t.Errorf("LastValidated = %v, should be between %v and %v", profile.LastValidated, before, after)
	}

	reg.MarkValidated("bedroom", false)
	if profile.Valid {
		t.Error("Valid should flip to false")
	}
}

func TestRegistryDefaultProfile(t *testing.T) {
	reg := NewRegistry()
	if reg.DefaultProfile() != nil {
		t.Error("DefaultProfile() should be nil for a fresh registry")
	}

	reg.AddProfile("bedroom", "/home/pi/panel.env", "")
	reg.SetDefaultProfile("bedroom")

	if got := reg.DefaultProfile(); got == nil || got.EnvFile != "/home/pi/panel.env" {
		t.Errorf("DefaultProfile() = %+v, want bedroom profile", got)
	}
}

func TestRegistryRemoveProfileClearsDefault(t *testing.T) {
	reg := NewRegistry()
	reg.AddProfile("bedroom", "/home/pi/panel.env", "")
	reg.SetDefaultProfile("bedroom")

	reg.RemoveProfile("bedroom")
	if reg.GetProfile("bedroom") != nil {
		t.Error("profile should be gone after RemoveProfile()")
	}
	if reg.Preferences.DefaultProfile != "" {
		t.Error("default-profile preference should be cleared with the profile")
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	reg := NewRegistry()
	reg.AddProfile("bedroom", "/home/pi/panel.env", "Bedroom clock panel")
	reg.Profiles["bedroom"].Notes = "FM6126A batch, needs slowdown 2"
	reg.SetDefaultProfile("bedroom")
	reg.Preferences.MatrixSrcDir = "/home/pi/rpi-rgb-led-matrix"
	reg.MarkValidated("bedroom", true)

	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := loadRegistryFromDisk()
	if err != nil {
		t.Fatalf("loadRegistryFromDisk() error = %v", err)
	}

	profile := loaded.GetProfile("bedroom")
	if profile == nil {
		t.Fatal("loaded registry is missing the bedroom profile")
	}
	if profile.EnvFile != "/home/pi/panel.env" {
		t.Errorf("EnvFile = %q", profile.EnvFile)
	}
	if profile.Notes != "FM6126A batch, needs slowdown 2" {
		t.Errorf("Notes = %q", profile.Notes)
	}
	if !profile.Valid {
		t.Error("Valid flag should round-trip")
	}
	if loaded.Preferences.DefaultProfile != "bedroom" {
		t.Errorf("DefaultProfile = %q, want bedroom", loaded.Preferences.DefaultProfile)
	}
	if loaded.Preferences.MatrixSrcDir != "/home/pi/rpi-rgb-led-matrix" {
		t.Errorf("MatrixSrcDir = %q", loaded.Preferences.MatrixSrcDir)
	}
}

func TestLoadMissingRegistryReturnsDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	loaded, err := loadRegistryFromDisk()
	if err != nil {
		t.Fatalf("loadRegistryFromDisk() error = %v", err)
	}
	if loaded.Version != 1 || len(loaded.Profiles) != 0 {
		t.Errorf("missing registry should load as fresh defaults, got %+v", loaded)
	}
}
