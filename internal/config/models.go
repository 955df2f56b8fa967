package config

import "time"

// Registry represents the entire user configuration file.
// It stores named panel profiles and application preferences.
type Registry struct {
	Version     int                 `yaml:"version"`
	Profiles    map[string]*Profile `yaml:"profiles,omitempty"` // Keyed by profile name
	Preferences *Preferences        `yaml:"preferences,omitempty"`
}

// Profile represents one panel setup: a settings file on disk plus
// user metadata about it.
type Profile struct {
	EnvFile       string    `yaml:"env_file"`                 // Path to the panel settings file
	Nickname      string    `yaml:"nickname,omitempty"`       // User-friendly name (e.g. "Bedroom clock panel")
	Notes         string    `yaml:"notes,omitempty"`          // Free-form notes (wiring quirks, panel batch, ...)
	LastValidated time.Time `yaml:"last_validated,omitempty"` // When the settings file last validated cleanly
	Valid         bool      `yaml:"valid,omitempty"`          // Result of the last validation
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultProfile string `yaml:"default_profile,omitempty"` // Profile used when none is named
	MatrixSrcDir   string `yaml:"matrix_src_dir,omitempty"`  // rgbmatrix source checkout for install steps
	Verbose        bool   `yaml:"verbose"`                   // Stream command output during installs
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Profiles:    make(map[string]*Profile),
		Preferences: &Preferences{},
	}
}

// GetProfile retrieves a profile by name.
// Returns nil if the profile doesn't exist in the registry.
func (r *Registry) GetProfile(name string) *Profile {
	return r.Profiles[name]
}

// EnsureProfile ensures a profile entry exists in the registry.
// If the profile doesn't exist, creates a new empty entry.
// Returns the profile entry (existing or newly created).
func (r *Registry) EnsureProfile(name string) *Profile {
	if r.Profiles == nil {
		r.Profiles = make(map[string]*Profile)
	}

	if profile, exists := r.Profiles[name]; exists {
		return profile
	}

	profile := &Profile{}
	r.Profiles[name] = profile
	return profile
}

// AddProfile registers a settings file under a profile name.
func (r *Registry) AddProfile(name, envFile, nickname string) *Profile {
	profile := r.EnsureProfile(name)
	profile.EnvFile = envFile
	profile.Nickname = nickname
	return profile
}

// RemoveProfile deletes a profile. Clears the default-profile preference
// if it pointed at the removed profile.
func (r *Registry) RemoveProfile(name string) {
	delete(r.Profiles, name)
	if r.Preferences != nil && r.Preferences.DefaultProfile == name {
		r.Preferences.DefaultProfile = ""
	}
}

// MarkValidated records the outcome of a validation run for a profile.
func (r *Registry) MarkValidated(name string, valid bool) {
	profile := r.EnsureProfile(name)
	profile.LastValidated = time.Now()
	profile.Valid = valid
}

// SetDefaultProfile records which profile is used when none is named.
func (r *Registry) SetDefaultProfile(name string) {
	if r.Preferences == nil {
		r.Preferences = &Preferences{}
	}
	r.Preferences.DefaultProfile = name
}

// DefaultProfile returns the configured default profile, or nil.
func (r *Registry) DefaultProfile() *Profile {
	if r.Preferences == nil || r.Preferences.DefaultProfile == "" {
		return nil
	}
	return r.Profiles[r.Preferences.DefaultProfile]
}
