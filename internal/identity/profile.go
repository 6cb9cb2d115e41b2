// Package identity manages the local player profile: a stable anonymous
// identity token, the persisted display name, and the run-in-progress flag
// used to detect sessions that ended abnormally.
package identity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Profile is the persisted per-player state. PlayerID is generated once and
// reused forever, which is what deduplicates leaderboard entries.
type Profile struct {
	PlayerID      string `yaml:"player_id"`
	DisplayName   string `yaml:"display_name"`
	RunInProgress bool   `yaml:"run_in_progress"`

	path string `yaml:"-"`
}

// DefaultPath returns the profile location under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("identity: cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".snaketui", "profile.yaml"), nil
}

// Load reads the profile at path, creating a fresh one (with a newly generated
// identity token) if the file does not exist. A profile missing its token gets
// one assigned. Load never persists by itself; call Save after changes.
func Load(path string) (*Profile, error) {
	p := &Profile{path: path}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("identity: cannot parse profile %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Fresh profile
	default:
		return nil, fmt.Errorf("identity: cannot read profile %s: %w", path, err)
	}

	if p.PlayerID == "" {
		p.PlayerID = newToken()
	}
	return p, nil
}

// Save writes the profile back to its file, creating parent directories as
// needed.
func (p *Profile) Save() error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("identity: cannot create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("identity: cannot encode profile: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o600); err != nil {
		return fmt.Errorf("identity: cannot write profile %s: %w", p.path, err)
	}
	return nil
}

// SetDisplayName updates and persists the display name preference.
func (p *Profile) SetDisplayName(name string) error {
	p.DisplayName = name
	return p.Save()
}

// BeginRun marks a run as in progress. Best effort: the game must start even
// if the flag cannot be written.
func (p *Profile) BeginRun() error {
	p.RunInProgress = true
	return p.Save()
}

// EndRun clears the run-in-progress flag.
func (p *Profile) EndRun() error {
	p.RunInProgress = false
	return p.Save()
}

// ClearStaleRun is called at startup. If a previous session left the
// run-in-progress flag set (abnormal exit), it is cleared and true is
// returned so the caller can reset to the menu. No run state is restored.
func (p *Profile) ClearStaleRun() (bool, error) {
	if !p.RunInProgress {
		return false, nil
	}
	p.RunInProgress = false
	return true, p.Save()
}

// newToken generates the anonymous identity token. Falls back to raw random
// hex when uuid generation fails so a run can always proceed.
func newToken() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// Last resort; still unique enough per process for a local profile.
		return fmt.Sprintf("local-%d", os.Getpid())
	}
	return hex.EncodeToString(b)
}
