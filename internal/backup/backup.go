// Package backup implements full-state snapshots: events, tags and settings
// captured in a single JSON file, restorable in any subset.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gigcal/gigcal/internal/constants"
	"github.com/gigcal/gigcal/internal/models"
	"github.com/gigcal/gigcal/internal/storage"
)

// Snapshot is the backup file shape. A nil section means "absent" and is
// left untouched on restore.
type Snapshot struct {
	Events     []models.Event    `json:"events,omitempty"`
	Tags       *models.TagConfig `json:"tags,omitempty"`
	Settings   *models.Settings  `json:"settings,omitempty"`
	ExportDate string            `json:"exportDate"`
}

// Info describes one backup file on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles snapshot files under <dataDir>/backups.
type Manager struct {
	store     *storage.Store
	backupDir string
}

func NewManager(store *storage.Store, dataDir string) *Manager {
	return &Manager{
		store:     store,
		backupDir: filepath.Join(dataDir, constants.BackupDirName),
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Capture reads the full persisted state into a snapshot.
func (m *Manager) Capture(now time.Time) (Snapshot, error) {
	events, err := m.store.GetAllEvents()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read events: %w", err)
	}
	tags, err := m.store.GetTags()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read tags: %w", err)
	}
	settings, err := m.store.GetSettings()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return Snapshot{
		Events:     events,
		Tags:       &tags,
		Settings:   &settings,
		ExportDate: now.UTC().Format(time.RFC3339),
	}, nil
}

// Create writes a timestamped snapshot file and rotates old backups away.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	snap, err := m.Capture(time.Now())
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}

	name := constants.BackupFilePrefix + time.Now().Format("20060102-150405") + constants.BackupFileSuffix
	path := filepath.Join(m.backupDir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}
	return path, nil
}

// List returns available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: fi.ModTime(),
			Size:      fi.Size(),
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// Restore applies a snapshot file. Only the sections present in the file
// are written; absent sections keep their current contents.
func (m *Manager) Restore(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to parse backup: %w", err)
	}
	if snap.Events == nil && snap.Tags == nil && snap.Settings == nil {
		return fmt.Errorf("backup contains no restorable data")
	}

	if snap.Events != nil {
		if err := m.store.ReplaceEvents(snap.Events); err != nil {
			return fmt.Errorf("failed to restore events: %w", err)
		}
	}
	if snap.Tags != nil {
		if err := m.store.SaveTags(*snap.Tags); err != nil {
			return fmt.Errorf("failed to restore tags: %w", err)
		}
	}
	if snap.Settings != nil {
		if err := m.store.SaveSettings(*snap.Settings); err != nil {
			return fmt.Errorf("failed to restore settings: %w", err)
		}
	}
	return nil
}

// rotate deletes the oldest backups beyond MaxBackups.
func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return err
		}
	}
	return nil
}
