// Package backup implements JSON export and import of the full habit and
// log collections. The archive schema is {version, exportedAt, habits,
// logs}; the stats engine never reads these files, it only ever sees the
// in-memory lists the store hands it.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nateharris/habitflow/internal/constants"
	"github.com/nateharris/habitflow/internal/models"
	"github.com/nateharris/habitflow/internal/storage"
)

// Info contains information about an archive file
type Info struct {
	Path       string
	ExportedAt time.Time
	Size       int64
}

// Manager handles export and import operations
type Manager struct {
	backupDir string
}

// NewManager creates a manager whose archives live in a backups directory
// beside the store's config file.
func NewManager(configPath string) *Manager {
	return &Manager{
		backupDir: filepath.Join(filepath.Dir(configPath), constants.BackupDirName),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// Export writes the store's full contents as a timestamped JSON archive and
// rotates old archives, keeping the newest MaxBackups.
func (m *Manager) Export(store storage.Provider, now time.Time) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	habits, err := store.GetAllHabits()
	if err != nil {
		return "", fmt.Errorf("failed to read habits: %w", err)
	}
	logs, err := store.GetAllLogs()
	if err != nil {
		return "", fmt.Errorf("failed to read logs: %w", err)
	}

	archive := models.Archive{
		Version:    constants.StorageVersion,
		ExportedAt: now.UnixMilli(),
		Habits:     habits,
		Logs:       logs,
	}

	path := m.archivePath(now)
	if err := WriteArchive(path, archive); err != nil {
		return "", err
	}

	if err := m.rotate(); err != nil {
		return "", err
	}

	return path, nil
}

// archivePath generates a unique timestamped filename, adding seconds and
// then a counter when exports collide within the same minute.
func (m *Manager) archivePath(now time.Time) string {
	name := constants.BackupFilePrefix + now.Format("20060102-1504") + constants.BackupFileSuffix
	path := filepath.Join(m.backupDir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	name = constants.BackupFilePrefix + now.Format("20060102-150405") + constants.BackupFileSuffix
	path = filepath.Join(m.backupDir, name)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		name = fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, now.Format("20060102-150405"), counter, constants.BackupFileSuffix)
		path = filepath.Join(m.backupDir, name)
	}
}

// WriteArchive serializes an archive to the given path.
func WriteArchive(path string, archive models.Archive) error {
	data, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize archive: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	return nil
}

// ReadArchive parses and validates an archive file.
func ReadArchive(path string) (models.Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Archive{}, fmt.Errorf("failed to read archive: %w", err)
	}

	var archive models.Archive
	if err := json.Unmarshal(data, &archive); err != nil {
		return models.Archive{}, fmt.Errorf("failed to parse archive: %w", err)
	}
	if archive.Version != constants.StorageVersion {
		return models.Archive{}, fmt.Errorf("unsupported archive version %d", archive.Version)
	}

	return archive, nil
}

// Import loads an archive into the store. With replace set the store's
// contents are swapped for the archive's wholesale. Otherwise the archive
// is merged as a union by id: records whose ids already exist are kept
// as-is and only unseen habits and logs are added. Returns the number of
// habits and logs added.
func (m *Manager) Import(store storage.Provider, path string, replace bool) (habitsAdded, logsAdded int, err error) {
	archive, err := ReadArchive(path)
	if err != nil {
		return 0, 0, err
	}

	if replace {
		if err := store.ReplaceAll(archive.Habits, archive.Logs); err != nil {
			return 0, 0, err
		}
		return len(archive.Habits), len(archive.Logs), nil
	}

	existing, err := store.GetAllHabits()
	if err != nil {
		return 0, 0, err
	}
	habitIDs := make(map[string]struct{}, len(existing))
	for _, h := range existing {
		habitIDs[h.ID] = struct{}{}
	}

	existingLogs, err := store.GetAllLogs()
	if err != nil {
		return 0, 0, err
	}
	logIDs := make(map[string]struct{}, len(existingLogs))
	for _, l := range existingLogs {
		logIDs[l.ID] = struct{}{}
	}

	for _, h := range archive.Habits {
		if _, ok := habitIDs[h.ID]; ok {
			continue
		}
		if err := store.AddHabit(h); err != nil {
			return habitsAdded, logsAdded, err
		}
		habitsAdded++
	}
	for _, l := range archive.Logs {
		if _, ok := logIDs[l.ID]; ok {
			continue
		}
		if err := store.AddLog(l); err != nil {
			return habitsAdded, logsAdded, err
		}
		logsAdded++
	}

	return habitsAdded, logsAdded, nil
}

// List returns available archives, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Path:       filepath.Join(m.backupDir, name),
			ExportedAt: fi.ModTime(),
			Size:       fi.Size(),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].ExportedAt.After(infos[j].ExportedAt) })
	return infos, nil
}

// rotate deletes the oldest archives beyond MaxBackups.
func (m *Manager) rotate() error {
	infos, err := m.List()
	if err != nil {
		return err
	}
	for _, info := range infos[min(len(infos), constants.MaxBackups):] {
		if err := os.Remove(info.Path); err != nil {
			return fmt.Errorf("failed to remove old archive: %w", err)
		}
	}
	return nil
}
