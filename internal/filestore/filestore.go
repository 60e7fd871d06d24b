// Package filestore manages the local inbox/archive directories that stand
// in for the upload bucket: CSVs land in inbox/, and processed files move
// to archive/ under a name that records mapping, date and file hash.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	inboxDir   = "inbox"
	archiveDir = "archive"
)

// FileInfo describes a CSV waiting in the inbox.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Init creates the inbox and archive directories under root.
func Init(root string) error {
	for _, d := range []string{inboxDir, archiveDir} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return fmt.Errorf("creating %s dir: %w", d, err)
		}
	}
	return nil
}

// Scan returns CSV files in <root>/inbox/.
func Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, inboxDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading inbox: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// ArchiveName builds the archive file name for a processed upload:
// {mapping_name}-{MM-DD-YYYY}-{file_hash}.csv.
func ArchiveName(mappingName string, when time.Time, fileHash string) string {
	return fmt.Sprintf("%s-%s-%s.csv", mappingName, when.Format("01-02-2006"), fileHash)
}

// Archive moves an inbox file to <root>/archive/ under the archive naming
// convention and returns the new name. Unmatched files are never archived;
// they stay in the inbox for manual handling.
func Archive(root, fileName, mappingName, fileHash string, when time.Time) (string, error) {
	if err := os.MkdirAll(filepath.Join(root, archiveDir), 0o755); err != nil {
		return "", fmt.Errorf("creating archive dir: %w", err)
	}

	newName := ArchiveName(mappingName, when, fileHash)
	src := filepath.Join(root, inboxDir, fileName)
	dst := filepath.Join(root, archiveDir, newName)
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("archiving %s: %w", fileName, err)
	}
	return newName, nil
}

// Remove deletes an inbox file. Used for duplicate uploads.
func Remove(root, fileName string) error {
	if err := os.Remove(filepath.Join(root, inboxDir, fileName)); err != nil {
		return fmt.Errorf("removing %s: %w", fileName, err)
	}
	return nil
}

// UserFromFileName derives the uploading user from the file name prefix:
// "alice_chase.csv" belongs to "alice". ok is false when the name carries
// no user prefix.
func UserFromFileName(name string) (string, bool) {
	base := filepath.Base(name)
	user, _, found := strings.Cut(base, "_")
	if !found || user == "" {
		return "", false
	}
	return user, true
}
