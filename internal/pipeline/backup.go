package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"
)

// backupTimestamp formats the suffix for backup file names.
const backupTimestamp = "20060102-150405"

// BackupFile copies path to a timestamped sibling ("<path>.bak.<ts>") and
// returns the backup path. A missing source is not an error; it returns ""
// since there is nothing to protect. Backups are never overwritten or
// cleaned up.
func BackupFile(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	backup := fmt.Sprintf("%s.bak.%s", path, time.Now().Format(backupTimestamp))

	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(backup, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode())
	if err != nil {
		return "", fmt.Errorf("create backup %s: %w", backup, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(backup)
		return "", fmt.Errorf("copy to backup %s: %w", backup, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(backup)
		return "", fmt.Errorf("close backup %s: %w", backup, err)
	}

	return backup, nil
}
