package model

import (
	"fmt"
	"path/filepath"
	"time"
)

// DownloadTask represents a single wallpaper download
type DownloadTask struct {
	ID         string
	RemotePath string
	Status     TaskStatus
	BytesDone  int64
	BytesTotal int64 // -1 if the server did not send a length
	LastError  string
	OutputPath string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Percent returns progress in 0..100, or 0 when the size is unknown
func (dt *DownloadTask) Percent() int {
	if dt.BytesTotal <= 0 {
		return 0
	}
	p := int(dt.BytesDone * 100 / dt.BytesTotal)
	if p > 100 {
		return 100
	}
	return p
}

// Duration returns how long the task ran, or ran so far
func (dt *DownloadTask) Duration() time.Duration {
	if dt.StartedAt.IsZero() {
		return 0
	}
	if dt.FinishedAt.IsZero() {
		return time.Since(dt.StartedAt)
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}

// GetDisplayTitle returns the output file name, or the remote file name
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.OutputPath != "" {
		return filepath.Base(dt.OutputPath)
	}
	if name := RemoteFileName(dt.RemotePath); name != "" {
		return name
	}
	return dt.RemotePath
}

// Summary returns a one-line status description for logs and tooltips
func (dt *DownloadTask) Summary() string {
	if dt.Status == TaskStatusError && dt.LastError != "" {
		return fmt.Sprintf("%s: %s (%s)", dt.GetDisplayTitle(), dt.Status, dt.LastError)
	}
	return fmt.Sprintf("%s: %s", dt.GetDisplayTitle(), dt.Status)
}
