package model

// TaskStatus represents the status of a wallpaper download
type TaskStatus string

const (
	// TaskStatusPending means the download is waiting for a free slot
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means bytes are being transferred
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the file was written to the target directory
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusCached means the file already existed and was reused
	TaskStatusCached TaskStatus = "Cached"

	// TaskStatusError means the download failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task still occupies or waits for a slot
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusDownloading
}

// IsFinished returns true if the task reached a terminal state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusCached || ts == TaskStatusError
}

// Succeeded returns true if a usable local file is available
func (ts TaskStatus) Succeeded() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusCached
}
