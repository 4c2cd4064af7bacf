package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/wallpaper-gallery/internal/logger"
	"github.com/ytget/wallpaper-gallery/internal/model"
	"github.com/ytget/wallpaper-gallery/internal/platform"
)

var log = logger.New("download")

const (
	TaskIDPrefix     = "download-"
	PartialSuffix    = ".part"
	ProgressInterval = 250 * time.Millisecond

	// MaxRetainedTasks bounds how many finished tasks are kept for lookups
	MaxRetainedTasks = 100
)

// ErrAlreadyInProgress is returned when the same target file is being downloaded
var ErrAlreadyInProgress = errors.New("download already in progress")

// Service handles download operations
type Service struct {
	tasks      map[string]*model.DownloadTask
	tasksMutex sync.RWMutex
	slots      chan struct{}
	httpClient *http.Client
	onUpdate   func(*model.DownloadTask) // callback for UI updates
	retain     int                       // finished tasks kept, oldest dropped first
}

// NewService creates a new download service
func NewService(httpClient *http.Client, maxParallel int) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		tasks:      make(map[string]*model.DownloadTask),
		slots:      make(chan struct{}, maxParallel),
		httpClient: httpClient,
		retain:     MaxRetainedTasks,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetMaxParallelDownloads resizes the slot pool; running downloads keep their slot
func (s *Service) SetMaxParallelDownloads(max int) {
	if max < 1 {
		max = 1
	}
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	if cap(s.slots) != max {
		s.slots = make(chan struct{}, max)
	}
}

// TargetPath returns where remotePath would be stored inside dir
func TargetPath(remotePath, dir string) (string, error) {
	u, err := url.Parse(remotePath)
	if err != nil {
		return "", fmt.Errorf("invalid remote path: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme in remote path: %q", remotePath)
	}
	name := filepath.Base(model.RemoteFileName(remotePath))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("cannot derive file name from %q", remotePath)
	}
	if dir == "" {
		return "", fmt.Errorf("target directory is empty")
	}
	return filepath.Join(dir, name), nil
}

// Download fetches remotePath into dir. An existing non-empty file is reused.
func (s *Service) Download(ctx context.Context, remotePath, dir string) (*model.DownloadTask, error) {
	target, err := TargetPath(remotePath, dir)
	if err != nil {
		return nil, err
	}

	task, err := s.addTask(remotePath, target)
	if err != nil {
		return nil, err
	}

	if info, statErr := os.Stat(target); statErr == nil && info.Mode().IsRegular() && info.Size() > 0 {
		s.finish(task, model.TaskStatusCached, nil)
		log.Debug().Str("path", target).Msg("reusing existing file")
		return s.snapshot(task), nil
	}

	slots := s.currentSlots()
	select {
	case slots <- struct{}{}:
	case <-ctx.Done():
		s.finish(task, model.TaskStatusError, ctx.Err())
		return s.snapshot(task), ctx.Err()
	}
	defer func() { <-slots }()

	s.setStatus(task, model.TaskStatusDownloading)

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		err = fmt.Errorf("failed to create directory: %w", err)
		s.finish(task, model.TaskStatusError, err)
		return s.snapshot(task), err
	}

	if err := s.fetch(ctx, task, target); err != nil {
		log.Error().Err(err).Str("task", task.ID).Str("url", remotePath).Msg("download failed")
		s.finish(task, model.TaskStatusError, err)
		return s.snapshot(task), err
	}

	s.finish(task, model.TaskStatusCompleted, nil)
	log.Info().Str("task", task.ID).Str("path", target).Msg("download completed")
	return s.snapshot(task), nil
}

// fetch streams the response body into a temporary file and renames it into place
func (s *Service) fetch(ctx context.Context, task *model.DownloadTask, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.RemotePath, nil)
	if err != nil {
		return err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Err(err).Msg("Failed to close response body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected HTTP status: %s", resp.Status)
	}

	s.tasksMutex.Lock()
	task.BytesTotal = resp.ContentLength
	s.tasksMutex.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*"+PartialSuffix)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	pw := &progressWriter{service: s, task: task}
	if _, err := io.Copy(io.MultiWriter(tmp, pw), resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	committed = true
	return nil
}

// progressWriter counts bytes and throttles progress notifications
type progressWriter struct {
	service    *Service
	task       *model.DownloadTask
	lastNotify time.Time
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	pw.service.tasksMutex.Lock()
	pw.task.BytesDone += int64(len(p))
	pw.service.tasksMutex.Unlock()

	if time.Since(pw.lastNotify) >= ProgressInterval {
		pw.lastNotify = time.Now()
		pw.service.notifyUpdate(pw.task)
	}
	return len(p), nil
}

// addTask registers a task unless the same target is already active
func (s *Service) addTask(remotePath, target string) (*model.DownloadTask, error) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	for _, task := range s.tasks {
		if task.OutputPath == target && task.Status.IsActive() {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyInProgress, filepath.Base(target))
		}
	}

	task := &model.DownloadTask{
		ID:         generateTaskID(),
		RemotePath: remotePath,
		Status:     model.TaskStatusPending,
		BytesTotal: -1,
		OutputPath: target,
		StartedAt:  time.Now(),
	}
	s.tasks[task.ID] = task
	return task, nil
}

// GetTask returns a snapshot of a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	c := *task
	return &c, true
}

// GetAllTasks returns snapshots of all tasks, oldest first
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		c := *task
		tasks = append(tasks, &c)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].StartedAt.Equal(tasks[j].StartedAt) {
			return strings.Compare(tasks[i].ID, tasks[j].ID) < 0
		}
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

func (s *Service) currentSlots() chan struct{} {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.slots
}

func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// finish moves a task into a terminal state
func (s *Service) finish(task *model.DownloadTask, status model.TaskStatus, err error) {
	s.tasksMutex.Lock()
	task.Status = status
	if err != nil {
		task.LastError = err.Error()
	}
	if status == model.TaskStatusCompleted && task.BytesTotal < 0 {
		task.BytesTotal = task.BytesDone
	}
	task.FinishedAt = time.Now()
	s.pruneLocked()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// pruneLocked drops the oldest finished tasks beyond the retention limit.
// Callers hold tasksMutex.
func (s *Service) pruneLocked() {
	var finished []*model.DownloadTask
	for _, task := range s.tasks {
		if task.Status.IsFinished() {
			finished = append(finished, task)
		}
	}
	if len(finished) <= s.retain {
		return
	}
	sort.Slice(finished, func(i, j int) bool {
		return finished[i].FinishedAt.Before(finished[j].FinishedAt)
	})
	for _, task := range finished[:len(finished)-s.retain] {
		delete(s.tasks, task.ID)
	}
}

func (s *Service) snapshot(task *model.DownloadTask) *model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	c := *task
	return &c
}

// notifyUpdate calls the update callback with a copy of the task
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	c := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(&c)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
