package download

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/ytbuddy/internal/extract"
	"github.com/ytget/ytbuddy/internal/model"
	"github.com/ytget/ytbuddy/internal/platform"
)

// SuccessMessage is the user-facing message on a completed download.
const SuccessMessage = "Download completed successfully!"

// Service handles download operations. One task is active at a time; the UI
// enforces this by disabling its download action, and the service guards it
// again here.
type Service struct {
	extractor extract.Extractor
	mu        sync.RWMutex
	current   *model.DownloadTask
	onUpdate  func(*model.DownloadTask) // callback for UI updates
}

// NewService creates a new download service.
func NewService(extractor extract.Extractor) *Service {
	return &Service{extractor: extractor}
}

// SetUpdateCallback sets the callback function for task updates.
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// Start begins downloading the chosen rendition into scratch. The task runs
// on its own goroutine; progress is reported through the update callback.
func (s *Service) Start(url string, format model.FormatOption, scratch *platform.Scratch) (*model.DownloadTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.Status.IsActive() {
		return nil, fmt.Errorf("download already in progress for URL: %s", s.current.URL)
	}

	task := &model.DownloadTask{
		ID:         generateTaskID(),
		URL:        url,
		FormatID:   format.ID,
		Status:     model.TaskStatusPending,
		ScratchDir: scratch.Dir(),
		StartedAt:  time.Now(),
	}
	s.current = task

	go s.run(task, format, scratch)

	return task, nil
}

// Current returns a snapshot of the most recent task, if any. The snapshot
// is taken under the lock, so it is safe to read while the task is still
// running; later status changes do not show through.
func (s *Service) Current() (model.DownloadTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.DownloadTask{}, false
	}
	return *s.current, true
}

// run executes one download to completion. Collaborator errors are carried
// verbatim in the result message; no retry is attempted.
func (s *Service) run(task *model.DownloadTask, format model.FormatOption, scratch *platform.Scratch) {
	s.setStatus(task, model.TaskStatusDownloading)

	err := s.extractor.Fetch(context.Background(), task.URL, format.ID, scratch.Dir())

	s.mu.Lock()
	if err != nil {
		log.Printf("Download failed for task %s: %v", task.ID, err)
		task.Status = model.TaskStatusError
		task.Result = &model.DownloadResult{Message: err.Error()}
	} else if files, ferr := scratch.Files(); ferr != nil {
		task.Status = model.TaskStatusError
		task.Result = &model.DownloadResult{Message: ferr.Error()}
	} else {
		task.Status = model.TaskStatusCompleted
		task.Result = &model.DownloadResult{
			OK:      true,
			Message: SuccessMessage,
			Files:   files,
		}
	}
	task.FinishedAt = time.Now()
	s.mu.Unlock()

	s.notifyUpdate(task)
}

// setStatus updates the task status under the lock and notifies the UI.
func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.mu.Lock()
	task.Status = status
	s.mu.Unlock()
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback, if set, with a snapshot of the
// task so the receiver never observes a concurrent mutation.
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate == nil {
		return
	}
	s.mu.RLock()
	snapshot := *task
	s.mu.RUnlock()
	s.onUpdate(&snapshot)
}

// generateTaskID generates a unique task ID.
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
