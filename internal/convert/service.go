package convert

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/ytget/vegascon/internal/model"
)

// Converter command-line contract
const (
	DefaultExecutable = "msvpvf.exe"

	InputFlag   = "--input"
	VersionFlag = "--version"
	TypeFlag    = "--type"
)

// Process handling
const (
	StderrTailBytes = 4096
	KillWaitDelay   = 2 * time.Second
	ExitCodeUnknown = -1
)

var (
	// ErrConversionFailed covers every non-zero exit and start failure
	ErrConversionFailed = errors.New("conversion failed")

	// ErrAlreadyRunning is returned when a conversion is already in flight
	ErrAlreadyRunning = errors.New("a conversion is already in progress")

	// ErrNotRunning is returned by CancelConversion when nothing runs
	ErrNotRunning = errors.New("no conversion in progress")
)

var _ Converter = (*Service)(nil)

// Service runs the external converter, one request at a time.
type Service struct {
	executable string
	timeout    time.Duration

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	onUpdate func(*model.ConversionResult) // callback for UI updates
}

// NewService creates a conversion service for the given converter executable.
// A zero timeout lets the converter run until it exits.
func NewService(executable string, timeout time.Duration) *Service {
	if executable == "" {
		executable = DefaultExecutable
	}
	return &Service{
		executable: executable,
		timeout:    timeout,
	}
}

// SetUpdateCallback sets the callback function for status updates
func (s *Service) SetUpdateCallback(callback func(*model.ConversionResult)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Executable returns the converter path the service invokes
func (s *Service) Executable() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executable
}

// SetExecutable changes the converter used by later conversions
func (s *Service) SetExecutable(executable string) {
	if executable == "" {
		executable = DefaultExecutable
	}
	s.mu.Lock()
	s.executable = executable
	s.mu.Unlock()
}

// IsRunning reports whether a conversion is in flight
func (s *Service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Convert runs the converter and blocks until it exits.
func (s *Service) Convert(ctx context.Context, req model.ConversionRequest) (*model.ConversionResult, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.acquire(cancel); err != nil {
		return nil, err
	}
	defer s.release()

	return s.run(ctx, req)
}

// StartConversion validates the input and runs the converter in the
// background. Progress is reported through the update callback.
func (s *Service) StartConversion(req model.ConversionRequest) (*model.ConversionResult, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := s.acquire(cancel); err != nil {
		cancel()
		return nil, err
	}

	pending := &model.ConversionResult{
		Request:  req,
		Status:   model.StatusInProgress,
		ExitCode: ExitCodeUnknown,
	}

	go func() {
		defer cancel()
		defer s.release()

		result, err := s.run(ctx, req)
		if err != nil {
			log.Printf("Conversion %s finished with error: %v", req.ID, err)
		}
		s.notifyUpdate(result)
	}()

	return pending, nil
}

// CancelConversion stops the running conversion, if any
func (s *Service) CancelConversion() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.cancel == nil {
		return ErrNotRunning
	}
	s.cancel()
	return nil
}

// BuildArgs builds the converter command arguments
func BuildArgs(req model.ConversionRequest) []string {
	return []string{
		InputFlag, req.InputPath, // Project file to convert
		VersionFlag, req.VersionString(), // Target application version
		TypeFlag, req.Format.OutputType(), // veg or vf
	}
}

// run executes the converter and classifies the outcome
func (s *Service) run(ctx context.Context, req model.ConversionRequest) (*model.ConversionResult, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result := &model.ConversionResult{
		Request:   req,
		Status:    model.StatusInProgress,
		ExitCode:  ExitCodeUnknown,
		StartedAt: time.Now(),
	}
	s.notifyUpdate(result)

	executable := s.Executable()
	args := BuildArgs(req)
	log.Printf("Starting conversion %s: %s %q", req.ID, executable, args)

	stderr := newTailBuffer(StderrTailBytes)
	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Stderr = stderr
	cmd.WaitDelay = KillWaitDelay

	err := cmd.Run()

	result.FinishedAt = time.Now()
	result.Stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.Status = model.StatusSucceeded
		result.ExitCode = 0
		log.Printf("Conversion %s succeeded in %s: target %s", req.ID, result.Duration(), req.TargetLabel())
		return result, nil
	case errors.Is(ctx.Err(), context.Canceled):
		result.Status = model.StatusCancelled
		result.LastError = context.Canceled.Error()
		log.Printf("Conversion %s cancelled", req.ID)
		return result, context.Canceled
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	}

	result.Status = model.StatusFailed
	result.LastError = err.Error()
	log.Printf("Conversion %s failed (exit code %d): %v; stderr: %s", req.ID, result.ExitCode, err, result.Stderr)
	return result, fmt.Errorf("%w: %v", ErrConversionFailed, err)
}

// acquire marks the service busy; only one conversion may run at a time
func (s *Service) acquire(cancel context.CancelFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}
	s.running = true
	s.cancel = cancel
	return nil
}

func (s *Service) release() {
	s.mu.Lock()
	s.running = false
	s.cancel = nil
	s.mu.Unlock()
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(result *model.ConversionResult) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil && result != nil {
		snapshot := *result
		callback(&snapshot)
	}
}

// checkInput re-checks the project file right before spawning the converter
func checkInput(req model.ConversionRequest) error {
	if req.InputPath == "" {
		return model.ErrMissingInput
	}
	info, err := os.Stat(req.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", model.ErrInputNotFound, req.InputPath)
		}
		return fmt.Errorf("failed to stat input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", model.ErrInputNotFound, req.InputPath)
	}
	return nil
}
