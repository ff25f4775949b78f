package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type RecordingState int

const (
	RecordingRunning RecordingState = iota
	RecordingStopped
	RecordingCommitted
	RecordingDiscarded
)

type Recording struct {
	Id    string
	Start time.Time
	End   time.Time
	State RecordingState
}

// Recorder captures voice notes. Capturing the audio itself is left to the
// platform, the recorder only tracks the lifecycle of each note.
type Recorder interface {
	Start(now time.Time) error
	Stop(now time.Time) (Recording, error)
	Commit() error
	Discard() error
}

// JournalRecorder keeps the lifecycle of all recordings in memory.
type JournalRecorder struct {
	Logger *log.Logger

	current    *Recording
	recordings []Recording
}

func (r *JournalRecorder) Start(now time.Time) error {
	if r.current != nil && r.current.State == RecordingRunning {
		return fmt.Errorf("recording %s is still running", r.current.Id)
	}

	r.current = &Recording{
		Id:    uuid.NewString(),
		Start: now,
		State: RecordingRunning,
	}

	r.Logger.Info("Recording started", "id", r.current.Id)
	return nil
}

func (r *JournalRecorder) Stop(now time.Time) (Recording, error) {
	if r.current == nil || r.current.State != RecordingRunning {
		return Recording{}, fmt.Errorf("no recording running")
	}

	r.current.End = now
	r.current.State = RecordingStopped

	r.Logger.Info("Recording stopped",
		"id", r.current.Id,
		"duration", r.current.End.Sub(r.current.Start))

	return *r.current, nil
}

// Commit keeps the stopped recording.
func (r *JournalRecorder) Commit() error {
	return r.finish(RecordingCommitted)
}

// Discard drops the stopped recording.
func (r *JournalRecorder) Discard() error {
	return r.finish(RecordingDiscarded)
}

func (r *JournalRecorder) finish(state RecordingState) error {
	if r.current == nil || r.current.State != RecordingStopped {
		return fmt.Errorf("no stopped recording")
	}

	r.current.State = state
	r.recordings = append(r.recordings, *r.current)
	r.current = nil

	return nil
}

// Recordings returns the committed recordings.
func (r *JournalRecorder) Recordings() []Recording {
	var committed []Recording
	for _, recording := range r.recordings {
		if recording.State == RecordingCommitted {
			committed = append(committed, recording)
		}
	}

	return committed
}
