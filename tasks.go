package main

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// TaskRecord marks the start of a task of a group. A task lasts until the
// start of the next record.
type TaskRecord struct {
	TaskId  string
	GroupId string
	Start   time.Time
}

// TaskSpan is the part of a task that falls into a queried period.
type TaskSpan struct {
	GroupId string
	Start   time.Time
	End     time.Time
}

func (s TaskSpan) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// TaskLog keeps the history of task switches in memory.
type TaskLog struct {
	records []TaskRecord
}

func NewTaskLog(groupId string, now time.Time) *TaskLog {
	tasks := &TaskLog{}
	tasks.Switch(groupId, now)
	return tasks
}

// Switch starts a new task of the given group. Switching to the group that
// is already running keeps the current task.
func (l *TaskLog) Switch(groupId string, now time.Time) TaskRecord {
	if current, ok := l.Current(); ok && current.GroupId == groupId {
		return current
	}

	record := TaskRecord{
		TaskId:  uuid.NewString(),
		GroupId: groupId,
		Start:   now,
	}

	l.records = append(l.records, record)
	return record
}

func (l *TaskLog) Current() (TaskRecord, bool) {
	if len(l.records) == 0 {
		return TaskRecord{}, false
	}

	return l.records[len(l.records)-1], true
}

func (l *TaskLog) Records() []TaskRecord {
	return slices.Clone(l.records)
}

// Spans returns the tasks running between from and until, clipped to that
// period. The running task ends at until.
func (l *TaskLog) Spans(from, until time.Time) []TaskSpan {
	var spans []TaskSpan

	for idx, record := range l.records {
		end := until
		if idx+1 < len(l.records) {
			end = l.records[idx+1].Start
		}

		start := maxTime(record.Start, from)
		end = minTime(end, until)

		if !start.Before(end) {
			continue
		}

		spans = append(spans, TaskSpan{GroupId: record.GroupId, Start: start, End: end})
	}

	return spans
}

// Totals sums up the time spent per group between from and until.
func (l *TaskLog) Totals(from, until time.Time) map[string]time.Duration {
	totals := map[string]time.Duration{}
	for _, span := range l.Spans(from, until) {
		totals[span.GroupId] += span.Duration()
	}

	return totals
}

func dayOf(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}
