package loader

import "time"

// Stage describes one phase of loading a stream.
type Stage string

const (
	// StageRead reads the stream file.
	StageRead Stage = "read"
	// StageCache looks the stream up in the snapshot cache.
	StageCache Stage = "cache"
	// StageDecode decodes the stream and builds the indexes.
	StageDecode Stage = "decode"
	// StageStore writes a fresh snapshot.
	StageStore Stage = "store"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the stream is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stream is currently in a stage.
	StatusWorking Status = "working"
	// StatusDone indicates the stream is loaded.
	StatusDone Status = "done"
	// StatusError indicates the stream failed to load.
	StatusError Status = "error"
)

// Event reports progress for a stream (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds stage durations.
type Timings struct {
	stages map[Stage]time.Duration
}

func (t *Timings) ensure() {
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.ensure()
	t.stages[stage] = dur
}

// Has reports whether a duration for stage is recorded.
func (t Timings) Has(stage Stage) bool {
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	return t.stages[stage]
}

// Total returns the sum of all recorded stages.
func (t Timings) Total() time.Duration {
	var total time.Duration
	for _, d := range t.stages {
		total += d
	}
	return total
}
