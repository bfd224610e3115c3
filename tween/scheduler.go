// Package tween drives float64 fields toward target values over time.
//
// Jobs are keyed by the field they write. Scheduling a second job for the
// same field replaces the first, so only one interpolation ever owns a field.
// Time is measured in milliseconds; the caller advances the scheduler once
// per tick with Update.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Job interpolates one field from From to To, replaying the interpolation
// Repeat more times after the first pass.
type Job struct {
	From       float64
	To         float64
	DurationMs float32
	Repeat     int
	Done       bool

	tween     *gween.Tween
	target    *float64
	remaining int
}

// Cycle returns the zero-based pass the job is on.
func (j *Job) Cycle() int {
	return j.Repeat - j.remaining
}

func (j *Job) update(dt float32) {
	if j.Done {
		return
	}
	val, finished := j.tween.Update(dt)
	*j.target = float64(val)
	if !finished {
		return
	}
	if j.remaining > 0 {
		j.remaining--
		j.tween.Reset()
		return
	}
	*j.target = j.To
	j.Done = true
}

type Scheduler struct {
	jobs  map[*float64]*Job
	order []*float64
}

func NewScheduler() *Scheduler {
	return &Scheduler{jobs: make(map[*float64]*Job)}
}

// Schedule starts interpolating *target from its current value to `to`.
// A job already writing *target is dropped.
func (s *Scheduler) Schedule(target *float64, to float64, durationMs float32, repeat int) {
	s.ScheduleEase(target, to, durationMs, repeat, ease.Linear)
}

func (s *Scheduler) ScheduleEase(target *float64, to float64, durationMs float32, repeat int, fn ease.TweenFunc) {
	if repeat < 0 {
		repeat = 0
	}
	job := &Job{
		From:       *target,
		To:         to,
		DurationMs: durationMs,
		Repeat:     repeat,
		tween:      gween.New(float32(*target), float32(to), durationMs, fn),
		target:     target,
		remaining:  repeat,
	}
	if _, exists := s.jobs[target]; !exists {
		s.order = append(s.order, target)
	}
	s.jobs[target] = job
}

// Job returns the active job writing *target.
func (s *Scheduler) Job(target *float64) (*Job, bool) {
	j, ok := s.jobs[target]
	return j, ok
}

// cancel drops the job writing *target, leaving the field as it is.
func (s *Scheduler) cancel(target *float64) {
	if _, ok := s.jobs[target]; !ok {
		return
	}
	delete(s.jobs, target)
	s.compact()
}

// Len is the number of running jobs.
func (s *Scheduler) Len() int {
	return len(s.jobs)
}

// Update advances every job by dt milliseconds and forgets finished ones.
func (s *Scheduler) Update(dt float32) {
	finished := false
	for _, target := range s.order {
		job, ok := s.jobs[target]
		if !ok {
			continue
		}
		job.update(dt)
		if job.Done {
			delete(s.jobs, target)
			finished = true
		}
	}
	if finished {
		s.compact()
	}
}

func (s *Scheduler) compact() {
	kept := s.order[:0]
	for _, target := range s.order {
		if _, ok := s.jobs[target]; ok {
			kept = append(kept, target)
		}
	}
	s.order = kept
}
