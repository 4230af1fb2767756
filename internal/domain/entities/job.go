package entities

import (
	"slices"
	"time"
)

// JobStatus represents the lifecycle of a field job.
//
// Jobs move forward only: unscheduled -> scheduled -> in_progress -> complete.
// A scheduled job may be rescheduled (scheduled -> scheduled).
type JobStatus string

const (
	JobStatusUnscheduled JobStatus = "unscheduled"
	JobStatusScheduled   JobStatus = "scheduled"
	JobStatusInProgress  JobStatus = "in_progress"
	JobStatusComplete    JobStatus = "complete"
)

var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusUnscheduled: {JobStatusScheduled},
	JobStatusScheduled:   {JobStatusScheduled, JobStatusInProgress},
	JobStatusInProgress:  {JobStatusComplete},
}

func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	return slices.Contains(jobTransitions[s], next)
}

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusUnscheduled, JobStatusScheduled, JobStatusInProgress, JobStatusComplete:
		return true
	}
	return false
}

type Job struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	TechnicianID   string     `json:"technician_id,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	Status         JobStatus  `json:"status"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
