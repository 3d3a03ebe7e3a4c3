package entity

import (
	"github.com/trailpoint/backend/pkg/enum"
)

type TaskType string

var (
	TaskCheckin          = enum.New(TaskType("checkin"))
	TaskQuiz             = enum.New(TaskType("quiz"))
	TaskCountConfirm     = enum.New(TaskType("count_confirm"))
	TaskDirection        = enum.New(TaskType("direction"))
	TaskRiddle           = enum.New(TaskType("riddle"))
	TaskObservationMatch = enum.New(TaskType("observation_match"))
	TaskRouteCompletion  = enum.New(TaskType("route_completion"))
	TaskTimeBased        = enum.New(TaskType("time_based"))
)

type Task struct {
	Base

	AttractionID string
	Attraction   Attraction `gorm:"foreignKey:AttractionID"`

	Type        TaskType
	Title       string
	Description []byte `gorm:"type:longtext"`
	Index       int

	// Config holds the type-specific verification parameters. Its shape is
	// owned by the matching verifier in the taskverify package.
	Config Map

	IsActive bool
}
