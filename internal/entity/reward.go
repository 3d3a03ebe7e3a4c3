package entity

import (
	"github.com/trailpoint/backend/pkg/enum"
)

type RewardType string

var (
	RewardBadge = enum.New(RewardType("badge"))
	RewardTitle = enum.New(RewardType("title"))
)

type RewardRarity string

var (
	RarityCommon    = enum.New(RewardRarity("common"))
	RarityRare      = enum.New(RewardRarity("rare"))
	RarityEpic      = enum.New(RewardRarity("epic"))
	RarityLegendary = enum.New(RewardRarity("legendary"))
)

type TriggerType string

var (
	TriggerTaskCompletion       = enum.New(TriggerType("task_completion"))
	TriggerTaskSetCompletion    = enum.New(TriggerType("task_set_completion"))
	TriggerTaskTypeCompletion   = enum.New(TriggerType("task_type_completion"))
	TriggerAttractionCompletion = enum.New(TriggerType("attraction_completion"))
	TriggerCategoryMilestone    = enum.New(TriggerType("category_milestone"))
	TriggerManual               = enum.New(TriggerType("manual"))
)

type Reward struct {
	Base

	Name        string
	Description []byte `gorm:"type:longtext"`
	IconURL     string

	Type     RewardType
	Rarity   RewardRarity
	Category AttractionCategory

	TriggerType TriggerType

	// TriggerCondition holds the trigger-type-specific predicate parameters.
	// Its shape is owned by the matching trigger in the rewardengine package.
	TriggerCondition Map

	IsActive bool
}
