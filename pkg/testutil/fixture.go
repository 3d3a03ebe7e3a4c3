package testutil

import (
	"context"
	"database/sql"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/internal/repository"
)

var (
	User1 = entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "user1",
	}

	User2 = entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "user2",
	}

	Attraction1 = entity.Attraction{
		Base:      entity.Base{ID: "attraction1"},
		Name:      "City Museum",
		Category:  entity.CategoryMuseum,
		Latitude:  sql.NullFloat64{Float64: 0, Valid: true},
		Longitude: sql.NullFloat64{Float64: 0, Valid: true},
		IsActive:  true,
	}

	Attraction2 = entity.Attraction{
		Base:     entity.Base{ID: "attraction2"},
		Name:     "River Park",
		Category: entity.CategoryPark,
		IsActive: true,
	}

	Attraction1Checkin = entity.Task{
		Base:         entity.Base{ID: "attraction1_checkin"},
		AttractionID: Attraction1.ID,
		Type:         entity.TaskCheckin,
		Title:        "Check in at the museum",
		Index:        0,
		Config:       entity.Map{"token": "museum-entrance-token"},
		IsActive:     true,
	}

	Attraction1Quiz = entity.Task{
		Base:         entity.Base{ID: "attraction1_quiz"},
		AttractionID: Attraction1.ID,
		Type:         entity.TaskQuiz,
		Title:        "Museum quiz",
		Index:        1,
		Config: entity.Map{
			"questions": []any{
				map[string]any{
					"question": "Which year did the museum open?",
					"options":  []any{"1901", "1923", "1957"},
					"answer":   "1923",
				},
				map[string]any{
					"question": "What is displayed in the main hall?",
					"options":  []any{"A whale skeleton", "A steam engine"},
					"answer":   "A steam engine",
				},
			},
		},
		IsActive: true,
	}

	Attraction1Count = entity.Task{
		Base:         entity.Base{ID: "attraction1_count"},
		AttractionID: Attraction1.ID,
		Type:         entity.TaskCountConfirm,
		Title:        "Count the columns",
		Index:        2,
		Config:       entity.Map{"correct_count": 10, "tolerance": 2},
		IsActive:     true,
	}

	Attraction2Checkin = entity.Task{
		Base:         entity.Base{ID: "attraction2_checkin"},
		AttractionID: Attraction2.ID,
		Type:         entity.TaskCheckin,
		Title:        "Check in at the park",
		Index:        0,
		Config:       entity.Map{"token": "park-gate-token"},
		IsActive:     true,
	}

	RewardFirstCheckin = entity.Reward{
		Base:             entity.Base{ID: "reward_first_checkin"},
		Name:             "First Steps",
		Type:             entity.RewardBadge,
		Rarity:           entity.RarityCommon,
		TriggerType:      entity.TriggerTaskCompletion,
		TriggerCondition: entity.Map{"task_id": "attraction1_checkin"},
		IsActive:         true,
	}

	RewardMuseumMaster = entity.Reward{
		Base:             entity.Base{ID: "reward_museum_master"},
		Name:             "Museum Master",
		Type:             entity.RewardBadge,
		Rarity:           entity.RarityRare,
		TriggerType:      entity.TriggerAttractionCompletion,
		TriggerCondition: entity.Map{"attraction_id": "attraction1"},
		IsActive:         true,
	}

	RewardMuseumPioneer = entity.Reward{
		Base:             entity.Base{ID: "reward_museum_pioneer"},
		Name:             "Museum Pioneer",
		Type:             entity.RewardTitle,
		Rarity:           entity.RarityCommon,
		Category:         entity.CategoryMuseum,
		TriggerType:      entity.TriggerCategoryMilestone,
		TriggerCondition: entity.Map{"category": "museum", "milestone": 1},
		IsActive:         true,
	}

	RewardHonoraryGuide = entity.Reward{
		Base:        entity.Base{ID: "reward_honorary_guide"},
		Name:        "Honorary Guide",
		Type:        entity.RewardTitle,
		Rarity:      entity.RarityLegendary,
		TriggerType: entity.TriggerManual,
		IsActive:    true,
	}
)

// CreateFixtureDb seeds the mock database with a small consistent world of
// users, attractions, tasks, and reward definitions.
func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertAttractions(ctx)
	InsertTasks(ctx)
	InsertRewards(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{User1, User2} {
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func InsertAttractions(ctx context.Context) {
	attractionRepo := repository.NewAttractionRepository()

	for _, attraction := range []entity.Attraction{Attraction1, Attraction2} {
		if err := attractionRepo.Create(ctx, &attraction); err != nil {
			panic(err)
		}
	}
}

func InsertTasks(ctx context.Context) {
	taskRepo := repository.NewTaskRepository()

	tasks := []entity.Task{
		Attraction1Checkin,
		Attraction1Quiz,
		Attraction1Count,
		Attraction2Checkin,
	}
	for _, task := range tasks {
		if err := taskRepo.Create(ctx, &task); err != nil {
			panic(err)
		}
	}
}

func InsertRewards(ctx context.Context) {
	rewardRepo := repository.NewRewardRepository()

	rewards := []entity.Reward{
		RewardFirstCheckin,
		RewardMuseumMaster,
		RewardMuseumPioneer,
		RewardHonoraryGuide,
	}
	for _, reward := range rewards {
		if err := rewardRepo.Create(ctx, &reward); err != nil {
			panic(err)
		}
	}
}
