package banner

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ascent/internal/journey"
	"github.com/limbo/ascent/pkg/entity"
)

// DemoSnapshot is the sample journey shown to visitors who have not signed up.
func DemoSnapshot(now time.Time) journey.Snapshot {
	target, current := 10000.0, 3200.0
	started := now.AddDate(0, 0, -23)
	mountainID := uuid.Nil
	m := &entity.Mountain{
		ID:                mountainID,
		Title:             "Reach $10k MRR",
		Target:            "$10k monthly recurring revenue",
		TargetValue:       &target,
		CurrentValue:      &current,
		MetricPrefix:      "$",
		TotalStepsPlanned: 6,
		CreatedAt:         started,
	}
	note := func(stepID int64, r entity.NoteResult, lesson string, day int) entity.JourneyNote {
		at := started.AddDate(0, 0, day)
		return entity.JourneyNote{StepID: stepID, Result: r, LessonLearned: lesson, CreatedAt: at, UpdatedAt: at}
	}
	steps := []journey.StepView{
		{
			Step:  entity.Step{ID: 1, MountainID: mountainID, Title: "Ship landing page", Status: entity.StepSuccess},
			Notes: []entity.JourneyNote{note(1, entity.ResultSuccess, "Launch before it feels ready.", 3)},
		},
		{
			Step:  entity.Step{ID: 2, MountainID: mountainID, Title: "Cold outreach to 50 founders", OrderIndex: 1, Status: entity.StepFailed},
			Notes: []entity.JourneyNote{note(2, entity.ResultFailure, "Warm intros beat cold emails.", 9)},
		},
		{
			Step:  entity.Step{ID: 3, MountainID: mountainID, Title: "Post daily build logs", OrderIndex: 2, Status: entity.StepSuccess},
			Notes: []entity.JourneyNote{note(3, entity.ResultSuccess, "Consistency compounds.", 17)},
		},
		{
			Step: entity.Step{ID: 4, MountainID: mountainID, Title: "Launch on Product Hunt", OrderIndex: 3, Status: entity.StepInProgress},
		},
	}
	return journey.Snapshot{
		Tier:     entity.PlanFree,
		Mountain: m,
		Steps:    steps,
		TakenAt:  now,
	}
}
