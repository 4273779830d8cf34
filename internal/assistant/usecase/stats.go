package usecase

import (
	"context"

	"clinic-assistant/internal/assistant"
	"clinic-assistant/internal/model"
)

func (uc *implUseCase) Stats(ctx context.Context) model.Stats {
	return uc.stats.Get()
}

// UpdateStats replaces the snapshot. Patients cannot push counts.
func (uc *implUseCase) UpdateStats(ctx context.Context, sc model.Scope, s model.Stats) (model.Stats, error) {
	if sc.Role == model.RolePatient {
		return model.Stats{}, assistant.ErrForbidden
	}
	if s.TotalRecords < 0 || s.PendingExamination < 0 || s.InProgress < 0 || s.Completed < 0 || s.Returned < 0 {
		return model.Stats{}, assistant.ErrInvalidStats
	}
	uc.stats.Set(s)
	uc.l.Infof(ctx, "internal.assistant.usecase.UpdateStats: user=%s total=%d", sc.UserID, s.TotalRecords)
	return s, nil
}
