package mapper

import (
	"yoga-studio/internal/api"
	"yoga-studio/internal/model"
)

func TeacherToResponse(t *model.Teacher) *api.TeacherResponse {
	return &api.TeacherResponse{
		ID:        t.ID,
		LastName:  t.LastName,
		FirstName: t.FirstName,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func TeachersToResponse(teachers []model.Teacher) []api.TeacherResponse {
	out := make([]api.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		out = append(out, *TeacherToResponse(&teachers[i]))
	}
	return out
}
