package handler

import (
	"github.com/taskforge/taskboard/internal/core/domain"
	"github.com/taskforge/taskboard/internal/core/ports"
)

// urgentFromForm reduces the submitted urgency field to a bool: "on" iff the
// field was present and truthy, "off" otherwise.
func urgentFromForm(value string) bool {
	switch value {
	case "", "off", "false", "0":
		return false
	default:
		return true
	}
}

func toTaskInput(req taskRequest) ports.TaskInput {
	return ports.TaskInput{
		CategoryName:    req.CategoryName,
		TaskName:        req.TaskName,
		TaskDescription: req.TaskDescription,
		IsUrgent:        urgentFromForm(req.IsUrgent),
		DueDate:         req.DueDate,
	}
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:              t.ID,
		CategoryName:    t.CategoryName,
		TaskName:        t.TaskName,
		TaskDescription: t.TaskDescription,
		IsUrgent:        string(domain.UrgencyFromBool(t.IsUrgent)),
		DueDate:         t.DueDate,
		CreatedBy:       t.CreatedBy,
	}
}

func toTaskResponses(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:           c.ID,
		CategoryName: c.CategoryName,
	}
}

func toCategoryResponses(categories []*domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResponse(c)
	}
	return out
}
