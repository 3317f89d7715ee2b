package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// taskRequest carries the submitted fields for creating or replacing a task.
// It binds both JSON and form payloads. is_urgent arrives as the checkbox
// value: present-and-truthy means urgent, anything else means not.
type taskRequest struct {
	CategoryName    string `json:"category_name"    form:"category_name"    validate:"required"`
	TaskName        string `json:"task_name"        form:"task_name"        validate:"required"`
	TaskDescription string `json:"task_description" form:"task_description"`
	IsUrgent        string `json:"is_urgent"        form:"is_urgent"`
	DueDate         string `json:"due_date"         form:"due_date"`
}

// taskResponse is the wire shape of a task. is_urgent is the literal string
// enum "on"/"off", never a boolean; existing consumers depend on it.
type taskResponse struct {
	ID              string `json:"id"`
	CategoryName    string `json:"category_name"`
	TaskName        string `json:"task_name"`
	TaskDescription string `json:"task_description"`
	IsUrgent        string `json:"is_urgent"`
	DueDate         string `json:"due_date"`
	CreatedBy       string `json:"created_by"`
}

type listTasksResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

type categoryResponse struct {
	ID           string `json:"id"`
	CategoryName string `json:"category_name"`
}

type listCategoriesResponse struct {
	Categories []categoryResponse `json:"categories"`
}

// taskFormResponse backs the add/edit forms: the category list to choose
// from, plus the task being edited when there is one.
type taskFormResponse struct {
	Task       *taskResponse      `json:"task,omitempty"`
	Categories []categoryResponse `json:"categories"`
}

type categoryRequest struct {
	CategoryName string `json:"category_name" form:"category_name" validate:"required"`
}
