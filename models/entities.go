// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Foreign relations are stored twice: as the local identifier of the
// referenced entity (uuid.Nil when the relation is absent) and as the cached
// remote identifier (0 or nil while the referenced entity has not synced).

// WorkspaceData is a top-level container. It references nothing.
type WorkspaceData struct {
	CommonData

	Name                      string  `json:"name"`
	IsPremium                 bool    `json:"is_premium"`
	IsAdmin                   bool    `json:"is_admin"`
	DefaultHourlyRate         float64 `json:"default_hourly_rate"`
	DefaultCurrency           string  `json:"default_currency"`
	OnlyAdminsMayCreateProjs  bool    `json:"only_admins_may_create_projects"`
	OnlyAdminsSeeBillableRate bool    `json:"only_admins_see_billable_rates"`
	RoundingMode              int     `json:"rounding_mode"`
	RoundingPrecision         int     `json:"rounding_precision"`
	LogoURL                   string  `json:"logo_url"`
}

// Kind implements [Entity].
func (WorkspaceData) Kind() Kind { return KindWorkspace }

// ClientData is a customer inside a workspace.
type ClientData struct {
	CommonData

	Name              string    `json:"name"`
	WorkspaceID       uuid.UUID `json:"workspace_id"`
	WorkspaceRemoteID int64     `json:"workspace_remote_id"`
}

// Kind implements [Entity].
func (ClientData) Kind() Kind { return KindClient }

// ProjectData belongs to a workspace and optionally to a client.
type ProjectData struct {
	CommonData

	Name              string    `json:"name"`
	Color             int       `json:"color"`
	HexColor          string    `json:"hex_color"`
	IsActive          bool      `json:"is_active"`
	IsBillable        bool      `json:"is_billable"`
	IsPrivate         bool      `json:"is_private"`
	IsTemplate        bool      `json:"is_template"`
	UseTasksEstimate  bool      `json:"use_tasks_estimate"`
	WorkspaceID       uuid.UUID `json:"workspace_id"`
	WorkspaceRemoteID int64     `json:"workspace_remote_id"`
	ClientID          uuid.UUID `json:"client_id"`
	ClientRemoteID    *int64    `json:"client_remote_id"`
}

// Kind implements [Entity].
func (ProjectData) Kind() Kind { return KindProject }

// TaskData belongs to a project.
type TaskData struct {
	CommonData

	Name              string    `json:"name"`
	IsActive          bool      `json:"is_active"`
	Estimate          int64     `json:"estimate"`
	TrackedTime       int64     `json:"tracked_time"`
	WorkspaceID       uuid.UUID `json:"workspace_id"`
	WorkspaceRemoteID int64     `json:"workspace_remote_id"`
	ProjectID         uuid.UUID `json:"project_id"`
	ProjectRemoteID   int64     `json:"project_remote_id"`
}

// Kind implements [Entity].
func (TaskData) Kind() Kind { return KindTask }

// TagData is addressed by name on the server, by ID locally.
type TagData struct {
	CommonData

	Name              string    `json:"name"`
	WorkspaceID       uuid.UUID `json:"workspace_id"`
	WorkspaceRemoteID int64     `json:"workspace_remote_id"`
}

// Kind implements [Entity].
func (TagData) Kind() Kind { return KindTag }

// UserData is the signed-in account together with its API token.
type UserData struct {
	CommonData

	Name                     string    `json:"name"`
	Email                    string    `json:"email"`
	StartOfWeek              int       `json:"start_of_week"`
	DateFormat               string    `json:"date_format"`
	TimeFormat               string    `json:"time_format"`
	DurationFormat           string    `json:"duration_format"`
	ImageURL                 string    `json:"image_url"`
	Locale                   string    `json:"locale"`
	Timezone                 string    `json:"timezone"`
	SendProductEmails        bool      `json:"send_product_emails"`
	SendTimerNotifications   bool      `json:"send_timer_notifications"`
	SendWeeklyReport         bool      `json:"send_weekly_report"`
	DefaultWorkspaceID       uuid.UUID `json:"default_workspace_id"`
	DefaultWorkspaceRemoteID int64     `json:"default_workspace_remote_id"`
	GoogleAccessToken        string    `json:"google_access_token"`
	APIToken                 string    `json:"api_token"`
}

// Kind implements [Entity].
func (UserData) Kind() Kind { return KindUser }

// ProjectUserData joins a user to a project.
type ProjectUserData struct {
	CommonData

	HourlyRate      float64   `json:"hourly_rate"`
	IsManager       bool      `json:"is_manager"`
	ProjectID       uuid.UUID `json:"project_id"`
	ProjectRemoteID int64     `json:"project_remote_id"`
	UserID          uuid.UUID `json:"user_id"`
	UserRemoteID    int64     `json:"user_remote_id"`
}

// Kind implements [Entity].
func (ProjectUserData) Kind() Kind { return KindProjectUser }

// WorkspaceUserData joins a user to a workspace.
type WorkspaceUserData struct {
	CommonData

	IsAdmin           bool      `json:"is_admin"`
	IsActive          bool      `json:"is_active"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	WorkspaceID       uuid.UUID `json:"workspace_id"`
	WorkspaceRemoteID int64     `json:"workspace_remote_id"`
	UserID            uuid.UUID `json:"user_id"`
	UserRemoteID      int64     `json:"user_remote_id"`
}

// Kind implements [Entity].
func (WorkspaceUserData) Kind() Kind { return KindWorkspaceUser }

// TimeEntryState tells whether a time entry is still being tracked.
type TimeEntryState string

const (
	TimeEntryRunning  TimeEntryState = "running"
	TimeEntryFinished TimeEntryState = "finished"
)

// TimeEntryData is a tracked interval. Tags are referenced by local tag ID
// and travel to the server as names.
type TimeEntryData struct {
	CommonData

	State             TimeEntryState `json:"state"`
	Description       string         `json:"description"`
	StartTime         time.Time      `json:"start_time"`
	StopTime          *time.Time     `json:"stop_time"`
	DurationOnly      bool           `json:"duration_only"`
	IsBillable        bool           `json:"is_billable"`
	CreatedWith       string         `json:"created_with"`
	WorkspaceID       uuid.UUID      `json:"workspace_id"`
	WorkspaceRemoteID int64          `json:"workspace_remote_id"`
	ProjectID         uuid.UUID      `json:"project_id"`
	ProjectRemoteID   *int64         `json:"project_remote_id"`
	TaskID            uuid.UUID      `json:"task_id"`
	TaskRemoteID      *int64         `json:"task_remote_id"`
	UserID            uuid.UUID      `json:"user_id"`
	UserRemoteID      int64          `json:"user_remote_id"`
	TagIDs            []uuid.UUID    `json:"tag_ids"`
}

// Kind implements [Entity].
func (TimeEntryData) Kind() Kind { return KindTimeEntry }
