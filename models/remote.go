// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CommonJSON is the part every API document shares.
type CommonJSON struct {
	// RemoteID is the "id" field of the API. Nil for objects being created.
	RemoteID *int64 `json:"id,omitempty"`

	// ModifiedAt is the last modification time as seen by the server.
	ModifiedAt time.Time `json:"at"`

	// DeletedAt is set by the server for objects removed remotely.
	DeletedAt *time.Time `json:"server_deleted_at,omitempty"`
}

// Remote returns the embedded common document.
func (c CommonJSON) Remote() CommonJSON {
	return c
}

// RemoteObject is implemented by every API document the remote client
// creates, updates, deletes or fetches.
type RemoteObject interface {
	// Kind returns the entity kind the document maps to.
	Kind() Kind
	// Remote returns a copy of the embedded [CommonJSON].
	Remote() CommonJSON
}

type WorkspaceJSON struct {
	CommonJSON

	Name                      string  `json:"name"`
	IsPremium                 bool    `json:"premium"`
	IsAdmin                   bool    `json:"admin"`
	DefaultHourlyRate         float64 `json:"default_hourly_rate"`
	DefaultCurrency           string  `json:"default_currency"`
	OnlyAdminsMayCreateProjs  bool    `json:"only_admins_may_create_projects"`
	OnlyAdminsSeeBillableRate bool    `json:"only_admins_see_billable_rates"`
	RoundingMode              int     `json:"rounding"`
	RoundingPrecision         int     `json:"rounding_minutes"`
	LogoURL                   string  `json:"logo_url,omitempty"`
}

func (WorkspaceJSON) Kind() Kind { return KindWorkspace }

type ClientJSON struct {
	CommonJSON

	Name              string `json:"name"`
	WorkspaceRemoteID int64  `json:"wid"`
}

func (ClientJSON) Kind() Kind { return KindClient }

type ProjectJSON struct {
	CommonJSON

	Name              string `json:"name"`
	Color             string `json:"color"`
	HexColor          string `json:"hex_color,omitempty"`
	IsActive          bool   `json:"active"`
	IsBillable        bool   `json:"billable"`
	IsPrivate         bool   `json:"is_private"`
	IsTemplate        bool   `json:"template"`
	UseTasksEstimate  bool   `json:"auto_estimates"`
	WorkspaceRemoteID int64  `json:"wid"`
	ClientRemoteID    *int64 `json:"cid,omitempty"`
}

func (ProjectJSON) Kind() Kind { return KindProject }

type TaskJSON struct {
	CommonJSON

	Name              string `json:"name"`
	IsActive          bool   `json:"active"`
	Estimate          int64  `json:"estimated_seconds"`
	TrackedTime       int64  `json:"tracked_seconds"`
	WorkspaceRemoteID int64  `json:"wid"`
	ProjectRemoteID   int64  `json:"pid"`
}

func (TaskJSON) Kind() Kind { return KindTask }

type TagJSON struct {
	CommonJSON

	Name              string `json:"name"`
	WorkspaceRemoteID int64  `json:"wid"`
}

func (TagJSON) Kind() Kind { return KindTag }

type UserJSON struct {
	CommonJSON

	Name                     string `json:"fullname"`
	Email                    string `json:"email"`
	Password                 string `json:"password,omitempty"`
	StartOfWeek              int    `json:"beginning_of_week"`
	DateFormat               string `json:"date_format"`
	TimeFormat               string `json:"timeofday_format"`
	DurationFormat           string `json:"duration_format,omitempty"`
	ImageURL                 string `json:"image_url"`
	Locale                   string `json:"language"`
	Timezone                 string `json:"timezone"`
	SendProductEmails        bool   `json:"send_product_emails"`
	SendTimerNotifications   bool   `json:"send_timer_notifications"`
	SendWeeklyReport         bool   `json:"send_weekly_report"`
	DefaultWorkspaceRemoteID int64  `json:"default_wid"`
	GoogleAccessToken        string `json:"google_access_token,omitempty"`
	APIToken                 string `json:"api_token,omitempty"`
}

func (UserJSON) Kind() Kind { return KindUser }

type ProjectUserJSON struct {
	CommonJSON

	HourlyRate      float64 `json:"rate"`
	IsManager       bool    `json:"manager"`
	ProjectRemoteID int64   `json:"pid"`
	UserRemoteID    int64   `json:"uid"`
}

func (ProjectUserJSON) Kind() Kind { return KindProjectUser }

type WorkspaceUserJSON struct {
	CommonJSON

	IsAdmin           bool   `json:"admin"`
	IsActive          bool   `json:"active"`
	Name              string `json:"name,omitempty"`
	Email             string `json:"email"`
	WorkspaceRemoteID int64  `json:"wid"`
	UserRemoteID      int64  `json:"uid"`
}

func (WorkspaceUserJSON) Kind() Kind { return KindWorkspaceUser }

// TimeEntryJSON carries tags by name: the server does not know local tag IDs.
type TimeEntryJSON struct {
	CommonJSON

	Description       string     `json:"description,omitempty"`
	StartTime         time.Time  `json:"start"`
	StopTime          *time.Time `json:"stop,omitempty"`
	Duration          int64      `json:"duration"`
	DurationOnly      bool       `json:"duronly"`
	IsBillable        bool       `json:"billable"`
	CreatedWith       string     `json:"created_with,omitempty"`
	WorkspaceRemoteID int64      `json:"wid"`
	ProjectRemoteID   *int64     `json:"pid,omitempty"`
	TaskRemoteID      *int64     `json:"tid,omitempty"`
	UserRemoteID      int64      `json:"uid,omitempty"`
	Tags              []string   `json:"tags"`
}

func (TimeEntryJSON) Kind() Kind { return KindTimeEntry }

// ChangesJSON is the full changeset returned by the "since" endpoint.
type ChangesJSON struct {
	User        *UserJSON       `json:"user"`
	Workspaces  []WorkspaceJSON `json:"workspaces"`
	Tags        []TagJSON       `json:"tags"`
	Clients     []ClientJSON    `json:"clients"`
	Projects    []ProjectJSON   `json:"projects"`
	Tasks       []TaskJSON      `json:"tasks"`
	TimeEntries []TimeEntryJSON `json:"time_entries"`
	Timestamp   time.Time       `json:"-"`
}
