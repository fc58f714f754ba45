package mapper

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
)

// Map converts a server document into the local entity it describes.
// The result is not dirty: it equals the last server-acknowledged state.
func Map(remote models.RemoteObject, state *models.AppState) models.Entity {
	switch r := remote.(type) {
	case models.WorkspaceJSON:
		return models.WorkspaceData{
			CommonData:                common(models.KindWorkspace, r.CommonJSON, state),
			Name:                      r.Name,
			IsPremium:                 r.IsPremium,
			IsAdmin:                   r.IsAdmin,
			DefaultHourlyRate:         r.DefaultHourlyRate,
			DefaultCurrency:           r.DefaultCurrency,
			OnlyAdminsMayCreateProjs:  r.OnlyAdminsMayCreateProjs,
			OnlyAdminsSeeBillableRate: r.OnlyAdminsSeeBillableRate,
			RoundingMode:              r.RoundingMode,
			RoundingPrecision:         r.RoundingPrecision,
			LogoURL:                   r.LogoURL,
		}
	case models.ClientJSON:
		return models.ClientData{
			CommonData:        common(models.KindClient, r.CommonJSON, state),
			Name:              r.Name,
			WorkspaceID:       localID(models.KindWorkspace, r.WorkspaceRemoteID, state),
			WorkspaceRemoteID: r.WorkspaceRemoteID,
		}
	case models.ProjectJSON:
		color, hex := projectColor(r.Color, r.HexColor)
		return models.ProjectData{
			CommonData:        common(models.KindProject, r.CommonJSON, state),
			Name:              r.Name,
			Color:             color,
			HexColor:          hex,
			IsActive:          r.IsActive,
			IsBillable:        r.IsBillable,
			IsPrivate:         r.IsPrivate,
			IsTemplate:        r.IsTemplate,
			UseTasksEstimate:  r.UseTasksEstimate,
			WorkspaceID:       localID(models.KindWorkspace, r.WorkspaceRemoteID, state),
			WorkspaceRemoteID: r.WorkspaceRemoteID,
			ClientID:          optionalLocalID(models.KindClient, r.ClientRemoteID, state),
			ClientRemoteID:    r.ClientRemoteID,
		}
	case models.TaskJSON:
		return models.TaskData{
			CommonData:        common(models.KindTask, r.CommonJSON, state),
			Name:              r.Name,
			IsActive:          r.IsActive,
			Estimate:          r.Estimate,
			TrackedTime:       r.TrackedTime,
			WorkspaceID:       localID(models.KindWorkspace, r.WorkspaceRemoteID, state),
			WorkspaceRemoteID: r.WorkspaceRemoteID,
			ProjectID:         localID(models.KindProject, r.ProjectRemoteID, state),
			ProjectRemoteID:   r.ProjectRemoteID,
		}
	case models.TagJSON:
		return models.TagData{
			CommonData:        common(models.KindTag, r.CommonJSON, state),
			Name:              r.Name,
			WorkspaceID:       localID(models.KindWorkspace, r.WorkspaceRemoteID, state),
			WorkspaceRemoteID: r.WorkspaceRemoteID,
		}
	case models.UserJSON:
		return MapUser(r, state)
	case models.ProjectUserJSON:
		return models.ProjectUserData{
			CommonData:      common(models.KindProjectUser, r.CommonJSON, state),
			HourlyRate:      r.HourlyRate,
			IsManager:       r.IsManager,
			ProjectID:       localID(models.KindProject, r.ProjectRemoteID, state),
			ProjectRemoteID: r.ProjectRemoteID,
			UserID:          localID(models.KindUser, r.UserRemoteID, state),
			UserRemoteID:    r.UserRemoteID,
		}
	case models.WorkspaceUserJSON:
		return models.WorkspaceUserData{
			CommonData:        common(models.KindWorkspaceUser, r.CommonJSON, state),
			IsAdmin:           r.IsAdmin,
			IsActive:          r.IsActive,
			Name:              r.Name,
			Email:             r.Email,
			WorkspaceID:       localID(models.KindWorkspace, r.WorkspaceRemoteID, state),
			WorkspaceRemoteID: r.WorkspaceRemoteID,
			UserID:            localID(models.KindUser, r.UserRemoteID, state),
			UserRemoteID:      r.UserRemoteID,
		}
	case models.TimeEntryJSON:
		return MapEntryWithTags(r, state)
	default:
		return nil
	}
}

// MapUser converts the account document returned by the auth and changes
// endpoints.
func MapUser(r models.UserJSON, state *models.AppState) models.UserData {
	return models.UserData{
		CommonData:               common(models.KindUser, r.CommonJSON, state),
		Name:                     r.Name,
		Email:                    r.Email,
		StartOfWeek:              r.StartOfWeek,
		DateFormat:               r.DateFormat,
		TimeFormat:               r.TimeFormat,
		DurationFormat:           r.DurationFormat,
		ImageURL:                 r.ImageURL,
		Locale:                   r.Locale,
		Timezone:                 r.Timezone,
		SendProductEmails:        r.SendProductEmails,
		SendTimerNotifications:   r.SendTimerNotifications,
		SendWeeklyReport:         r.SendWeeklyReport,
		DefaultWorkspaceID:       localID(models.KindWorkspace, r.DefaultWorkspaceRemoteID, state),
		DefaultWorkspaceRemoteID: r.DefaultWorkspaceRemoteID,
		GoogleAccessToken:        r.GoogleAccessToken,
		APIToken:                 r.APIToken,
	}
}

// MapEntryWithTags converts a time entry document. Tag names are resolved to
// local tag IDs through state and then through extra, which holds tags not
// yet in state (the tags of the same changeset).
func MapEntryWithTags(r models.TimeEntryJSON, state *models.AppState, extra ...models.TagData) models.TimeEntryData {
	entryState := models.TimeEntryFinished
	if r.StopTime == nil || r.Duration < 0 {
		entryState = models.TimeEntryRunning
	}

	return models.TimeEntryData{
		CommonData:        common(models.KindTimeEntry, r.CommonJSON, state),
		State:             entryState,
		Description:       r.Description,
		StartTime:         r.StartTime,
		StopTime:          r.StopTime,
		DurationOnly:      r.DurationOnly,
		IsBillable:        r.IsBillable,
		CreatedWith:       r.CreatedWith,
		WorkspaceID:       localID(models.KindWorkspace, r.WorkspaceRemoteID, state),
		WorkspaceRemoteID: r.WorkspaceRemoteID,
		ProjectID:         optionalLocalID(models.KindProject, r.ProjectRemoteID, state),
		ProjectRemoteID:   r.ProjectRemoteID,
		TaskID:            optionalLocalID(models.KindTask, r.TaskRemoteID, state),
		TaskRemoteID:      r.TaskRemoteID,
		UserID:            localID(models.KindUser, r.UserRemoteID, state),
		UserRemoteID:      r.UserRemoteID,
		TagIDs:            tagIDs(r.WorkspaceRemoteID, r.Tags, state, extra),
	}
}

func common(kind models.Kind, r models.CommonJSON, state *models.AppState) models.CommonData {
	c := models.CommonData{
		RemoteID:   r.RemoteID,
		ModifiedAt: r.ModifiedAt,
		DeletedAt:  r.DeletedAt,
	}
	if r.RemoteID != nil {
		c.ID = localID(kind, *r.RemoteID, state)
	} else {
		c.ID = utils.NewLocalID()
	}
	return c
}

// localID returns uuid.Nil for a zero remote ID.
func localID(kind models.Kind, remoteID int64, state *models.AppState) uuid.UUID {
	if remoteID == 0 {
		return uuid.Nil
	}
	if id, ok := state.LocalIDOf(kind, remoteID); ok {
		return id
	}
	return utils.RemoteDerivedID(string(kind), remoteID)
}

func optionalLocalID(kind models.Kind, remoteID *int64, state *models.AppState) uuid.UUID {
	if remoteID == nil {
		return uuid.Nil
	}
	return localID(kind, *remoteID, state)
}

// projectColor reads the palette index of a project. A color that is not an
// index is kept as the hex color when the server sent none.
func projectColor(raw, hex string) (int, string) {
	if raw == "" {
		return 0, hex
	}
	color, err := strconv.Atoi(raw)
	if err != nil {
		if hex == "" {
			hex = raw
		}
		return 0, hex
	}
	return color, hex
}
