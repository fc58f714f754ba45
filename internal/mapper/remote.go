package mapper

import (
	"strconv"

	"github.com/MKhiriev/go-time-keeper/models"
)

// ToRemote converts a local entity into the document sent to the server.
// Foreign references are taken from the cached remote IDs, so the entity
// should be linked first. Time entries are sent without tags; use
// [EntryToRemote] to attach tag names.
func ToRemote(e models.Entity) models.RemoteObject {
	switch v := e.(type) {
	case models.WorkspaceData:
		return models.WorkspaceJSON{
			CommonJSON:                remoteCommon(v.CommonData),
			Name:                      v.Name,
			IsPremium:                 v.IsPremium,
			IsAdmin:                   v.IsAdmin,
			DefaultHourlyRate:         v.DefaultHourlyRate,
			DefaultCurrency:           v.DefaultCurrency,
			OnlyAdminsMayCreateProjs:  v.OnlyAdminsMayCreateProjs,
			OnlyAdminsSeeBillableRate: v.OnlyAdminsSeeBillableRate,
			RoundingMode:              v.RoundingMode,
			RoundingPrecision:         v.RoundingPrecision,
			LogoURL:                   v.LogoURL,
		}
	case models.ClientData:
		return models.ClientJSON{
			CommonJSON:        remoteCommon(v.CommonData),
			Name:              v.Name,
			WorkspaceRemoteID: v.WorkspaceRemoteID,
		}
	case models.ProjectData:
		return models.ProjectJSON{
			CommonJSON:        remoteCommon(v.CommonData),
			Name:              v.Name,
			Color:             strconv.Itoa(v.Color),
			HexColor:          v.HexColor,
			IsActive:          v.IsActive,
			IsBillable:        v.IsBillable,
			IsPrivate:         v.IsPrivate,
			IsTemplate:        v.IsTemplate,
			UseTasksEstimate:  v.UseTasksEstimate,
			WorkspaceRemoteID: v.WorkspaceRemoteID,
			ClientRemoteID:    v.ClientRemoteID,
		}
	case models.TaskData:
		return models.TaskJSON{
			CommonJSON:        remoteCommon(v.CommonData),
			Name:              v.Name,
			IsActive:          v.IsActive,
			Estimate:          v.Estimate,
			TrackedTime:       v.TrackedTime,
			WorkspaceRemoteID: v.WorkspaceRemoteID,
			ProjectRemoteID:   v.ProjectRemoteID,
		}
	case models.TagData:
		return models.TagJSON{
			CommonJSON:        remoteCommon(v.CommonData),
			Name:              v.Name,
			WorkspaceRemoteID: v.WorkspaceRemoteID,
		}
	case models.UserData:
		return models.UserJSON{
			CommonJSON:               remoteCommon(v.CommonData),
			Name:                     v.Name,
			Email:                    v.Email,
			StartOfWeek:              v.StartOfWeek,
			DateFormat:               v.DateFormat,
			TimeFormat:               v.TimeFormat,
			DurationFormat:           v.DurationFormat,
			ImageURL:                 v.ImageURL,
			Locale:                   v.Locale,
			Timezone:                 v.Timezone,
			SendProductEmails:        v.SendProductEmails,
			SendTimerNotifications:   v.SendTimerNotifications,
			SendWeeklyReport:         v.SendWeeklyReport,
			DefaultWorkspaceRemoteID: v.DefaultWorkspaceRemoteID,
		}
	case models.ProjectUserData:
		return models.ProjectUserJSON{
			CommonJSON:      remoteCommon(v.CommonData),
			HourlyRate:      v.HourlyRate,
			IsManager:       v.IsManager,
			ProjectRemoteID: v.ProjectRemoteID,
			UserRemoteID:    v.UserRemoteID,
		}
	case models.WorkspaceUserData:
		return models.WorkspaceUserJSON{
			CommonJSON:        remoteCommon(v.CommonData),
			IsAdmin:           v.IsAdmin,
			IsActive:          v.IsActive,
			Name:              v.Name,
			Email:             v.Email,
			WorkspaceRemoteID: v.WorkspaceRemoteID,
			UserRemoteID:      v.UserRemoteID,
		}
	case models.TimeEntryData:
		return EntryToRemote(v, nil)
	default:
		return nil
	}
}

// EntryToRemote converts a time entry and attaches the given tag names.
// A running entry carries the negative start timestamp as duration.
func EntryToRemote(v models.TimeEntryData, tags []string) models.TimeEntryJSON {
	var duration int64
	switch {
	case v.State == models.TimeEntryRunning || v.StopTime == nil:
		duration = -v.StartTime.Unix()
	default:
		duration = int64(v.StopTime.Sub(v.StartTime).Seconds())
	}

	if tags == nil {
		tags = []string{}
	}

	return models.TimeEntryJSON{
		CommonJSON:        remoteCommon(v.CommonData),
		Description:       v.Description,
		StartTime:         v.StartTime,
		StopTime:          v.StopTime,
		Duration:          duration,
		DurationOnly:      v.DurationOnly,
		IsBillable:        v.IsBillable,
		CreatedWith:       v.CreatedWith,
		WorkspaceRemoteID: v.WorkspaceRemoteID,
		ProjectRemoteID:   v.ProjectRemoteID,
		TaskRemoteID:      v.TaskRemoteID,
		UserRemoteID:      v.UserRemoteID,
		Tags:              tags,
	}
}

// DeletedAt is never sent: deletes go through RemoteClient.Delete.
func remoteCommon(c models.CommonData) models.CommonJSON {
	return models.CommonJSON{
		RemoteID:   c.RemoteID,
		ModifiedAt: c.ModifiedAt,
	}
}
