package service

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/mapper"
	"github.com/MKhiriev/go-time-keeper/models"
)

func (p *RequestProcessor) putUser(reason models.AuthChangeReason, remote *models.UserJSON, err error, google bool, state *models.AppState) {
	result, user := classifyAuth(remote, err, google, state)

	var ev *zerolog.Event
	switch result {
	case models.AuthSuccess, models.AuthNoDefaultWorkspace:
		ev = p.logger.Info()
	case models.AuthSystemError:
		ev = p.logger.Warn().Err(err)
	default:
		ev = p.logger.Info().Err(err)
	}
	ev.Str("func", "RequestProcessor.putUser").Str("result", result.String()).Msg("authentication finished")

	p.sink.Send(models.UserDataPut{Result: result, Reason: reason, User: user})
}

// classifyAuth maps the reply of an auth endpoint to an AuthResult. The user
// is returned only on success or when the account has no default workspace.
func classifyAuth(remote *models.UserJSON, err error, google bool, state *models.AppState) (models.AuthResult, *models.UserData) {
	switch {
	case err == nil:
	case adapter.IsNetworkFailure(err):
		return models.AuthNetworkError, nil
	case errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnprocessableEntity):
		return models.AuthInvalidCredentials, nil
	default:
		return models.AuthSystemError, nil
	}

	if remote == nil {
		if google {
			return models.AuthNoGoogleAccount, nil
		}
		return models.AuthInvalidCredentials, nil
	}

	user := mapper.MapUser(*remote, state)
	if user.DefaultWorkspaceRemoteID == 0 {
		return models.AuthNoDefaultWorkspace, &user
	}
	return models.AuthSuccess, &user
}
