package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/models"
)

type decodeFunc func(payload []byte) (models.Entity, error)

// decoders is the closed table of entity kinds the queue can carry.
var decoders = map[models.Kind]decodeFunc{
	models.KindWorkspace:     decodeEntity[models.WorkspaceData],
	models.KindClient:        decodeEntity[models.ClientData],
	models.KindProject:       decodeEntity[models.ProjectData],
	models.KindTask:          decodeEntity[models.TaskData],
	models.KindTag:           decodeEntity[models.TagData],
	models.KindUser:          decodeEntity[models.UserData],
	models.KindProjectUser:   decodeEntity[models.ProjectUserData],
	models.KindWorkspaceUser: decodeEntity[models.WorkspaceUserData],
	models.KindTimeEntry:     decodeEntity[models.TimeEntryData],
}

func decodeEntity[T models.Entity](payload []byte) (models.Entity, error) {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Wrap builds the envelope of e: its kind tag and its JSON form.
func Wrap(e models.Entity) (models.Envelope, error) {
	if _, ok := decoders[e.Kind()]; !ok {
		return models.Envelope{}, fmt.Errorf("%w: %q", ErrUnrecognizedEntityType, e.Kind())
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal %s payload: %w", e.Kind(), err)
	}
	return models.Envelope{Type: e.Kind(), Payload: string(payload)}, nil
}

// Unwrap rebuilds the entity carried by env.
func Unwrap(env models.Envelope) (models.Entity, error) {
	decode, ok := decoders[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedEntityType, env.Type)
	}

	e, err := decode([]byte(env.Payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %s payload: %v", ErrCorruptEnvelope, env.Type, err)
	}
	return e, nil
}

// EncodeEnvelope renders env as the string stored in the queue.
func EncodeEnvelope(env models.Envelope) (string, error) {
	b, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(b), nil
}

// DecodeEnvelope parses a queue item.
func DecodeEnvelope(s string) (models.Envelope, error) {
	var env models.Envelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrCorruptEnvelope, err)
	}
	return env, nil
}

// Encode renders e as a queue item.
func Encode(e models.Entity) (string, error) {
	env, err := Wrap(e)
	if err != nil {
		return "", err
	}
	return EncodeEnvelope(env)
}

// Decode parses a queue item back into the entity it carries.
func Decode(s string) (models.Entity, error) {
	env, err := DecodeEnvelope(s)
	if err != nil {
		return nil, err
	}
	return Unwrap(env)
}
