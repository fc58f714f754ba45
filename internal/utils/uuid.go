package utils

import (
	"strconv"

	"github.com/google/uuid"
)

// remoteNamespace scopes identifiers derived from server identities.
var remoteNamespace = uuid.MustParse("6f1c2a4e-93b5-4d0c-b7a8-3e5f1d9c2b70")

// NewLocalID returns a fresh client-side identifier. Version 7 IDs sort by
// creation time; on failure a random version 4 ID is returned.
func NewLocalID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v7
}

// RemoteDerivedID returns the local identifier used for a server object that
// has no local counterpart yet. The same kind and remote ID always yield the
// same identifier.
func RemoteDerivedID(kind string, remoteID int64) uuid.UUID {
	return uuid.NewSHA1(remoteNamespace, []byte(kind+"/"+strconv.FormatInt(remoteID, 10)))
}
