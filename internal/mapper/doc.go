// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mapper converts between the API documents of the remote client
// (models.*JSON) and the local entities of the application state.
//
// A server object gets the local ID of the state entity that already carries
// its remote ID. Objects seen for the first time get a deterministic ID
// derived from their kind and remote ID (utils.RemoteDerivedID), so the same
// object mapped twice, or referenced from another object of the same
// changeset, always resolves to the same local ID.
//
// Time entries reference tags by name on the wire and by local ID in the
// state. Names without a local tag in the entry's workspace are omitted.
package mapper
