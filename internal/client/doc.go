// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the durable queue, the remote API adapter, the state store and
// the sync engine into a single process lifecycle.
package client
