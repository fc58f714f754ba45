package service

import (
	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/store"
)

// Services groups the engine components of one client process.
type Services struct {
	Dispatcher *Dispatcher
	Requests   *RequestProcessor
	Manager    *Manager
	SyncJob    ClientSyncJob
}

// Deps are the collaborators the engine is built from.
type Deps struct {
	Queue        store.Queue
	Remote       adapter.RemoteClient
	Presence     adapter.NetworkPresence
	State        StateStore
	DownloadDays int
	BufferSize   int
}

// NewServices wires the engine.
func NewServices(deps Deps, log *logger.Logger) *Services {
	dispatcher := NewDispatcher(deps.Queue, deps.Remote, deps.Presence, deps.State, log.Component("dispatcher"))
	requests := NewRequestProcessor(deps.Remote, deps.State, deps.DownloadDays, log.Component("requests"))
	manager := NewManager(dispatcher, requests, deps.State, deps.BufferSize, log.Component("manager"))

	return &Services{
		Dispatcher: dispatcher,
		Requests:   requests,
		Manager:    manager,
		SyncJob:    NewClientSyncJob(manager, log.Component("sync_job")),
	}
}
