// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"github.com/crewline/fieldcrm/internal/db"
	"github.com/crewline/fieldcrm/internal/logging"
	"github.com/crewline/fieldcrm/internal/monitoring"
	"github.com/crewline/fieldcrm/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.ClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.ClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
