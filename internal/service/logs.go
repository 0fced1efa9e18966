package service

import (
	"context"
	"errors"

	"github.com/fitrack/exercise-tracker/internal/model"
	"github.com/fitrack/exercise-tracker/internal/repository"
	"github.com/fitrack/exercise-tracker/internal/server"
)

// LogService implements log retrieval with date-range filtering and
// count truncation.
type LogService struct {
	server *server.Server
	logs   repository.Logs
}

// NewLogService constructs a LogService.
func NewLogService(s *server.Server, logs repository.Logs) *LogService {
	return &LogService{server: s, logs: logs}
}

// Get fetches a user's log and applies the from/to/limit view.
//
// The returned Log's Count is the size of the filtered result, not the
// persisted running total; that asymmetry is part of the API contract.
func (s *LogService) Get(ctx context.Context, userID, from, to string, limit int) (*model.Log, error) {
	log, err := s.logs.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}

	filtered := FilterEntries(log.Entries, from, to, limit)

	return &model.Log{
		ID:       log.ID,
		Username: log.Username,
		Count:    len(filtered),
		Entries:  filtered,
	}, nil
}

// FilterEntries produces the client view of a log's entries.
//
// The range is inclusive of from and exclusive of to; an entry dated
// exactly to is dropped. Omitted bounds are unbounded. A bound that is
// supplied but does not parse matches nothing, mirroring the source
// system's invalid-date comparison semantics. A positive limit keeps the
// first limit entries of the filtered sequence in stored (append) order;
// entries are never re-sorted.
func FilterEntries(entries []model.LogEntry, from, to string, limit int) []model.LogEntry {
	fromDate := minDate
	toDate := maxDate
	valid := true

	if from != "" {
		d, err := ParseInputDate(from)
		if err != nil {
			valid = false
		} else {
			fromDate = d
		}
	}
	if to != "" {
		d, err := ParseInputDate(to)
		if err != nil {
			valid = false
		} else {
			toDate = d
		}
	}

	filtered := make([]model.LogEntry, 0, len(entries))
	if !valid {
		return filtered
	}

	for _, entry := range entries {
		d, err := ParseEntryDate(entry.Date)
		if err != nil {
			continue
		}
		if !d.Before(fromDate) && d.Before(toDate) {
			filtered = append(filtered, entry)
		}
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return filtered
}
