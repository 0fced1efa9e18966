package service

import (
	"context"
	"errors"
	"time"

	"github.com/fitrack/exercise-tracker/internal/model"
	"github.com/fitrack/exercise-tracker/internal/repository"
	"github.com/fitrack/exercise-tracker/internal/server"
)

// ExerciseService implements exercise logging: resolving the user and the
// exercise date, persisting the standalone exercise record, and appending
// to the user's cumulative log.
type ExerciseService struct {
	server    *server.Server
	users     repository.Users
	exercises repository.Exercises
	logs      repository.Logs

	// now is replaceable in tests; date resolution falls back to it.
	now func() time.Time
}

// NewExerciseService constructs an ExerciseService.
func NewExerciseService(s *server.Server, users repository.Users, exercises repository.Exercises, logs repository.Logs) *ExerciseService {
	return &ExerciseService{
		server:    s,
		users:     users,
		exercises: exercises,
		logs:      logs,
		now:       time.Now,
	}
}

// Log records one exercise for the given user.
//
// The submitted date is used when it parses as yyyy-mm-dd; otherwise the
// current server-local date is substituted. Both writes (exercise record,
// log append) are awaited and their failures propagate. The returned
// Exercise carries the user's id, which is what the response contract
// echoes, not the stored exercise record's own id.
func (s *ExerciseService) Log(ctx context.Context, userID, description string, duration int, rawDate string) (*model.Exercise, error) {
	user, err := s.users.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	date := ResolveDate(rawDate, s.now)

	stored, err := s.exercises.Create(ctx, user.Username, description, duration, date)
	if err != nil {
		return nil, err
	}

	entry := model.LogEntry{
		Description: stored.Description,
		Duration:    stored.Duration,
		Date:        stored.Date,
	}
	if err := s.logs.Append(ctx, user.ID, user.Username, entry); err != nil {
		return nil, err
	}

	s.server.Logger.Info().
		Str("user_id", user.ID).
		Str("exercise_id", stored.ID).
		Str("date", date).
		Msg("exercise logged")

	return &model.Exercise{
		ID:          user.ID,
		Username:    user.Username,
		Description: stored.Description,
		Duration:    stored.Duration,
		Date:        stored.Date,
	}, nil
}
