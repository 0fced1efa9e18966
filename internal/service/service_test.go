package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fitrack/exercise-tracker/internal/model"
	"github.com/fitrack/exercise-tracker/internal/repository"
	"github.com/fitrack/exercise-tracker/internal/server"
)

// In-memory doubles for the repository interfaces, so services can be
// exercised without a database.

func newTestServer() *server.Server {
	nop := zerolog.Nop()
	return &server.Server{Logger: &nop}
}

type fakeUsers struct {
	users     []model.User
	createErr error
	getErr    error
}

func (f *fakeUsers) Create(_ context.Context, username string) (*model.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	user := model.User{
		ID:       fmt.Sprintf("user-%d", len(f.users)+1),
		Username: username,
	}
	f.users = append(f.users, user)
	return &user, nil
}

func (f *fakeUsers) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	out = append(out, f.users...)
	return out, nil
}

func (f *fakeUsers) Get(_ context.Context, id string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeExercises struct {
	created   []model.Exercise
	createErr error
}

func (f *fakeExercises) Create(_ context.Context, username, description string, duration int, date string) (*model.Exercise, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	exercise := model.Exercise{
		ID:          fmt.Sprintf("exercise-%d", len(f.created)+1),
		Username:    username,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	f.created = append(f.created, exercise)
	return &exercise, nil
}

type fakeLogs struct {
	logs      map[string]*model.Log
	appendErr error
	getErr    error
}

func newFakeLogs() *fakeLogs {
	return &fakeLogs{logs: make(map[string]*model.Log)}
}

func (f *fakeLogs) Get(_ context.Context, id string) (*model.Log, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	log, ok := f.logs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *log
	copied.Entries = append([]model.LogEntry(nil), log.Entries...)
	return &copied, nil
}

func (f *fakeLogs) Append(_ context.Context, userID, username string, entry model.LogEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	log, ok := f.logs[userID]
	if !ok {
		log = &model.Log{ID: userID, Username: username}
		f.logs[userID] = log
	}
	log.Entries = append(log.Entries, entry)
	log.Count++
	return nil
}
