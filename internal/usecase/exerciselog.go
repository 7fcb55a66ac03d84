package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/domain/repositories"
	"exercise-tracker/internal/infrastructure"
	"exercise-tracker/internal/messaging"
)

const usersCacheKey = "users"

func userCacheKey(id string) string {
	return "user:" + id
}

// UserInfo is a user stripped to its identifying fields, the shape returned
// by user creation and listing.
type UserInfo struct {
	Username string             `json:"username"`
	ID       primitive.ObjectID `json:"_id"`
}

// LogFilter narrows a log query. Nil fields mean the bound is absent. Limit
// is applied literally: a limit of zero or less always yields an empty log.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit *int
}

// LogResult is the shaped response of a log query.
type LogResult struct {
	Count     int               `json:"count"`
	Exercises []domain.Exercise `json:"exercises"`
}

// ExerciseLogService implements the four tracker operations over the user
// store. It is stateless; all state lives in the store and the cache.
type ExerciseLogService struct {
	repo   repositories.UserRepository
	cache  *infrastructure.CacheService
	events *messaging.Publisher
}

func NewExerciseLogService(repo repositories.UserRepository, cache *infrastructure.CacheService, events *messaging.Publisher) *ExerciseLogService {
	return &ExerciseLogService{repo: repo, cache: cache, events: events}
}

// CreateUser registers a username and returns the stored user. The existence
// check and the insert are separate round-trips; the store's unique username
// index closes the race between them, and a duplicate-key insert surfaces as
// ErrDuplicateUser the same way a check hit does.
func (s *ExerciseLogService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUser
	}

	user, err := s.repo.Insert(ctx, &domain.User{
		Username:  username,
		Exercises: []domain.Exercise{},
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, usersCacheKey)
	s.events.Publish(messaging.SubjectUserCreated, UserInfo{Username: user.Username, ID: user.ID})
	return user, nil
}

// ListUsers returns every user's id and username in store enumeration order.
func (s *ExerciseLogService) ListUsers(ctx context.Context) ([]UserInfo, error) {
	var infos []UserInfo
	if s.cache.Get(ctx, usersCacheKey, &infos) {
		return infos, nil
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	infos = make([]UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, UserInfo{Username: u.Username, ID: u.ID})
	}

	s.cache.Set(ctx, usersCacheKey, infos)
	return infos, nil
}

// AddExercise appends one exercise to the user's log and returns the whole
// updated user document. A nil date defaults to the current server time. The
// append is a single atomic store update; concurrent appends to the same user
// both land, in store order.
func (s *ExerciseLogService) AddExercise(ctx context.Context, userID, description string, duration domain.Duration, date *time.Time) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.NewValidationError("invalid user id: " + userID)
	}

	when := time.Now()
	if date != nil {
		when = *date
	}

	ex := domain.Exercise{
		Description: description,
		Duration:    duration,
		Date:        when,
	}

	user, err := s.repo.PushExercise(ctx, oid, ex)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	s.cache.Delete(ctx, userCacheKey(userID))
	s.events.Publish(messaging.SubjectLogAdded, user)
	return user, nil
}

// QueryLog returns the user's exercises that pass the filter, in stored
// order. All three conditions are evaluated per exercise in one linear pass:
// an exercise is accepted only if it is on or after From, on or before To,
// and fewer than Limit exercises have been accepted so far. Once the limit is
// reached nothing further is accepted, regardless of dates.
func (s *ExerciseLogService) QueryLog(ctx context.Context, userID string, filter LogFilter) (*LogResult, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.NewValidationError("invalid user id: " + userID)
	}

	var user *domain.User
	var cached domain.User
	if s.cache.Get(ctx, userCacheKey(userID), &cached) {
		user = &cached
	} else {
		user, err = s.repo.FindByID(ctx, oid)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
		s.cache.Set(ctx, userCacheKey(userID), user)
	}

	accepted := make([]domain.Exercise, 0, len(user.Exercises))
	for _, ex := range user.Exercises {
		if filter.From != nil && ex.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && ex.Date.After(*filter.To) {
			continue
		}
		if filter.Limit != nil && len(accepted) >= *filter.Limit {
			continue
		}
		accepted = append(accepted, ex)
	}

	return &LogResult{Count: len(accepted), Exercises: accepted}, nil
}
