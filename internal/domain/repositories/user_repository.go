package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"exercise-tracker/internal/domain"
)

// UserRepository is the persistence port for users and their embedded
// exercise logs. Lookups return (nil, nil) when no document matches.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	// PushExercise atomically appends one exercise to the user's log and
	// returns the updated document.
	PushExercise(ctx context.Context, id primitive.ObjectID, ex domain.Exercise) (*domain.User, error)
}
