package domain

import (
	"math"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Duration is the coerced numeric duration of an exercise. Non-numeric
// input coerces to NaN and is stored as-is; NaN serializes as JSON null.
type Duration float64

// CoerceDuration converts raw request input to a Duration without rejecting
// anything. Unparsable input yields NaN.
func CoerceDuration(raw string) Duration {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Duration(math.NaN())
	}
	return Duration(v)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	f := float64(d)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*d = Duration(math.NaN())
		return nil
	}
	*d = Duration(f)
	return nil
}

// Exercise is one logged activity entry. It has no identity of its own and
// belongs to exactly one user, ordered by insertion inside the user document.
type Exercise struct {
	Description string    `bson:"description" json:"description"`
	Duration    Duration  `bson:"duration" json:"duration"`
	Date        time.Time `bson:"date" json:"date"`
}

// User is a document in the users collection with its full exercise log
// embedded as an array.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"`
	Exercises []Exercise         `bson:"exercises" json:"exercises"`
}
