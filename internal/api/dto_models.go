package api

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/tutormarket/internal/models"
)

// Envelope wraps every JSON response of the /api routes.
type Envelope struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	MongoDB   string `json:"mongodb"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// TutorPublicView is a tutor as returned by the directory and detail routes.
// It has no field for the password or the Firebase UID; the stored profile
// fields are rendered next to the typed ones.
type TutorPublicView struct {
	ID           string
	Email        string
	Role         string
	Status       string
	Rating       float64
	TotalReviews int
	Profile      map[string]interface{}
}

// featuredProfileFields is the display allow-list of a featured card, on top
// of _id, rating and totalReviews.
var featuredProfileFields = []string{
	"name",
	"photoURL",
	"location",
	"hourlyRate",
	"subjects",
	"qualifications",
	"isVerified",
}

// TutorFeaturedView is the reduced card shown for featured tutors.
type TutorFeaturedView struct {
	ID           string
	Rating       float64
	TotalReviews int
	Profile      map[string]interface{}
}

// TuitionView renders a tuition document with all of its stored fields.
type TuitionView struct {
	tuition *models.Tuition
}

// NewTutorPublicView builds the directory view of u.
func NewTutorPublicView(u *models.User) TutorPublicView {
	profile := make(map[string]interface{}, len(u.Profile))
	for k, v := range u.Profile {
		profile[k] = v
	}
	return TutorPublicView{
		ID:           u.ID.Hex(),
		Email:        u.Email,
		Role:         u.Role,
		Status:       u.Status,
		Rating:       u.Rating,
		TotalReviews: u.TotalReviews,
		Profile:      profile,
	}
}

// NewTutorFeaturedView builds the featured card of u, keeping only the
// allow-listed profile fields.
func NewTutorFeaturedView(u *models.User) TutorFeaturedView {
	profile := make(map[string]interface{}, len(featuredProfileFields))
	for _, k := range featuredProfileFields {
		if v, ok := u.Profile[k]; ok {
			profile[k] = v
		}
	}
	return TutorFeaturedView{
		ID:           u.ID.Hex(),
		Rating:       u.Rating,
		TotalReviews: u.TotalReviews,
		Profile:      profile,
	}
}

// NewTuitionView wraps t for rendering.
func NewTuitionView(t *models.Tuition) TuitionView {
	return TuitionView{tuition: t}
}

// MarshalJSON flattens the typed fields and the profile into one object.
func (v TutorPublicView) MarshalJSON() ([]byte, error) {
	out := flatten(v.Profile, 6)
	out["_id"] = v.ID
	out["email"] = v.Email
	out["role"] = v.Role
	out["status"] = v.Status
	out["rating"] = v.Rating
	out["totalReviews"] = v.TotalReviews
	return json.Marshal(out)
}

// MarshalJSON flattens the typed fields and the profile into one object.
func (v TutorFeaturedView) MarshalJSON() ([]byte, error) {
	out := flatten(v.Profile, 3)
	out["_id"] = v.ID
	out["rating"] = v.Rating
	out["totalReviews"] = v.TotalReviews
	return json.Marshal(out)
}

// MarshalJSON flattens the typed fields and the inline remainder into one object.
func (v TuitionView) MarshalJSON() ([]byte, error) {
	out := flatten(v.tuition.Fields, 3)
	if v.tuition.ID != nil {
		out["_id"] = jsonValue(v.tuition.ID)
	}
	if v.tuition.StudentID != nil {
		out["studentId"] = jsonValue(v.tuition.StudentID)
	}
	if v.tuition.Status != nil {
		out["status"] = jsonValue(v.tuition.Status)
	}
	return json.Marshal(out)
}

// flatten copies fields into a fresh map with room for extra typed keys.
func flatten(fields map[string]interface{}, extra int) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+extra)
	for k, val := range fields {
		out[k] = jsonValue(val)
	}
	return out
}

// jsonValue turns ordered BSON documents and arrays into plain maps and
// slices; primitive.D would otherwise encode as a list of Key/Value pairs.
func jsonValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = jsonValue(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]interface{}, len(val))
		for k, e := range val {
			m[k] = jsonValue(e)
		}
		return m
	case primitive.A:
		s := make([]interface{}, len(val))
		for i, e := range val {
			s[i] = jsonValue(e)
		}
		return s
	default:
		return v
	}
}
