package entity

const DefaultCurrency = "TRY"

// CourseVideo points at a video hosted by a third-party player.
type CourseVideo struct {
	Title       string `json:"title"`
	VideoURL    string `json:"video_url"`
	Description string `json:"description,omitempty"`
}

type Course struct {
	Base
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Instructor  string        `db:"instructor"`
	Category    string        `db:"category"`
	Difficulty  string        `db:"difficulty"`
	Duration    string        `db:"duration"`
	Price       float64       `db:"price"` // zero means free
	Currency    string        `db:"currency"`
	ImageURL    *string       `db:"image_url"`
	Videos      []CourseVideo `db:"videos"` // ordered, stored as jsonb
	IsActive    bool          `db:"is_active"`
}

func (c *Course) IsFree() bool {
	return c.Price == 0
}
