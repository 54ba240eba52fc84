package request

// CourseRequest is the full mutable record of a course. Updates replace
// every field; IsActive is optional and keeps the current flag when omitted.
type CourseRequest struct {
	Title       string               `json:"title" validate:"required,notblank,max=255"`
	Description string               `json:"description" validate:"required,notblank"`
	Instructor  string               `json:"instructor" validate:"max=255"`
	Category    string               `json:"category" validate:"max=100"`
	Difficulty  string               `json:"difficulty" validate:"max=50"`
	Duration    string               `json:"duration" validate:"max=50"`
	Price       float64              `json:"price" validate:"gte=0,lte=9999999999.99,cents"`
	Currency    string               `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	ImageURL    *string              `json:"image_url,omitempty" validate:"omitempty,url,max=500"`
	Videos      []CourseVideoRequest `json:"videos" validate:"dive"`
	IsActive    *bool                `json:"is_active,omitempty"`
}

type CourseVideoRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=255"`
	VideoURL    string `json:"video_url" validate:"required,url"`
	Description string `json:"description,omitempty"`
}
