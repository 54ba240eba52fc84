package response

import (
	"time"

	"course-portal/internal/data/entity"
)

// CourseSummaryResponse is the public catalog view: everything except the videos.
type CourseSummaryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	Duration    string    `json:"duration"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	ImageURL    *string   `json:"image_url,omitempty"`
	VideoCount  int       `json:"video_count"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type CourseVideoResponse struct {
	Title       string `json:"title"`
	VideoURL    string `json:"video_url"`
	Description string `json:"description,omitempty"`
}

type CourseDetailResponse struct {
	CourseSummaryResponse
	Videos    []CourseVideoResponse `json:"videos"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// Helper converters
func CourseToSummaryResponse(course *entity.Course) CourseSummaryResponse {
	return CourseSummaryResponse{
		ID:          course.ID.String(),
		Title:       course.Title,
		Description: course.Description,
		Instructor:  course.Instructor,
		Category:    course.Category,
		Difficulty:  course.Difficulty,
		Duration:    course.Duration,
		Price:       course.Price,
		Currency:    course.Currency,
		ImageURL:    course.ImageURL,
		VideoCount:  len(course.Videos),
		IsActive:    course.IsActive,
		CreatedAt:   course.CreatedAt,
	}
}

func CourseToDetailResponse(course *entity.Course) CourseDetailResponse {
	videos := make([]CourseVideoResponse, 0, len(course.Videos))
	for _, v := range course.Videos {
		videos = append(videos, CourseVideoResponse{
			Title:       v.Title,
			VideoURL:    v.VideoURL,
			Description: v.Description,
		})
	}

	return CourseDetailResponse{
		CourseSummaryResponse: CourseToSummaryResponse(course),
		Videos:                videos,
		UpdatedAt:             course.UpdatedAt,
	}
}

func CoursesToSummaryResponse(courses []*entity.Course) []CourseSummaryResponse {
	resp := make([]CourseSummaryResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, CourseToSummaryResponse(course))
	}
	return resp
}

func CoursesToDetailResponse(courses []*entity.Course) []CourseDetailResponse {
	resp := make([]CourseDetailResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, CourseToDetailResponse(course))
	}
	return resp
}
