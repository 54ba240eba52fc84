package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"course-portal/internal/data/entity"
	"course-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	// FindByID returns the course whatever its active flag
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	FindAll(ctx context.Context) ([]*entity.Course, error)
	FindAllActive(ctx context.Context) ([]*entity.Course, error)
	Update(ctx context.Context, course *entity.Course) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// FindPurchasedByUser lists active courses the user bought, in purchase order
	FindPurchasedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Course, error)
}

type courseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCourseRepository(db database.PgxIface, log *zap.Logger) CourseRepository {
	return &courseRepository{
		db:  db,
		log: log.With(zap.String("repository", "course")),
	}
}

const courseColumns = `c.id, c.title, c.description, c.instructor, c.category, c.difficulty,
		       c.duration, c.price, c.currency, c.image_url, c.videos, c.is_active,
		       c.created_at, c.updated_at`

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	videos, err := encodeVideos(course.Videos)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO courses (id, title, description, instructor, category, difficulty,
		                     duration, price, currency, image_url, videos, is_active,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = r.db.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Instructor,
		course.Category,
		course.Difficulty,
		course.Duration,
		course.Price,
		course.Currency,
		course.ImageURL,
		videos,
		course.IsActive,
		course.CreatedAt,
		course.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create course",
			zap.Error(err),
			zap.String("title", course.Title),
		)
		return fmt.Errorf("create course %q: %w", course.Title, err)
	}

	return nil
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c WHERE c.id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find course by ID",
			zap.Error(err),
			zap.String("course_id", id.String()),
		)
		return nil, fmt.Errorf("find course %s: %w", id.String(), err)
	}

	return course, nil
}

func (r *courseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c ORDER BY c.created_at ASC, c.id ASC`
	return r.queryCourses(ctx, "find all courses", query)
}

func (r *courseRepository) FindAllActive(ctx context.Context) ([]*entity.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses c
		WHERE c.is_active = TRUE
		ORDER BY c.created_at ASC, c.id ASC
	`
	return r.queryCourses(ctx, "find active courses", query)
}

func (r *courseRepository) FindPurchasedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM purchases p
		JOIN courses c ON c.id = p.course_id
		WHERE p.user_id = $1 AND p.status = $2 AND c.is_active = TRUE
		ORDER BY p.purchased_at ASC, p.id ASC
	`
	return r.queryCourses(ctx, "find purchased courses", query, userID, entity.PurchaseStatusCompleted)
}

// Update replaces every mutable column; id and created_at are left alone.
func (r *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	videos, err := encodeVideos(course.Videos)
	if err != nil {
		return err
	}

	query := `
		UPDATE courses
		SET title = $2, description = $3, instructor = $4, category = $5,
		    difficulty = $6, duration = $7, price = $8, currency = $9,
		    image_url = $10, videos = $11, is_active = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Instructor,
		course.Category,
		course.Difficulty,
		course.Duration,
		course.Price,
		course.Currency,
		course.ImageURL,
		videos,
		course.IsActive,
		course.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update course",
			zap.Error(err),
			zap.String("course_id", course.ID.String()),
		)
		return fmt.Errorf("update course %s: %w", course.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update course %s: %w", course.ID.String(), ErrNotFound)
	}

	return nil
}

// SoftDelete hides the course; purchases referencing it stay intact.
func (r *courseRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE courses SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete course",
			zap.Error(err),
			zap.String("course_id", id.String()),
		)
		return fmt.Errorf("delete course %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete course %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Course deactivated", zap.String("course_id", id.String()))
	return nil
}

func (r *courseRepository) queryCourses(ctx context.Context, op, query string, args ...any) ([]*entity.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query courses", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	courses := make([]*entity.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			r.log.Error("Failed to scan course row", zap.Error(err))
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("%s: iterate: %w", op, err)
	}

	r.log.Debug("Courses found", zap.String("op", op), zap.Int("count", len(courses)))
	return courses, nil
}

func scanCourse(row pgx.Row) (*entity.Course, error) {
	var (
		course entity.Course
		videos []byte
	)

	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Instructor,
		&course.Category,
		&course.Difficulty,
		&course.Duration,
		&course.Price,
		&course.Currency,
		&course.ImageURL,
		&videos,
		&course.IsActive,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	course.Videos, err = decodeVideos(videos)
	if err != nil {
		return nil, fmt.Errorf("course %s: %w", course.ID.String(), err)
	}

	return &course, nil
}

func encodeVideos(videos []entity.CourseVideo) ([]byte, error) {
	if videos == nil {
		videos = []entity.CourseVideo{}
	}
	raw, err := json.Marshal(videos)
	if err != nil {
		return nil, fmt.Errorf("encode videos: %w", err)
	}
	return raw, nil
}

func decodeVideos(raw []byte) ([]entity.CourseVideo, error) {
	videos := make([]entity.CourseVideo, 0)
	if len(raw) == 0 {
		return videos, nil
	}
	if err := json.Unmarshal(raw, &videos); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}
	return videos, nil
}
