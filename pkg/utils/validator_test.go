package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleVideo struct {
	URL string `json:"video_url" validate:"required,url"`
}

type sampleRequest struct {
	Email  string        `json:"email" validate:"required,email"`
	Price  float64       `json:"price" validate:"gte=0"`
	Videos []sampleVideo `json:"videos" validate:"dive"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "a@b.co", Price: 10})
	assert.Nil(t, errs)

	errs = ValidateStruct(&sampleRequest{
		Email:  "nope",
		Price:  -1,
		Videos: []sampleVideo{{URL: "https://vimeo.com/1"}, {URL: "not a url"}},
	})

	assert.Equal(t, map[string]string{
		"email":               "Invalid email format",
		"price":               "Must be greater than or equal to 0",
		"videos[1].video_url": "Must be a valid URL",
	}, errs)
}

type sampleCourse struct {
	Title string  `json:"title" validate:"required,notblank"`
	Price float64 `json:"price" validate:"gte=0,lte=9999999999.99,cents"`
}

func TestValidateStruct_BlankAndMoney(t *testing.T) {
	tests := []struct {
		name  string
		input sampleCourse
		want  map[string]string
	}{
		{name: "valid", input: sampleCourse{Title: "Revit", Price: 19.99}},
		{name: "largest price", input: sampleCourse{Title: "Revit", Price: 9999999999.99}},
		{name: "whole price", input: sampleCourse{Title: "Revit", Price: 20}},
		{
			name:  "whitespace title",
			input: sampleCourse{Title: " \t\n ", Price: 1},
			want:  map[string]string{"title": "This field is required"},
		},
		{
			name:  "three decimals",
			input: sampleCourse{Title: "Revit", Price: 19.999},
			want:  map[string]string{"price": "Must have at most 2 decimal places"},
		},
		{
			name:  "too large for storage",
			input: sampleCourse{Title: "Revit", Price: 1e10},
			want:  map[string]string{"price": "Must be less than or equal to 9999999999.99"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.input)
			if tt.want == nil {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, tt.want, errs)
		})
	}
}
