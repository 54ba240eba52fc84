package request

type RegisterRequest struct {
	Name      string `json:"name" validate:"required,notblank,max=100"`
	Surname   string `json:"surname" validate:"required,notblank,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,min=10,max=20"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Country   string `json:"country" validate:"required,notblank,max=100"`
	City      string `json:"city" validate:"required,notblank,max=100"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
