package models

// User is one credential record in the relational users table. Column
// names match the pre-existing schema, which is in Spanish.
type User struct {
	BaseModel
	Name     string `gorm:"column:nombre;type:varchar(255)"             json:"name"`
	Email    string `gorm:"column:email;type:varchar(255);uniqueIndex"  json:"email"`
	Password string `gorm:"column:password;type:varchar(255)"          json:"-"`
	Role     string `gorm:"column:rol;type:varchar(64)"                json:"role"`
}

func (User) TableName() string {
	return "users"
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

type LoginUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
