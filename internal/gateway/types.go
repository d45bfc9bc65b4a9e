package gateway

// Book represents a book in the library catalog
type Book struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Genre    string `json:"genre,omitempty"`
	Quantity int    `json:"quantity"`
}

// Booking represents a borrow record
type Booking struct {
	ID          int64  `json:"id"`
	BookID      int64  `json:"bookId"`
	BookTitle   string `json:"bookTitle"`
	Username    string `json:"username"`
	BookingDate string `json:"bookingDate"`
	ReturnDate  string `json:"returnDate,omitempty"`
	Returned    bool   `json:"returned"`
}

// User represents a library member account
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// Credentials represents the login request body
type Credentials struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterInput represents the registration request body
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=USER ADMIN"`
	AdminKey string `json:"adminKey,omitempty" validate:"required_if=Role ADMIN"`
}

// LoginData is the payload a successful login returns
type LoginData struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// BookingRequest represents a request to borrow a book
type BookingRequest struct {
	BookID int64 `json:"bookId"`
}

// ChatRequest carries free text and a language tag to the library assistant
type ChatRequest struct {
	Message  string `json:"message" validate:"required"`
	Language string `json:"language,omitempty"`
}
