package library

// Package library contains the resource models exchanged with the remote
// library backend. JSON tags follow the backend's wire contract.

import domainauth "github.com/biblionet/ui-api/internal/domain/auth"

// Book is the catalog record as the backend's list/detail views return it,
// including the joined author and category names.
type Book struct {
	ID           int    `json:"LibroID"`
	Title        string `json:"Titulo"`
	ISBN         string `json:"ISBN"`
	Year         int    `json:"AnioPublicacion"`
	Stock        int    `json:"Stock"`
	CoverURL     string `json:"ImagenURL"`
	AuthorID     int    `json:"AutorID"`
	AuthorName   string `json:"NombreAutor"`
	CategoryID   int    `json:"CategoriaID"`
	CategoryName string `json:"NombreCategoria"`
}

// BookInput is the payload for creating or updating a book. The backend
// expects multipart form data so the cover image can ride along.
type BookInput struct {
	Title      string
	ISBN       string
	Year       int
	Stock      *int
	AuthorID   int
	CategoryID int
	// Cover is optional; when set, the adapter attaches it as the image part.
	Cover *Upload
}

// Upload is a file attached to a multipart request.
type Upload struct {
	Filename string
	Content  []byte
}

// Author is a catalog author.
type Author struct {
	ID          int    `json:"AutorID"`
	Name        string `json:"Nombre"`
	Nationality string `json:"Nacionalidad"`
}

// AuthorInput is the payload for creating or updating an author.
type AuthorInput struct {
	Name        string `json:"Nombre"`
	Nationality string `json:"Nacionalidad"`
}

// Category is a catalog category.
type Category struct {
	ID   int    `json:"CategoriaID"`
	Name string `json:"NombreCategoria"`
}

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name string `json:"NombreCategoria"`
}

// ActiveLoan is a row of the backend's active loans view.
type ActiveLoan struct {
	ID         int    `json:"PrestamoID"`
	User       string `json:"Usuario"`
	Book       string `json:"Libro"`
	BookID     int    `json:"LibroID"`
	LoanedAt   string `json:"FechaPrestamo"`
	DaysLoaned int    `json:"DiasPrestado"`
}

// TopReader is a row of the top-readers report.
type TopReader struct {
	UserID    int    `json:"UsuarioID"`
	User      string `json:"NombreCompleto"`
	LoanCount int    `json:"TotalPrestamos"`
}

// CategoryStat is a row of the books-per-category report.
type CategoryStat struct {
	Category  string `json:"NombreCategoria"`
	BookCount int    `json:"TotalLibros"`
}

// TopAuthor is a row of the top-authors report.
type TopAuthor struct {
	Author    string `json:"Nombre"`
	BookCount int    `json:"TotalLibros"`
}

// User is an account record from the users service.
type User struct {
	ID          int             `json:"UsuarioID"`
	DisplayName string          `json:"NombreCompleto"`
	Email       string          `json:"Email"`
	Role        domainauth.Role `json:"Rol"`
	CreatedAt   string          `json:"FechaCreacion,omitempty"`
	UpdatedAt   string          `json:"FechaActualizacion,omitempty"`
}

// CreateUserInput is the payload for creating an account.
type CreateUserInput struct {
	DisplayName string `json:"NombreCompleto"`
	Email       string `json:"Email"`
	Password    string `json:"Password"`
	Role        string `json:"Rol,omitempty"`
}

// UpdateUserInput is the partial payload for updating an account.
type UpdateUserInput struct {
	DisplayName *string `json:"NombreCompleto,omitempty"`
	Email       *string `json:"Email,omitempty"`
	Role        *string `json:"Rol,omitempty"`
}
