package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/biblionet/ui-api/internal/domain/library"
)

const booksPath = "/api/library/books"

// BooksClient wraps the backend's book catalog endpoints.
type BooksClient struct {
	client *Client
}

// NewBooksClient constructs a BooksClient.
func NewBooksClient(client *Client) *BooksClient {
	return &BooksClient{client: client}
}

// List returns all books, optionally filtered by title.
func (b *BooksClient) List(ctx context.Context, token, title string) ([]library.Book, error) {
	q := url.Values{}
	if title != "" {
		q.Set("titulo", title)
	}

	var books []library.Book
	err := b.client.do(ctx, request{method: http.MethodGet, path: booksPath, query: q, token: token}, &books)
	return books, err
}

// Get returns a single book by ID.
func (b *BooksClient) Get(ctx context.Context, token string, id int) (library.Book, error) {
	var book library.Book
	err := b.client.do(ctx, request{method: http.MethodGet, path: bookPath(id), token: token}, &book)
	return book, err
}

// Create adds a book. The backend requires multipart form data so the cover
// image can be attached in the same request.
func (b *BooksClient) Create(ctx context.Context, token string, in library.BookInput) (library.Book, error) {
	var book library.Book
	err := b.client.do(ctx, request{
		method: http.MethodPost,
		path:   booksPath,
		token:  token,
		form:   bookForm(in),
	}, &book)
	return book, err
}

// Update modifies a book. Unset fields are omitted from the form.
func (b *BooksClient) Update(ctx context.Context, token string, id int, in library.BookInput) (library.Book, error) {
	var book library.Book
	err := b.client.do(ctx, request{
		method: http.MethodPut,
		path:   bookPath(id),
		token:  token,
		form:   bookForm(in),
	}, &book)
	return book, err
}

// Delete removes a book.
func (b *BooksClient) Delete(ctx context.Context, token string, id int) error {
	return b.client.do(ctx, request{method: http.MethodDelete, path: bookPath(id), token: token}, nil)
}

func bookPath(id int) string {
	return fmt.Sprintf("%s/%d", booksPath, id)
}

// bookForm converts a BookInput to the multipart form the backend expects:
// numbers as strings, the cover as the "imagen" part, empty fields omitted.
func bookForm(in library.BookInput) *multipartForm {
	fields := map[string]string{}
	if in.Title != "" {
		fields["Titulo"] = in.Title
	}
	if in.ISBN != "" {
		fields["ISBN"] = in.ISBN
	}
	if in.Year != 0 {
		fields["AnioPublicacion"] = strconv.Itoa(in.Year)
	}
	if in.Stock != nil {
		fields["Stock"] = strconv.Itoa(*in.Stock)
	}
	if in.AuthorID != 0 {
		fields["AutorID"] = strconv.Itoa(in.AuthorID)
	}
	if in.CategoryID != 0 {
		fields["CategoriaID"] = strconv.Itoa(in.CategoryID)
	}

	form := &multipartForm{fields: fields}
	if in.Cover != nil {
		form.fileName = "imagen"
		form.filename = in.Cover.Filename
		form.file = in.Cover.Content
	}
	return form
}
