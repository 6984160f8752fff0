package httpx

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/biblionet/ui-api/internal/adapters/backend"
	"github.com/biblionet/ui-api/internal/domain/library"
	apperrors "github.com/biblionet/ui-api/internal/errors"
)

// maxCoverUpload bounds the in-memory size of a book cover upload.
const maxCoverUpload = 5 << 20

// BookHandlers proxies the book catalog endpoints to the backend, forwarding
// the session token of the caller.
type BookHandlers struct {
	Svc *backend.BooksClient
}

// List returns the catalog, optionally filtered by title.
// GET /api/library/books?titulo=<filter>.
func (h *BookHandlers) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.Svc.List(r.Context(), sessionToken(r), r.URL.Query().Get("titulo"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, books)
}

// GetByID returns a single book.
// GET /api/library/books/{id}.
func (h *BookHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	book, err := h.Svc.Get(r.Context(), sessionToken(r), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, book)
}

// Create adds a book from a multipart form, passing the cover image through.
// POST /api/library/books.
func (h *BookHandlers) Create(w http.ResponseWriter, r *http.Request) {
	in, err := bookInputFromForm(r)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	book, err := h.Svc.Create(r.Context(), sessionToken(r), in)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, book)
}

// Update modifies a book. Fields absent from the form stay unchanged.
// PUT /api/library/books/{id}.
func (h *BookHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	in, err := bookInputFromForm(r)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	book, err := h.Svc.Update(r.Context(), sessionToken(r), id, in)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, book)
}

// Delete removes a book.
// DELETE /api/library/books/{id}.
func (h *BookHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), sessionToken(r), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// bookInputFromForm reads a BookInput from a multipart form. The cover part
// is optional.
func bookInputFromForm(r *http.Request) (library.BookInput, error) {
	if err := r.ParseMultipartForm(maxCoverUpload); err != nil {
		return library.BookInput{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid multipart form")
	}

	in := library.BookInput{
		Title: r.FormValue("Titulo"),
		ISBN:  r.FormValue("ISBN"),
	}

	var err error
	if in.Year, err = formInt(r, "AnioPublicacion"); err != nil {
		return library.BookInput{}, err
	}
	if in.AuthorID, err = formInt(r, "AutorID"); err != nil {
		return library.BookInput{}, err
	}
	if in.CategoryID, err = formInt(r, "CategoriaID"); err != nil {
		return library.BookInput{}, err
	}
	if v := r.FormValue("Stock"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return library.BookInput{}, apperrors.ValidationField("Stock", "must be a number")
		}
		in.Stock = &n
	}

	cover, err := coverFromForm(r)
	if err != nil {
		return library.BookInput{}, err
	}
	in.Cover = cover
	return in, nil
}

func formInt(r *http.Request, field string) (int, error) {
	v := r.FormValue(field)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperrors.ValidationField(field, "must be a number")
	}
	return n, nil
}

func coverFromForm(r *http.Request) (*library.Upload, error) {
	file, header, err := r.FormFile("imagen")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.ValidationField("imagen", "unreadable file part")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxCoverUpload+1))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "read cover upload")
	}
	if len(content) > maxCoverUpload {
		return nil, apperrors.ValidationField("imagen", "file too large")
	}
	return &library.Upload{Filename: header.Filename, Content: content}, nil
}
