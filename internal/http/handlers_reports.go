package httpx

import (
	"net/http"

	"github.com/biblionet/ui-api/internal/adapters/backend"
)

// ReportHandlers proxies the reporting endpoints to the backend.
type ReportHandlers struct {
	Loans   *backend.LoansClient
	Reports *backend.ReportsClient
}

// ActiveLoans returns the active loans view.
// GET /api/library/loans/active.
func (h *ReportHandlers) ActiveLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.Loans.Active(r.Context(), sessionToken(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, loans)
}

// TopReaders returns the readers with the most loans.
// GET /api/library/reports/top-readers.
func (h *ReportHandlers) TopReaders(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Reports.TopReaders(r.Context(), sessionToken(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rows)
}

// CategoryStats returns book counts per category.
// GET /api/library/reports/categories.
func (h *ReportHandlers) CategoryStats(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Reports.CategoryStats(r.Context(), sessionToken(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rows)
}

// TopAuthors returns authors with at least min books in the catalog.
// GET /api/library/reports/top-authors?min=<n>.
func (h *ReportHandlers) TopAuthors(w http.ResponseWriter, r *http.Request) {
	min := parseIntQuery(r, "min", backend.DefaultTopAuthorsMin)
	rows, err := h.Reports.TopAuthors(r.Context(), sessionToken(r), min)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rows)
}
