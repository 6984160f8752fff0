package httpx

import (
	"errors"
	"net/http"

	"github.com/biblionet/ui-api/internal/domain/nav"
)

// AdmissionHandlers answers route admission questions for the front end.
type AdmissionHandlers struct{}

type admissionRequest struct {
	// Route names a screen directly. Takes precedence over Path.
	Route string `json:"route,omitempty"`
	// Path is a browser location to match against the route table.
	Path string `json:"path,omitempty"`
}

type admissionResponse struct {
	Route      nav.RouteName `json:"route"`
	Allowed    bool          `json:"allowed"`
	RedirectTo string        `json:"redirectTo,omitempty"`
}

// Decide answers whether the current session may enter a screen, and where
// to send it otherwise.
// POST /api/nav/admission.
func (h *AdmissionHandlers) Decide(w http.ResponseWriter, r *http.Request) {
	var req admissionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Route == "" && req.Path == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New("either route or path is required"),
		})
		return
	}

	var route nav.Route
	if req.Route != "" {
		route = nav.Lookup(nav.RouteName(req.Route))
	} else {
		route = nav.Match(req.Path)
	}

	session := SessionFromContext(r.Context())
	verdict := nav.Decide(session, route.Requirement)

	resp := admissionResponse{Route: route.Name, Allowed: verdict.Allowed}
	if !verdict.Allowed {
		resp.RedirectTo = nav.Lookup(verdict.RedirectTo).Path
	}
	WriteJSON(w, http.StatusOK, resp)
}

// Routes lists the route table with each screen's access requirement, so the
// front end and the gateway agree on one source of truth.
// GET /api/nav/routes.
func (h *AdmissionHandlers) Routes(w http.ResponseWriter, r *http.Request) {
	type routeInfo struct {
		Route        nav.RouteName `json:"route"`
		Path         string        `json:"path"`
		RequiresAuth bool          `json:"requiresAuth"`
		Roles        []string      `json:"roles,omitempty"`
		GuestOnly    bool          `json:"guestOnly,omitempty"`
	}

	all := nav.Routes()
	out := make([]routeInfo, 0, len(all))
	for _, rt := range all {
		if rt.Name == nav.RouteNotFound {
			continue
		}
		info := routeInfo{
			Route:        rt.Name,
			Path:         rt.Path,
			RequiresAuth: rt.Requirement.RequiresAuth,
			GuestOnly:    rt.Requirement.GuestOnly,
		}
		for _, role := range rt.Requirement.AllowedRoles {
			info.Roles = append(info.Roles, string(role))
		}
		out = append(out, info)
	}
	WriteJSON(w, http.StatusOK, out)
}
