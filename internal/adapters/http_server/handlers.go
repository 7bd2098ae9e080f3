package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"alx_travel/internal/app"
	"alx_travel/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/api/v1/health", h.health)

	s.mux.Post("/api/v1/listings", h.createListing)
	s.mux.Get("/api/v1/listings", h.listListings)
	s.mux.Get("/api/v1/listings/{id}", h.getListing)
	s.mux.Put("/api/v1/listings/{id}", h.updateListing)
	s.mux.Delete("/api/v1/listings/{id}", h.deleteListing)
	s.mux.Get("/api/v1/listings/{id}/reviews", h.listReviews)

	s.mux.Post("/api/v1/bookings", h.createBooking)
	s.mux.Get("/api/v1/bookings", h.listBookings)
	s.mux.Get("/api/v1/bookings/{id}", h.getBooking)
	s.mux.Put("/api/v1/bookings/{id}", h.updateBooking)
	s.mux.Delete("/api/v1/bookings/{id}", h.deleteBooking)

	s.mux.Post("/api/v1/reviews", h.createReview)
	s.mux.Delete("/api/v1/reviews/{id}", h.deleteReview)
}

// ---- plumbing ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeErr maps the domain taxonomy onto HTTP statuses.
func writeErr(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", ve.Field+": "+ve.Msg)
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, domain.ErrIntegrity):
		// Application validation should have caught this; a storage CHECK
		// firing here is a defect, not a client error.
		log.Error().Err(err).Msg("storage integrity violation reached the API")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "storage constraint violated")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return false
	}
	return true
}

func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return 0, false
		}
		limit = l
	}
	return limit, true
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- health ----

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Travel listings API is running successfully!",
	})
}

// ---- listings ----

func (h *Handlers) createListing(w http.ResponseWriter, r *http.Request) {
	var in app.ListingInput
	if !decodeBody(w, r, &in) {
		return
	}
	l, err := h.C.CreateListing(r.Context(), in)
	if err != nil {
		writeErr(w, err)
		return
	}
	view, err := h.Q.GetListing(r.Context(), l.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handlers) listListings(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	out, err := h.Q.ListListings(r.Context(), limit)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	resp, err := h.Q.GetListing(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}

	etag, body := calcETagAndBody(resp)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getListing body")
	}
}

func (h *Handlers) updateListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var in app.ListingInput
	if !decodeBody(w, r, &in) {
		return
	}
	if _, err := h.C.UpdateListing(r.Context(), id, in); err != nil {
		writeErr(w, err)
		return
	}
	view, err := h.Q.GetListing(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) deleteListing(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteListing(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- bookings ----

type bookingRequest struct {
	ListingID       string  `json:"listing_id"`
	UserID          string  `json:"user_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	NumberOfGuests  int     `json:"number_of_guests"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"special_requests"`
}

func (br bookingRequest) toInput(w http.ResponseWriter) (app.BookingInput, bool) {
	checkIn, err := time.Parse(domain.DateLayout, br.CheckInDate)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "check_in_date: must be a date in YYYY-MM-DD form")
		return app.BookingInput{}, false
	}
	checkOut, err := time.Parse(domain.DateLayout, br.CheckOutDate)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "check_out_date: must be a date in YYYY-MM-DD form")
		return app.BookingInput{}, false
	}
	return app.BookingInput{
		ListingID:       br.ListingID,
		UserID:          br.UserID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  br.NumberOfGuests,
		TotalPrice:      br.TotalPrice,
		Status:          domain.BookingStatus(br.Status),
		SpecialRequests: br.SpecialRequests,
	}, true
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	in, ok := req.toInput(w)
	if !ok {
		return
	}
	b, err := h.C.CreateBooking(r.Context(), in)
	if err != nil {
		writeErr(w, err)
		return
	}
	view, err := h.Q.GetBooking(r.Context(), b.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	out, err := h.Q.ListBookings(r.Context(), limit)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	view, err := h.Q.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) updateBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req bookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	in, ok := req.toInput(w)
	if !ok {
		return
	}
	if _, err := h.C.UpdateBooking(r.Context(), id, in); err != nil {
		writeErr(w, err)
		return
	}
	view, err := h.Q.GetBooking(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteBooking(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- reviews ----

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var in app.ReviewInput
	if !decodeBody(w, r, &in) {
		return
	}
	rv, err := h.C.CreateReview(r.Context(), in)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"review_id": rv.ID,
		"listing":   rv.ListingID,
		"user_id":   rv.UserID,
		"rating":    rv.Rating,
		"comment":   rv.Comment,
	})
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	// Newest first; aligns with the index on (listing_id, created_at, id)
	out, err := h.Q.ListReviews(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		writeErr(w, err)
		return
	}

	etag, body := calcETagAndBody(out)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listReviews body")
	}
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteReview(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
