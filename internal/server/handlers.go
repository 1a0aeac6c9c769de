package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/internal/geo"
	"github.com/orgball2608/scenefeed/internal/scroll"
	"github.com/orgball2608/scenefeed/internal/session"
	"github.com/orgball2608/scenefeed/pkg/errors"
	"github.com/samber/lo"
)

type markerResponse struct {
	Key       string            `json:"key"`
	Label     string            `json:"label"`
	Grouped   bool              `json:"grouped"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Items     []domain.FeedItem `json:"items"`
}

type filtersResponse struct {
	Tab      domain.Tab       `json:"tab"`
	Genres   []string         `json:"genres"`
	Location string           `json:"location"`
	Date     string           `json:"date"`
	Time     domain.TimeOfDay `json:"time"`
}

type followRequest struct {
	CuratorEmail string `json:"curator_email"`
	Following    bool   `json:"following"`
}

type locationRequest struct {
	Text string `json:"text"`
}

type scrollRequest struct {
	Offset        float64 `json:"offset"`
	Viewport      float64 `json:"viewport"`
	LeadingSpacer bool    `json:"leading_spacer"`
	Children      []struct {
		Start float64 `json:"start"`
		Size  float64 `json:"size"`
	} `json:"children"`
}

func (s *Server) feed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := session.FeedRequest{Tab: domain.Tab(q.Get("tab"))}

	if q.Has("genres") {
		req.Genres = splitList(q.Get("genres"))
	}
	if q.Has("location") {
		req.Location = lo.ToPtr(q.Get("location"))
	}
	if q.Has("date") {
		req.Date = lo.ToPtr(domain.ParseDateFilter(q.Get("date"), s.config.Location()))
	}
	if q.Has("time") {
		tod := domain.TimeOfDay(q.Get("time"))
		if !tod.Valid() {
			s.writeError(w, errors.Wrap(errors.ErrInvalidInput, "time must be all, morning, afternoon, evening or night"))
			return
		}
		req.Time = &tod
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			s.writeError(w, errors.Wrap(errors.ErrInvalidInput, "offset must be a non-negative integer"))
			return
		}
		req.Offset = offset
	}

	page, err := s.session.Feed(r.Context(), s.visitor(w, r), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) mapView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	content := geo.ContentType(q.Get("type"))
	switch content {
	case "":
		content = geo.ContentEvents
	case geo.ContentEvents, geo.ContentMoments:
	default:
		s.writeError(w, errors.Wrap(errors.ErrInvalidInput, "type must be events or moments"))
		return
	}

	markers, err := s.session.Map(r.Context(), s.visitor(w, r), geo.Query{
		Content:    content,
		Categories: splitList(q.Get("categories")),
		Location:   q.Get("location"),
		Date:       geo.DateBucket(q.Get("date")),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, lo.Map(markers, func(m geo.Marker, _ int) markerResponse {
		return markerResponse{
			Key:       m.Key,
			Label:     m.Label(),
			Grouped:   m.Grouped(),
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
			Items:     m.Items,
		}
	}))
}

func (s *Server) filters(w http.ResponseWriter, r *http.Request) {
	state := s.session.Filters(s.visitor(w, r))

	date := string(state.DateFilter.Bucket)
	if state.DateFilter.Day != nil {
		date = state.DateFilter.Day.Format(time.DateOnly)
	}

	s.writeJSON(w, http.StatusOK, filtersResponse{
		Tab:      state.ActiveTab,
		Genres:   lo.Ternary(state.SelectedGenres == nil, []string{}, state.SelectedGenres),
		Location: state.LocationFilter,
		Date:     date,
		Time:     state.SelectedTime,
	})
}

func (s *Server) location(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrInvalidInput, "invalid location body"))
		return
	}

	s.session.SetLocation(s.visitor(w, r), req.Text)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) scroll(w http.ResponseWriter, r *http.Request) {
	var req scrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrInvalidInput, "invalid scroll body"))
		return
	}

	layout := scroll.Layout{
		Offset:        req.Offset,
		Viewport:      req.Viewport,
		LeadingSpacer: req.LeadingSpacer,
	}
	for _, c := range req.Children {
		layout.Children = append(layout.Children, scroll.Span{Start: c.Start, Size: c.Size})
	}

	s.writeJSON(w, http.StatusOK, s.session.Scroll(s.visitor(w, r), layout))
}

func (s *Server) follow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrInvalidInput, "invalid follow body"))
		return
	}

	curator := strings.ToLower(strings.TrimSpace(req.CuratorEmail))
	if err := s.session.Follow(r.Context(), viewerEmail(r), curator, req.Following); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) toggleSaved(w http.ResponseWriter, r *http.Request) {
	saved, err := s.session.ToggleSave(r.Context(), viewerEmail(r), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}

func splitList(raw string) []string {
	return lo.Compact(lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}
