package internal

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/segmentio/encoding/json"
	"github.com/sirupsen/logrus"
)

const mapUnavailableMessage = "Unable to load map data. Please try refreshing the page."

// MatchObserver is told about every name the map view resolves.
type MatchObserver func(style string, kind MatchKind)

type httpServerHandlers struct {
	dataset    *Dataset
	boundaries BoundarySource
	log        *logrus.Logger
	observe    MatchObserver
}

type HttpServerOptions struct {
	Dataset    *Dataset
	Boundaries BoundarySource
	Logger     *logrus.Logger
	Observer   MatchObserver
}

func NewHttpServerHandlers(options *HttpServerOptions) *httpServerHandlers {
	s := &httpServerHandlers{
		dataset:    options.Dataset,
		boundaries: options.Boundaries,
		log:        options.Logger,
		observe:    options.Observer,
	}

	if s.observe == nil {
		s.observe = func(string, MatchKind) {}
	}

	return s
}

// resolver is built per request so each one carries its own superset policy.
func (s *httpServerHandlers) resolver(r *http.Request) *Resolver {
	return s.dataset.NewResolver(GetSupersetPolicy(r))
}

func (s *httpServerHandlers) writeJSON(w http.ResponseWriter, status int, res interface{}) {
	jsonRes, err := json.Marshal(res)

	if err != nil {
		s.log.WithError(err).Error("Unable to marshal response json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(jsonRes); err != nil {
		s.log.WithError(err).Error("Unable to write response json body")
	}
}

func (s *httpServerHandlers) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, struct {
		Error string `json:"error"`
	}{message})
}

func (s *httpServerHandlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	aliases := 0
	for _, list := range s.dataset.Aliases {
		aliases += len(list)
	}

	s.writeJSON(w, http.StatusOK, struct {
		Version   string       `json:"version"`
		Counts    []CountEntry `json:"counts"`
		Aliases   int          `json:"aliases"`
		Superset  bool         `json:"superset"`
		Endpoints []string     `json:"endpoints"`
	}{
		Version:   Version,
		Counts:    s.dataset.Counts.Entries(),
		Aliases:   aliases,
		Superset:  GetSupersetPolicy(r),
		Endpoints: []string{"/resolve/{name}", "/map", "/legend", "/cartogram", "/pie", "/nearby", "/metrics"},
	})
}

func (s *httpServerHandlers) HandleResolve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	// chi routes on the raw path only when the request carries one; otherwise
	// the parameter is already decoded.
	if r.URL.RawPath != "" {
		var err error
		name, err = url.PathUnescape(name)

		if err != nil {
			s.log.WithError(err).Debug("bad name in path")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	resolver := s.resolver(r)

	m := resolver.Lookup(name)

	if !m.Found() {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	count, _ := resolver.Count(m.Key)

	s.writeJSON(w, http.StatusOK, struct {
		Name  string    `json:"name"`
		Key   string    `json:"key"`
		Match MatchKind `json:"match"`
		Count int       `json:"count"`
		Label string    `json:"label"`
	}{
		Name:  name,
		Key:   m.Key,
		Match: m.Kind,
		Count: count,
		Label: ScreeningsLabel(count),
	})
}

func (s *httpServerHandlers) styleFromRequest(w http.ResponseWriter, r *http.Request) (MapStyle, bool) {
	name := r.URL.Query().Get("style")

	style, ok := MapStyleByName(name)

	if !ok {
		s.writeError(w, http.StatusBadRequest, "unknown map style "+strconv.Quote(name))
		return MapStyle{}, false
	}

	return style, true
}

func (s *httpServerHandlers) HandleMap(w http.ResponseWriter, r *http.Request) {
	style, ok := s.styleFromRequest(w, r)

	if !ok {
		return
	}

	data, err := s.boundaries.Fetch(r.Context())

	if err != nil {
		s.log.WithError(err).Error("Unable to load boundary data")
		s.writeError(w, http.StatusBadGateway, mapUnavailableMessage)
		return
	}

	fc, err := DecodeFeatureCollection(data)

	if err != nil {
		s.log.WithError(err).Error("Boundary data is not a feature collection")
		s.writeError(w, http.StatusBadGateway, mapUnavailableMessage)
		return
	}

	view, err := RenderMap(fc, s.dataset, style, GetSupersetPolicy(r))

	if err != nil {
		s.log.WithError(err).Error("Unable to render map")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, f := range view.Features {
		s.observe(style.Name, f.Match)
	}

	s.log.WithFields(logrus.Fields{
		"style":      style.Name,
		"features":   len(view.Features),
		"unresolved": view.Unresolved,
	}).Debug("Rendered map")

	s.writeJSON(w, http.StatusOK, view)
}

func (s *httpServerHandlers) HandleLegend(w http.ResponseWriter, r *http.Request) {
	style, ok := s.styleFromRequest(w, r)

	if !ok {
		return
	}

	counts := s.dataset.ForStyle(style).Counts

	scale, err := style.Scale(counts)

	if err != nil {
		s.log.WithError(err).Error("Unable to build color scale")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	from, to := scale.Stops()

	s.writeJSON(w, http.StatusOK, struct {
		Style    string        `json:"style"`
		Entries  []LegendEntry `json:"entries"`
		Gradient Gradient      `json:"gradient"`
	}{
		Style:    style.Name,
		Entries:  BuildLegend(counts, scale),
		Gradient: Gradient{From: from, To: to, LowLabel: "Less", HighLabel: "More"},
	})
}

func (s *httpServerHandlers) HandleCartogram(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, struct {
		Groups []CartogramGroup `json:"groups"`
	}{BuildCartogram(s.dataset.Locations)})
}

func (s *httpServerHandlers) HandlePie(w http.ResponseWriter, r *http.Request) {
	slices, err := BuildPie(s.dataset.WorkAreas)

	if err != nil {
		s.log.WithError(err).Error("Unable to build pie")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		Radius      float64    `json:"radius"`
		HoverRadius float64    `json:"hover_radius"`
		Slices      []PieSlice `json:"slices"`
	}{pieOuterRadius, pieHoverRadius, slices})
}

func (s *httpServerHandlers) HandleNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, lon, err := parseCoordinates(q.Get("lat"), q.Get("lon"))

	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := 0

	if v := q.Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)

		if err != nil || limit < 0 {
			s.writeError(w, http.StatusBadRequest, "invalid limit "+strconv.Quote(v))
			return
		}
	}

	s.writeJSON(w, http.StatusOK, struct {
		NearLatitude  float64          `json:"near latitude"`
		NearLongitude float64          `json:"near longitude"`
		Nearby        []NearbyLocation `json:"nearby"`
	}{lat, lon, NearbyLocations(s.dataset.Locations, lat, lon, limit)})
}

// Routes mounts every service endpoint on r.
func (s *httpServerHandlers) Routes(r chi.Router) {
	r.Get("/", s.HandleIndex)

	r.Group(func(r chi.Router) {
		r.Get("/resolve/{name}", s.HandleResolve)
		r.Get("/map", s.HandleMap)
		r.Get("/legend", s.HandleLegend)
		r.Get("/cartogram", s.HandleCartogram)
		r.Get("/pie", s.HandlePie)
		r.Get("/nearby", s.HandleNearby)
	})
}
