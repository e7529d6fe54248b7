package server

import (
	"encoding/json"
	"net/http"

	"github.com/katalvlaran/gridroute/compare"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/render"
)

// Controller binds HTTP requests to comparison runs.
type Controller struct {
	compareOpts  []compare.Option
	errorHandler ErrorHandler
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithErrorHandler injects an ErrorHandler into the controller.
func WithErrorHandler(h ErrorHandler) ControllerOption {
	return func(c *Controller) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithCompareOptions forwards options to every compare.Run call.
func WithCompareOptions(opts ...compare.Option) ControllerOption {
	return func(c *Controller) {
		c.compareOpts = append(c.compareOpts, opts...)
	}
}

// NewController creates a controller with the default error handler.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{errorHandler: DefaultErrorHandler}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Routes returns every route served by the controller.
func (c *Controller) Routes() Routes {
	return Routes{
		{"Compare", http.MethodPost, "/compare", c.Compare},
		{"CompareDefault", http.MethodGet, "/compare/default", c.CompareDefault},
		{"Healthz", http.MethodGet, "/healthz", c.Healthz},
	}
}

// Compare - run both strategies on the map in the request body.
// ?format=geojson switches the response to a GeoJSON FeatureCollection.
func (c *Controller) Compare(w http.ResponseWriter, r *http.Request) {
	req := CompareRequest{}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err})
		return
	}
	if err := AssertCompareRequestRequired(req); err != nil {
		c.errorHandler(w, r, err)
		return
	}
	g, err := grid.Parse(req.Grid)
	if err != nil {
		c.errorHandler(w, r, err)
		return
	}
	c.respond(w, r, g)
}

// CompareDefault - run both strategies on the reference city map.
func (c *Controller) CompareDefault(w http.ResponseWriter, r *http.Request) {
	c.respond(w, r, grid.MustParse(grid.DefaultCity...))
}

// Healthz - liveness probe.
func (c *Controller) Healthz(w http.ResponseWriter, _ *http.Request) {
	EncodeJSONResponse(map[string]string{"status": "ok"}, http.StatusOK, w)
}

func (c *Controller) respond(w http.ResponseWriter, r *http.Request, g *grid.Grid) {
	rep, err := compare.Run(g, c.compareOpts...)
	if err != nil {
		c.errorHandler(w, r, err)
		return
	}
	if r.URL.Query().Get("format") == "geojson" {
		body, err := render.GeoJSON(rep)
		if err != nil {
			c.errorHandler(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}
	EncodeJSONResponse(newCompareResult(rep), http.StatusOK, w)
}
