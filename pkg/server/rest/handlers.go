package rest

import (
	"context"
	"errors"
	"net/http"

	"lintang/randcoord/domain"
	"lintang/randcoord/pkg/datastructure"
	"lintang/randcoord/pkg/sampler"
	"lintang/randcoord/pkg/server/rest/service"
	"lintang/randcoord/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type CoordinateService interface {
	RandomCoordinate(ctx context.Context, q service.RandomCoordinateQuery) (service.RandomCoordinateResult, error)
}

type CoordinateHandler struct {
	svc          CoordinateService
	promeMetrics *metrics
}

func CoordinateRouter(r chi.Router, svc CoordinateService, m *metrics) {
	handler := &CoordinateHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/coordinates", func(r chi.Router) {
			r.Post("/random", handler.randomCoordinate)
			r.Get("/hello", handler.Hello)
		})
	})
}

// RandomCoordinateRequest is the body of POST /api/coordinates/random.
type RandomCoordinateRequest struct {
	Lat          float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon          float64 `json:"lon" validate:"gte=-180,lte=180"`
	MinKm        float64 `json:"min_km" validate:"gte=0"`
	MaxKm        float64 `json:"max_km" validate:"gte=0"`
	Mode         string  `json:"mode" validate:"omitempty,oneof=area linear"`
	Model        string  `json:"model" validate:"omitempty,oneof=ellipsoid sphere"`
	H3Resolution *int    `json:"h3_resolution" validate:"omitempty,gte=0,lte=15"`
}

func (s *RandomCoordinateRequest) Bind(r *http.Request) error {
	return nil
}

type RandomCoordinateResponse struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Bearing float64 `json:"bearing"`
	// bearing dari titik random kembali ke titik pusat
	BackBearing float64 `json:"back_bearing"`
	DistanceKm  float64 `json:"distance_km"`
	Path        string  `json:"path"`
	H3Cell      string  `json:"h3_cell,omitempty"`
	Mode        string  `json:"mode"`
	Model       string  `json:"model"`
}

func NewRandomCoordinateResponse(res service.RandomCoordinateResult) *RandomCoordinateResponse {
	return &RandomCoordinateResponse{
		Lat:         res.Coordinate.Lat,
		Lon:         res.Coordinate.Lon,
		Bearing:     util.RoundFloat(res.BearingDeg, 6),
		BackBearing: res.BackBearingDeg,
		DistanceKm:  util.RoundFloat(res.DistanceKm, 6),
		Path:        res.Path,
		H3Cell:      res.H3Cell,
		Mode:        res.Mode,
		Model:       res.Model,
	}
}

// randomCoordinate
//
//	@Summary		random coordinate di sekitar titik pusat.
//	@Description	random coordinate dengan jarak di antara min_km dan max_km dari titik pusat. mode area (default) uniform per luas, mode linear uniform per jarak. model ellipsoid (WGS84, default) atau sphere
//	@Tags			coordinates
//	@Param			body	body	RandomCoordinateRequest	true	"request body titik pusat dan range jarak"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/coordinates/random [post]
//	@Success		200	{object}	RandomCoordinateResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *CoordinateHandler) randomCoordinate(w http.ResponseWriter, r *http.Request) {
	data := &RandomCoordinateRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if err := datastructure.ValidateStruct(*data); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			render.Render(w, r, ErrValidation(err, datastructure.TranslateValidationErrors(verrs)))
			return
		}
		render.Render(w, r, ErrChi(err))
		return
	}

	mode, err := sampler.ParseMode(data.Mode)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	res, err := h.svc.RandomCoordinate(r.Context(), service.RandomCoordinateQuery{
		Center:       datastructure.NewCoordinate(data.Lat, data.Lon),
		Range:        datastructure.DistanceRange{MinKm: data.MinKm, MaxKm: data.MaxKm},
		Mode:         mode,
		Model:        data.Model,
		H3Resolution: data.H3Resolution,
	})
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.GeneratedCount.WithLabelValues(res.Mode, res.Model).Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRandomCoordinateResponse(res))
}

// Hello
//
//	@Summary		hello world.
//	@Tags			coordinates
//	@Produce		application/json
//	@Router			/coordinates/hello [get]
//	@Success		200	{string}	string
func (h *CoordinateHandler) Hello(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, "Hello, World!")
}

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, msgs []string) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  msgs,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	errText := err.Error()
	if getStatusCode(err) == http.StatusInternalServerError {
		errText = domain.MessageInternalServerError
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      errText,
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *domain.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case domain.ErrInvalidRange, domain.ErrInvalidFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
