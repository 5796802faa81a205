package datastructure

import (
	"errors"
	"math"
	"strings"

	"lintang/randcoord/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// Validate checks the latitude/longitude bounds and returns an ErrInvalidFormat error
// carrying the translated validator messages.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return domain.WrapErrorf(nil, domain.ErrInvalidFormat, "latitude and longitude must be numbers")
	}
	return ValidateStruct(c)
}

// DistanceRange is a great-circle distance interval in kilometers. MinKm == MaxKm is a fixed distance.
type DistanceRange struct {
	MinKm float64 `json:"min_km"`
	MaxKm float64 `json:"max_km"`
}

func NewDistanceRange(minKm, maxKm float64) (DistanceRange, error) {
	r := DistanceRange{MinKm: minKm, MaxKm: maxKm}
	if err := r.Validate(); err != nil {
		return DistanceRange{}, err
	}
	return r, nil
}

func (r DistanceRange) Validate() error {
	if !isFinite(r.MinKm) || !isFinite(r.MaxKm) {
		return domain.WrapErrorf(nil, domain.ErrInvalidRange, "Distances must be finite numbers.")
	}
	if r.MinKm < 0 || r.MaxKm < 0 {
		return domain.WrapErrorf(nil, domain.ErrInvalidRange, "Distances must be non-negative.")
	}
	if r.MinKm > r.MaxKm {
		return domain.WrapErrorf(nil, domain.ErrInvalidRange, "Minimum distance cannot be greater than maximum distance.")
	}
	return nil
}

func (r DistanceRange) IsFixed() bool {
	return r.MinKm == r.MaxKm
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

var (
	validate   = validator.New()
	translator ut.Translator
)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, translator)
}

// ValidateStruct runs the validator tags of s. Validation failures come back as a single
// ErrInvalidFormat error whose message joins the English translations.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.WrapErrorf(err, domain.ErrInternalServerError, "%s", domain.MessageInternalServerError)
	}
	msgs := TranslateValidationErrors(verrs)
	return domain.WrapErrorf(err, domain.ErrInvalidFormat, "%s", strings.Join(msgs, "; "))
}

func TranslateValidationErrors(verrs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Translate(translator))
	}
	return msgs
}
