package handler

import (
	"time"

	"yelocar/internal/domain/entity"
	"yelocar/internal/usecase"
)

// FilterStateDTO is the wire form of entity.FilterState. Empty labels mean "All".
type FilterStateDTO struct {
	Search      string `json:"search" query:"q"`
	Category    string `json:"category" query:"category"`
	PriceBucket string `json:"priceBucket" query:"price"`
	Tag         string `json:"tag" query:"tag"`
}

func newFilterStateDTO(s entity.FilterState) FilterStateDTO {
	return FilterStateDTO{
		Search:      s.SearchTerm,
		Category:    string(s.Category),
		PriceBucket: string(s.PriceBucket),
		Tag:         string(s.ActiveTag),
	}
}

// toEntity rejects labels outside the known categories, buckets and tags.
func (d FilterStateDTO) toEntity() (entity.FilterState, bool) {
	category, ok := entity.ParseCategory(d.Category)
	if !ok {
		return entity.FilterState{}, false
	}
	bucket, ok := entity.ParsePriceBucket(d.PriceBucket)
	if !ok {
		return entity.FilterState{}, false
	}
	tag, ok := entity.ParseTag(d.Tag)
	if !ok {
		return entity.FilterState{}, false
	}

	return entity.FilterState{
		SearchTerm:  d.Search,
		Category:    category,
		PriceBucket: bucket,
		ActiveTag:   tag,
	}, true
}

type FeatureResponse struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type CarResponse struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          int64             `json:"price"`
	Discount       int64             `json:"discount,omitempty"`
	EffectivePrice int64             `json:"effectivePrice"`
	Category       string            `json:"category"`
	Features       []FeatureResponse `json:"features"`
	ImageSrc       string            `json:"imageSrc"`
	ImageAlt       string            `json:"imageAlt"`
	FuelType       string            `json:"fuelType"`
	Mileage        string            `json:"mileage"`
	Transmission   string            `json:"transmission"`
}

func newCarResponse(e *entity.CatalogEntry) CarResponse {
	features := make([]FeatureResponse, 0, len(e.Features))
	for _, f := range e.Features {
		features = append(features, FeatureResponse{Label: f.Label, Icon: string(f.Icon)})
	}

	return CarResponse{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		Price:          e.Price,
		Discount:       e.Discount,
		EffectivePrice: e.EffectivePrice(),
		Category:       string(e.Category),
		Features:       features,
		ImageSrc:       e.ImageSrc,
		ImageAlt:       e.ImageAlt,
		FuelType:       e.FuelType,
		Mileage:        e.Mileage,
		Transmission:   e.Transmission,
	}
}

type SearchResponse struct {
	Cars              []CarResponse  `json:"cars"`
	State             FilterStateDTO `json:"state"`
	Total             int            `json:"total"`
	Matched           int            `json:"matched"`
	ActiveFilterCount int            `json:"activeFilterCount"`
	Empty             bool           `json:"empty"`
	ResetState        FilterStateDTO `json:"resetState"`
}

func newSearchResponse(r *usecase.SearchResult) SearchResponse {
	cars := make([]CarResponse, 0, len(r.Entries))
	for _, e := range r.Entries {
		cars = append(cars, newCarResponse(e))
	}

	return SearchResponse{
		Cars:              cars,
		State:             newFilterStateDTO(r.State),
		Total:             r.Total,
		Matched:           len(cars),
		ActiveFilterCount: r.ActiveFilterCount,
		Empty:             r.Empty,
		ResetState:        newFilterStateDTO(r.ResetState),
	}
}

type FacetsResponse struct {
	Categories   []entity.Category    `json:"categories"`
	PriceBuckets []entity.PriceBucket `json:"priceBuckets"`
	TrendingTags []entity.Tag         `json:"trendingTags"`
}

type ProfileResponse struct {
	UID         string     `json:"uid"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	PhoneNumber string     `json:"phoneNumber"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// newProfileResponse omits zero timestamps, which only placeholders carry.
func newProfileResponse(p *entity.UserProfile) *ProfileResponse {
	if p == nil {
		return nil
	}
	resp := &ProfileResponse{
		UID:         p.UID,
		Email:       p.Email,
		FullName:    p.FullName,
		PhoneNumber: p.PhoneNumber,
	}
	if !p.CreatedAt.IsZero() {
		createdAt := p.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

type AuthResponse struct {
	UID          string           `json:"uid"`
	Email        string           `json:"email"`
	IDToken      string           `json:"idToken"`
	RefreshToken string           `json:"refreshToken,omitempty"`
	ExpiresIn    int64            `json:"expiresIn"` // seconds
	Profile      *ProfileResponse `json:"profile"`
}

func newAuthResponse(out *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		UID:          out.Identity.UID,
		Email:        out.Identity.Email,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    int64(out.ExpiresIn.Seconds()),
		Profile:      newProfileResponse(out.Profile),
	}
}

type ContactResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type ConnectivityResponse struct {
	Online bool `json:"online"`
}
