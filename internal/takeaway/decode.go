package takeaway

import (
	"log"
	"strconv"
	"time"

	"github.com/lunchmates/restaurant-picker/internal/entity"
)

// Wire shapes of the upstream listing and detail endpoints. Only the subset
// needed for filtering and message formatting is decoded; menu, colophon and
// payment details beyond their method names are left out on purpose.

type listResponse struct {
	Restaurants map[string]listingPayload `json:"restaurants"`
}

type listingPayload struct {
	ID             string                     `json:"id"`
	PrimarySlug    string                     `json:"primarySlug"`
	Indicators     []string                   `json:"indicators"`
	PriceRange     int                        `json:"priceRange"`
	Popularity     int                        `json:"popularity"`
	Brand          brandPayload               `json:"brand"`
	CuisineTypes   []string                   `json:"cuisineTypes"`
	Rating         ratingPayload              `json:"rating"`
	Location       locationPayload            `json:"location"`
	Supports       []string                   `json:"supports"`
	ShippingInfo   map[string]shippingPayload `json:"shippingInfo"`
	PaymentMethods []string                   `json:"paymentMethods"`
}

type brandPayload struct {
	Name       string `json:"name"`
	BranchName string `json:"branchName"`
}

type ratingPayload struct {
	Votes int     `json:"votes"`
	Score float64 `json:"score"`
}

type locationPayload struct {
	StreetAddress string  `json:"streetAddress"`
	StreetName    string  `json:"streetName"`
	StreetNumber  string  `json:"streetNumber"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	TimeZone      string  `json:"timeZone"`
}

type durationRangePayload struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type lowestDeliveryFeePayload struct {
	From int  `json:"from"`
	To   *int `json:"to"`
	Fee  int  `json:"fee"`
}

type shippingPayload struct {
	IsOpenForOrder     bool                      `json:"isOpenForOrder"`
	IsOpenForPreorder  bool                      `json:"isOpenForPreorder"`
	OpeningTime        string                    `json:"openingTime"`
	Duration           *int                      `json:"duration"`
	DurationRange      *durationRangePayload     `json:"durationRange"`
	DeliveryFeeDefault *float64                  `json:"deliveryFeeDefault"`
	MinOrderValue      *float64                  `json:"minOrderValue"`
	LowestDeliveryFee  *lowestDeliveryFeePayload `json:"lowestDeliveryFee"`
}

type timeframePayload struct {
	Start          int    `json:"start"`
	End            int    `json:"end"`
	FormattedStart string `json:"formattedStart"`
	FormattedEnd   string `json:"formattedEnd"`
}

type schedulePayload struct {
	Times             map[string][]timeframePayload `json:"times"`
	IsOpenForOrder    bool                          `json:"isOpenForOrder"`
	IsOpenForPreorder bool                          `json:"isOpenForPreorder"`
	DurationRange     *durationRangePayload         `json:"durationRange"`
}

type detailResponse struct {
	RestaurantID          string           `json:"restaurantId"`
	PrimarySlug           string           `json:"primarySlug"`
	Brand                 brandPayload     `json:"brand"`
	Rating                ratingPayload    `json:"rating"`
	Location              locationPayload  `json:"location"`
	Delivery              *schedulePayload `json:"delivery"`
	Pickup                *schedulePayload `json:"pickup"`
	Supports              []string         `json:"supports"`
	RestaurantPhoneNumber string           `json:"restaurantPhoneNumber"`
	ExceptionalStatus     *string          `json:"exceptionalStatus"`
}

func (p listingPayload) toEntity() entity.Restaurant {
	cuisines := make([]entity.CuisineType, 0, len(p.CuisineTypes))
	for _, id := range p.CuisineTypes {
		cuisines = append(cuisines, entity.NewCuisineType(id))
	}

	supports := make([]entity.SupportOption, 0, len(p.Supports))
	for _, s := range p.Supports {
		supports = append(supports, entity.SupportOptionFromKey(s))
	}

	payments := make([]entity.PaymentMethod, 0, len(p.PaymentMethods))
	for _, m := range p.PaymentMethods {
		payments = append(payments, entity.PaymentMethodFromKey(m))
	}

	indicators := make([]entity.Indicator, 0, len(p.Indicators))
	for _, i := range p.Indicators {
		indicators = append(indicators, entity.IndicatorFromKey(i))
	}

	infos := make([]entity.ShippingInfo, 0, len(p.ShippingInfo))
	// delivery before pickup so the first delivery-typed entry is stable
	for _, key := range []string{entity.ShippingTypeDelivery, entity.ShippingTypePickup} {
		if sp, ok := p.ShippingInfo[key]; ok {
			infos = append(infos, sp.toEntity(key))
		}
	}
	for key, sp := range p.ShippingInfo {
		if key == entity.ShippingTypeDelivery || key == entity.ShippingTypePickup {
			continue
		}
		infos = append(infos, sp.toEntity(key))
	}

	return entity.Restaurant{
		ID:             p.ID,
		PrimarySlug:    p.PrimarySlug,
		Brand:          entity.Brand{Name: p.Brand.Name, BranchName: p.Brand.BranchName},
		Rating:         entity.Rating(p.Rating),
		Location:       p.Location.toEntity(),
		CuisineTypes:   cuisines,
		Supports:       supports,
		ShippingInfos:  infos,
		PaymentMethods: payments,
		Indicators:     indicators,
		PriceRange:     p.PriceRange,
		Popularity:     p.Popularity,
	}
}

func (p locationPayload) toEntity() entity.Location {
	return entity.Location{
		StreetAddress: p.StreetAddress,
		StreetName:    p.StreetName,
		StreetNumber:  p.StreetNumber,
		City:          p.City,
		Country:       p.Country,
		Lat:           p.Lat,
		Lon:           p.Lng,
		Timezone:      p.TimeZone,
	}
}

func (p shippingPayload) toEntity(shippingType string) entity.ShippingInfo {
	info := entity.ShippingInfo{
		Type:              shippingType,
		IsOpenForOrder:    p.IsOpenForOrder,
		IsOpenForPreorder: p.IsOpenForPreorder,
		OpeningTime:       p.OpeningTime,
		Duration:          p.Duration,
	}
	if p.DurationRange != nil {
		info.DurationRange = &entity.DurationRange{Min: p.DurationRange.Min, Max: p.DurationRange.Max}
	}
	// monetary values arrive in cents
	if p.DeliveryFeeDefault != nil {
		fee := *p.DeliveryFeeDefault / 100
		info.DeliveryFeeDefault = &fee
	}
	if p.MinOrderValue != nil {
		value := *p.MinOrderValue / 100
		info.MinOrderValue = &value
	}
	if p.LowestDeliveryFee != nil {
		info.LowestDeliveryFee = &entity.LowestDeliveryFee{
			From: p.LowestDeliveryFee.From,
			To:   p.LowestDeliveryFee.To,
			Fee:  p.LowestDeliveryFee.Fee,
		}
	}
	return info
}

// convertTimes converts an upstream per-weekday schedule (keys "0"=Sunday
// through "6"=Saturday) into OpeningTimes. Frames with unparseable weekdays
// or spans beyond a single midnight crossing are invalid input and dropped.
func convertTimes(slug string, times map[string][]timeframePayload) entity.OpeningTimes {
	if len(times) == 0 {
		return nil
	}
	out := entity.OpeningTimes{}
	for key, frames := range times {
		day, err := strconv.Atoi(key)
		if err != nil || day < 0 || day > 6 {
			log.Printf("takeaway: slug=%s dropping schedule for unknown weekday %q", slug, key)
			continue
		}
		weekday := time.Weekday(day)
		for _, fp := range frames {
			frame := entity.Timeframe{
				Start:          fp.Start,
				End:            fp.End,
				FormattedStart: fp.FormattedStart,
				FormattedEnd:   fp.FormattedEnd,
			}
			if !frame.Valid() {
				log.Printf("takeaway: slug=%s dropping invalid timeframe %d-%d on weekday %s", slug, frame.Start, frame.End, weekday)
				continue
			}
			out[weekday] = append(out[weekday], frame)
		}
	}
	return out
}

// RestaurantDetail carries the per-restaurant fields only available from the
// detail endpoint.
type RestaurantDetail struct {
	DeliveryTimes         entity.OpeningTimes
	PickupTimes           entity.OpeningTimes
	DeliveryDurationRange *entity.DurationRange
	PhoneNumber           string
	ExceptionalStatus     *string
}

func (d detailResponse) toDetail(slug string) *RestaurantDetail {
	detail := &RestaurantDetail{
		PhoneNumber:       d.RestaurantPhoneNumber,
		ExceptionalStatus: d.ExceptionalStatus,
	}
	if d.Delivery != nil {
		detail.DeliveryTimes = convertTimes(slug, d.Delivery.Times)
		if d.Delivery.DurationRange != nil {
			detail.DeliveryDurationRange = &entity.DurationRange{
				Min: d.Delivery.DurationRange.Min,
				Max: d.Delivery.DurationRange.Max,
			}
		}
	}
	if d.Pickup != nil {
		detail.PickupTimes = convertTimes(slug, d.Pickup.Times)
	}
	return detail
}

// MergeInto flattens the detail fields into a copy of the listing record.
func (d *RestaurantDetail) MergeInto(listing entity.Restaurant) entity.Restaurant {
	merged := listing
	merged.DeliveryTimes = d.DeliveryTimes
	merged.PickupTimes = d.PickupTimes
	merged.PhoneNumber = d.PhoneNumber
	merged.ExceptionalStatus = d.ExceptionalStatus
	return merged
}
