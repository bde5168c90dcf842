package filter

import (
	"strings"
	"time"

	"github.com/lunchmates/restaurant-picker/internal/entity"
)

// Matches evaluates a restaurant against the filter configuration at the
// given instant. All sub-predicates must hold; the function is pure and the
// sub-predicates are independent, so evaluation order carries no meaning.
func Matches(r *entity.Restaurant, cfg Config, now time.Time) bool {
	delivery := r.DeliveryInfo()

	pickupOrDelivery := (cfg.AllowPickup && r.SupportsOption(entity.SupportPickup)) || delivery != nil

	return r.DeliveryTimes.IsOpenAt(now, cfg.IsOpenInMinutes) &&
		r.OffersDelivery() &&
		r.Rating.Votes >= cfg.MinimumRatingVotes &&
		r.Rating.Score >= cfg.MinimumRatingScore &&
		withinOrderValue(delivery, cfg.MaxOrderValue) &&
		withinDuration(delivery, cfg.MaxDuration) &&
		!cityIgnored(r, cfg.CitiesToIgnore) &&
		includesCuisine(r, cfg.CuisinesToInclude) &&
		!hasAnyCuisine(r, cfg.CuisinesToExclude) &&
		pickupOrDelivery
}

func withinOrderValue(delivery *entity.ShippingInfo, max float64) bool {
	if delivery == nil || delivery.MinOrderValue == nil {
		return true
	}
	return *delivery.MinOrderValue <= max
}

func withinDuration(delivery *entity.ShippingInfo, max int) bool {
	if delivery == nil || delivery.Duration == nil {
		return true
	}
	return *delivery.Duration <= max
}

// cityIgnored reports whether any of the ignore entries is a case-insensitive
// substring of the restaurant's city.
func cityIgnored(r *entity.Restaurant, citiesToIgnore []string) bool {
	city := strings.ToLower(r.Location.City)
	for _, ignore := range citiesToIgnore {
		if strings.Contains(city, strings.ToLower(ignore)) {
			return true
		}
	}
	return false
}

// includesCuisine holds when no inclusion list was given or at least one of
// the wanted cuisines is served by the restaurant.
func includesCuisine(r *entity.Restaurant, cuisines []string) bool {
	if len(cuisines) == 0 {
		return true
	}
	return hasAnyCuisine(r, cuisines)
}

func hasAnyCuisine(r *entity.Restaurant, cuisines []string) bool {
	for _, name := range cuisines {
		wanted := entity.NewCuisineType(name)
		for _, served := range r.CuisineTypes {
			if wanted.Matches(served) {
				return true
			}
		}
	}
	return false
}
