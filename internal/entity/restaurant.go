package entity

import "fmt"

// SupportOption is a capability flag advertised by a restaurant.
type SupportOption string

// Known support options in upstream REST-id form.
const (
	SupportDelivery       SupportOption = "Delivery"
	SupportPickup         SupportOption = "Pickup"
	SupportVouchers       SupportOption = "Vouchers"
	SupportStampCards     SupportOption = "StampCards"
	SupportDiscounts      SupportOption = "Discounts"
	SupportProductRemarks SupportOption = "ProductRemarks"
	SupportOnlinePayments SupportOption = "OnlinePayments"
	SupportTipping        SupportOption = "Tipping"
)

// PaymentMethod identifies a payment option accepted by a restaurant.
type PaymentMethod string

// Indicator is an upstream marker flag such as IsNew or IsTestRestaurant.
type Indicator string

// SupportOptionFromKey converts an upstream camelCase key ("stampCards") into
// its REST-id form ("StampCards").
func SupportOptionFromKey(key string) SupportOption {
	return SupportOption(upperFirst(key))
}

// PaymentMethodFromKey converts an upstream payment key into REST-id form.
func PaymentMethodFromKey(key string) PaymentMethod {
	return PaymentMethod(upperFirst(key))
}

// IndicatorFromKey converts an upstream indicator key into REST-id form.
func IndicatorFromKey(key string) Indicator {
	return Indicator(upperFirst(key))
}

// Shipping type keys used by the upstream shippingInfo object.
const (
	ShippingTypeDelivery = "delivery"
	ShippingTypePickup   = "pickup"
)

// Rating holds the public score of a restaurant.
type Rating struct {
	Votes int     `json:"votes"`
	Score float64 `json:"score"`
}

// Brand carries the display name of a restaurant brand.
type Brand struct {
	Name       string `json:"name"`
	BranchName string `json:"branch_name,omitempty"`
}

// Location describes where a restaurant is situated. Upstream either sends a
// combined street address or separate name/number fields.
type Location struct {
	StreetAddress string  `json:"street_address,omitempty"`
	StreetName    string  `json:"street_name,omitempty"`
	StreetNumber  string  `json:"street_number,omitempty"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Timezone      string  `json:"timezone"`
}

// Address returns the street address, assembling it from name and number when
// no combined value is present.
func (l Location) Address() string {
	if l.StreetAddress != "" {
		return l.StreetAddress
	}
	return fmt.Sprintf("%s %s", l.StreetName, l.StreetNumber)
}

// MapsLink returns a Google Maps search URL for the coordinates.
// See https://developers.google.com/maps/documentation/urls/get-started#search-examples
func (l Location) MapsLink() string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v%%2C%v", l.Lat, l.Lon)
}

// DurationRange bounds an estimated delivery duration in minutes.
type DurationRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// LowestDeliveryFee describes the cheapest fee bracket offered by a restaurant.
type LowestDeliveryFee struct {
	From int  `json:"from"`
	To   *int `json:"to,omitempty"`
	Fee  int  `json:"fee"`
}

// ShippingInfo holds delivery- or pickup-specific terms. Monetary values are in
// currency units (upstream sends cents). At most one delivery-typed entry is
// authoritative for delivery-based filters.
type ShippingInfo struct {
	Type               string             `json:"type"`
	IsOpenForOrder     bool               `json:"is_open_for_order"`
	IsOpenForPreorder  bool               `json:"is_open_for_preorder"`
	OpeningTime        string             `json:"opening_time,omitempty"`
	Duration           *int               `json:"duration,omitempty"`
	DurationRange      *DurationRange     `json:"duration_range,omitempty"`
	DeliveryFeeDefault *float64           `json:"delivery_fee_default,omitempty"`
	MinOrderValue      *float64           `json:"min_order_value,omitempty"`
	LowestDeliveryFee  *LowestDeliveryFee `json:"lowest_delivery_fee,omitempty"`
}

// IsDelivery reports whether this entry carries delivery terms.
func (s ShippingInfo) IsDelivery() bool {
	return s.Type == ShippingTypeDelivery
}

// Restaurant is the merged listing and detail record for a single restaurant.
// Instances are built once per fetch and never mutated afterwards.
type Restaurant struct {
	ID             string          `json:"id"`
	PrimarySlug    string          `json:"primary_slug"`
	Brand          Brand           `json:"brand"`
	Rating         Rating          `json:"rating"`
	Location       Location        `json:"location"`
	CuisineTypes   []CuisineType   `json:"cuisine_types"`
	Supports       []SupportOption `json:"supports"`
	ShippingInfos  []ShippingInfo  `json:"shipping_infos"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	Indicators     []Indicator     `json:"indicators"`
	PriceRange     int             `json:"price_range"`
	Popularity     int             `json:"popularity"`
	PhoneNumber    string          `json:"phone_number,omitempty"`
	DeliveryTimes  OpeningTimes    `json:"delivery_times,omitempty"`
	PickupTimes    OpeningTimes    `json:"pickup_times,omitempty"`
	// ExceptionalStatus is sent as null by the upstream API; its semantics are
	// not modeled yet, the raw value is retained when present.
	ExceptionalStatus *string `json:"exceptional_status,omitempty"`
}

// OffersDelivery reports whether any shipping entry carries delivery terms.
func (r *Restaurant) OffersDelivery() bool {
	return r.DeliveryInfo() != nil
}

// DeliveryInfo returns the first delivery-typed shipping entry, or nil when the
// restaurant does not deliver.
func (r *Restaurant) DeliveryInfo() *ShippingInfo {
	for i := range r.ShippingInfos {
		if r.ShippingInfos[i].IsDelivery() {
			return &r.ShippingInfos[i]
		}
	}
	return nil
}

// SupportsOption reports whether the restaurant advertises the given capability.
func (r *Restaurant) SupportsOption(option SupportOption) bool {
	for _, s := range r.Supports {
		if s == option {
			return true
		}
	}
	return false
}
