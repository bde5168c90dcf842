package bot

import (
	"fmt"
	"strings"

	"github.com/lunchmates/restaurant-picker/internal/entity"
)

// FormatRestaurant renders one restaurant as a MarkdownV2 message block.
func FormatRestaurant(r *entity.Restaurant) string {
	var b strings.Builder

	name := r.Brand.Name
	if r.Brand.BranchName != "" {
		name = fmt.Sprintf("%s (%s)", name, r.Brand.BranchName)
	}
	fmt.Fprintf(&b, "*%s*\n", EscapeMarkdown(name))

	fmt.Fprintf(&b, "Cuisines: %s\n", EscapeMarkdown(cuisineLine(r)))

	if delivery := r.DeliveryInfo(); delivery != nil {
		fmt.Fprintf(&b, "Delivery: %s\n", EscapeMarkdown(deliveryLine(delivery)))
	}

	fmt.Fprintf(&b, "%s⭐ \\(%d votes\\)\n", EscapeMarkdown(fmt.Sprintf("%v", r.Rating.Score)), r.Rating.Votes)

	if len(r.PaymentMethods) > 0 {
		methods := make([]string, 0, len(r.PaymentMethods))
		for _, m := range r.PaymentMethods {
			methods = append(methods, string(m))
		}
		fmt.Fprintf(&b, "Payment: %s\n", EscapeMarkdown(strings.Join(methods, ", ")))
	}

	fmt.Fprintf(&b, "%s \\(%s\\)\n", EscapeMarkdown(r.Location.Address()), EscapeMarkdown(r.Location.City))
	fmt.Fprintf(&b, "[Google Maps](%s)", EscapeMarkdown(r.Location.MapsLink()))

	return b.String()
}

// FormatRestaurants joins the restaurant blocks with a visual separator.
func FormatRestaurants(restaurants []entity.Restaurant) string {
	blocks := make([]string, 0, len(restaurants))
	for i := range restaurants {
		blocks = append(blocks, FormatRestaurant(&restaurants[i]))
	}
	separator := fmt.Sprintf("\n%s\n\n", EscapeMarkdown("================================="))
	return strings.Join(blocks, separator)
}

func cuisineLine(r *entity.Restaurant) string {
	names := make([]string, 0, len(r.CuisineTypes))
	for _, cuisine := range r.CuisineTypes {
		if name := cuisine.Name(); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "/"
	}
	return strings.Join(names, ", ")
}

func deliveryLine(info *entity.ShippingInfo) string {
	var parts []string
	if info.Duration != nil {
		duration := fmt.Sprintf("%dmin", *info.Duration)
		if info.DurationRange != nil {
			duration += fmt.Sprintf(" (%d - %d)", info.DurationRange.Min, info.DurationRange.Max)
		}
		parts = append(parts, duration)
	}
	if info.DeliveryFeeDefault != nil {
		parts = append(parts, fmt.Sprintf("fee %v€", *info.DeliveryFeeDefault))
	}
	if info.MinOrderValue != nil {
		parts = append(parts, fmt.Sprintf("min order %v€", *info.MinOrderValue))
	}
	if len(parts) == 0 {
		return "/"
	}
	return strings.Join(parts, ", ")
}
