package catalog

// Category partitions the product catalog for display filtering.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryOperation Category = "operation"
	CategoryVisual    Category = "visual"
	CategoryAIAgent   Category = "ai-agent"
)

// Icon names the glyph rendered next to a service or product.
type Icon string

const (
	IconCPU      Icon = "cpu"
	IconVideo    Icon = "video"
	IconUsers    Icon = "users"
	IconBarChart Icon = "bar-chart"
)

// Product is one entry of the product showcase.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

// Icon maps the product category to its badge glyph.
func (p Product) Icon() Icon {
	switch p.Category {
	case CategoryOperation:
		return IconBarChart
	case CategoryVisual:
		return IconVideo
	default:
		return IconCPU
	}
}

// Service is one entry of the services list.
type Service struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PriceRange   string `json:"priceRange"`
	DeliveryTime string `json:"deliveryTime"`
	Icon         Icon   `json:"icon"`
}

// NavLink is an in-page navigation entry. Href is always "#<anchor>".
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Agent is a card of the AI-agents showcase.
type Agent struct {
	ID         string
	Title      string
	Tagline    string
	Highlights []string
	PosterURL  string
	VideoURL   string
	// Accent is the color family used by the card (purple, blue, cyan)
	Accent string
}

// FilterTab is one button of the product filter bar.
type FilterTab struct {
	Category Category
	Label    string
}

// Option is a value/label pair for select inputs.
type Option struct {
	Value string
	Label string
}

// SocialLink points at an external profile.
type SocialLink struct {
	Label string
	URL   string
}

// ContactChannels lists the direct ways to reach the company.
type ContactChannels struct {
	Email  string
	Phone  string
	WeChat string
	Social []SocialLink
}
