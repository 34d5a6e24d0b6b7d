package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/wutian475-collab/wutian111/domain/catalog"
	"github.com/wutian475-collab/wutian111/domain/viewstate"
)

// refreshSeconds is the noscript refresh interval while a submission is in
// flight or its outcome is on screen.
const refreshSeconds = 2

// PageData is everything the landing page needs for one render.
type PageData struct {
	SiteName string
	BaseURL  string
	ICP      string
	State    viewstate.ViewState
	Products []catalog.Product
	Counts   map[catalog.Category]int
	Services []catalog.Service
	Agents   []catalog.Agent
	Contact  catalog.ContactChannels
}

// Page renders the full landing page. Products must already be filtered by
// State.ActiveCategory.
func Page(data PageData) g.Node {
	refresh := 0
	if data.State.FormStatus.Settling() {
		refresh = refreshSeconds
	}

	return Layout(
		PageConfig{URL: data.BaseURL, RefreshAfter: refresh},
		Navbar(data.SiteName, data.State),
		Main(
			Hero(),
			Products(data.State.ActiveCategory, data.Products, data.Counts),
			Agents(data.Agents),
			Services(data.Services),
			ContactSection(data.Contact, data.State),
		),
		SiteFooter(data.SiteName, data.ICP),
	)
}
