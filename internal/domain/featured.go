package domain

// FeaturedEvent is a display-only entry on the landing page.
// swagger:model FeaturedEvent
type FeaturedEvent struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Slug     string `json:"slug"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

var featuredEvents = []FeaturedEvent{
	{
		Image:    "/images/event1.png",
		Title:    "JSConf Asia 2025",
		Slug:     "jsconf-asia-2025",
		Location: "Singapore, SG",
		Date:     "December 12–14, 2025",
		Time:     "09:30 AM – 6:00 PM SGT",
	},
	{
		Image:    "/images/event2.png",
		Title:    "Hack the Winter 2026",
		Slug:     "hack-the-winter-2026",
		Location: "Berlin, Germany (Hybrid)",
		Date:     "January 23–25, 2026",
		Time:     "Fri 6:00 PM – Sun 3:00 PM CET",
	},
	{
		Image:    "/images/event3.png",
		Title:    "Next.js Global Summit",
		Slug:     "nextjs-global-summit-2026",
		Location: "San Francisco, CA, USA",
		Date:     "February 19–20, 2026",
		Time:     "09:00 AM – 5:30 PM PST",
	},
	{
		Image:    "/images/event4.png",
		Title:    "PyCon Europe 2026",
		Slug:     "pycon-europe-2026",
		Location: "Prague, Czech Republic",
		Date:     "March 16–20, 2026",
		Time:     "09:00 AM – 6:00 PM CET",
	},
	{
		Image:    "/images/event5.png",
		Title:    "KubeCon + CloudNativeCon APAC",
		Slug:     "kubecon-cloudnativecon-apac-2026",
		Location: "Tokyo, Japan",
		Date:     "April 8–10, 2026",
		Time:     "09:00 AM – 5:00 PM JST",
	},
	{
		Image:    "/images/event6.png",
		Title:    "Open Source Maintainers Meetup",
		Slug:     "oss-maintainers-meetup-nyc-2026",
		Location: "New York, NY, USA",
		Date:     "May 2, 2026",
		Time:     "10:00 AM – 4:00 PM EDT",
	},
}

// FeaturedEvents returns a copy of the hard-coded sample events.
func FeaturedEvents() []FeaturedEvent {
	out := make([]FeaturedEvent, len(featuredEvents))
	copy(out, featuredEvents)
	return out
}
