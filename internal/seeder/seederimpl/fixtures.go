package seederimpl

type venue struct {
	Name      string
	Location  string
	Latitude  float64
	Longitude float64
}

type organizer struct {
	Email string
	Name  string
}

type eventTemplate struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	DayOffset   int
	Hour        int
	Venue       int
	Organizer   int
	Promotional bool
}

type postTemplate struct {
	Title       string
	Description string
	Tags        []string
	HoursAgo    int
	Venue       int
	Organizer   int
}

var venues = []venue{
	{Name: "The Observatory", Location: "District 1, Ho Chi Minh City", Latitude: 10.7680, Longitude: 106.6940},
	{Name: "Saigon Outcast", Location: "Thu Duc, Ho Chi Minh City", Latitude: 10.7969, Longitude: 106.7386},
	{Name: "Lussk Wine Bar", Location: "District 1, Ho Chi Minh City", Latitude: 10.7765, Longitude: 106.7046},
	{Name: "Ben Thanh Street Food Market", Location: "District 1, Ho Chi Minh City", Latitude: 10.7721, Longitude: 106.6983},
	{Name: "The Workshop Coffee", Location: "District 1, Ho Chi Minh City", Latitude: 10.7740, Longitude: 106.7040},
	{Name: "Yoga Space Thao Dien", Location: "Thao Dien, Ho Chi Minh City", Latitude: 10.8040, Longitude: 106.7350},
}

var organizers = []organizer{
	{Email: "bookings@observatory.vn", Name: "The Observatory"},
	{Email: "hello@saigonoutcast.com", Name: "Saigon Outcast"},
	{Email: "chef.minh@example.com", Name: "Chef Minh"},
	{Email: "flow@yogaspace.vn", Name: "Yoga Space"},
	{Email: "partners@scenefeed.app", Name: "Scenefeed Partners"},
}

var eventTemplates = []eventTemplate{
	{Title: "Deep House Sunday", Description: "Four hours of deep house on the terrace.", Category: "music", Tags: []string{"house", "electronic"}, DayOffset: 0, Hour: 21, Venue: 0, Organizer: 0},
	{Title: "Techno Warehouse", Description: "Local and touring techno selectors.", Category: "nightlife", Tags: []string{"techno", "electronic"}, DayOffset: 1, Hour: 23, Venue: 1, Organizer: 1},
	{Title: "Natural Wine Tasting", Description: "Six natural wines paired with small plates from the kitchen.", Category: "food", Tags: []string{"wine"}, DayOffset: 2, Hour: 19, Venue: 2, Organizer: 2},
	{Title: "Street Food Crawl", Description: "A guided walk through the market with dinner and dessert stops.", Category: "culture", Tags: []string{"street food"}, DayOffset: 3, Hour: 18, Venue: 3, Organizer: 2},
	{Title: "Sunrise Flow", Description: "Vinyasa class followed by breakfast.", Category: "wellness", Tags: []string{"yoga"}, DayOffset: 1, Hour: 6, Venue: 5, Organizer: 3},
	{Title: "Latte Art Throwdown", Description: "Baristas compete; coffee and pastries on the house.", Category: "social", Tags: []string{"coffee"}, DayOffset: 5, Hour: 15, Venue: 4, Organizer: 1},
	{Title: "Open Air Cinema", Description: "Classic films under the stars.", Category: "film", Tags: []string{"cinema"}, DayOffset: 9, Hour: 20, Venue: 1, Organizer: 1},
	{Title: "Vinyl Market", Description: "Crate digging with local sellers and DJs.", Category: "music", Tags: []string{"vinyl", "disco"}, DayOffset: 12, Hour: 14, Venue: 0, Organizer: 0},
	{Title: "Featured: Rooftop Sessions", Description: "Sponsored sunset sessions with guest DJs.", Category: "music", Tags: []string{"house"}, DayOffset: 2, Hour: 17, Venue: 0, Organizer: 4, Promotional: true},
	{Title: "Featured: Chef's Table", Description: "A sponsored seven course tasting menu.", Category: "food", Tags: []string{"tasting"}, DayOffset: 4, Hour: 19, Venue: 2, Organizer: 4, Promotional: true},
}

var vibeTemplates = []postTemplate{
	{Title: "Packed dancefloor tonight", Description: "Energy is unreal right now.", Tags: []string{"house"}, HoursAgo: 1, Venue: 0, Organizer: 0},
	{Title: "Best banh mi in town", Description: "Queue was worth it.", Tags: []string{"street food"}, HoursAgo: 3, Venue: 3, Organizer: 2},
	{Title: "Quiet morning brew", Description: "Pour over and a good book.", Tags: []string{"coffee"}, HoursAgo: 5, Venue: 4, Organizer: 3},
	{Title: "Warehouse soundcheck", Description: "Sneak peek of the system.", Tags: []string{"techno"}, HoursAgo: 8, Venue: 1, Organizer: 1},
}

var profileEntryTemplates = []postTemplate{
	{Title: "Resident nights every Friday", Description: "Our residents play every Friday from ten.", Tags: []string{"house", "disco"}, HoursAgo: 24, Venue: 0, Organizer: 0},
	{Title: "Pop-up dinner series", Description: "Monthly dinner pop-ups around the city.", Tags: []string{"tasting"}, HoursAgo: 48, Venue: 2, Organizer: 2},
	{Title: "Community classes", Description: "Donation based classes on weekends.", Tags: []string{"yoga"}, HoursAgo: 72, Venue: 5, Organizer: 3},
}
