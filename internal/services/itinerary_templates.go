package services

// ActivityTemplate is the fixed plan material of one location type.
type ActivityTemplate struct {
	Arrival       []string
	Departure     []string
	Pool          []string
	Accommodation string
}

const defaultTemplateKey = "nature"

// departureAccommodation is what the last day shows instead of a stay.
const departureAccommodation = "Departure"

var activityTemplates = map[string]ActivityTemplate{
	"adventure": {
		Arrival: []string{
			"Arrival and adventure resort check-in",
			"Equipment briefing and safety orientation",
			"Short nature walk to acclimatize",
			"Welcome dinner with adventure team",
			"Trip briefing and tomorrow's preparations",
		},
		Departure: []string{
			"Final adventure activity (rock climbing/rappelling)",
			"Souvenir shopping and certificate collection",
			"Departure preparations and check-out",
		},
		Pool: []string{
			"Early morning trek to scenic viewpoint",
			"Rock climbing session with certified instructors",
			"White water rafting expedition",
			"Paragliding or zip-lining adventure",
			"Survival skills workshop",
			"Evening campfire with adventure stories",
			"Night trekking with headlamps",
			"Adventure photography session",
		},
		Accommodation: "Adventure Base Camp / Mountain Resort with adventure facilities",
	},
	"beaches": {
		Arrival: []string{
			"Arrival and beachfront resort check-in",
			"Sunset beach walk and photography",
			"Welcome cocktails by the beach",
			"Beachside seafood dinner",
		},
		Departure: []string{
			"Final beach activities and water sports",
			"Beach market shopping for souvenirs",
			"Resort check-out and departure",
		},
		Pool: []string{
			"Morning beach swimming and sunbathing",
			"Snorkeling expedition to coral reefs",
			"Surfing lessons with professional instructors",
			"Boat trip to nearby islands",
			"Beach volleyball tournament",
			"Beachside spa and massage treatments",
			"Deep sea fishing adventure",
			"Sunrise yoga session on the beach",
			"Beach party with live music and dancing",
		},
		Accommodation: "Luxury Beach Resort / Ocean View Hotel with private beach access",
	},
	"cultural": {
		Arrival: []string{
			"Arrival and heritage hotel check-in",
			"Guided city orientation tour",
			"Traditional local market exploration",
			"Authentic local cuisine dinner",
		},
		Departure: []string{
			"Final heritage site visit and photo session",
			"Traditional handicraft shopping",
			"Check-out and departure",
		},
		Pool: []string{
			"Ancient temple and monument exploration",
			"Museum and art gallery visits",
			"Traditional cultural performance and folk dances",
			"Hands-on traditional craft workshops",
			"Local cooking class and food tasting tour",
			"Heritage walk through old city quarters",
			"Traditional costume photo session",
			"Festival participation (if seasonal)",
			"Meet and interact with local artisans",
		},
		Accommodation: "Heritage Palace Hotel / Traditional Haveli with cultural ambiance",
	},
	"wildlife": {
		Arrival: []string{
			"Arrival at wildlife resort near national park",
			"Safari briefing and safety instructions",
			"Nature walk around resort premises",
			"Dinner with wildlife documentary screening",
		},
		Departure: []string{
			"Final safari for missed wildlife sightings",
			"Wildlife conservation center visit",
			"Check-out and departure",
		},
		Pool: []string{
			"Early morning safari (best time for wildlife sighting)",
			"Jeep safari through different zones of national park",
			"Elephant safari experience (where available)",
			"Bird watching tour with ornithologist guide",
			"Wildlife photography workshop",
			"Night safari to spot nocturnal animals",
			"Nature walk with wildlife tracking",
			"Visit to wildlife research center",
			"Bush dinner under the stars",
		},
		Accommodation: "Wildlife Safari Lodge / Jungle Resort with watchtower views",
	},
	"mountains": {
		Arrival: []string{
			"Arrival at mountain resort/hill station",
			"Cable car ride for panoramic views",
			"Evening tea at scenic viewpoint",
			"Bonfire dinner with mountain views",
		},
		Departure: []string{
			"Sunrise viewing from highest accessible point",
			"Local handicraft shopping",
			"Check-out and departure",
		},
		Pool: []string{
			"Guided mountain trekking to scenic peaks",
			"Mountain photography at golden hour",
			"Valley exploration and waterfall visits",
			"Camping under the stars (weather permitting)",
			"Medicinal plant identification walk",
			"Local village visits and cultural exchange",
			"Mountain meditation and yoga sessions",
			"Natural hot springs visit (if available)",
			"Bird watching and nature observation",
		},
		Accommodation: "Mountain Resort / Hill Station Hotel with valley views",
	},
	"spiritual": {
		Arrival: []string{
			"Arrival at spiritual retreat center",
			"Introduction to meditation practices",
			"Evening prayer ceremony participation",
			"Sattvic vegetarian dinner",
		},
		Departure: []string{
			"Final blessing ceremony",
			"Spiritual souvenir shopping",
			"Peaceful departure",
		},
		Pool: []string{
			"Early morning meditation and yoga",
			"Ancient temple visits and rituals",
			"Spiritual discourse with learned masters",
			"Devotional music and chanting sessions",
			"Peaceful nature walks for contemplation",
			"Sacred river bathing rituals",
			"Philosophy and spiritual literature study",
			"Ayurvedic wellness consultations",
			"Evening aarti (prayer) ceremonies",
		},
		Accommodation: "Spiritual Ashram / Retreat Center with meditation halls",
	},
	"desert": {
		Arrival: []string{
			"Arrival at desert camp",
			"Camel safari introduction",
			"Sunset viewing over sand dunes",
			"Traditional desert dinner with folk music",
		},
		Departure: []string{
			"Sunrise camel ride",
			"Desert craft shopping",
			"Desert camp departure",
		},
		Pool: []string{
			"Extended camel safari across sand dunes",
			"Desert bike riding adventure",
			"Sand dune surfing and sandboarding",
			"Star gazing with telescope in clear desert sky",
			"Traditional Rajasthani folk dance performance",
			"Desert camping with cultural programs",
			"Hot air balloon ride over desert (seasonal)",
			"Visit to desert villages and local lifestyle",
			"Desert wildlife spotting tour",
		},
		Accommodation: "Luxury Desert Camp / Heritage Desert Resort with traditional architecture",
	},
	"culinary": {
		Arrival: []string{
			"Arrival and food lover's hotel check-in",
			"Local spice market tour",
			"Meet the chef session",
			"Welcome dinner with signature local dishes",
		},
		Departure: []string{
			"Final cooking class and recipe collection",
			"Farewell feast with all learned dishes",
			"Check-out with recipe book souvenir",
		},
		Pool: []string{
			"Hands-on cooking classes with master chefs",
			"Food and wine pairing experiences",
			"Farm-to-table ingredient sourcing visits",
			"Street food tours with local food experts",
			"Visit to organic farms and spice gardens",
			"Traditional food preservation techniques workshop",
			"Regional cuisine tasting tours",
			"Food history and culture storytelling sessions",
			"Dessert and sweet making workshops",
		},
		Accommodation: "Culinary Heritage Hotel / Food-focused Resort with cooking facilities",
	},
	"wellness": {
		Arrival: []string{
			"Arrival at wellness resort",
			"Health consultation with Ayurvedic doctor",
			"Herbal garden tour",
			"Welcome relaxation massage",
		},
		Departure: []string{
			"Final meditation and yoga session",
			"Personalized wellness plan for home",
			"Rejuvenated departure",
		},
		Pool: []string{
			"Daily yoga and meditation practices",
			"Ayurvedic spa treatments and massages",
			"Detox and cleansing programs",
			"Therapeutic swimming and water therapy",
			"Herbal tea preparation and healing drinks",
			"Pranayama (breathing) workshops",
			"Organic nutrition and healthy cooking classes",
			"Crystal healing and alternative therapy sessions",
			"Aromatherapy and essential oils workshop",
		},
		Accommodation: "Luxury Wellness Resort / Ayurvedic Retreat with spa facilities",
	},
	"nature": {
		Arrival: []string{
			"Arrival at nature resort/forest lodge",
			"Gentle nature walk and orientation",
			"Butterfly and flora identification tour",
			"Evening nature sounds relaxation",
		},
		Departure: []string{
			"Final forest walk and tree planting ceremony",
			"Nature conservation awareness session",
			"Check-out and departure",
		},
		Pool: []string{
			"Forest trekking through pristine trails",
			"Nature and wildlife photography workshops",
			"Bird watching with expert naturalists",
			"Waterfall visits and natural pool swimming",
			"Eco-camping experience in forest clearings",
			"Tribal village visits and cultural learning",
			"Medicinal plant walks with local guides",
			"Night safari for nocturnal wildlife",
			"Butterfly garden visits and insect study",
		},
		Accommodation: "Eco-friendly Forest Lodge / Tree House Resort with nature views",
	},
}

// TemplateFor returns the template of a category key, falling back to nature
// for keys without one (luxury, offbeat, unknown input).
func TemplateFor(category string) ActivityTemplate {
	if t, ok := activityTemplates[category]; ok {
		return t
	}
	return activityTemplates[defaultTemplateKey]
}
