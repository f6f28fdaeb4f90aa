package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

func svc(name string, category domain.Category, price int64, unit, description string, traditional bool) domain.ServiceItem {
	return domain.ServiceItem{
		Name:        name,
		Category:    category,
		BasePrice:   decimal.NewFromInt(price),
		Unit:        unit,
		Description: description,
		Traditional: traditional,
	}
}

// standardServices is the general event catalog, grouped by category.
func standardServices() []domain.ServiceItem {
	return []domain.ServiceItem{
		svc("Traditional Wedding Photography", domain.CategoryPhotography, 25000, "per day", "Complete traditional Telugu wedding photography with all rituals", true),
		svc("Candid Photography", domain.CategoryPhotography, 35000, "per day", "Candid moments capture throughout the event", false),
		svc("4K Cinematic Videography", domain.CategoryPhotography, 45000, "per day", "Professional 4K video recording with cinematic editing", false),
		svc("Drone Photography", domain.CategoryPhotography, 15000, "per day", "Aerial shots and drone videography", false),
		svc("Wedding Album (Premium)", domain.CategoryPhotography, 12000, "per album", "Premium quality wedding album with 50 pages", false),
		svc("Live Streaming Setup", domain.CategoryPhotography, 8000, "per event", "Live streaming for remote family members", false),

		svc("Traditional Telugu Mandap", domain.CategoryDecoration, 75000, "per setup", "Authentic Telugu style mandap with traditional decorations", true),
		svc("Kalyanam Mandap with Pillars", domain.CategoryDecoration, 95000, "per setup", "Grand mandap with carved pillars and traditional motifs", true),
		svc("Stage Decoration", domain.CategoryDecoration, 35000, "per stage", "Reception stage decoration with flowers and lights", false),
		svc("Entrance Gate Decoration", domain.CategoryDecoration, 25000, "per gate", "Grand entrance decoration with welcome arch", false),
		svc("LED Backdrop", domain.CategoryDecoration, 18000, "per setup", "LED screen backdrop for stage", false),
		svc("Ceiling Draping", domain.CategoryDecoration, 22000, "per hall", "Elegant ceiling decoration with fabric draping", false),
		svc("Rangoli Design", domain.CategoryDecoration, 3000, "per design", "Traditional rangoli patterns for entrance", true),

		svc("Telugu Traditional Meals", domain.CategoryCatering, 450, "per person", "Authentic Telugu cuisine with traditional items", true),
		svc("Andhra Spicy Menu", domain.CategoryCatering, 500, "per person", "Spicy Andhra style dishes and curries", true),
		svc("Hyderabadi Biryani", domain.CategoryCatering, 350, "per person", "Authentic Hyderabadi biryani with raita and shorba", true),
		svc("South Indian Breakfast", domain.CategoryCatering, 180, "per person", "Traditional breakfast with idli, dosa, vada", true),
		svc("Cocktail Snacks", domain.CategoryCatering, 250, "per person", "Variety of cocktail snacks and appetizers", false),
		svc("Sweet Counter", domain.CategoryCatering, 150, "per person", "Traditional sweets including laddu, mysore pak", true),
		svc("Live Dosa Counter", domain.CategoryCatering, 8000, "per counter", "Live dosa making station", true),
		svc("Paan Counter", domain.CategoryCatering, 5000, "per counter", "Traditional paan serving counter", true),

		svc("Nadaswaram & Thavil", domain.CategoryEntertainment, 12000, "per day", "Traditional Telugu wedding music ensemble", true),
		svc("DJ with Sound System", domain.CategoryEntertainment, 25000, "per day", "Professional DJ with high-quality sound system", false),
		svc("Live Band Performance", domain.CategoryEntertainment, 35000, "per performance", "Live music band for entertainment", false),
		svc("Dhol Players", domain.CategoryEntertainment, 8000, "per group", "Traditional dhol players for baraat", true),
		svc("Classical Dance Performance", domain.CategoryEntertainment, 15000, "per performance", "Bharatanatyam or Kuchipudi dance performance", true),
		svc("Anchor/MC Services", domain.CategoryEntertainment, 10000, "per day", "Professional event hosting and coordination", false),

		svc("Wedding Hall Rental", domain.CategoryVenue, 50000, "per day", "Traditional wedding hall with basic facilities", false),
		svc("Kalyana Mandapam", domain.CategoryVenue, 75000, "per day", "Traditional Telugu wedding venue", true),
		svc("Garden Venue", domain.CategoryVenue, 40000, "per day", "Outdoor garden venue for ceremonies", false),
		svc("AC & Cooling", domain.CategoryVenue, 15000, "per day", "Air conditioning and cooling arrangements", false),
		svc("Generator Backup", domain.CategoryVenue, 8000, "per day", "Power backup generator", false),
		svc("Parking Arrangements", domain.CategoryVenue, 5000, "per day", "Valet parking and security", false),

		svc("Decorated Car for Couple", domain.CategoryTransportation, 8000, "per day", "Luxury car decoration for bride and groom", false),
		svc("Horse for Groom Entry", domain.CategoryTransportation, 12000, "per event", "Traditional horse for groom's grand entry", true),
		svc("Elephant for Procession", domain.CategoryTransportation, 25000, "per event", "Decorated elephant for traditional procession", true),
		svc("Guest Transportation", domain.CategoryTransportation, 15000, "per bus", "Bus transportation for guests", false),
		svc("Vintage Car Rental", domain.CategoryTransportation, 20000, "per day", "Classic vintage car for special occasions", false),

		svc("Bridal Flower Jewelry", domain.CategoryFlowers, 8000, "per set", "Traditional flower jewelry for bride", true),
		svc("Groom's Sehra", domain.CategoryFlowers, 3000, "per piece", "Traditional flower sehra for groom", true),
		svc("Garland Exchange", domain.CategoryFlowers, 2500, "per pair", "Special garlands for exchange ceremony", true),
		svc("Rose Petals", domain.CategoryFlowers, 5000, "per kg", "Fresh rose petals for ceremonies", false),
		svc("Marigold Decoration", domain.CategoryFlowers, 12000, "per setup", "Marigold flower decorations", true),
		svc("Jasmine Strings", domain.CategoryFlowers, 1500, "per string", "Traditional jasmine flower strings", true),

		svc("Wedding Coordinator", domain.CategoryStaffing, 15000, "per day", "Professional wedding planning and coordination", false),
		svc("Waitstaff", domain.CategoryStaffing, 1500, "per person/day", "Professional serving staff", false),
		svc("Security Personnel", domain.CategoryStaffing, 2000, "per person/day", "Event security and crowd management", false),
		svc("Makeup Artist", domain.CategoryStaffing, 12000, "per session", "Professional bridal makeup", false),
		svc("Mehendi Artist", domain.CategoryStaffing, 8000, "per session", "Traditional mehendi application", true),
		svc("Purohit/Priest", domain.CategoryStaffing, 5000, "per ceremony", "Traditional Telugu wedding priest", true),

		svc("Mangalsutra Making", domain.CategoryTraditional, 15000, "per piece", "Custom mangalsutra creation", true),
		svc("Haldi Ceremony Setup", domain.CategoryTraditional, 8000, "per setup", "Traditional haldi ceremony arrangements", true),
		svc("Kalash Decoration", domain.CategoryTraditional, 3000, "per kalash", "Decorated kalash for ceremonies", true),
		svc("Coconut Breaking Ceremony", domain.CategoryTraditional, 2000, "per ceremony", "Traditional coconut breaking ritual", true),
		svc("Sacred Fire Setup", domain.CategoryTraditional, 5000, "per setup", "Agni kund setup for wedding rituals", true),
		svc("Ashtamangala Items", domain.CategoryTraditional, 4000, "per set", "Complete set of auspicious items", true),

		svc("LED Screen Rental", domain.CategoryEquipment, 12000, "per screen/day", "Large LED screen for live streaming", false),
		svc("Professional Lighting", domain.CategoryEquipment, 18000, "per setup", "Stage and venue lighting setup", false),
		svc("Sound System", domain.CategoryEquipment, 15000, "per day", "Professional audio system", false),
		svc("Projector Setup", domain.CategoryEquipment, 8000, "per day", "Projector for presentations", false),
		svc("Fog Machine", domain.CategoryEquipment, 5000, "per day", "Special effects fog machine", false),

		svc("Return Gifts", domain.CategoryGifts, 200, "per piece", "Traditional return gifts for guests", false),
		svc("Wedding Invitations", domain.CategoryGifts, 50, "per piece", "Custom designed wedding invitations", false),
		svc("Tamboolam Bags", domain.CategoryGifts, 150, "per bag", "Traditional gift bags with betel leaves", true),
		svc("Silver Coins", domain.CategoryGifts, 500, "per coin", "Silver coins as return gifts", true),

		svc("Bridal Makeup Package", domain.CategoryBeauty, 25000, "per package", "Complete bridal makeup and styling", false),
		svc("Groom Grooming", domain.CategoryBeauty, 8000, "per session", "Groom's grooming and styling", false),
		svc("Hair Styling", domain.CategoryBeauty, 5000, "per session", "Professional hair styling", false),
		svc("Saree Draping", domain.CategoryBeauty, 3000, "per session", "Traditional saree draping service", true),
		svc("Nail Art", domain.CategoryBeauty, 2000, "per session", "Bridal nail art and decoration", false),
	}
}

// culturalServices are the ceremony-specific and regional specialty entries.
func culturalServices() []domain.ServiceItem {
	return []domain.ServiceItem{
		svc("Pellikuthuru & Pellikoduku Ceremony", domain.CategoryTraditional, 15000, "per ceremony", "Traditional pre-wedding ceremony for bride and groom", true),
		svc("Mangala Snaanam", domain.CategoryTraditional, 8000, "per ceremony", "Sacred bath ceremony with turmeric and oils", true),
		svc("Kashi Yatra Setup", domain.CategoryTraditional, 12000, "per setup", "Mock pilgrimage ceremony with traditional props", true),
		svc("Madhuparkam Ceremony", domain.CategoryTraditional, 5000, "per ceremony", "Traditional welcome ceremony for groom", true),
		svc("Kanyadaanam Setup", domain.CategoryTraditional, 10000, "per setup", "Sacred giving away of bride ceremony", true),
		svc("Saptapadi Arrangement", domain.CategoryTraditional, 8000, "per setup", "Seven steps ceremony with sacred fire", true),
		svc("Talambralu Ceremony", domain.CategoryTraditional, 3000, "per ceremony", "Rice and turmeric throwing ceremony", true),
		svc("Mangalsutra Dharana", domain.CategoryTraditional, 5000, "per ceremony", "Sacred thread tying ceremony", true),

		svc("Rayalaseema Spicy Thali", domain.CategoryCatering, 520, "per person", "Authentic Rayalaseema cuisine with extra spicy dishes", true),
		svc("Coastal Andhra Seafood Menu", domain.CategoryCatering, 580, "per person", "Fresh seafood dishes from coastal Andhra", true),
		svc("Telangana Traditional Meals", domain.CategoryCatering, 480, "per person", "Authentic Telangana cuisine with jowar and bajra", true),
		svc("Godavari Delta Special Menu", domain.CategoryCatering, 450, "per person", "Traditional dishes from Godavari region", true),
		svc("Nizami Cuisine", domain.CategoryCatering, 650, "per person", "Royal Hyderabadi Nizami dishes and delicacies", true),
		svc("Bobbatlu & Ariselu Counter", domain.CategoryCatering, 8000, "per counter", "Traditional sweet making station", true),
		svc("Pesarattu & Upma Counter", domain.CategoryCatering, 6000, "per counter", "Traditional Andhra breakfast items", true),
		svc("Gongura Pickle Station", domain.CategoryCatering, 4000, "per station", "Fresh gongura pickle preparation", true),

		svc("Burrakatha Performance", domain.CategoryEntertainment, 18000, "per performance", "Traditional Telugu storytelling with music", true),
		svc("Harikatha Artist", domain.CategoryEntertainment, 15000, "per performance", "Religious storytelling with devotional songs", true),
		svc("Kolatam Dance Group", domain.CategoryEntertainment, 20000, "per group", "Traditional stick dance performance", true),
		svc("Dappu Drummers", domain.CategoryEntertainment, 12000, "per group", "Traditional Telangana drum ensemble", true),
		svc("Lambadi Folk Dance", domain.CategoryEntertainment, 25000, "per group", "Colorful Lambadi tribal dance performance", true),
		svc("Perini Shivatandavam", domain.CategoryEntertainment, 30000, "per performance", "Traditional warrior dance of Telangana", true),
		svc("Veeranatyam Performance", domain.CategoryEntertainment, 22000, "per performance", "Traditional heroic dance form", true),

		svc("Kalyanam Mandapam Traditional Style", domain.CategoryDecoration, 125000, "per setup", "Authentic temple-style mandap with traditional carvings", true),
		svc("Banana Leaf Decoration", domain.CategoryDecoration, 8000, "per setup", "Traditional banana leaf and plantain decorations", true),
		svc("Mango Leaf Torans", domain.CategoryDecoration, 5000, "per setup", "Sacred mango leaf garlands for entrances", true),
		svc("Coconut & Betel Leaf Arrangements", domain.CategoryDecoration, 6000, "per setup", "Traditional auspicious decorations", true),
		svc("Kalash & Purna Kumbha Setup", domain.CategoryDecoration, 8000, "per setup", "Sacred water vessels with decorations", true),
		svc("Swastik & Rangoli Designs", domain.CategoryDecoration, 4000, "per design", "Traditional floor art and auspicious symbols", true),
		svc("Pasupu Kumkuma Decoration", domain.CategoryDecoration, 3000, "per setup", "Turmeric and vermillion decorative arrangements", true),

		svc("Pattu Saree Draping Service", domain.CategoryBeauty, 5000, "per session", "Traditional silk saree draping in Telugu style", true),
		svc("Groom's Traditional Attire Setup", domain.CategoryBeauty, 8000, "per session", "Complete traditional Telugu groom styling", true),
		svc("Bride's Jewelry Arrangement", domain.CategoryBeauty, 6000, "per session", "Traditional Telugu bridal jewelry styling", true),
		svc("Maang Tikka & Nath Setup", domain.CategoryBeauty, 3000, "per session", "Traditional forehead and nose jewelry", true),
		svc("Gajra & Hair Decoration", domain.CategoryBeauty, 2500, "per session", "Traditional flower hair decorations", true),

		svc("Decorated Bullock Cart", domain.CategoryTransportation, 15000, "per event", "Traditional bullock cart for ceremonial entry", true),
		svc("Palanquin (Pallaki) Service", domain.CategoryTransportation, 20000, "per event", "Traditional palanquin for bride's entry", true),
		svc("Decorated Tractor Entry", domain.CategoryTransportation, 12000, "per event", "Rural-style decorated tractor for groom", true),

		svc("Traditional Banana Leaf Service", domain.CategoryCatering, 50, "per person", "Authentic banana leaf plate service", true),
		svc("Clay Pot Cooking Setup", domain.CategoryCatering, 15000, "per setup", "Traditional clay pot cooking demonstration", true),
		svc("Wood Fire Cooking Station", domain.CategoryCatering, 12000, "per station", "Traditional wood fire cooking setup", true),

		svc("Vedic Pandit for Ceremonies", domain.CategoryTraditional, 8000, "per ceremony", "Learned Vedic scholar for complex rituals", true),
		svc("Astrologer Consultation", domain.CategoryTraditional, 5000, "per consultation", "Traditional astrology consultation for muhurtham", true),
		svc("Homam & Havan Setup", domain.CategoryTraditional, 12000, "per setup", "Sacred fire ceremony arrangements", true),
		svc("Ganapathi Puja Setup", domain.CategoryTraditional, 6000, "per setup", "Lord Ganesha worship arrangements", true),
		svc("Kalasha Sthapana", domain.CategoryTraditional, 4000, "per setup", "Sacred water vessel installation ceremony", true),

		svc("Telugu DJ with Traditional Mix", domain.CategoryEntertainment, 35000, "per day", "DJ specializing in Telugu folk and modern fusion", true),
		svc("Live Telugu Folk Band", domain.CategoryEntertainment, 45000, "per performance", "Contemporary Telugu folk music band", true),
		svc("Telugu Anchor (Bilingual)", domain.CategoryEntertainment, 15000, "per day", "Professional anchor fluent in Telugu and English", true),

		svc("Traditional Ritual Photography", domain.CategoryPhotography, 30000, "per day", "Specialized photography for Telugu wedding rituals", true),
		svc("Candid Telugu Wedding Album", domain.CategoryPhotography, 18000, "per album", "Album with Telugu captions and traditional layouts", true),
		svc("Drone Footage of Procession", domain.CategoryPhotography, 20000, "per event", "Aerial coverage of baraat and procession", true),

		svc("Traditional Brass Items", domain.CategoryGifts, 800, "per piece", "Authentic brass items as return gifts", true),
		svc("Handloom Fabric Gifts", domain.CategoryGifts, 1200, "per piece", "Traditional Telugu handloom products", true),
		svc("Kalamkari Art Pieces", domain.CategoryGifts, 1500, "per piece", "Traditional Kalamkari art as gifts", true),
		svc("Nirmal Toys & Crafts", domain.CategoryGifts, 600, "per piece", "Traditional Nirmal wooden toys and crafts", true),
		svc("Pochampally Silk Items", domain.CategoryGifts, 2000, "per piece", "Authentic Pochampally silk products", true),

		svc("Traditional Courtyard Setup", domain.CategoryVenue, 25000, "per setup", "Recreate traditional Telugu home courtyard", true),
		svc("Heritage Theme Decoration", domain.CategoryVenue, 35000, "per venue", "Transform venue into heritage Telugu palace", true),
		svc("Village Theme Setup", domain.CategoryVenue, 30000, "per setup", "Rural Telugu village theme decoration", true),
	}
}

type citySupplement struct {
	keywords []string
	services []domain.ServiceItem
}

// citySupplements are appended by ForCity when the city text contains any
// of the keywords. More than one supplement may apply.
func citySupplements() []citySupplement {
	return []citySupplement{
		{
			keywords: []string{"hyderabad", "secunderabad"},
			services: []domain.ServiceItem{
				svc("Charminar Backdrop Setup", domain.CategoryDecoration, 15000, "per setup", "Iconic Charminar themed backdrop", true),
				svc("Nizami Royal Theme", domain.CategoryDecoration, 45000, "per setup", "Royal Nizami palace theme decoration", true),
				svc("Hyderabadi Biryani Master Chef", domain.CategoryCatering, 25000, "per day", "Expert Hyderabadi biryani chef", true),
			},
		},
		{
			keywords: []string{"visakhapatnam", "vizag"},
			services: []domain.ServiceItem{
				svc("Beach Wedding Setup", domain.CategoryVenue, 35000, "per setup", "Coastal beach wedding arrangements", false),
				svc("Seafood Specialty Chef", domain.CategoryCatering, 20000, "per day", "Expert in coastal Andhra seafood", true),
				svc("Naval Theme Decoration", domain.CategoryDecoration, 25000, "per setup", "Naval port city themed decorations", false),
			},
		},
		{
			keywords: []string{"vijayawada"},
			services: []domain.ServiceItem{
				svc("Krishna River Theme", domain.CategoryDecoration, 20000, "per setup", "Krishna river and delta themed decoration", true),
				svc("Kanaka Durga Temple Style Mandap", domain.CategoryDecoration, 55000, "per setup", "Temple architecture inspired mandap", true),
			},
		},
		{
			keywords: []string{"tirupati"},
			services: []domain.ServiceItem{
				svc("Tirumala Temple Style Decoration", domain.CategoryDecoration, 60000, "per setup", "Sacred Tirumala temple inspired decor", true),
				svc("Laddu Prasadam Distribution", domain.CategoryCatering, 8000, "per event", "Traditional Tirupati laddu distribution", true),
			},
		},
		{
			keywords: []string{"warangal"},
			services: []domain.ServiceItem{
				svc("Kakatiya Dynasty Theme", domain.CategoryDecoration, 40000, "per setup", "Historical Kakatiya kingdom themed decor", true),
				svc("Thousand Pillar Temple Style", domain.CategoryDecoration, 50000, "per setup", "Inspired by famous Warangal temple", true),
			},
		},
	}
}

func seasonalSupplements() map[domain.Season][]domain.ServiceItem {
	return map[domain.Season][]domain.ServiceItem{
		domain.SeasonSummer: {
			svc("Mango Leaf Special Decoration", domain.CategoryDecoration, 8000, "per setup", "Fresh mango leaves for summer weddings", true),
			svc("Tender Coconut Water Station", domain.CategoryCatering, 6000, "per station", "Fresh coconut water for guests", true),
			svc("Cooling Tent Setup", domain.CategoryVenue, 15000, "per setup", "Special cooling arrangements for summer", false),
		},
		domain.SeasonMonsoon: {
			svc("Monsoon Wedding Canopy", domain.CategoryVenue, 25000, "per setup", "Waterproof decorative canopy", false),
			svc("Traditional Umbrella Decoration", domain.CategoryDecoration, 12000, "per setup", "Colorful traditional umbrellas as decor", true),
		},
		domain.SeasonWinter: {
			svc("Diwali Theme Integration", domain.CategoryDecoration, 18000, "per setup", "Festival of lights themed decoration", true),
			svc("Makar Sankranti Special Setup", domain.CategoryDecoration, 15000, "per setup", "Kite festival themed decorations", true),
			svc("Bonfire Ceremony Setup", domain.CategoryTraditional, 10000, "per setup", "Traditional winter bonfire ceremony", true),
		},
	}
}

// popularNames are matched as substrings against the full catalog.
var popularNames = []string{
	"Traditional Telugu Mandap",
	"Telugu Traditional Meals",
	"Traditional Wedding Photography",
	"Nadaswaram & Thavil",
	"Bridal Flower Jewelry",
	"Purohit/Priest",
	"Hyderabadi Biryani",
	"Candid Photography",
	"DJ with Sound System",
	"Stage Decoration",
}
