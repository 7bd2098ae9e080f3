package seed

import "alx_travel/internal/domain"

var firstNames = []string{
	"John", "Jane", "Mike", "Sarah", "David", "Emma", "Chris", "Lisa",
	"Tom", "Anna", "James", "Maria", "Robert", "Jennifer", "William",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"San Francisco", "Indianapolis", "Seattle", "Denver", "Boston",
}

var propertyTypes = []string{
	"Cozy Apartment", "Luxury Villa", "Beach House", "Mountain Cabin",
	"City Loft", "Country Cottage", "Modern Condo", "Historic Home",
	"Penthouse Suite", "Charming Studio", "Family House", "Resort Room",
}

var amenitySets = [][]string{
	{"WiFi", "Kitchen", "Parking"},
	{"WiFi", "Pool", "Gym", "Kitchen"},
	{"WiFi", "Beach Access", "Kitchen", "Parking"},
	{"WiFi", "Mountain View", "Fireplace", "Kitchen"},
	{"WiFi", "City View", "Gym", "Rooftop"},
	{"WiFi", "Garden", "Kitchen", "Parking"},
	{"WiFi", "Kitchen", "Balcony", "Gym"},
	{"WiFi", "Historic Features", "Kitchen", "Parking"},
	{"WiFi", "City View", "Luxury Amenities", "Concierge"},
	{"WiFi", "Kitchen", "Backyard", "Parking"},
	{"WiFi", "Pool", "Spa", "Restaurant"},
}

var statuses = []domain.BookingStatus{
	domain.StatusPending, domain.StatusConfirmed,
	domain.StatusCanceled, domain.StatusCompleted,
}

var specialRequests = []string{
	"", "Late check-in requested", "Extra towels please",
	"Quiet room preferred", "Ground floor if possible",
}

var reviewComments = []string{
	"Amazing place! Highly recommended.",
	"Great location and very clean.",
	"Perfect for a weekend getaway.",
	"Host was very responsive and helpful.",
	"Beautiful property with great amenities.",
	"Exactly as described. Will book again!",
	"Fantastic experience overall.",
	"Great value for money.",
	"Very comfortable and well-equipped.",
	"Excellent location close to everything.",
	"Clean, comfortable, and convenient.",
	"Would definitely stay here again.",
	"Perfect for families.",
	"Great host and beautiful property.",
	"Exceeded our expectations!",
}
