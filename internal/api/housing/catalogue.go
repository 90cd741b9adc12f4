package housing

import (
	"github.com/google/uuid"

	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

// catalogue is the fixed demo inventory backing the listing and search
// endpoints. IDs are stable so detail links survive restarts.
var catalogue = []types.Property{
	{
		ID:           uuid.MustParse("7b3f1c9e-2a64-4d18-9f0b-5c8e1d4a6f21"),
		Title:        "Cozy Studio Apartment Downtown",
		Description:  "Bright studio in the heart of downtown, walking distance to transit, restaurants and grocery stores. Utilities included.",
		Price:        1200,
		Bedrooms:     1,
		Bathrooms:    1,
		SquareFeet:   550,
		Type:         "Apartment",
		Address:      "425 Main St, Downtown",
		Amenities:    []string{"In-unit laundry", "Utilities included", "Near transit"},
		AvailableOn:  "2026-09-15",
		ListingURL:   "https://www.apartments.com/",
		ContactPhone: "(555) 201-3344",
		ContactEmail: "leasing@mainstlofts.example.com",
	},
	{
		ID:           uuid.MustParse("c1d2a8f4-6b90-4e37-8a52-e94d07c3b1a5"),
		Title:        "Two-Bedroom Apartment near University",
		Description:  "Renovated two-bedroom a short walk from campus. Ideal for students or roommates splitting rent.",
		Price:        1650,
		Bedrooms:     2,
		Bathrooms:    1,
		SquareFeet:   900,
		Type:         "Apartment",
		Address:      "88 College Dr, University District",
		Amenities:    []string{"Dishwasher", "Bike storage", "On-site parking"},
		AvailableOn:  "2026-10-01",
		ListingURL:   "https://www.apartments.com/",
		ContactPhone: "(555) 204-7788",
		ContactEmail: "rentals@collegedr.example.com",
	},
	{
		ID:           uuid.MustParse("f4e8b2d6-1c35-4a97-b0d8-3a67f19c52e4"),
		Title:        "Family House with Backyard",
		Description:  "Three-bedroom house in a quiet residential neighborhood with a fenced backyard, close to schools and parks.",
		Price:        2400,
		Bedrooms:     3,
		Bathrooms:    2,
		SquareFeet:   1750,
		Type:         "House",
		Address:      "1412 Oak Ave, Maplewood",
		Amenities:    []string{"Fenced yard", "Garage", "Pet friendly"},
		AvailableOn:  "2026-09-01",
		ListingURL:   "https://www.zillow.com/",
		ContactPhone: "(555) 318-0921",
		ContactEmail: "homes@maplewoodrealty.example.com",
	},
	{
		ID:           uuid.MustParse("2a95d7c3-8f41-4b60-a3e9-7d12c84f0b36"),
		Title:        "Shared Room in Friendly House",
		Description:  "Furnished private room in a shared four-bedroom house. Common kitchen and living areas, monthly cleaning included.",
		Price:        700,
		Bedrooms:     1,
		Bathrooms:    1,
		SquareFeet:   200,
		Type:         "Shared Room",
		Address:      "37 Birch Ln, Northside",
		Amenities:    []string{"Furnished", "All utilities included", "Shared kitchen"},
		AvailableOn:  "2026-09-05",
		ListingURL:   "https://www.trulia.com/",
		ContactPhone: "(555) 442-6710",
		ContactEmail: "rooms@northsideliving.example.com",
	},
	{
		ID:           uuid.MustParse("9e07c4a1-3d58-4f26-b7a0-c5e93812d6f7"),
		Title:        "Modern Townhouse with Garage",
		Description:  "Two-story townhouse with attached garage, stainless appliances and a small patio. Minutes from the highway.",
		Price:        2100,
		Bedrooms:     3,
		Bathrooms:    2.5,
		SquareFeet:   1500,
		Type:         "Townhouse",
		Address:      "290 Park Rd, Westgate",
		Amenities:    []string{"Attached garage", "Patio", "Central air"},
		AvailableOn:  "2026-10-15",
		ListingURL:   "https://www.zillow.com/",
		ContactPhone: "(555) 377-5502",
		ContactEmail: "leasing@westgatehomes.example.com",
	},
	{
		ID:           uuid.MustParse("5c6b9f28-e07d-4413-92a6-1f84d3b7c0e9"),
		Title:        "Student Housing near Campus",
		Description:  "Single occupancy room in a managed student residence. Study lounges, laundry on every floor and meal plans available.",
		Price:        850,
		Bedrooms:     1,
		Bathrooms:    1,
		SquareFeet:   300,
		Type:         "Student Housing",
		Address:      "12 University Blvd, University District",
		Amenities:    []string{"Study lounge", "Laundry on floor", "Meal plan option"},
		AvailableOn:  "2026-08-25",
		ListingURL:   "https://www.apartments.com/",
		ContactPhone: "(555) 290-4455",
		ContactEmail: "housing@campusresidence.example.com",
	},
	{
		ID:           uuid.MustParse("d8a15e62-4b79-40c3-9f18-6e2c05a7b3d4"),
		Title:        "One-Bedroom with City View",
		Description:  "Upper-floor one-bedroom with large windows and skyline views. Gym and rooftop terrace in the building.",
		Price:        1500,
		Bedrooms:     1,
		Bathrooms:    1,
		SquareFeet:   700,
		Type:         "Apartment",
		Address:      "960 Broadway, Midtown",
		Amenities:    []string{"Gym", "Rooftop terrace", "Elevator"},
		AvailableOn:  "2026-09-20",
		ListingURL:   "https://www.trulia.com/",
		ContactPhone: "(555) 615-2288",
		ContactEmail: "midtown@skyviewapts.example.com",
	},
	{
		ID:           uuid.MustParse("31f7d0b9-a824-45e6-bc13-09e5a6d2c7f8"),
		Title:        "Affordable Two-Bedroom Duplex",
		Description:  "Lower unit of a well-kept duplex with private entrance and shared backyard. Water and trash included.",
		Price:        1350,
		Bedrooms:     2,
		Bathrooms:    1,
		SquareFeet:   1000,
		Type:         "House",
		Address:      "764 Washington Ave, Eastside",
		Amenities:    []string{"Private entrance", "Shared yard", "Water included"},
		AvailableOn:  "2026-09-10",
		ListingURL:   "https://www.zillow.com/",
		ContactPhone: "(555) 530-1176",
		ContactEmail: "duplex@eastsiderentals.example.com",
	},
}
