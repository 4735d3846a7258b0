package memory

import "yelocar/internal/domain/entity"

const imageSize = "?height=200&width=300"

func seedEntries() []entity.CatalogEntry {
	return []entity.CatalogEntry{
		{
			ID:          1,
			Name:        "Ferrari 488 GTB",
			Description: "A high-performance sports car with a powerful V8 engine and stunning design.",
			Price:       36_000_000,
			Discount:    1_000_000,
			Category:    entity.CategorySports,
			Features: []entity.Feature{
				{Label: "V8 Twin-Turbo Engine", Icon: entity.IconSettings},
				{Label: "0-100 km/h in 3.0s", Icon: entity.IconCar},
				{Label: "Carbon Ceramic Brakes", Icon: entity.IconCheckCircle},
			},
			ImageSrc:     "/images/ferrari-488-gtb.png" + imageSize,
			ImageAlt:     "Red Sports Car",
			FuelType:     "Petrol",
			Mileage:      "8 kmpl",
			Transmission: "Automatic",
		},
		{
			ID:          2,
			Name:        "Honda City",
			Description: "A reliable and fuel-efficient sedan, perfect for city driving and long commutes.",
			Price:       1_200_000,
			Discount:    50_000,
			Category:    entity.CategorySedan,
			Features: []entity.Feature{
				{Label: "i-VTEC Engine", Icon: entity.IconSettings},
				{Label: "Spacious Cabin", Icon: entity.IconLayoutDashboard},
				{Label: "Excellent Fuel Economy", Icon: entity.IconDollarSign},
			},
			ImageSrc:     "/images/honda-city.png" + imageSize,
			ImageAlt:     "Blue Sedan Car",
			FuelType:     "Petrol",
			Mileage:      "18 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          3,
			Name:        "Mahindra XUV700",
			Description: "A feature-packed SUV offering comfort, safety, and powerful performance.",
			Price:       2_000_000,
			Discount:    75_000,
			Category:    entity.CategorySUV,
			Features: []entity.Feature{
				{Label: "AdrenoX Infotainment", Icon: entity.IconLayoutDashboard},
				{Label: "ADAS Features", Icon: entity.IconCheckCircle},
				{Label: "All-Wheel Drive", Icon: entity.IconSettings},
			},
			ImageSrc:     "/images/mahindra-xuv700.png" + imageSize,
			ImageAlt:     "Black SUV Car",
			FuelType:     "Petrol/Diesel",
			Mileage:      "15 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          4,
			Name:        "Tata Nexon EV",
			Description: "India's best-selling electric SUV, offering great range and modern features.",
			Price:       1_500_000,
			Category:    entity.CategoryElectric,
			Features: []entity.Feature{
				{Label: "312 km Range (ARAI)", Icon: entity.IconCar},
				{Label: "Fast Charging Support", Icon: entity.IconDollarSign},
				{Label: "ZConnect Connected Car Tech", Icon: entity.IconLayoutDashboard},
			},
			ImageSrc:     "/images/tata-nexon-ev.png" + imageSize,
			ImageAlt:     "White Electric Car",
			FuelType:     "Electric",
			Mileage:      "312 km/charge",
			Transmission: "Automatic",
		},
		{
			ID:          5,
			Name:        "Maruti Suzuki Swift",
			Description: "A popular hatchback known for its peppy engine and agile handling.",
			Price:       800_000,
			Discount:    20_000,
			Category:    entity.CategoryHatchback,
			Features: []entity.Feature{
				{Label: "K-Series Engine", Icon: entity.IconSettings},
				{Label: "Compact & Agile", Icon: entity.IconCar},
				{Label: "High Fuel Efficiency", Icon: entity.IconDollarSign},
			},
			ImageSrc:     "/images/maruti-suzuki-swift.png" + imageSize,
			ImageAlt:     "Silver Hatchback Car",
			FuelType:     "Petrol",
			Mileage:      "23 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          6,
			Name:        "Ford Mustang (1967)",
			Description: "An iconic American muscle car, a true classic for enthusiasts.",
			Price:       7_500_000,
			Discount:    250_000,
			Category:    entity.CategoryVintage,
			Features: []entity.Feature{
				{Label: "Classic V8 Power", Icon: entity.IconSettings},
				{Label: "Iconic Design", Icon: entity.IconCheckCircle},
				{Label: "Collector's Item", Icon: entity.IconDollarSign},
			},
			ImageSrc:     "/images/ford-mustang-1976.png" + imageSize,
			ImageAlt:     "Yellow Vintage Car",
			FuelType:     "Petrol",
			Mileage:      "5 kmpl",
			Transmission: "Manual",
		},
		{
			ID:          7,
			Name:        "Toyota Innova Crysta",
			Description: "A spacious and comfortable MPV, ideal for families and long journeys.",
			Price:       2_500_000,
			Category:    entity.CategorySedan,
			Features: []entity.Feature{
				{Label: "Reliable Diesel Engine", Icon: entity.IconSettings},
				{Label: "7-Seater Comfort", Icon: entity.IconLayoutDashboard},
				{Label: "Toyota Safety Sense", Icon: entity.IconCheckCircle},
			},
			ImageSrc:     "/images/toyota-innova-crysta.png" + imageSize,
			ImageAlt:     "White MPV Car",
			FuelType:     "Diesel",
			Mileage:      "14 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          8,
			Name:        "Hyundai Creta",
			Description: "A popular compact SUV with a stylish design and feature-rich interior.",
			Price:       1_600_000,
			Discount:    40_000,
			Category:    entity.CategorySUV,
			Features: []entity.Feature{
				{Label: "Panoramic Sunroof", Icon: entity.IconLayoutDashboard},
				{Label: "Ventilated Seats", Icon: entity.IconCheckCircle},
				{Label: "Multiple Engine Options", Icon: entity.IconSettings},
			},
			ImageSrc:     "/images/hyundai.png" + imageSize,
			ImageAlt:     "Grey Compact SUV",
			FuelType:     "Petrol/Diesel",
			Mileage:      "17 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          9,
			Name:        "Mercedes-Benz C-Class",
			Description: "A luxurious sedan offering a blend of elegance, performance, and advanced technology.",
			Price:       6_000_000,
			Discount:    150_000,
			Category:    entity.CategoryLuxury,
			Features: []entity.Feature{
				{Label: "MBUX Infotainment", Icon: entity.IconLayoutDashboard},
				{Label: "Burmester Sound System", Icon: entity.IconCheckCircle},
				{Label: "Advanced Driver Assistance", Icon: entity.IconSettings},
			},
			ImageSrc:     "/images/mercedez-c-class.png" + imageSize,
			ImageAlt:     "Silver Luxury Sedan",
			FuelType:     "Petrol/Diesel",
			Mileage:      "12 kmpl",
			Transmission: "Automatic",
		},
		{
			ID:          10,
			Name:        "Porsche 911",
			Description: "The legendary sports car, known for its iconic design and exhilarating driving experience.",
			Price:       18_000_000,
			Discount:    500_000,
			Category:    entity.CategorySports,
			Features: []entity.Feature{
				{Label: "Flat-Six Engine", Icon: entity.IconSettings},
				{Label: "Iconic Design", Icon: entity.IconCheckCircle},
				{Label: "Track-Ready Performance", Icon: entity.IconCar},
			},
			ImageSrc:     "/images/porche-911.png" + imageSize,
			ImageAlt:     "Yellow Porsche 911",
			FuelType:     "Petrol",
			Mileage:      "9 kmpl",
			Transmission: "Automatic",
		},
		{
			ID:          11,
			Name:        "BMW 3 Series",
			Description: "A dynamic luxury sedan combining sporty performance with premium comfort.",
			Price:       5_000_000,
			Discount:    100_000,
			Category:    entity.CategoryLuxury,
			Features: []entity.Feature{
				{Label: "Sport Suspension", Icon: entity.IconSettings},
				{Label: "iDrive Infotainment", Icon: entity.IconLayoutDashboard},
				{Label: "Leather Interior", Icon: entity.IconCheckCircle},
			},
			ImageSrc:     "/images/bmw-3-series.png" + imageSize,
			ImageAlt:     "Blue BMW 3 Series",
			FuelType:     "Petrol/Diesel",
			Mileage:      "13 kmpl",
			Transmission: "Automatic",
		},
		{
			ID:          12,
			Name:        "Audi Q5",
			Description: "A sophisticated luxury SUV with a refined interior and strong performance.",
			Price:       6_500_000,
			Discount:    200_000,
			Category:    entity.CategorySUV,
			Features: []entity.Feature{
				{Label: "Quattro All-Wheel Drive", Icon: entity.IconSettings},
				{Label: "Virtual Cockpit", Icon: entity.IconLayoutDashboard},
				{Label: "Panoramic Sunroof", Icon: entity.IconCheckCircle},
			},
			ImageSrc:     "/images/audi-q7.png" + imageSize,
			ImageAlt:     "White Audi Q5",
			FuelType:     "Petrol",
			Mileage:      "11 kmpl",
			Transmission: "Automatic",
		},
		{
			ID:          13,
			Name:        "Kia Seltos",
			Description: "A stylish and feature-rich compact SUV, popular for its modern design.",
			Price:       1_400_000,
			Discount:    30_000,
			Category:    entity.CategoryCompact,
			Features: []entity.Feature{
				{Label: "Bose Sound System", Icon: entity.IconCheckCircle},
				{Label: "Smart Pure Air Purifier", Icon: entity.IconSettings},
				{Label: "Ventilated Front Seats", Icon: entity.IconLayoutDashboard},
			},
			ImageSrc:     "/images/kia-seltos.png" + imageSize,
			ImageAlt:     "Red Kia Seltos",
			FuelType:     "Petrol/Diesel",
			Mileage:      "16 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          14,
			Name:        "MG Hector",
			Description: "The 'Internet Car' with advanced connectivity features and a spacious cabin.",
			Price:       1_700_000,
			Discount:    50_000,
			Category:    entity.CategorySUV,
			Features: []entity.Feature{
				{Label: "i-SMART Connectivity", Icon: entity.IconLayoutDashboard},
				{Label: "Panoramic Sunroof", Icon: entity.IconCheckCircle},
				{Label: "Voice Assistant", Icon: entity.IconSettings},
			},
			ImageSrc:     "/images/mg-hector.png" + imageSize,
			ImageAlt:     "Silver MG Hector",
			FuelType:     "Petrol/Diesel",
			Mileage:      "14 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          15,
			Name:        "Skoda Slavia",
			Description: "A premium mid-size sedan known for its robust build and driving dynamics.",
			Price:       1_300_000,
			Discount:    25_000,
			Category:    entity.CategorySedan,
			Features: []entity.Feature{
				{Label: "Turbocharged Engine", Icon: entity.IconSettings},
				{Label: "MySKODA Connect", Icon: entity.IconLayoutDashboard},
				{Label: "6 Airbags", Icon: entity.IconCheckCircle},
			},
			ImageSrc:     "/images/skoda-slavia.png" + imageSize,
			ImageAlt:     "Blue Skoda Slavia",
			FuelType:     "Petrol",
			Mileage:      "19 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          16,
			Name:        "Volkswagen Virtus",
			Description: "A stylish and powerful sedan offering a fun-to-drive experience.",
			Price:       1_450_000,
			Discount:    35_000,
			Category:    entity.CategorySedan,
			Features: []entity.Feature{
				{Label: "GT Line Variant", Icon: entity.IconCar},
				{Label: "Digital Cockpit", Icon: entity.IconLayoutDashboard},
				{Label: "Wireless Charging", Icon: entity.IconCheckCircle},
			},
			ImageSrc:     "/images/volkswagen-virtus.png" + imageSize,
			ImageAlt:     "White Volkswagen Virtus",
			FuelType:     "Petrol",
			Mileage:      "18 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          17,
			Name:        "Jeep Compass",
			Description: "A rugged and capable SUV, perfect for both city and off-road adventures.",
			Price:       2_200_000,
			Discount:    60_000,
			Category:    entity.CategorySUV,
			Features: []entity.Feature{
				{Label: "4x4 Capability", Icon: entity.IconSettings},
				{Label: "Uconnect Infotainment", Icon: entity.IconLayoutDashboard},
				{Label: "7 Airbags", Icon: entity.IconCheckCircle},
			},
			ImageSrc:     "/images/jeep-compass.png" + imageSize,
			ImageAlt:     "Green Jeep Compass",
			FuelType:     "Diesel",
			Mileage:      "15 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          18,
			Name:        "Renault Kwid",
			Description: "An affordable and compact hatchback, ideal for urban mobility.",
			Price:       500_000,
			Discount:    10_000,
			Category:    entity.CategoryHatchback,
			Features: []entity.Feature{
				{Label: "SUV-inspired Design", Icon: entity.IconCar},
				{Label: "8-inch Touchscreen", Icon: entity.IconLayoutDashboard},
				{Label: "Reverse Parking Camera", Icon: entity.IconCheckCircle},
			},
			ImageSrc:     "/images/renault-kwid.png" + imageSize,
			ImageAlt:     "Orange Renault Kwid",
			FuelType:     "Petrol",
			Mileage:      "22 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          19,
			Name:        "Nissan Magnite",
			Description: "A sub-compact SUV offering bold styling and value for money.",
			Price:       700_000,
			Discount:    15_000,
			Category:    entity.CategoryCompact,
			Features: []entity.Feature{
				{Label: "Turbo Petrol Engine", Icon: entity.IconSettings},
				{Label: "360-degree Camera", Icon: entity.IconCheckCircle},
				{Label: "Wireless Apple CarPlay/Android Auto", Icon: entity.IconLayoutDashboard},
			},
			ImageSrc:     "/images/nissan-magnite.png" + imageSize,
			ImageAlt:     "Red Nissan Magnite",
			FuelType:     "Petrol",
			Mileage:      "19 kmpl",
			Transmission: "Manual/Automatic",
		},
		{
			ID:          20,
			Name:        "Rolls-Royce Phantom",
			Description: "The epitome of luxury, offering unparalleled comfort and bespoke craftsmanship.",
			Price:       100_000_000,
			Discount:    5_000_000,
			Category:    entity.CategoryLuxury,
			Features: []entity.Feature{
				{Label: "Starlight Headliner", Icon: entity.IconCheckCircle},
				{Label: "Hand-built Interior", Icon: entity.IconSettings},
				{Label: "Silent Ride", Icon: entity.IconCar},
			},
			ImageSrc:     "/images/rolls-roys-phantom.png" + imageSize,
			ImageAlt:     "Black Rolls-Royce Phantom",
			FuelType:     "Petrol",
			Mileage:      "7 kmpl",
			Transmission: "Automatic",
		},
	}
}
