package catalog

import "github.com/shopspring/decimal"

func pexels(photoID string) string {
	return "https://images.pexels.com/photos/" + photoID + "/pexels-photo-" + photoID + ".jpeg?auto=compress&cs=tinysrgb&w=800"
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func originalPrice(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

// Seed returns the ARVANA launch collection.
func Seed() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Premium Cotton T-Shirt",
			Price:       price("29.99"),
			Category:    CategoryTops,
			Description: "Soft premium cotton t-shirt with a modern fit. Perfect for everyday wear with superior comfort and style.",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Black", "White", "Navy", "Gray"},
			Image:       pexels("8532616"),
			Images:      []string{pexels("8532616"), pexels("7679720"), pexels("5560021")},
			Rating:      4.5,
			Reviews:     128,
			IsNew:       true,
		},
		{
			ID:            "2",
			Name:          "Slim Fit Denim Jeans",
			Price:         price("79.99"),
			OriginalPrice: originalPrice("99.99"),
			Category:      CategoryBottoms,
			Description:   "Classic slim-fit denim jeans crafted from premium denim. Features a comfortable stretch and timeless style.",
			Sizes:         []string{"28", "30", "32", "34", "36"},
			Colors:        []string{"Dark Blue", "Light Blue", "Black"},
			Image:         pexels("1598505"),
			Images:        []string{pexels("1598505"), pexels("1598507")},
			Rating:        4.7,
			Reviews:       89,
			IsSale:        true,
		},
		{
			ID:          "3",
			Name:        "Wool Blend Sweater",
			Price:       price("89.99"),
			Category:    CategorySweaters,
			Description: "Luxurious wool blend sweater with a cozy feel. Perfect for cooler weather with elegant styling.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Beige", "Navy", "Charcoal", "Cream"},
			Image:       pexels("7679448"),
			Images:      []string{pexels("7679448"), pexels("7679449")},
			Rating:      4.8,
			Reviews:     156,
		},
		{
			ID:          "4",
			Name:        "Casual Button-Down Shirt",
			Price:       price("59.99"),
			Category:    CategoryShirts,
			Description: "Versatile button-down shirt perfect for both casual and formal occasions. Made from breathable cotton.",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"White", "Light Blue", "Navy", "Gray"},
			Image:       pexels("7679720"),
			Images:      []string{pexels("7679720"), pexels("8532616")},
			Rating:      4.4,
			Reviews:     73,
		},
		{
			ID:          "5",
			Name:        "Leather Jacket",
			Price:       price("199.99"),
			Category:    CategoryJackets,
			Description: "Premium leather jacket with a timeless design. Features quality craftsmanship and durability.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Brown", "Tan"},
			Image:       pexels("1040945"),
			Images:      []string{pexels("1040945"), pexels("1040946")},
			Rating:      4.9,
			Reviews:     234,
		},
		{
			ID:          "6",
			Name:        "Chino Pants",
			Price:       price("49.99"),
			Category:    CategoryBottoms,
			Description: "Classic chino pants with a modern fit. Perfect for smart-casual occasions with comfortable wear.",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"Khaki", "Navy", "Black", "Olive"},
			Image:       pexels("1598508"),
			Images:      []string{pexels("1598508"), pexels("1598509")},
			Rating:      4.3,
			Reviews:     67,
		},
		{
			ID:          "7",
			Name:        "Knit Cardigan",
			Price:       price("69.99"),
			Category:    CategorySweaters,
			Description: "Cozy knit cardigan perfect for layering. Features a relaxed fit and soft texture.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Gray", "Navy", "Cream", "Burgundy"},
			Image:       pexels("5560021"),
			Images:      []string{pexels("5560021"), pexels("5560022")},
			Rating:      4.6,
			Reviews:     92,
			IsNew:       true,
		},
		{
			ID:          "8",
			Name:        "Polo Shirt",
			Price:       price("39.99"),
			Category:    CategoryTops,
			Description: "Classic polo shirt with a modern twist. Made from breathable cotton with a comfortable fit.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Navy", "Red", "Green"},
			Image:       pexels("7679449"),
			Images:      []string{pexels("7679449"), pexels("7679448")},
			Rating:      4.2,
			Reviews:     45,
		},
	}
}

// Default returns a catalog built from Seed.
func Default() *Catalog {
	c, err := New(Seed())
	if err != nil {
		panic(err)
	}
	return c
}
