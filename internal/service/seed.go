package service

import "mini-shop/internal/model"

// sampleProducts is the fixed catalogue inserted the first time the product
// listing runs against an empty store.
func sampleProducts() []model.Product {
	return []model.Product{
		{
			Title:       "Classic Tee",
			Description: "Soft cotton tee in a relaxed fit.",
			Price:       19.99,
			Category:    "Apparel",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?w=800&q=80&auto=format&fit=crop",
		},
		{
			Title:       "Canvas Sneakers",
			Description: "Everyday low-top sneakers with cushioned soles.",
			Price:       49.0,
			Category:    "Shoes",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1528701800489-20beeb13d1d1?w=800&q=80&auto=format&fit=crop",
		},
		{
			Title:       "Leather Backpack",
			Description: "Durable backpack with laptop sleeve.",
			Price:       89.5,
			Category:    "Bags",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1521133573892-e44906baee46?w=800&q=80&auto=format&fit=crop",
		},
		{
			Title:       "Aviator Sunglasses",
			Description: "UV400 protection with classic metal frame.",
			Price:       29.95,
			Category:    "Accessories",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=800&q=80&auto=format&fit=crop",
		},
	}
}

// fallbackProducts is the degraded-mode response served when storage is
// unavailable, keeping the listing endpoint a 200 for demo deployments.
func fallbackProducts() []map[string]any {
	return []map[string]any{
		{
			"id":          "demo-1",
			"title":       "Classic Tee",
			"description": "Soft cotton tee in a relaxed fit.",
			"price":       19.99,
			"category":    "Apparel",
			"in_stock":    true,
			"image":       "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?w=800&q=80&auto=format&fit=crop",
		},
	}
}
