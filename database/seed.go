package database

import (
	"time"

	"github.com/google/uuid"

	"github.com/dsartorelli/book-site-backend/models"
)

// Default content seeded into each collection the first time it is accessed
// with nothing stored. Matches the launch content of the site.

func defaultReviews() []models.Review {
	now := time.Now().UTC().Format(time.RFC3339)
	return []models.Review{
		{
			ID:       "1",
			Name:     "Sarah Johnson",
			Rating:   5,
			Text:     `"Life in Instalments touched me deeply. Sartorelli's raw honesty and beautiful prose create a narrative that is both heartbreaking and ultimately uplifting. A must-read for anyone on their own journey of healing."`,
			Location: "New York Times",
			Date:     now,
		},
		{
			ID:       "2",
			Name:     "Michael Chen",
			Rating:   5,
			Text:     `"Few memoirs have the power to transform the reader as they follow the author's transformation. This book does exactly that. I couldn't put it down and found myself reflecting on my own life with new perspective."`,
			Location: "Literary Review",
			Date:     now,
		},
		{
			ID:       "3",
			Name:     "Emily Rodriguez",
			Rating:   5,
			Text:     `"Danielle Sartorelli writes with such clarity and emotion that you feel as though you're walking alongside her through every triumph and setback. A powerful testament to the resilience of the human spirit."`,
			Location: "Book Club Pick",
			Date:     now,
		},
	}
}

func defaultBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:    "1",
			Title: "Book Tour Announcement",
			Content: "I'm thrilled to announce that I'll be embarking on a nationwide tour to connect with readers and share the journey behind 'Life in Instalments'. \n\n" +
				"The tour will begin in New York City on April 15th and continue through major cities across the country. At each stop, I'll be reading excerpts from the book, answering questions, and signing copies. \n\n" +
				"This book has been such a personal journey for me, and I'm looking forward to discussing the themes of resilience, transformation, and healing with readers face-to-face. \n\n" +
				"Check the Events page for specific dates and venues. I hope to see many of you there!",
			Excerpt:  "Join Danielle as she embarks on a nationwide tour to connect with readers and share her journey.",
			Date:     "2025-03-10T12:00:00.000Z",
			ImageURL: "/placeholder.svg?height=400&width=600&text=Book+Tour",
		},
		{
			ID:    "2",
			Title: "Behind the Cover Design",
			Content: "The cover of 'Life in Instalments' holds special significance to me, and I wanted to share the story behind its creation. \n\n" +
				"Working with the talented designer Maria Rodriguez, we sought to capture the essence of the book's themes: the fragments of life that eventually form a complete picture. \n\n" +
				"The golden threads represent the connections that both bind us and ultimately free us when we learn to understand them. The dark background symbolizes the journey through difficult times, while the emerging light illustrates the transformation that comes through self-discovery. \n\n" +
				"Many readers have asked about the symbolism, and I'm touched by how deeply the visual elements have resonated alongside the written words.",
			Excerpt:  "Discover the symbolism and creative process behind the striking cover of Life in Instalments.",
			Date:     "2025-02-25T12:00:00.000Z",
			ImageURL: "/placeholder.svg?height=400&width=600&text=Cover+Design",
		},
		{
			ID:    "3",
			Title: "Reader Stories",
			Content: "Since the release of 'Life in Instalments', I've been deeply moved by the personal stories readers have shared with me. \n\n" +
				"Many have written to tell me how they found their own experiences reflected in the pages, and how the book has helped them process their own journeys of healing and transformation. \n\n" +
				"One reader from Seattle wrote: 'Your words gave me permission to acknowledge my own struggles and see them as part of a larger journey toward wholeness.' \n\n" +
				"Another from Miami shared: 'I've carried your book with me for weeks, returning to certain passages that feel like they were written directly to me.' \n\n" +
				"These connections are why I write, and I'm grateful to everyone who has reached out to share how the book has touched their lives.",
			Excerpt:  "Heartfelt responses from readers who found their own stories reflected in the pages of the book.",
			Date:     "2025-01-15T12:00:00.000Z",
			ImageURL: "/placeholder.svg?height=400&width=600&text=Reader+Stories",
		},
	}
}

func defaultEvents() []models.Event {
	return []models.Event{
		{
			ID:          "1",
			Title:       "Book Launch",
			Location:    "Sydney, Australia",
			Description: "Official launch of 'Life in Instalments'",
			Date:        "2025-05-15",
		},
		{
			ID:          "2",
			Title:       "Author Q&A Session",
			Location:    "Online Event",
			Description: "Join Danielle for a live discussion about the book",
			Date:        "2025-06-01",
		},
	}
}

func defaultPurchaseLinks() []models.PurchaseLink {
	return []models.PurchaseLink{
		{
			ID:          "1",
			Title:       "Amazon",
			Description: "Available in hardcover, paperback, and Kindle editions",
			URL:         "https://amazon.com",
			LogoURL:     "/placeholder.svg?height=80&width=80",
		},
		{
			ID:          "2",
			Title:       "Barnes & Noble",
			Description: "Available in hardcover, paperback, and Nook editions",
			URL:         "https://barnesandnoble.com",
			LogoURL:     "/placeholder.svg?height=80&width=80",
		},
		{
			ID:          "3",
			Title:       "Indie Bookstores",
			Description: "Support your local bookstore and get a signed copy",
			URL:         "https://indiebound.org",
			LogoURL:     "/placeholder.svg?height=80&width=80",
		},
	}
}

func defaultThemeImages() []models.ThemeImage {
	themes := []string{"Courage", "Resilience", "Transformation", "Truth"}
	images := make([]models.ThemeImage, 0, len(themes))
	for _, theme := range themes {
		images = append(images, models.ThemeImage{
			ID:    uuid.NewString(),
			Src:   "/placeholder.svg?height=400&width=400&text=" + theme,
			Alt:   theme + " theme image",
			Theme: theme,
		})
	}
	return images
}
