package services

import "strings"

// ImageResult is one candidate image offered to the admin when picking a blog
// or theme illustration. Only the URL the admin selects is ever stored.
type ImageResult struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	ThumbURL    string `json:"thumbUrl"`
	Description string `json:"description"`
	Credit      string `json:"credit"`
}

// Curated catalogs standing in for a real image-search integration. The
// selection logic keys off the query the same way the admin panel always has.
var readingImages = []ImageResult{
	{
		ID:          "1",
		URL:         "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=1000",
		ThumbURL:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=400",
		Description: "Open book with pages",
		Credit:      "Susan Yin",
	},
	{
		ID:          "2",
		URL:         "https://images.unsplash.com/photo-1512820790803-83ca734da794?q=80&w=1000",
		ThumbURL:    "https://images.unsplash.com/photo-1512820790803-83ca734da794?q=80&w=400",
		Description: "Woman writing in journal",
		Credit:      "Thought Catalog",
	},
	{
		ID:          "3",
		URL:         "https://images.unsplash.com/photo-1532012197267-da84d127e765?q=80&w=1000",
		ThumbURL:    "https://images.unsplash.com/photo-1532012197267-da84d127e765?q=80&w=400",
		Description: "Stack of books with reading glasses",
		Credit:      "Kimberly Farmer",
	},
	{
		ID:          "4",
		URL:         "https://images.unsplash.com/photo-1457369804613-52c61a468e7d?q=80&w=1000",
		ThumbURL:    "https://images.unsplash.com/photo-1457369804613-52c61a468e7d?q=80&w=400",
		Description: "Person writing in notebook",
		Credit:      "Thought Catalog",
	},
	{
		ID:          "5",
		URL:         "https://images.unsplash.com/photo-1506880018603-83d5b814b5a6?q=80&w=1000",
		ThumbURL:    "https://images.unsplash.com/photo-1506880018603-83d5b814b5a6?q=80&w=400",
		Description: "Typewriter with paper",
		Credit:      "Florian Klauer",
	},
	{
		ID:          "6",
		URL:         "https://images.unsplash.com/photo-1519682577862-22b62b24e493?q=80&w=1000",
		ThumbURL:    "https://images.unsplash.com/photo-1519682577862-22b62b24e493?q=80&w=400",
		Description: "Open book with coffee",
		Credit:      "Sincerely Media",
	},
}

var eventImages = []ImageResult{
	{
		ID:          "7",
		URL:         "https://images.unsplash.com/photo-1501386761578-eac5c94b800a?q=80&w=1000",
		ThumbURL:    "https://images.unsplash.com/photo-1501386761578-eac5c94b800a?q=80&w=400",
		Description: "People at book signing event",
		Credit:      "Edwin Andrade",
	},
	{
		ID:          "8",
		URL:         "https://images.unsplash.com/photo-1560523159-4a9692d222f8?q=80&w=1000",
		ThumbURL:    "https://images.unsplash.com/photo-1560523159-4a9692d222f8?q=80&w=400",
		Description: "Microphone on stage",
		Credit:      "Kane Reinholdtsen",
	},
}

var authorImages = []ImageResult{
	{
		ID:          "9",
		URL:         "https://images.unsplash.com/photo-1544717305-2782549b5136?q=80&w=1000",
		ThumbURL:    "https://images.unsplash.com/photo-1544717305-2782549b5136?q=80&w=400",
		Description: "Woman writing at desk",
		Credit:      "Thought Catalog",
	},
	{
		ID:          "10",
		URL:         "https://images.unsplash.com/photo-1515378791036-0648a3ef77b2?q=80&w=1000",
		ThumbURL:    "https://images.unsplash.com/photo-1515378791036-0648a3ef77b2?q=80&w=400",
		Description: "Woman with laptop",
		Credit:      "Tim Gouw",
	},
}

func containsAny(query string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(query, term) {
			return true
		}
	}
	return false
}

// SearchImages returns candidate images for the query. An empty query yields
// a popular mix; unrecognized queries get a sampler rather than nothing.
func SearchImages(query string) []ImageResult {
	q := strings.ToLower(strings.TrimSpace(query))
	switch {
	case q == "":
		results := append([]ImageResult(nil), readingImages[:3]...)
		results = append(results, eventImages[0])
		results = append(results, authorImages...)
		return results
	case containsAny(q, "book", "read"):
		return append([]ImageResult(nil), readingImages...)
	case containsAny(q, "tour", "event", "signing"):
		return append([]ImageResult(nil), eventImages...)
	case containsAny(q, "author", "writer"):
		return append([]ImageResult(nil), authorImages...)
	default:
		return []ImageResult{readingImages[0], eventImages[0], authorImages[0], readingImages[2]}
	}
}
