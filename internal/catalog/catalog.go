// Package catalog holds the fixed, read-only book catalog served by the
// public search endpoint. The data lives in process memory; there is no
// database behind it and no mutation path.
package catalog

import "strings"

// Entry is a single catalog record. IDs are stable string handles,
// not database keys.
type Entry struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Cover       string  `json:"cover"`
	Description string  `json:"description"`
	ISBN        string  `json:"isbn"`
	Rating      float64 `json:"rating"`
}

// fallbackSize is how many leading entries are returned when a query
// matches nothing. Returning a non-empty subset instead of an empty
// list is deliberate product behavior, not an error path.
const fallbackSize = 4

var entries = []Entry{
	{
		ID:          "book1",
		Title:       "Harry Potter and the Philosopher's Stone",
		Author:      "J.K. Rowling",
		Cover:       "https://covers.openlibrary.org/b/id/10521270-L.jpg",
		Description: "The first novel in the Harry Potter series and Rowling's debut novel.",
		ISBN:        "9780439708180",
		Rating:      4.8,
	},
	{
		ID:          "book2",
		Title:       "To Kill a Mockingbird",
		Author:      "Harper Lee",
		Cover:       "https://covers.openlibrary.org/b/id/8231346-L.jpg",
		Description: "A gripping story of racial injustice and childhood innocence.",
		ISBN:        "9780061120084",
		Rating:      4.7,
	},
	{
		ID:          "book3",
		Title:       "1984",
		Author:      "George Orwell",
		Cover:       "https://covers.openlibrary.org/b/id/7222246-L.jpg",
		Description: "A dystopian social science fiction novel and cautionary tale.",
		ISBN:        "9780451524935",
		Rating:      4.6,
	},
	{
		ID:          "book4",
		Title:       "Pride and Prejudice",
		Author:      "Jane Austen",
		Cover:       "https://covers.openlibrary.org/b/id/8913952-L.jpg",
		Description: "A romantic novel of manners set in Georgian England.",
		ISBN:        "9780141439518",
		Rating:      4.5,
	},
	{
		ID:          "book5",
		Title:       "The Great Gatsby",
		Author:      "F. Scott Fitzgerald",
		Cover:       "https://covers.openlibrary.org/b/id/7984916-L.jpg",
		Description: "A story of decadence and excess in the Jazz Age.",
		ISBN:        "9780743273565",
		Rating:      4.4,
	},
	{
		ID:          "book6",
		Title:       "The Hobbit",
		Author:      "J.R.R. Tolkien",
		Cover:       "https://covers.openlibrary.org/b/id/8467493-L.jpg",
		Description: "A fantasy novel about the adventures of Bilbo Baggins.",
		ISBN:        "9780547928227",
		Rating:      4.7,
	},
	{
		ID:          "book7",
		Title:       "The Catcher in the Rye",
		Author:      "J.D. Salinger",
		Cover:       "https://covers.openlibrary.org/b/id/8228691-L.jpg",
		Description: "A story about teenage rebellion and alienation.",
		ISBN:        "9780316769174",
		Rating:      4.3,
	},
	{
		ID:          "book8",
		Title:       "Lord of the Flies",
		Author:      "William Golding",
		Cover:       "https://covers.openlibrary.org/b/id/8238427-L.jpg",
		Description: "A novel about the descent into savagery.",
		ISBN:        "9780399501487",
		Rating:      4.2,
	},
}

// Search filters the catalog by case-insensitive substring match on
// title or author. When nothing matches, the first fallbackSize
// entries are returned so the client always has something to show.
func Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Author), q) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		out = append(out, entries[:fallbackSize]...)
	}
	return out
}
