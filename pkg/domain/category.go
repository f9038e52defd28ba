package domain

// logical categories presented to the user
const (
	CategoryTodaysNews    = "Today's News"
	CategoryTopStories    = "Top Stories"
	CategoryWorld         = "World"
	CategoryBusiness      = "Business"
	CategoryTechnology    = "Technology"
	CategoryScience       = "Science"
	CategoryHealth        = "Health"
	CategorySports        = "Sports"
	CategoryEntertainment = "Entertainment"
	CategoryPolitics      = "Politics"
)

// Categories returns the enumerated logical categories
func Categories() []string {
	return []string{
		CategoryTodaysNews, CategoryTopStories, CategoryWorld, CategoryBusiness, CategoryTechnology,
		CategoryScience, CategoryHealth, CategorySports, CategoryEntertainment, CategoryPolitics,
	}
}

// IsUnfiltered reports whether the category is a sentinel meaning "no category filter"
func IsUnfiltered(category string) bool {
	return category == "" || category == CategoryTodaysNews || category == CategoryTopStories
}
