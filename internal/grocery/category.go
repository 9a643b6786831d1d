package grocery

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Category names of the default shopping categories, in display order.
const (
	CategoryProduce   = "Produce"
	CategoryMeat      = "Meat & Seafood"
	CategoryDairy     = "Dairy & Eggs"
	CategoryBakery    = "Bakery"
	CategoryPantry    = "Pantry"
	CategoryFrozen    = "Frozen"
	CategoryBeverages = "Beverages"
	CategoryOther     = "Other"
)

var defaultCategoryNames = []string{
	CategoryProduce,
	CategoryMeat,
	CategoryDairy,
	CategoryBakery,
	CategoryPantry,
	CategoryFrozen,
	CategoryBeverages,
	CategoryOther,
}

// Category is a shopping-list section. Its identity is fixed; only SortOrder
// changes.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

type categoryKeyword struct {
	keyword  string
	category string
}

// Order matters: the first keyword contained in the normalized name wins, so
// compound phrases ("chicken broth", "eggplant", "salt and pepper") sit ahead of
// the single words they contain.
var categoryKeywords = []categoryKeyword{
	// Frozen
	{"frozen", CategoryFrozen},
	{"ice cream", CategoryFrozen},
	{"sorbet", CategoryFrozen},

	// Pantry phrases that contain produce, meat or dairy words
	{"peanut", CategoryPantry},
	{"almond butter", CategoryPantry},
	{"coconut milk", CategoryPantry},
	{"condensed milk", CategoryPantry},
	{"evaporated milk", CategoryPantry},
	{"chicken broth", CategoryPantry},
	{"chicken stock", CategoryPantry},
	{"beef broth", CategoryPantry},
	{"beef stock", CategoryPantry},
	{"vegetable broth", CategoryPantry},
	{"vegetable stock", CategoryPantry},
	{"tomato paste", CategoryPantry},
	{"tomato sauce", CategoryPantry},
	{"canned", CategoryPantry},
	{"garlic powder", CategoryPantry},
	{"onion powder", CategoryPantry},
	{"black pepper", CategoryPantry},
	{"red pepper flakes", CategoryPantry},
	{"lemon juice", CategoryPantry},
	{"lime juice", CategoryPantry},
	{"cream of tartar", CategoryPantry},
	{"baking powder", CategoryPantry},
	{"baking soda", CategoryPantry},
	{"cornstarch", CategoryPantry},
	{"cornmeal", CategoryPantry},
	{"rolled oats", CategoryPantry},
	{"graham", CategoryPantry},
	{"salt and pepper", CategoryPantry},
	{"peppercorn", CategoryPantry},
	{"chickpea", CategoryPantry},
	{"grapeseed", CategoryPantry},
	{"coconut cream", CategoryPantry},

	// Produce phrases that contain other category words
	{"eggplant", CategoryProduce},
	{"bell pepper", CategoryProduce},
	{"green onion", CategoryProduce},
	{"spring onion", CategoryProduce},
	{"sweet potato", CategoryProduce},
	{"butternut", CategoryProduce},

	// Bakery phrases that contain meat words
	{"hamburger bun", CategoryBakery},
	{"hot dog bun", CategoryBakery},

	// Meat & Seafood
	{"chicken", CategoryMeat},
	{"beef", CategoryMeat},
	{"pork", CategoryMeat},
	{"bacon", CategoryMeat},
	{"sausage", CategoryMeat},
	{"turkey", CategoryMeat},
	{"lamb", CategoryMeat},
	{"steak", CategoryMeat},
	{"ham", CategoryMeat},
	{"prosciutto", CategoryMeat},
	{"salmon", CategoryMeat},
	{"tuna", CategoryMeat},
	{"cod", CategoryMeat},
	{"tilapia", CategoryMeat},
	{"shrimp", CategoryMeat},
	{"prawn", CategoryMeat},
	{"crab", CategoryMeat},
	{"scallop", CategoryMeat},
	{"fish", CategoryMeat},

	// Dairy & Eggs
	{"butter", CategoryDairy},
	{"milk", CategoryDairy},
	{"cream", CategoryDairy},
	{"cheese", CategoryDairy},
	{"parmesan", CategoryDairy},
	{"mozzarella", CategoryDairy},
	{"cheddar", CategoryDairy},
	{"yogurt", CategoryDairy},
	{"yoghurt", CategoryDairy},
	{"egg", CategoryDairy},

	// Produce
	{"lettuce", CategoryProduce},
	{"spinach", CategoryProduce},
	{"kale", CategoryProduce},
	{"arugula", CategoryProduce},
	{"cabbage", CategoryProduce},
	{"broccoli", CategoryProduce},
	{"cauliflower", CategoryProduce},
	{"carrot", CategoryProduce},
	{"celery", CategoryProduce},
	{"cucumber", CategoryProduce},
	{"zucchini", CategoryProduce},
	{"squash", CategoryProduce},
	{"tomato", CategoryProduce},
	{"potato", CategoryProduce},
	{"onion", CategoryProduce},
	{"shallot", CategoryProduce},
	{"garlic", CategoryProduce},
	{"ginger", CategoryProduce},
	{"pepper", CategoryProduce},
	{"jalapeno", CategoryProduce},
	{"mushroom", CategoryProduce},
	{"avocado", CategoryProduce},
	{"lemon", CategoryProduce},
	{"lime", CategoryProduce},
	{"orange", CategoryProduce},
	{"apple", CategoryProduce},
	{"banana", CategoryProduce},
	{"berries", CategoryProduce},
	{"berry", CategoryProduce},
	{"grape", CategoryProduce},
	{"mango", CategoryProduce},
	{"melon", CategoryProduce},
	{"pear", CategoryProduce},
	{"peach", CategoryProduce},
	{"cilantro", CategoryProduce},
	{"parsley", CategoryProduce},
	{"basil", CategoryProduce},
	{"mint", CategoryProduce},
	{"thyme", CategoryProduce},
	{"rosemary", CategoryProduce},
	{"scallion", CategoryProduce},
	{"corn", CategoryProduce},
	{"pea", CategoryProduce},

	// Bakery
	{"bread", CategoryBakery},
	{"baguette", CategoryBakery},
	{"bun", CategoryBakery},
	{"roll", CategoryBakery},
	{"bagel", CategoryBakery},
	{"tortilla", CategoryBakery},
	{"pita", CategoryBakery},
	{"croissant", CategoryBakery},

	// Pantry
	{"salt", CategoryPantry},
	{"flour", CategoryPantry},
	{"sugar", CategoryPantry},
	{"rice", CategoryPantry},
	{"pasta", CategoryPantry},
	{"spaghetti", CategoryPantry},
	{"noodle", CategoryPantry},
	{"oil", CategoryPantry},
	{"vinegar", CategoryPantry},
	{"sauce", CategoryPantry},
	{"broth", CategoryPantry},
	{"stock", CategoryPantry},
	{"honey", CategoryPantry},
	{"syrup", CategoryPantry},
	{"vanilla", CategoryPantry},
	{"cinnamon", CategoryPantry},
	{"cumin", CategoryPantry},
	{"paprika", CategoryPantry},
	{"oregano", CategoryPantry},
	{"spice", CategoryPantry},
	{"bean", CategoryPantry},
	{"lentil", CategoryPantry},
	{"oat", CategoryPantry},
	{"nut", CategoryPantry},
	{"almond", CategoryPantry},
	{"chocolate", CategoryPantry},
	{"yeast", CategoryPantry},

	// Beverages
	{"coffee", CategoryBeverages},
	{"tea", CategoryBeverages},
	{"juice", CategoryBeverages},
	{"soda", CategoryBeverages},
	{"water", CategoryBeverages},
	{"wine", CategoryBeverages},
	{"beer", CategoryBeverages},
}

// DefaultCategories returns a fresh copy of the standard category set. Ids
// are name-based UUIDs, so every list starts with the same ids.
func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategoryNames))
	for i, name := range defaultCategoryNames {
		out[i] = Category{
			ID:        DefaultCategoryID(name),
			Name:      name,
			SortOrder: i,
		}
	}
	return out
}

// DefaultCategoryID is the id DefaultCategories assigns to name.
func DefaultCategoryID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("recipeprep:category:"+name)).String()
}

// CategoryName returns the keyword-table category name for an ingredient,
// or "Other".
func CategoryName(name string) string {
	key := NormalizeIngredientName(name)
	if key == "" {
		return CategoryOther
	}
	for _, kw := range categoryKeywords {
		if strings.Contains(key, kw.keyword) {
			return kw.category
		}
	}
	return CategoryOther
}

// Categorize maps an ingredient name to the id of a category in categories.
// Names that match no keyword go to "Other", or the first category when there
// is no "Other".
func Categorize(name string, categories []Category) string {
	if len(categories) == 0 {
		return ""
	}
	if id, ok := categoryID(CategoryName(name), categories); ok {
		return id
	}
	if id, ok := categoryID(CategoryOther, categories); ok {
		return id
	}
	return categories[0].ID
}

func categoryID(name string, categories []Category) (string, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c.ID, true
		}
	}
	return "", false
}

// ReorderCategories assigns SortOrder following orderedIDs. Categories not
// listed keep their relative order after the listed ones. The result is
// sorted by the new SortOrder.
func ReorderCategories(categories []Category, orderedIDs []string) []Category {
	rank := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}

	out := make([]Category, len(categories))
	copy(out, categories)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := rank[out[i].ID]
		rj, jok := rank[out[j].ID]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return out[i].SortOrder < out[j].SortOrder
		}
	})
	for i := range out {
		out[i].SortOrder = i
	}
	return out
}
