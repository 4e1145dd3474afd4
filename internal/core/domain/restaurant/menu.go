package restaurant

import "sort"

type MenuCategory struct {
	Category Category
	Dishes   []Dish
	Children []MenuCategory
}

type Menu struct {
	Restaurant Restaurant
	Categories []MenuCategory
}

// BuildMenu arranges categories into top-level entries with one level of
// children. Every category lists its available dishes by link order.
func BuildMenu(r Restaurant, categories []Category, links []DishLink) Menu {
	dishesByCategory := make(map[CategoryID][]DishLink, len(categories))
	for _, link := range links {
		if !link.Dish.IsAvailable {
			continue
		}
		dishesByCategory[link.CategoryID] = append(dishesByCategory[link.CategoryID], link)
	}

	sorted := make([]Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DisplayOrder != sorted[j].DisplayOrder {
			return sorted[i].DisplayOrder < sorted[j].DisplayOrder
		}
		return sorted[i].ID < sorted[j].ID
	})

	childrenByParent := make(map[CategoryID][]Category)
	for _, category := range sorted {
		if category.ParentID.IsPresent {
			childrenByParent[category.ParentID.Value] = append(childrenByParent[category.ParentID.Value], category)
		}
	}

	menu := Menu{Restaurant: r, Categories: make([]MenuCategory, 0)}
	for _, category := range sorted {
		if !category.IsTopLevel() {
			continue
		}
		entry := newMenuCategory(category, dishesByCategory[category.ID])
		for _, child := range childrenByParent[category.ID] {
			entry.Children = append(entry.Children, newMenuCategory(child, dishesByCategory[child.ID]))
		}
		menu.Categories = append(menu.Categories, entry)
	}
	return menu
}

func newMenuCategory(category Category, links []DishLink) MenuCategory {
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].OrderIndex < links[j].OrderIndex
	})
	dishes := make([]Dish, len(links))
	for ix, link := range links {
		dishes[ix] = link.Dish
	}
	return MenuCategory{Category: category, Dishes: dishes, Children: make([]MenuCategory, 0)}
}
