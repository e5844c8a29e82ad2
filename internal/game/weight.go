package game

// CarriedWeight sums the weight of every item in the inventory. Unknown
// ids weigh nothing; they indicate a content bug reported elsewhere.
func CarriedWeight(inventory []string, lookup func(string) *Item) int {
	total := 0
	for _, id := range inventory {
		if item := lookup(id); item != nil {
			total += item.Weight
		}
	}
	return total
}

// CanCarryItem reports whether picking up the item would keep the
// carried weight within maxWeight.
func CanCarryItem(inventory []string, itemId string, maxWeight int, lookup func(string) *Item) bool {
	item := lookup(itemId)
	if item == nil {
		return false
	}
	return CarriedWeight(inventory, lookup)+item.Weight <= maxWeight
}
