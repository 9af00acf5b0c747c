package catalog

// Category names in display order.
const (
	CategoryArrays             = "Arrays"
	CategoryLinkedLists        = "Linked Lists"
	CategoryStacks             = "Stacks"
	CategoryQueues             = "Queues"
	CategoryHashing            = "Hashing"
	CategoryStrings            = "Strings"
	CategoryTrees              = "Trees"
	CategoryHeaps              = "Heaps"
	CategoryGraphs             = "Graphs"
	CategorySorting            = "Sorting"
	CategorySearching          = "Searching"
	CategoryRecursion          = "Recursion"
	CategoryDynamicProgramming = "Dynamic Programming"
	CategoryGreedy             = "Greedy Algorithms"
)

var builtinCategories = []string{
	CategoryArrays,
	CategoryLinkedLists,
	CategoryStacks,
	CategoryQueues,
	CategoryHashing,
	CategoryStrings,
	CategoryTrees,
	CategoryHeaps,
	CategoryGraphs,
	CategorySorting,
	CategorySearching,
	CategoryRecursion,
	CategoryDynamicProgramming,
	CategoryGreedy,
}

// Categories returns the built-in category list in display order.
func Categories() []string {
	return append([]string(nil), builtinCategories...)
}
