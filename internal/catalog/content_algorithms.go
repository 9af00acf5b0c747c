package catalog

import "dsa-catalog/internal/domain"

var algorithmTopics = []domain.Topic{
	{
		ID:          "merge-sort",
		Title:       "Merge Sort",
		Description: "A stable divide-and-conquer sort that splits the input in half and merges sorted halves.",
		Category:    CategorySorting,
		Difficulty:  domain.DifficultyIntermediate,
		ExtendedDefinition: "Merge sort recursively sorts each half and merges them by repeatedly taking the smaller " +
			"head element. The recursion depth is log n and each level does O(n) merging work, so the total is " +
			"O(n log n) in every case. The standard array version needs O(n) auxiliary space.",
		Example:               "[38, 27, 43, 3] splits into [38, 27] and [43, 3], which sort to [27, 38] and [3, 43] and merge into [3, 27, 38, 43].",
		VoiceExplanation:      "Split the pile of cards in half until each pile has one card, then keep merging two sorted piles into one.",
		RealWorldApplications: "External sorting of files larger than memory, sorting linked lists, stable sorts in standard libraries, and inversion counting.",
		Pseudocode: "function mergeSort(A):\n" +
			"    if length(A) <= 1: return A\n" +
			"    mid = length(A) / 2\n" +
			"    return merge(mergeSort(A[0..mid]), mergeSort(A[mid..]))",
		KeyConcepts: "Divide and conquer; stable; O(n log n) guaranteed; O(n) extra space; recurrence T(n) = 2T(n/2) + O(n).",
		ImplementationCode: "func mergeSort(a []int) []int {\n" +
			"\tif len(a) <= 1 {\n" +
			"\t\treturn a\n" +
			"\t}\n" +
			"\tmid := len(a) / 2\n" +
			"\tl, r := mergeSort(a[:mid]), mergeSort(a[mid:])\n" +
			"\tout := make([]int, 0, len(a))\n" +
			"\tfor len(l) > 0 && len(r) > 0 {\n" +
			"\t\tif l[0] <= r[0] {\n" +
			"\t\t\tout, l = append(out, l[0]), l[1:]\n" +
			"\t\t} else {\n" +
			"\t\t\tout, r = append(out, r[0]), r[1:]\n" +
			"\t\t}\n" +
			"\t}\n" +
			"\treturn append(append(out, l...), r...)\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "What is merge sort's worst-case time complexity?",
				Options:       []string{"O(n)", "O(n log n)", "O(n^2)", "O(log n)"},
				CorrectAnswer: 1,
				Explanation:   "log n levels of recursion with O(n) merge work per level, regardless of input order.",
			},
			{
				Question:      "Is the usual merge sort stable?",
				Options:       []string{"Yes, when ties take from the left half first", "No, never", "Only on linked lists", "Only for integers"},
				CorrectAnswer: 0,
				Explanation:   "Taking the left element on ties keeps equal keys in their original order.",
			},
		},
	},
	{
		ID:          "quick-sort",
		Title:       "Quick Sort",
		Description: "An in-place divide-and-conquer sort that partitions around a pivot.",
		Category:    CategorySorting,
		Difficulty:  domain.DifficultyIntermediate,
		ExtendedDefinition: "Quick sort picks a pivot, partitions the array so smaller elements precede it and larger " +
			"ones follow, then recurses on both sides. Average time is O(n log n) with small constants; the worst " +
			"case O(n^2) happens when pivots are consistently extreme, which random or median-of-three pivots make unlikely.",
		Example:               "Partitioning [7, 2, 9, 4, 5] around pivot 5 gives [2, 4, 5, 9, 7]; the sides [2, 4] and [9, 7] are sorted recursively.",
		RealWorldApplications: "General-purpose in-memory sorting (introsort and pdqsort build on it) and quickselect for order statistics.",
		Pseudocode: "function partition(A, lo, hi):\n" +
			"    pivot = A[hi]; i = lo\n" +
			"    for j from lo to hi - 1:\n" +
			"        if A[j] < pivot: swap A[i], A[j]; i = i + 1\n" +
			"    swap A[i], A[hi]\n" +
			"    return i",
		KeyConcepts: "Pivot choice; Lomuto versus Hoare partition; in place; not stable; O(log n) expected stack depth.",
		ImplementationCode: "func quickSort(a []int) {\n" +
			"\tif len(a) < 2 {\n" +
			"\t\treturn\n" +
			"\t}\n" +
			"\tp := a[len(a)-1]\n" +
			"\ti := 0\n" +
			"\tfor j := 0; j < len(a)-1; j++ {\n" +
			"\t\tif a[j] < p {\n" +
			"\t\t\ta[i], a[j] = a[j], a[i]\n" +
			"\t\t\ti++\n" +
			"\t\t}\n" +
			"\t}\n" +
			"\ta[i], a[len(a)-1] = a[len(a)-1], a[i]\n" +
			"\tquickSort(a[:i])\n" +
			"\tquickSort(a[i+1:])\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "When does quick sort with a last-element pivot hit its O(n^2) worst case?",
				Options:       []string{"On random input", "On already sorted input", "When all keys are distinct", "When n is a power of two"},
				CorrectAnswer: 1,
				Explanation:   "Each partition then splits off only one element, giving n levels of recursion.",
			},
			{
				Question:      "Which property does standard quick sort lack compared to merge sort?",
				Options:       []string{"In-place operation", "Stability", "Average O(n log n) time", "Divide and conquer structure"},
				CorrectAnswer: 1,
				Explanation:   "Partition swaps can reorder equal keys, so quick sort is not stable.",
			},
		},
	},
	{
		ID:          "binary-search",
		Title:       "Binary Search",
		Description: "Find a target in a sorted sequence by halving the search range each step.",
		Category:    CategorySearching,
		Difficulty:  domain.DifficultyBeginner,
		ExtendedDefinition: "Binary search compares the target with the middle element and discards the half that " +
			"cannot contain it. After k steps the range has n / 2^k elements, so it finishes in O(log n). The same " +
			"idea applies to any monotonic predicate, such as the first index where a condition becomes true.",
		Example:               "Searching 23 in [2, 5, 8, 12, 16, 23, 38]: mid 12 < 23 so go right; mid 23 matches at index 5.",
		Syntax:                "i := sort.SearchInts(nums, target)\nfound := i < len(nums) && nums[i] == target",
		VoiceExplanation:      "It is how you look up a word in a paper dictionary: open in the middle and decide which half to keep.",
		RealWorldApplications: "Index lookups, git bisect, finding version boundaries, and searching answer spaces in optimization problems.",
		Pseudocode: "function binarySearch(A, target):\n" +
			"    lo = 0, hi = length(A) - 1\n" +
			"    while lo <= hi:\n" +
			"        mid = lo + (hi - lo) / 2\n" +
			"        if A[mid] == target: return mid\n" +
			"        if A[mid] < target: lo = mid + 1\n" +
			"        else: hi = mid - 1\n" +
			"    return -1",
		KeyConcepts: "Requires sorted input or a monotonic predicate; O(log n); compute mid as lo + (hi - lo) / 2 to avoid overflow.",
		ImplementationCode: "func binarySearch(a []int, target int) int {\n" +
			"\tlo, hi := 0, len(a)-1\n" +
			"\tfor lo <= hi {\n" +
			"\t\tmid := lo + (hi-lo)/2\n" +
			"\t\tswitch {\n" +
			"\t\tcase a[mid] == target:\n" +
			"\t\t\treturn mid\n" +
			"\t\tcase a[mid] < target:\n" +
			"\t\t\tlo = mid + 1\n" +
			"\t\tdefault:\n" +
			"\t\t\thi = mid - 1\n" +
			"\t\t}\n" +
			"\t}\n" +
			"\treturn -1\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "At most how many comparisons does binary search need on 1,000,000 sorted elements?",
				Options:       []string{"About 10", "About 20", "About 1,000", "About 500,000"},
				CorrectAnswer: 1,
				Explanation:   "log2(1,000,000) is just under 20.",
			},
			{
				Question:      "Why write mid = lo + (hi - lo) / 2 instead of (lo + hi) / 2?",
				Options:       []string{"It is faster", "It avoids integer overflow when lo + hi is large", "It rounds up", "It handles negative numbers"},
				CorrectAnswer: 1,
				Explanation:   "lo + hi can exceed the integer range even when both fit.",
			},
		},
	},
	{
		ID:          "recursion-basics",
		Title:       "Recursion",
		Description: "Solve a problem by having a function call itself on smaller instances until a base case.",
		Category:    CategoryRecursion,
		Difficulty:  domain.DifficultyBeginner,
		ExtendedDefinition: "A recursive function needs a base case that stops the recursion and a recursive case " +
			"that makes progress toward it. Each call gets its own stack frame, so depth is limited by stack size; " +
			"tail calls and explicit stacks are ways around deep recursion.",
		Example:               "factorial(4) = 4 * factorial(3) = 4 * 3 * factorial(2) = 4 * 3 * 2 * factorial(1) = 24.",
		VoiceExplanation:      "Recursion is like Russian nesting dolls: open one, find a smaller one inside, until you reach the doll that does not open.",
		RealWorldApplications: "Tree and graph traversal, parsing nested structures like JSON, divide and conquer algorithms, and backtracking search.",
		Pseudocode: "function factorial(n):\n" +
			"    if n <= 1: return 1\n" +
			"    return n * factorial(n - 1)",
		KeyConcepts: "Base case; progress toward the base case; call stack growth; recursion trees for complexity analysis.",
		ImplementationCode: "func factorial(n int) int {\n" +
			"\tif n <= 1 {\n" +
			"\t\treturn 1\n" +
			"\t}\n" +
			"\treturn n * factorial(n-1)\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "What happens if a recursive function has no reachable base case?",
				Options:       []string{"It returns zero", "It recurses until the stack overflows", "The compiler optimizes it away", "It runs in constant time"},
				CorrectAnswer: 1,
				Explanation:   "Every call pushes a frame; without termination the stack is exhausted.",
			},
			{
				Question:      "How much stack space does naive recursive factorial(n) use?",
				Options:       []string{"O(1)", "O(log n)", "O(n)", "O(n^2)"},
				CorrectAnswer: 2,
				Explanation:   "There are n nested calls alive at the deepest point.",
			},
		},
	},
	{
		ID:          "knapsack-01",
		Title:       "0/1 Knapsack",
		Description: "Choose items with weights and values to maximize value without exceeding a capacity.",
		Category:    CategoryDynamicProgramming,
		Difficulty:  domain.DifficultyAdvanced,
		ExtendedDefinition: "Each item is either taken or left. dp[w] holds the best value achievable with capacity w " +
			"using the items seen so far; processing capacities from high to low lets one array serve as the table. " +
			"The result is O(n * W) time, pseudo-polynomial because W is a numeric value, not an input size.",
		Example:               "Capacity 5, items (w=2, v=3), (w=3, v=4), (w=4, v=5): the best choice is the first two items for value 7.",
		RealWorldApplications: "Budget allocation, cargo loading, selecting ads for a slot, and resource scheduling under limits.",
		Pseudocode: "function knapsack(items, W):\n" +
			"    dp[0..W] = 0\n" +
			"    for (w, v) in items:\n" +
			"        for c from W down to w:\n" +
			"            dp[c] = max(dp[c], dp[c - w] + v)\n" +
			"    return dp[W]",
		KeyConcepts: "Optimal substructure; overlapping subproblems; iterate capacity downward for 0/1; pseudo-polynomial time.",
		ImplementationCode: "func knapsack(weights, values []int, capacity int) int {\n" +
			"\tdp := make([]int, capacity+1)\n" +
			"\tfor i, w := range weights {\n" +
			"\t\tfor c := capacity; c >= w; c-- {\n" +
			"\t\t\tif v := dp[c-w] + values[i]; v > dp[c] {\n" +
			"\t\t\t\tdp[c] = v\n" +
			"\t\t\t}\n" +
			"\t\t}\n" +
			"\t}\n" +
			"\treturn dp[capacity]\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "Why is the capacity loop iterated from high to low in the one-dimensional 0/1 knapsack?",
				Options:       []string{"It is faster", "So each item is counted at most once", "To sort the items", "To handle negative weights"},
				CorrectAnswer: 1,
				Explanation:   "Going downward means dp[c - w] still refers to the state before the current item was considered.",
			},
			{
				Question:      "What is the time complexity of the DP solution with n items and capacity W?",
				Options:       []string{"O(n + W)", "O(n * W)", "O(2^n)", "O(n log W)"},
				CorrectAnswer: 1,
				Explanation:   "Each of the n items updates up to W + 1 table cells.",
			},
		},
	},
	{
		ID:          "longest-common-subsequence",
		Title:       "Longest Common Subsequence",
		Description: "Find the longest sequence that appears in two strings in the same relative order.",
		Category:    CategoryDynamicProgramming,
		Difficulty:  domain.DifficultyAdvanced,
		ExtendedDefinition: "dp[i][j] is the LCS length of the first i characters of A and the first j of B. " +
			"Matching characters extend the diagonal; otherwise take the better of dropping one character from " +
			"either string. Backtracking through the table recovers the subsequence itself.",
		Example:               "LCS of \"ABCBDAB\" and \"BDCABA\" has length 4, for example \"BCBA\".",
		RealWorldApplications: "diff tools, version control merges, DNA sequence alignment, and plagiarism detection.",
		Pseudocode: "for i from 1 to n:\n" +
			"    for j from 1 to m:\n" +
			"        if A[i-1] == B[j-1]: dp[i][j] = dp[i-1][j-1] + 1\n" +
			"        else: dp[i][j] = max(dp[i-1][j], dp[i][j-1])",
		KeyConcepts: "Two-dimensional DP table; O(n * m) time; space reducible to O(min(n, m)) for the length only.",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "What is the LCS length of \"ABC\" and \"AC\"?",
				Options:       []string{"1", "2", "3", "0"},
				CorrectAnswer: 1,
				Explanation:   "\"AC\" appears in both in order.",
			},
		},
	},
	{
		ID:          "activity-selection",
		Title:       "Activity Selection",
		Description: "Pick the maximum number of non-overlapping intervals by always choosing the earliest finish.",
		Category:    CategoryGreedy,
		Difficulty:  domain.DifficultyIntermediate,
		ExtendedDefinition: "Sorting intervals by end time and repeatedly taking the first one that starts after the last " +
			"chosen end is optimal: an exchange argument shows any optimal schedule can be rewritten to start " +
			"with the earliest-finishing interval without losing activities.",
		Example:               "Intervals [1,4], [3,5], [0,6], [5,7], [8,9]: choose [1,4], then [5,7], then [8,9] for three activities.",
		RealWorldApplications: "Meeting room booking, CPU job scheduling, and broadcast slot allocation.",
		Pseudocode: "function select(intervals):\n" +
			"    sort intervals by end\n" +
			"    lastEnd = -infinity; chosen = []\n" +
			"    for (s, e) in intervals:\n" +
			"        if s >= lastEnd: append (s, e) to chosen; lastEnd = e\n" +
			"    return chosen",
		KeyConcepts: "Greedy choice property; exchange argument; O(n log n) dominated by sorting.",
		ImplementationCode: "func selectActivities(iv [][2]int) [][2]int {\n" +
			"\tsort.Slice(iv, func(i, j int) bool { return iv[i][1] < iv[j][1] })\n" +
			"\tvar chosen [][2]int\n" +
			"\tlastEnd := math.MinInt\n" +
			"\tfor _, in := range iv {\n" +
			"\t\tif in[0] >= lastEnd {\n" +
			"\t\t\tchosen = append(chosen, in)\n" +
			"\t\t\tlastEnd = in[1]\n" +
			"\t\t}\n" +
			"\t}\n" +
			"\treturn chosen\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "Which greedy rule solves activity selection optimally?",
				Options:       []string{"Shortest interval first", "Earliest start first", "Earliest finish first", "Fewest conflicts first"},
				CorrectAnswer: 2,
				Explanation:   "Finishing earliest leaves the most room for the remaining activities.",
			},
		},
	},
}
