package catalog

import "dsa-catalog/internal/domain"

var linearTopics = []domain.Topic{
	{
		ID:          "arrays-basics",
		Title:       "Arrays",
		Description: "A contiguous block of memory holding elements of the same type, addressed by index.",
		Category:    CategoryArrays,
		Difficulty:  domain.DifficultyBeginner,
		ExtendedDefinition: "An array stores its elements next to each other in memory, so the address of element i " +
			"is base + i * elementSize. That arithmetic is what makes random access O(1). Static arrays have a " +
			"fixed length chosen at creation; dynamic arrays (slices, vectors, ArrayList) grow by allocating a " +
			"larger block and copying, which keeps appends amortized O(1).",
		Example: "Given nums = [4, 8, 15, 16, 23, 42], nums[2] is 15. Inserting 10 at index 1 shifts " +
			"8, 15, 16, 23 and 42 one slot to the right, producing [4, 10, 8, 15, 16, 23, 42].",
		Syntax: "nums := []int{4, 8, 15, 16, 23, 42}\nx := nums[2]\nnums = append(nums, 99)\nsub := nums[1:4]",
		VoiceExplanation: "Think of an array as a row of numbered lockers. Because the lockers are side by side and " +
			"all the same size, you can walk straight to locker number five without opening the first four.",
		RealWorldApplications: "Image pixel buffers, lookup tables, ring buffers in network drivers, " +
			"column storage in analytical databases, and the backing store of most other data structures.",
		Pseudocode: "function insertAt(A, n, index, value):\n" +
			"    for i from n - 1 down to index:\n" +
			"        A[i + 1] = A[i]\n" +
			"    A[index] = value\n" +
			"    return n + 1",
		KeyConcepts: "Random access in O(1); insertion and deletion in the middle cost O(n) shifts; " +
			"cache friendliness from contiguous layout; amortized O(1) append for dynamic arrays.",
		ImplementationCode: "func insertAt(nums []int, index, value int) []int {\n" +
			"\tnums = append(nums, 0)\n" +
			"\tcopy(nums[index+1:], nums[index:])\n" +
			"\tnums[index] = value\n" +
			"\treturn nums\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "What is the time complexity of accessing the element at a known index in an array?",
				Options:       []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
				CorrectAnswer: 0,
				Explanation:   "The address is computed directly from the base address and the index, so no traversal is needed.",
			},
			{
				Question:      "Why is inserting at the front of an array O(n)?",
				Options:       []string{"The array must be sorted again", "Every existing element must shift one position", "Memory must be freed", "The index must be hashed"},
				CorrectAnswer: 1,
				Explanation:   "Contiguous storage means all n elements move one slot to make room.",
			},
			{
				Question:      "A dynamic array doubles its capacity when full. What is the amortized cost of append?",
				Options:       []string{"O(n)", "O(log n)", "O(1)", "O(n^2)"},
				CorrectAnswer: 2,
				Explanation:   "Copies happen rarely enough that their total cost spread over all appends is constant per append.",
			},
		},
	},
	{
		ID:          "two-pointers",
		Title:       "Two Pointers Technique",
		Description: "Walk two indices through a sequence to solve pair and partition problems in linear time.",
		Category:    CategoryArrays,
		Difficulty:  domain.DifficultyIntermediate,
		ExtendedDefinition: "The two pointers technique keeps two indices that move under a rule, usually one from each " +
			"end of a sorted array or both from the left at different speeds. Each step discards candidates that " +
			"cannot be part of the answer, which replaces an O(n^2) pair search with an O(n) scan.",
		Example: "To find two numbers in [1, 3, 4, 6, 9] summing to 10: left=0 (1), right=4 (9) gives 10, done. " +
			"If the sum were too small we would move left forward; too large, move right back.",
		VoiceExplanation: "Picture two people starting at opposite ends of a sorted bookshelf. If their combined " +
			"number is too small the left person steps right, if too big the right person steps left.",
		RealWorldApplications: "Merging sorted logs, deduplicating sorted records in place, " +
			"palindrome checks, and partitioning in quicksort.",
		Pseudocode: "function pairWithSum(A, target):\n" +
			"    left = 0, right = length(A) - 1\n" +
			"    while left < right:\n" +
			"        s = A[left] + A[right]\n" +
			"        if s == target: return (left, right)\n" +
			"        if s < target: left = left + 1\n" +
			"        else: right = right - 1\n" +
			"    return none",
		KeyConcepts: "Requires a monotonic property such as sorted order; each pointer moves at most n times; " +
			"fast/slow variant detects cycles and finds midpoints.",
		ImplementationCode: "func pairWithSum(nums []int, target int) (int, int, bool) {\n" +
			"\tleft, right := 0, len(nums)-1\n" +
			"\tfor left < right {\n" +
			"\t\tswitch s := nums[left] + nums[right]; {\n" +
			"\t\tcase s == target:\n" +
			"\t\t\treturn left, right, true\n" +
			"\t\tcase s < target:\n" +
			"\t\t\tleft++\n" +
			"\t\tdefault:\n" +
			"\t\t\tright--\n" +
			"\t\t}\n" +
			"\t}\n" +
			"\treturn -1, -1, false\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "Which precondition does the opposite-ends pair-sum technique rely on?",
				Options:       []string{"The array has no duplicates", "The array is sorted", "The array length is even", "All values are positive"},
				CorrectAnswer: 1,
				Explanation:   "Sorted order is what lets us know which pointer to move when the sum is too small or too large.",
			},
			{
				Question:      "What is the time complexity of the two pointers pair-sum scan?",
				Options:       []string{"O(n^2)", "O(n log n)", "O(n)", "O(1)"},
				CorrectAnswer: 2,
				Explanation:   "Each pointer only moves inward, so there are at most n steps in total.",
			},
		},
	},
	{
		ID:          "sliding-window",
		Title:       "Sliding Window",
		Description: "Maintain a moving range over a sequence and update its aggregate incrementally.",
		Category:    CategoryArrays,
		Difficulty:  domain.DifficultyIntermediate,
		ExtendedDefinition: "A sliding window tracks a contiguous range [left, right) and an aggregate over it, " +
			"such as a sum or a character count. Extending the right edge adds one element and shrinking the left " +
			"edge removes one, so each element enters and leaves the window once.",
		Example: "Maximum sum of 3 consecutive elements in [2, 1, 5, 1, 3, 2]: windows sum to 8, 7, 9, 6, so the answer is 9.",
		RealWorldApplications: "Rate limiting over the last N seconds, moving averages in monitoring, " +
			"TCP flow control, and longest-substring problems.",
		Pseudocode: "function maxWindowSum(A, k):\n" +
			"    sum = A[0] + ... + A[k-1]\n" +
			"    best = sum\n" +
			"    for i from k to length(A) - 1:\n" +
			"        sum = sum + A[i] - A[i - k]\n" +
			"        best = max(best, sum)\n" +
			"    return best",
		KeyConcepts: "Fixed-size versus variable-size windows; amortized O(n); the aggregate must be updatable on add and remove.",
		ImplementationCode: "func maxWindowSum(nums []int, k int) int {\n" +
			"\tsum := 0\n" +
			"\tfor i := 0; i < k; i++ {\n" +
			"\t\tsum += nums[i]\n" +
			"\t}\n" +
			"\tbest := sum\n" +
			"\tfor i := k; i < len(nums); i++ {\n" +
			"\t\tsum += nums[i] - nums[i-k]\n" +
			"\t\tif sum > best {\n" +
			"\t\t\tbest = sum\n" +
			"\t\t}\n" +
			"\t}\n" +
			"\treturn best\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "In a fixed-size sliding window, how is the new window sum computed?",
				Options:       []string{"Recompute the whole window", "Add the entering element and subtract the leaving one", "Multiply by the window size", "Sort the window first"},
				CorrectAnswer: 1,
				Explanation:   "Only one element enters and one leaves, so the sum updates in O(1).",
			},
		},
	},
	{
		ID:          "singly-linked-list",
		Title:       "Singly Linked List",
		Description: "A chain of nodes where each node stores a value and a pointer to the next node.",
		Category:    CategoryLinkedLists,
		Difficulty:  domain.DifficultyBeginner,
		ExtendedDefinition: "A singly linked list is a sequence of nodes allocated independently. Each node points " +
			"to its successor and the last points to nil. Insertion and removal after a known node are O(1) because " +
			"only pointers change, but reaching the k-th node requires walking k links.",
		Example: "head -> 3 -> 7 -> 9 -> nil. Inserting 5 after 3 sets new.next = 3.next and 3.next = new, " +
			"giving head -> 3 -> 5 -> 7 -> 9 -> nil.",
		Syntax: "type Node struct {\n\tVal  int\n\tNext *Node\n}",
		VoiceExplanation: "A linked list is like a scavenger hunt. Each clue tells you where the next clue is, " +
			"so you cannot jump to the fifth clue without following the first four.",
		RealWorldApplications: "Free lists in memory allocators, adjacency lists in graphs, undo histories, and hash table chaining.",
		Pseudocode: "function reverse(head):\n" +
			"    prev = null\n" +
			"    while head != null:\n" +
			"        next = head.next\n" +
			"        head.next = prev\n" +
			"        prev = head\n" +
			"        head = next\n" +
			"    return prev",
		KeyConcepts: "O(1) insert/delete given a node; O(n) access by position; no contiguous memory; " +
			"sentinel head nodes simplify edge cases.",
		ImplementationCode: "func reverse(head *Node) *Node {\n" +
			"\tvar prev *Node\n" +
			"\tfor head != nil {\n" +
			"\t\thead.Next, prev, head = prev, head, head.Next\n" +
			"\t}\n" +
			"\treturn prev\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "What is the cost of accessing the k-th node of a singly linked list?",
				Options:       []string{"O(1)", "O(k)", "O(log k)", "O(k^2)"},
				CorrectAnswer: 1,
				Explanation:   "You must follow k next pointers from the head.",
			},
			{
				Question:      "Which operation is O(1) in a singly linked list but O(n) in an array?",
				Options:       []string{"Reading the middle element", "Inserting at the head", "Binary search", "Reading the last element"},
				CorrectAnswer: 1,
				Explanation:   "A new head only needs its next pointer set to the old head; an array would shift every element.",
			},
		},
	},
	{
		ID:          "doubly-linked-list",
		Title:       "Doubly Linked List",
		Description: "A linked list whose nodes point both to the next and to the previous node.",
		Category:    CategoryLinkedLists,
		Difficulty:  domain.DifficultyIntermediate,
		ExtendedDefinition: "Adding a prev pointer lets a node be removed in O(1) when you hold a reference to it, " +
			"and lets traversal run in both directions. The cost is an extra pointer per node and more pointer " +
			"updates per insertion.",
		Example: "An LRU cache keeps entries in a doubly linked list ordered by recency; a hit unlinks the node " +
			"and moves it to the front in constant time.",
		RealWorldApplications: "LRU caches, browser back/forward history, text editor buffers, and the container/list package.",
		Pseudocode: "function remove(node):\n" +
			"    node.prev.next = node.next\n" +
			"    node.next.prev = node.prev",
		KeyConcepts: "Bidirectional traversal; O(1) removal given the node; sentinel head and tail avoid nil checks.",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "Why do LRU caches usually pair a hash map with a doubly linked list?",
				Options:       []string{"To keep keys sorted", "To remove and re-insert a known node in O(1)", "To reduce memory usage", "To allow binary search"},
				CorrectAnswer: 1,
				Explanation:   "The map finds the node and the prev/next pointers let it be unlinked and moved to the front in constant time.",
			},
		},
	},
	{
		ID:          "stack",
		Title:       "Stack",
		Description: "A last-in, first-out collection supporting push, pop and peek.",
		Category:    CategoryStacks,
		Difficulty:  domain.DifficultyBeginner,
		ExtendedDefinition: "A stack only exposes its top element. Push places an element on top and pop removes " +
			"the most recently pushed one. Both are O(1) with an array or linked list backing.",
		Example: "Checking \"([]{})\" for balance: push each opener, and on each closer pop and compare. " +
			"The stack is empty at the end, so the string is balanced.",
		Syntax: "stack = append(stack, x)          // push\ntop := stack[len(stack)-1]        // peek\nstack = stack[:len(stack)-1]      // pop",
		VoiceExplanation: "A stack works like a pile of plates. You always add to the top and take from the top, " +
			"so the last plate you put down is the first you pick up.",
		RealWorldApplications: "Function call stacks, undo operations, expression evaluation, and depth-first search.",
		Pseudocode: "function isBalanced(s):\n" +
			"    stack = empty\n" +
			"    for ch in s:\n" +
			"        if ch is an opener: push(stack, ch)\n" +
			"        else if stack is empty or pop(stack) does not match ch: return false\n" +
			"    return stack is empty",
		KeyConcepts: "LIFO order; O(1) push and pop; underflow on pop from empty; recursion is an implicit stack.",
		ImplementationCode: "func isBalanced(s string) bool {\n" +
			"\tpairs := map[rune]rune{')': '(', ']': '[', '}': '{'}\n" +
			"\tvar stack []rune\n" +
			"\tfor _, ch := range s {\n" +
			"\t\tswitch ch {\n" +
			"\t\tcase '(', '[', '{':\n" +
			"\t\t\tstack = append(stack, ch)\n" +
			"\t\tcase ')', ']', '}':\n" +
			"\t\t\tif len(stack) == 0 || stack[len(stack)-1] != pairs[ch] {\n" +
			"\t\t\t\treturn false\n" +
			"\t\t\t}\n" +
			"\t\t\tstack = stack[:len(stack)-1]\n" +
			"\t\t}\n" +
			"\t}\n" +
			"\treturn len(stack) == 0\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "Which order does a stack follow?",
				Options:       []string{"FIFO", "LIFO", "Priority order", "Sorted order"},
				CorrectAnswer: 1,
				Explanation:   "Last in, first out: the most recent push is the next pop.",
			},
			{
				Question:      "Which algorithm naturally uses a stack?",
				Options:       []string{"Breadth-first search", "Depth-first search", "Dijkstra's algorithm", "Counting sort"},
				CorrectAnswer: 1,
				Explanation:   "DFS explores the most recently discovered vertex first, which is LIFO behaviour.",
			},
		},
	},
	{
		ID:          "queue",
		Title:       "Queue",
		Description: "A first-in, first-out collection supporting enqueue at the back and dequeue at the front.",
		Category:    CategoryQueues,
		Difficulty:  domain.DifficultyBeginner,
		ExtendedDefinition: "A queue removes elements in the order they arrived. A circular buffer or a linked list " +
			"with head and tail pointers gives O(1) enqueue and dequeue. Variants include deques, which allow both " +
			"ends, and priority queues, which order by key instead of arrival.",
		Example:               "Enqueue 1, 2, 3 then dequeue twice: the results are 1 then 2, and 3 remains.",
		VoiceExplanation:      "A queue is the line at a coffee shop. Whoever arrives first is served first.",
		RealWorldApplications: "Job schedulers, message brokers, print spoolers, breadth-first search, and request buffering.",
		Pseudocode: "enqueue(Q, x): Q.buffer[Q.tail] = x; Q.tail = (Q.tail + 1) mod capacity\n" +
			"dequeue(Q): x = Q.buffer[Q.head]; Q.head = (Q.head + 1) mod capacity; return x",
		KeyConcepts: "FIFO order; circular buffers avoid shifting; channels in Go are bounded concurrent queues.",
		ImplementationCode: "type Queue[T any] struct {\n" +
			"\titems []T\n" +
			"}\n\n" +
			"func (q *Queue[T]) Enqueue(v T) { q.items = append(q.items, v) }\n\n" +
			"func (q *Queue[T]) Dequeue() (T, bool) {\n" +
			"\tvar zero T\n" +
			"\tif len(q.items) == 0 {\n" +
			"\t\treturn zero, false\n" +
			"\t}\n" +
			"\tv := q.items[0]\n" +
			"\tq.items = q.items[1:]\n" +
			"\treturn v, true\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "After enqueue(A), enqueue(B), dequeue(), enqueue(C), which element is at the front?",
				Options:       []string{"A", "B", "C", "The queue is empty"},
				CorrectAnswer: 1,
				Explanation:   "A was removed first; B arrived before C so it is at the front.",
			},
			{
				Question:      "Which traversal uses a queue?",
				Options:       []string{"Breadth-first search", "In-order traversal", "Depth-first search", "Backtracking"},
				CorrectAnswer: 0,
				Explanation:   "BFS visits vertices level by level in the order they were discovered.",
			},
		},
	},
	{
		ID:          "hash-table",
		Title:       "Hash Table",
		Description: "Maps keys to values by hashing keys into buckets for expected O(1) lookup.",
		Category:    CategoryHashing,
		Difficulty:  domain.DifficultyBeginner,
		ExtendedDefinition: "A hash function turns a key into an integer that selects a bucket. Collisions, where " +
			"two keys land in the same bucket, are resolved by chaining entries in a list or by open addressing " +
			"(probing for another slot). Keeping the load factor bounded by resizing keeps operations O(1) on average.",
		Example: "Counting word frequencies: for each word, counts[word]++. Looking up counts[\"tree\"] hashes " +
			"\"tree\" and reads one bucket instead of scanning all words.",
		Syntax:                "counts := make(map[string]int)\ncounts[\"tree\"]++\nn, ok := counts[\"graph\"]\ndelete(counts, \"tree\")",
		RealWorldApplications: "Database indexes, caches, symbol tables in compilers, deduplication, and set membership.",
		Pseudocode: "function put(T, key, value):\n" +
			"    b = hash(key) mod T.capacity\n" +
			"    for entry in T.buckets[b]:\n" +
			"        if entry.key == key: entry.value = value; return\n" +
			"    append (key, value) to T.buckets[b]\n" +
			"    if T.size / T.capacity > maxLoad: resize(T)",
		KeyConcepts: "Hash function quality; load factor; chaining versus open addressing; worst case O(n) when all keys collide.",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "What is the average-case lookup time of a well-sized hash table?",
				Options:       []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
				CorrectAnswer: 0,
				Explanation:   "With a good hash and bounded load factor each bucket holds a constant number of entries on average.",
			},
			{
				Question:      "What is a collision in a hash table?",
				Options:       []string{"Two keys with equal values", "Two different keys hashing to the same bucket", "A full table", "A key with no value"},
				CorrectAnswer: 1,
				Explanation:   "Collisions are distinct keys mapped to one bucket; chaining or probing resolves them.",
			},
			{
				Question:      "Why does a hash table resize when its load factor grows?",
				Options:       []string{"To keep keys sorted", "To keep bucket chains short", "To free memory", "To change the hash function's output type"},
				CorrectAnswer: 1,
				Explanation:   "More buckets spread keys out so average chain length, and thus lookup cost, stays constant.",
			},
		},
	},
	{
		ID:          "kmp-string-matching",
		Title:       "Knuth-Morris-Pratt String Matching",
		Description: "Find all occurrences of a pattern in a text in O(n + m) using a failure function.",
		Category:    CategoryStrings,
		Difficulty:  domain.DifficultyAdvanced,
		ExtendedDefinition: "KMP precomputes, for each prefix of the pattern, the length of the longest proper " +
			"prefix that is also a suffix. On a mismatch the search jumps the pattern forward by that amount " +
			"instead of restarting, so text characters are never re-examined.",
		Example: "Pattern \"ABABC\" has failure table [0, 0, 1, 2, 0]. After matching \"ABAB\" and failing on C, " +
			"the search continues as if \"AB\" was already matched.",
		RealWorldApplications: "Text editors' find, intrusion detection signatures, DNA sequence search, and log scanning.",
		Pseudocode: "function buildFailure(P):\n" +
			"    F[0] = 0, k = 0\n" +
			"    for i from 1 to length(P) - 1:\n" +
			"        while k > 0 and P[i] != P[k]: k = F[k - 1]\n" +
			"        if P[i] == P[k]: k = k + 1\n" +
			"        F[i] = k\n" +
			"    return F",
		KeyConcepts: "Longest proper prefix that is also a suffix; linear time; no backtracking in the text.",
		ImplementationCode: "func failure(p string) []int {\n" +
			"\tf := make([]int, len(p))\n" +
			"\tk := 0\n" +
			"\tfor i := 1; i < len(p); i++ {\n" +
			"\t\tfor k > 0 && p[i] != p[k] {\n" +
			"\t\t\tk = f[k-1]\n" +
			"\t\t}\n" +
			"\t\tif p[i] == p[k] {\n" +
			"\t\t\tk++\n" +
			"\t\t}\n" +
			"\t\tf[i] = k\n" +
			"\t}\n" +
			"\treturn f\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "What is the time complexity of KMP for text length n and pattern length m?",
				Options:       []string{"O(n * m)", "O(n + m)", "O(n log m)", "O(m^2)"},
				CorrectAnswer: 1,
				Explanation:   "Building the failure table is O(m) and the scan never moves backwards in the text, O(n).",
			},
			{
				Question:      "What does the failure table entry F[i] store?",
				Options:       []string{"The index of the next mismatch", "The length of the longest proper prefix of P[0..i] that is also its suffix", "The number of occurrences so far", "The hash of the prefix"},
				CorrectAnswer: 1,
				Explanation:   "That length tells the search how much of the pattern is still matched after a mismatch.",
			},
		},
	},
}
