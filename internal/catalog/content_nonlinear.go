package catalog

import "dsa-catalog/internal/domain"

var nonlinearTopics = []domain.Topic{
	{
		ID:          "tree-traversals",
		Title:       "Binary Tree Traversals",
		Description: "Visit every node of a binary tree in pre-order, in-order, post-order or level order.",
		Category:    CategoryTrees,
		Difficulty:  domain.DifficultyBeginner,
		ExtendedDefinition: "Depth-first traversals differ only in when the current node is visited relative to its " +
			"subtrees: before both (pre-order), between them (in-order) or after both (post-order). Level-order " +
			"traversal uses a queue to visit nodes breadth first.",
		Example: "For the tree 2 with children 1 and 3: pre-order is 2 1 3, in-order is 1 2 3, " +
			"post-order is 1 3 2 and level order is 2 1 3.",
		Syntax:                "type TreeNode struct {\n\tVal         int\n\tLeft, Right *TreeNode\n}",
		VoiceExplanation:      "In-order means left, me, right. On a binary search tree that reads the values back in sorted order.",
		RealWorldApplications: "Serializing trees, evaluating expression trees, copying and deleting trees, and printing directory structures.",
		Pseudocode: "function inorder(node):\n" +
			"    if node == null: return\n" +
			"    inorder(node.left)\n" +
			"    visit(node)\n" +
			"    inorder(node.right)",
		KeyConcepts: "O(n) time for every traversal; O(h) stack space for depth-first, O(w) queue space for level order.",
		ImplementationCode: "func inorder(n *TreeNode, visit func(int)) {\n" +
			"\tif n == nil {\n" +
			"\t\treturn\n" +
			"\t}\n" +
			"\tinorder(n.Left, visit)\n" +
			"\tvisit(n.Val)\n" +
			"\tinorder(n.Right, visit)\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "Which traversal of a binary search tree yields keys in ascending order?",
				Options:       []string{"Pre-order", "In-order", "Post-order", "Level order"},
				CorrectAnswer: 1,
				Explanation:   "In-order visits the left subtree (smaller keys), the node, then the right subtree (larger keys).",
			},
			{
				Question:      "Which traversal is used to delete a tree safely, freeing children before parents?",
				Options:       []string{"Pre-order", "In-order", "Post-order", "Level order"},
				CorrectAnswer: 2,
				Explanation:   "Post-order visits both subtrees before the node itself.",
			},
		},
	},
	{
		ID:          "binary-search-tree",
		Title:       "Binary Search Tree",
		Description: "A binary tree where every left descendant is smaller and every right descendant is larger than the node.",
		Category:    CategoryTrees,
		Difficulty:  domain.DifficultyIntermediate,
		ExtendedDefinition: "The ordering invariant lets search, insert and delete follow a single root-to-leaf path, " +
			"so they cost O(h) for height h. A balanced tree has h = O(log n); inserting sorted data into a plain " +
			"BST degenerates it into a list with h = n, which is why self-balancing variants exist.",
		Example: "Inserting 8, 3, 10, 1, 6 produces root 8 with left child 3 (children 1 and 6) and right child 10. " +
			"Searching for 6 goes 8 -> 3 -> 6.",
		RealWorldApplications: "Ordered maps and sets, database indexes (as B-trees), interval scheduling, and autocomplete ranges.",
		Pseudocode: "function insert(node, key):\n" +
			"    if node == null: return new Node(key)\n" +
			"    if key < node.key: node.left = insert(node.left, key)\n" +
			"    else if key > node.key: node.right = insert(node.right, key)\n" +
			"    return node",
		KeyConcepts: "Ordering invariant; O(h) operations; in-order successor for deletion; AVL and red-black trees keep h = O(log n).",
		ImplementationCode: "func insert(n *TreeNode, key int) *TreeNode {\n" +
			"\tif n == nil {\n" +
			"\t\treturn &TreeNode{Val: key}\n" +
			"\t}\n" +
			"\tif key < n.Val {\n" +
			"\t\tn.Left = insert(n.Left, key)\n" +
			"\t} else if key > n.Val {\n" +
			"\t\tn.Right = insert(n.Right, key)\n" +
			"\t}\n" +
			"\treturn n\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "What is the worst-case search time in an unbalanced BST with n nodes?",
				Options:       []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
				CorrectAnswer: 2,
				Explanation:   "Inserting sorted keys produces a chain of height n.",
			},
			{
				Question:      "When deleting a node with two children, which node usually replaces it?",
				Options:       []string{"Its parent", "Its in-order successor", "The root", "Any leaf"},
				CorrectAnswer: 1,
				Explanation:   "The in-order successor (smallest key in the right subtree) preserves the ordering invariant.",
			},
		},
	},
	{
		ID:          "binary-heap",
		Title:       "Binary Heap",
		Description: "A complete binary tree stored in an array where each parent is ordered before its children.",
		Category:    CategoryHeaps,
		Difficulty:  domain.DifficultyIntermediate,
		ExtendedDefinition: "In a min-heap every parent is less than or equal to its children, so the minimum is at " +
			"index 0. Children of index i live at 2i+1 and 2i+2. Push appends and sifts up; pop swaps the root " +
			"with the last element, shrinks the array and sifts down. Both are O(log n).",
		Example:               "Pushing 5, 3, 8, 1 into a min-heap yields the array [1, 3, 8, 5]; popping returns 1 and leaves [3, 5, 8].",
		Syntax:                "h := &IntHeap{5, 3, 8}\nheap.Init(h)\nheap.Push(h, 1)\nmin := heap.Pop(h).(int)",
		RealWorldApplications: "Priority queues, task schedulers, Dijkstra's algorithm, top-k queries, and heapsort.",
		Pseudocode: "function siftUp(H, i):\n" +
			"    while i > 0 and H[parent(i)] > H[i]:\n" +
			"        swap H[i], H[parent(i)]\n" +
			"        i = parent(i)",
		KeyConcepts: "Complete tree shape; heap order (not sorted order); O(log n) push/pop; O(n) heapify.",
		ImplementationCode: "type IntHeap []int\n\n" +
			"func (h IntHeap) Len() int           { return len(h) }\n" +
			"func (h IntHeap) Less(i, j int) bool { return h[i] < h[j] }\n" +
			"func (h IntHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }\n" +
			"func (h *IntHeap) Push(x any)        { *h = append(*h, x.(int)) }\n" +
			"func (h *IntHeap) Pop() any {\n" +
			"\told := *h\n" +
			"\tx := old[len(old)-1]\n" +
			"\t*h = old[:len(old)-1]\n" +
			"\treturn x\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "In an array-backed binary heap, where is the left child of index i?",
				Options:       []string{"i + 1", "2i", "2i + 1", "i / 2"},
				CorrectAnswer: 2,
				Explanation:   "With 0-based indexing the children are at 2i + 1 and 2i + 2.",
			},
			{
				Question:      "What is the time complexity of building a heap from n unsorted elements with bottom-up heapify?",
				Options:       []string{"O(n)", "O(n log n)", "O(log n)", "O(n^2)"},
				CorrectAnswer: 0,
				Explanation:   "Most nodes are near the leaves and sift down only a short distance; the sum is linear.",
			},
		},
	},
	{
		ID:          "breadth-first-search",
		Title:       "Breadth-First Search",
		Description: "Explore a graph level by level from a source vertex using a queue.",
		Category:    CategoryGraphs,
		Difficulty:  domain.DifficultyIntermediate,
		ExtendedDefinition: "BFS visits all vertices at distance 1 from the source, then distance 2, and so on. " +
			"Marking vertices when they are enqueued guarantees each is processed once, giving O(V + E) time. " +
			"In an unweighted graph the order of discovery yields shortest path lengths.",
		Example:               "In a grid maze, BFS from the start cell finds the minimum number of moves to the exit.",
		VoiceExplanation:      "BFS is like ripples spreading from a stone dropped in water: first the closest ring, then the next ring out.",
		RealWorldApplications: "Shortest paths in unweighted networks, social network degrees of separation, web crawling, and garbage collection marking.",
		Pseudocode: "function bfs(G, s):\n" +
			"    dist[s] = 0; queue = [s]\n" +
			"    while queue not empty:\n" +
			"        u = dequeue(queue)\n" +
			"        for v in G.adj[u]:\n" +
			"            if v not in dist:\n" +
			"                dist[v] = dist[u] + 1\n" +
			"                enqueue(queue, v)\n" +
			"    return dist",
		KeyConcepts: "Queue-driven; O(V + E); shortest paths only for unweighted edges; visited set prevents revisits.",
		ImplementationCode: "func bfs(adj map[int][]int, src int) map[int]int {\n" +
			"\tdist := map[int]int{src: 0}\n" +
			"\tqueue := []int{src}\n" +
			"\tfor len(queue) > 0 {\n" +
			"\t\tu := queue[0]\n" +
			"\t\tqueue = queue[1:]\n" +
			"\t\tfor _, v := range adj[u] {\n" +
			"\t\t\tif _, seen := dist[v]; !seen {\n" +
			"\t\t\t\tdist[v] = dist[u] + 1\n" +
			"\t\t\t\tqueue = append(queue, v)\n" +
			"\t\t\t}\n" +
			"\t\t}\n" +
			"\t}\n" +
			"\treturn dist\n" +
			"}",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "What is the time complexity of BFS with an adjacency list?",
				Options:       []string{"O(V)", "O(E)", "O(V + E)", "O(V * E)"},
				CorrectAnswer: 2,
				Explanation:   "Every vertex is dequeued once and every edge is examined once (twice if undirected).",
			},
			{
				Question:      "BFS finds shortest paths in which kind of graph?",
				Options:       []string{"Unweighted graphs", "Graphs with negative weights", "Any weighted graph", "Only trees"},
				CorrectAnswer: 0,
				Explanation:   "Level order equals hop count; with weights you need Dijkstra or Bellman-Ford.",
			},
		},
	},
	{
		ID:          "dijkstra",
		Title:       "Dijkstra's Shortest Path",
		Description: "Compute shortest paths from one source in a graph with non-negative edge weights.",
		Category:    CategoryGraphs,
		Difficulty:  domain.DifficultyAdvanced,
		ExtendedDefinition: "Dijkstra's algorithm repeatedly settles the unsettled vertex with the smallest tentative " +
			"distance and relaxes its outgoing edges. With a binary heap it runs in O((V + E) log V). Negative " +
			"edges break the greedy choice because a settled distance could later shrink.",
		Example:               "Edges A-B 4, A-C 1, C-B 2: the tentative distance to B starts at 4 and is relaxed to 3 via C.",
		RealWorldApplications: "Route planning in maps, network routing protocols such as OSPF, and game pathfinding.",
		Pseudocode: "function dijkstra(G, s):\n" +
			"    dist[v] = infinity for all v; dist[s] = 0\n" +
			"    pq = min-heap with (0, s)\n" +
			"    while pq not empty:\n" +
			"        (d, u) = pop(pq)\n" +
			"        if d > dist[u]: continue\n" +
			"        for (v, w) in G.adj[u]:\n" +
			"            if dist[u] + w < dist[v]:\n" +
			"                dist[v] = dist[u] + w\n" +
			"                push(pq, (dist[v], v))\n" +
			"    return dist",
		KeyConcepts: "Greedy settling; edge relaxation; priority queue; requires non-negative weights; lazy deletion of stale heap entries.",
		QuizQuestions: []domain.QuizQuestion{
			{
				Question:      "Why does Dijkstra's algorithm fail with negative edge weights?",
				Options:       []string{"The heap overflows", "A settled vertex's distance could later decrease", "It cannot handle cycles", "It only works on trees"},
				CorrectAnswer: 1,
				Explanation:   "The greedy assumption that the smallest tentative distance is final no longer holds.",
			},
			{
				Question:      "What is the running time of Dijkstra with a binary heap?",
				Options:       []string{"O(V^2)", "O((V + E) log V)", "O(V + E)", "O(E^2)"},
				CorrectAnswer: 1,
				Explanation:   "Each vertex pop and each edge relaxation push costs O(log V).",
			},
		},
	},
}
