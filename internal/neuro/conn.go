package neuro

// ConnectionMap is the static pre-to-post relation between two groups.
// It is built once at network-construction time and never mutated
// afterwards, so any number of readers may share it.
type ConnectionMap struct {
	preSize  int
	postSize int
	pre      []int
	post     []int
	bySource [][]int
	byTarget [][]int
}

// Connect builds a connection map from explicit (pre, post) id pairs.
// Ids outside the given group sizes fail here rather than at
// simulation time.
func Connect(preSize, postSize int, pairs [][2]int) (*ConnectionMap, error) {
	if preSize <= 0 || postSize <= 0 {
		return nil, Configf("conn", "group sizes must be positive, got %d and %d", preSize, postSize)
	}
	m := &ConnectionMap{
		preSize:  preSize,
		postSize: postSize,
		pre:      make([]int, 0, len(pairs)),
		post:     make([]int, 0, len(pairs)),
		bySource: make([][]int, preSize),
		byTarget: make([][]int, postSize),
	}
	for _, p := range pairs {
		if p[0] < 0 || p[0] >= preSize {
			return nil, Configf("conn", "presynaptic id %d out of range [0,%d)", p[0], preSize)
		}
		if p[1] < 0 || p[1] >= postSize {
			return nil, Configf("conn", "postsynaptic id %d out of range [0,%d)", p[1], postSize)
		}
		e := len(m.pre)
		m.pre = append(m.pre, p[0])
		m.post = append(m.post, p[1])
		m.bySource[p[0]] = append(m.bySource[p[0]], e)
		m.byTarget[p[1]] = append(m.byTarget[p[1]], e)
	}
	return m, nil
}

// ConnectMatrix builds a connection map from a dense adjacency matrix,
// adj[i][j] connecting pre unit i to post unit j.
func ConnectMatrix(adj [][]bool) (*ConnectionMap, error) {
	if len(adj) == 0 || len(adj[0]) == 0 {
		return nil, Configf("conn", "adjacency matrix must be non-empty")
	}
	preSize := len(adj)
	postSize := len(adj[0])
	pairs := make([][2]int, 0)
	for i, row := range adj {
		if len(row) != postSize {
			return nil, Configf("conn", "adjacency row %d has %d columns, want %d", i, len(row), postSize)
		}
		for j, on := range row {
			if on {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return Connect(preSize, postSize, pairs)
}

// ConnectAll builds the dense all-to-all map.
func ConnectAll(preSize, postSize int) (*ConnectionMap, error) {
	pairs := make([][2]int, 0, preSize*postSize)
	for i := 0; i < preSize; i++ {
		for j := 0; j < postSize; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return Connect(preSize, postSize, pairs)
}

func (m *ConnectionMap) PreSize() int  { return m.preSize }
func (m *ConnectionMap) PostSize() int { return m.postSize }
func (m *ConnectionMap) NumEdges() int { return len(m.pre) }

func (m *ConnectionMap) Pre(edge int) int  { return m.pre[edge] }
func (m *ConnectionMap) Post(edge int) int { return m.post[edge] }

// EdgesFrom returns the edge ids sourced from the given pre unit.
// The slice is shared; callers must not modify it.
func (m *ConnectionMap) EdgesFrom(pre int) []int { return m.bySource[pre] }

// EdgesInto returns the edge ids targeting the given post unit.
// The slice is shared; callers must not modify it.
func (m *ConnectionMap) EdgesInto(post int) []int { return m.byTarget[post] }
