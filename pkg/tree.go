package pkg

import "container/heap"

// Huffman tree construction. Nodes live in a flat arena and reference their
// children by index, so teardown is just dropping the slice. The decoder
// rebuilds the tree from the frequency table stored in the container rather
// than from a serialized tree, which makes determinism a hard requirement:
// ties on frequency are broken by a monotone sequence number, and leaves are
// seeded in ascending symbol order, so the same table always yields the same
// tree shape and therefore the same codes.

type treeNode struct {
	symbol rune
	freq   int64
	left   int // arena index, -1 for leaves
	right  int
	seq    int // tie-break key: creation order
}

type huffmanTree struct {
	nodes []treeNode
	root  int // -1 for an empty tree
}

// treeBuilder is a min-heap of arena indexes keyed by (freq, seq).
type treeBuilder struct {
	nodes []treeNode
	order []int
}

func (b *treeBuilder) Len() int { return len(b.order) }
func (b *treeBuilder) Less(i, j int) bool {
	ni, nj := b.nodes[b.order[i]], b.nodes[b.order[j]]
	if ni.freq != nj.freq {
		return ni.freq < nj.freq
	}
	return ni.seq < nj.seq
}
func (b *treeBuilder) Swap(i, j int) { b.order[i], b.order[j] = b.order[j], b.order[i] }
func (b *treeBuilder) Push(x interface{}) {
	b.order = append(b.order, x.(int))
}
func (b *treeBuilder) Pop() interface{} {
	old := b.order
	n := len(old)
	idx := old[n-1]
	b.order = old[:n-1]
	return idx
}

// buildTree constructs the prefix-code tree for a frequency table. An empty
// table yields an empty tree (root -1), which downstream code treats as a
// zero-length payload rather than an error.
func buildTree(freqs FrequencyTable) *huffmanTree {
	if len(freqs) == 0 {
		return &huffmanTree{root: -1}
	}

	b := &treeBuilder{}
	for _, r := range freqs.symbols() {
		b.nodes = append(b.nodes, treeNode{
			symbol: r,
			freq:   freqs[r],
			left:   -1,
			right:  -1,
			seq:    len(b.nodes),
		})
		b.order = append(b.order, len(b.nodes)-1)
	}
	heap.Init(b)

	for b.Len() > 1 {
		left := heap.Pop(b).(int)
		right := heap.Pop(b).(int)
		b.nodes = append(b.nodes, treeNode{
			freq:  b.nodes[left].freq + b.nodes[right].freq,
			left:  left,
			right: right,
			seq:   len(b.nodes),
		})
		heap.Push(b, len(b.nodes)-1)
	}

	return &huffmanTree{nodes: b.nodes, root: b.order[0]}
}

// codeTables walks the tree and returns the symbol-to-code table together
// with its inverse. Left descent appends "0", right descent "1". A tree with
// a single leaf still gets the one-bit code "0" — an empty code could not be
// decoded. The traversal uses an explicit stack so heavily skewed frequency
// distributions cannot exhaust the call stack.
func (t *huffmanTree) codeTables() (map[rune]string, map[string]rune) {
	codes := make(map[rune]string)
	reverse := make(map[string]rune)
	if t.root < 0 {
		return codes, reverse
	}

	type frame struct {
		idx  int
		path string
	}
	stack := []frame{{t.root, ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.idx]
		if n.left < 0 && n.right < 0 {
			code := f.path
			if code == "" {
				code = "0"
			}
			codes[n.symbol] = code
			reverse[code] = n.symbol
			continue
		}
		stack = append(stack, frame{n.right, f.path + "1"})
		stack = append(stack, frame{n.left, f.path + "0"})
	}
	return codes, reverse
}
