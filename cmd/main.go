package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"exprtree/pkg/equivalence"
	"exprtree/pkg/parse"
	"exprtree/pkg/tree"
	"exprtree/pkg/ufs"

	"golang.org/x/sync/errgroup"
)

// Command-line flags
var (
	inputFile    string
	parseWorkers int
	compWorkers  int
	orders       string
)

func init() {
	flag.StringVar(&inputFile, "input", "", "File of \"<notation> <expression>\" lines (empty runs the demo)")
	flag.IntVar(&parseWorkers, "parse-workers", 1, "Number of goroutines parsing expressions")
	flag.IntVar(&compWorkers, "comp-workers", 1, "Number of goroutines comparing expression trees")
	flag.StringVar(&orders, "order", "in,pre,post", "Comma separated traversals to print: pre, in, post")
}

// Samples of the same expression in all three notations.
var samples = []struct {
	notation parse.Notation
	expr     string
}{
	{parse.InfixNotation, "(A * B + C / D) / (E + F - G / H)"},
	{parse.PostfixNotation, "AB*CD/+EF+GH/-/"},
	{parse.PrefixNotation, "/+*AB/CD-+EF/GH"},
}

func main() {
	flag.Parse()
	traversals, err := parseOrders(orders)
	if err != nil {
		log.Fatalf("Invalid -order: %v", err)
	}
	if parseWorkers < 1 || compWorkers < 1 {
		log.Fatalf("Worker counts must be positive")
	}

	if inputFile == "" {
		if err := demo(os.Stdout, traversals); err != nil {
			log.Fatalf("Demo failed: %v", err)
		}
		return
	}

	f, err := os.Open(inputFile)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}
	defer f.Close()
	lines, err := readLines(f)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}
	batch(os.Stdout, lines, traversals)
}

type traversal struct {
	name string
	fn   func(*tree.TreeNode) []rune
}

func parseOrders(s string) ([]traversal, error) {
	var res []traversal
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(name) {
		case "pre":
			res = append(res, traversal{"preorder", tree.PreOrder})
		case "in":
			res = append(res, traversal{"inorder", tree.InOrder})
		case "post":
			res = append(res, traversal{"postorder", tree.PostOrder})
		default:
			return nil, fmt.Errorf("unknown traversal %q", name)
		}
	}
	return res, nil
}

func demo(w io.Writer, traversals []traversal) error {
	for i, s := range samples {
		root, err := parse.Parse(s.notation, s.expr)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%v expression tree: %s\n", s.notation, s.expr)
		for _, t := range traversals {
			fmt.Fprintf(w, "%s: %s\n", t.name, tree.Format(t.fn(root)))
		}
	}
	return nil
}

type line struct {
	notation parse.Notation
	expr     string
}

// readLines reads "<notation> <expression>" lines, skipping blank lines
// and lines starting with '#'.
func readLines(r io.Reader) ([]line, error) {
	var lines []line
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		name, expr, _ := strings.Cut(text, " ")
		n, err := parse.ParseNotation(name)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		lines = append(lines, line{n, expr})
	}
	return lines, sc.Err()
}

func batch(w io.Writer, lines []line, traversals []traversal) {
	// Step 1: Parse expressions
	startParse := time.Now()
	exprs := parseAll(lines, parseWorkers)
	fmt.Fprintf(w, "parseTime: %.8f\n", time.Since(startParse).Seconds())

	for _, e := range exprs {
		if e.Root == nil {
			continue
		}
		fmt.Fprintf(w, "%d: %s\n", e.Id, e.Source)
		for _, t := range traversals {
			fmt.Fprintf(w, "  %s: %s\n", t.name, tree.Format(t.fn(e.Root)))
		}
	}

	// Step 2: Group equivalent trees
	startCompare := time.Now()
	uf := groupEquivalent(exprs, compWorkers)
	fmt.Fprintf(w, "compareTreeTime: %.8f\n", time.Since(startCompare).Seconds())

	for i, group := range uf.Groups() {
		fmt.Fprintf(w, "group %d: %s\n", i, joinInts(group, " "))
	}
}

// parseAll parses every line with at most workers goroutines. Lines
// that fail to parse are logged and keep a nil Root.
func parseAll(lines []line, workers int) []*equivalence.Expression {
	exprs := make([]*equivalence.Expression, len(lines))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, l := range lines {
		i, l := i, l
		exprs[i] = &equivalence.Expression{Id: i, Source: l.notation.String() + " " + l.expr}
		g.Go(func() error {
			root, err := parse.Parse(l.notation, l.expr)
			if err != nil {
				log.Printf("expression %d: %v", i, err)
				return nil
			}
			exprs[i].Root = root
			equivalence.ComputeHash(exprs[i])
			return nil
		})
	}
	g.Wait()
	return exprs
}

// groupEquivalent buckets expressions by hash and unions those whose
// trees compare equal.
func groupEquivalent(exprs []*equivalence.Expression, workers int) *ufs.UnionFind {
	uf := ufs.NewUnionFind(len(exprs))
	hash2ids := make(map[uint64][]int)
	for _, e := range exprs {
		if e.Root != nil {
			hash2ids[e.Hash] = append(hash2ids[e.Hash], e.Id)
		}
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, ids := range hash2ids {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				e1, e2 := exprs[ids[i]], exprs[ids[j]]
				g.Go(func() error {
					if equivalence.Compare(e1, e2) {
						uf.Union(e1.Id, e2.Id)
					}
					return nil
				})
			}
		}
	}
	g.Wait()
	return uf
}

func joinInts(ints []int, sep string) string {
	strs := make([]string, len(ints))
	for i, v := range ints {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, sep)
}
