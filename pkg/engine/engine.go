// Package engine wires the render pipeline: HTML in, render tree out.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/go-skiff/skiff/pkg/dom"
	"github.com/go-skiff/skiff/pkg/errors"
	"github.com/go-skiff/skiff/pkg/html"
	"github.com/go-skiff/skiff/pkg/rendering"
	"github.com/go-skiff/skiff/pkg/rendertree"
)

// defaultCacheSize bounds the render-tree cache when no size is configured.
const defaultCacheSize = 32

// Options configures an Engine.
type Options struct {
	// Stylesheet resolves element styles; nil selects the user-agent sheet.
	Stylesheet *rendering.Stylesheet
	// CacheSize bounds the render-tree cache; 0 keeps the default.
	CacheSize int
}

// Stats holds cumulative pipeline timings and counters.
type Stats struct {
	// ParseTime is total time spent tokenizing and parsing.
	ParseTime time.Duration
	// BuildTime is total time spent resolving styles and building trees.
	BuildTime time.Duration
	// TreesBuilt counts trees built from scratch.
	TreesBuilt int
	// CacheHits counts renders served from the cache.
	CacheHits int
}

// Engine renders HTML strings into render trees. It is safe for concurrent
// use.
type Engine struct {
	sheet *rendering.Stylesheet
	cache *lru.Cache[string, *rendertree.Tree]

	mu       sync.Mutex
	lastTree *rendertree.Tree
	stats    Stats
}

// New creates an engine with the given options.
func New(opts Options) (*Engine, error) {
	sheet := opts.Stylesheet
	if sheet == nil {
		sheet = rendering.DefaultStylesheet()
	}
	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, *rendertree.Tree](size)
	if err != nil {
		return nil, &errors.SkiffError{Op: "engine.New", Kind: errors.KindInit, Err: err}
	}
	return &Engine{sheet: sheet, cache: cache}, nil
}

// Default creates an engine with the user-agent stylesheet and default
// cache size.
func Default() *Engine {
	e, err := New(Options{})
	if err != nil {
		// lru.New only fails on a non-positive size, which New prevents.
		panic(err)
	}
	return e
}

// RenderHTML parses the input and builds its render tree: one root node,
// one text node per non-empty text run, styled by the nearest ancestor
// element's rule. Identical inputs are served from the cache.
func (e *Engine) RenderHTML(input string) (*rendertree.Tree, error) {
	key := contentKey(input)
	if tree, ok := e.cache.Get(key); ok {
		// A caller may have released the cached tree; rebuild instead of
		// handing out an empty one.
		if tree.Root() != nil {
			e.mu.Lock()
			e.stats.CacheHits++
			e.lastTree = tree
			e.mu.Unlock()
			return tree, nil
		}
		e.cache.Remove(key)
	}

	parseStart := time.Now()
	doc, err := html.Parse(input)
	parseTime := time.Since(parseStart)
	if err != nil {
		serr := &errors.SkiffError{Op: "engine.RenderHTML", Kind: errors.KindParse, Err: err}
		errors.Report(serr)
		return nil, serr
	}

	buildStart := time.Now()
	tree := e.buildTree(doc)
	buildTime := time.Since(buildStart)

	e.cache.Add(key, tree)

	e.mu.Lock()
	e.stats.ParseTime += parseTime
	e.stats.BuildTime += buildTime
	e.stats.TreesBuilt++
	e.lastTree = tree
	e.mu.Unlock()

	return tree, nil
}

// LastTree returns the most recently rendered tree, or nil.
func (e *Engine) LastTree() *rendertree.Tree {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastTree
}

// Stats returns a snapshot of the pipeline counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// buildTree flattens the document into a render tree: text runs become text
// nodes under the root, in document order, styled by their nearest ancestor
// element carrying an explicit rule.
func (e *Engine) buildTree(doc *dom.Document) *rendertree.Tree {
	tree := rendertree.New()
	root := tree.Root()

	doc.Walk(func(n *dom.Node) bool {
		text, ok := n.Data.(dom.TextData)
		if !ok {
			return true
		}
		style := e.resolveStyle(doc, n)
		tree.AppendText(root, text.Value, style.FontFamily, style.FontSize, style.Bold())
		return true
	})

	root.Ready = true
	return tree
}

// resolveStyle walks up from a text node to the nearest element with an
// explicit stylesheet rule; without one the fallback style applies.
func (e *Engine) resolveStyle(doc *dom.Document, n *dom.Node) rendering.TextStyle {
	for id := n.Parent; id != dom.InvalidNodeID; {
		ancestor := doc.Node(id)
		if ancestor == nil {
			break
		}
		if ancestor.Type() == dom.NodeTypeElement {
			if style, ok := e.sheet.Rule(ancestor.Name); ok {
				return style
			}
		}
		id = ancestor.Parent
	}
	return e.sheet.Fallback()
}

// contentKey hashes input for cache lookup.
func contentKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
