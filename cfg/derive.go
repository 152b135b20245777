package cfg

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/greibach"
)

// DeriveUpTo enumerates, by brute force, every terminal string of length
// at most maxLen derivable from start. It is mainly a test aid for
// checking language preservation across grammar rewrites on short
// strings.
//
// The search expands the leftmost variable of each sentential form,
// breadth first. Since ε-productions are out of scope, every symbol of a
// sentential form derives at least one terminal character, so forms
// longer than maxLen can be pruned. Forms whose leftmost variable has no
// grammar entry contribute nothing, mirroring the engine's dangling
// reference policy.
func (g *Grammar) DeriveUpTo(start greibach.Symbol, maxLen int) []string {
	queue := arraylist.New()
	queue.Add(greibach.Body{start})
	seen := map[string]bool{keyOf(greibach.Body{start}): true}
	found := treeset.NewWithStringComparator()
	for queue.Size() > 0 {
		x, _ := queue.Get(0)
		queue.Remove(0)
		form := x.(greibach.Body)
		if len(form) > maxLen {
			continue
		}
		leftmost := -1
		for i, s := range form {
			if s.IsVariable() {
				leftmost = i
				break
			}
		}
		if leftmost < 0 { // all terminals: a word of the language
			w := spell(form)
			if len(w) <= maxLen {
				found.Add(w)
			}
			continue
		}
		prods := g.Productions(form[leftmost])
		if prods == nil {
			continue
		}
		prods.Each(func(b greibach.Body) {
			next := splice(form, leftmost, b)
			key := keyOf(next)
			if len(next) <= maxLen && !seen[key] {
				seen[key] = true
				queue.Add(next)
			}
		})
	}
	words := make([]string, 0, found.Size())
	it := found.Iterator()
	for it.Next() {
		words = append(words, it.Value().(string))
	}
	return words
}

// Derives checks a single word, using the same bounded enumeration.
func (g *Grammar) Derives(start greibach.Symbol, word string) bool {
	for _, w := range g.DeriveUpTo(start, len(word)) {
		if w == word {
			return true
		}
	}
	return false
}

// splice replaces form[at] by the body b.
func splice(form greibach.Body, at int, b greibach.Body) greibach.Body {
	next := make(greibach.Body, 0, len(form)-1+len(b))
	next = append(next, form[:at]...)
	next = append(next, b...)
	next = append(next, form[at+1:]...)
	return next
}

// spell concatenates the names of an all-terminal form.
func spell(form greibach.Body) string {
	var sb strings.Builder
	for _, s := range form {
		sb.WriteString(s.Name)
	}
	return sb.String()
}

// keyOf is a visited-set key for a sentential form. Kind markers keep a
// terminal and a variable of the same spelling apart.
func keyOf(form greibach.Body) string {
	var sb strings.Builder
	for _, s := range form {
		if s.IsVariable() {
			sb.WriteString("<")
			sb.WriteString(s.Name)
			sb.WriteString(">")
		} else {
			sb.WriteString(s.Name)
		}
	}
	return sb.String()
}
