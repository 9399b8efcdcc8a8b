package report

import (
	"io"

	"github.com/npillmayer/treearray/bench"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes results as a complete HTML document containing one table.
// Cells of the fastest and the slowest implementation per workload carry the
// CSS classes "fastest" and "slowest".
func HTML(w io.Writer, results []bench.Result, m Metric) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	doc.AppendChild(root)
	head := element(atom.Head)
	root.AppendChild(head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(withText(element(atom.Title), "Insertion benchmark"))
	head.AppendChild(withText(element(atom.Style), stylesheet))
	body := element(atom.Body)
	root.AppendChild(body)
	if len(results) > 0 {
		body.AppendChild(withText(element(atom.P), "Run "+results[0].RunID+", metric "+m.String()))
	}
	body.AppendChild(resultTable(makeTable(results), m))
	tracer().Debugf("rendering HTML for %d results", len(results))
	return html.Render(w, doc)
}

const stylesheet = `td.fastest { color: green; } td.slowest { color: red; font-weight: bold; }
td, th { padding: 0 1em; text-align: right; } th.workload, td.workload { text-align: left; }`

func resultTable(t table, m Metric) *html.Node {
	tbl := element(atom.Table)
	thead := element(atom.Thead)
	tbl.AppendChild(thead)
	tr := element(atom.Tr)
	thead.AppendChild(tr)
	tr.AppendChild(withText(element(atom.Th, class("workload")), "workload"))
	for _, impl := range t.impls {
		tr.AppendChild(withText(element(atom.Th), impl))
	}
	tbody := element(atom.Tbody)
	tbl.AppendChild(tbody)
	for row, wl := range t.workloads {
		tr := element(atom.Tr)
		tbody.AppendChild(tr)
		tr.AppendChild(withText(element(atom.Td, class("workload")), wl))
		f, s := t.extremes(row, m)
		for col, r := range t.cells[row] {
			var td *html.Node
			switch col {
			case f:
				td = element(atom.Td, class("fastest"))
			case s:
				td = element(atom.Td, class("slowest"))
			default:
				td = element(atom.Td)
			}
			tr.AppendChild(withText(td, cellText(r, m)))
		}
	}
	return tbl
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func class(name string) html.Attribute {
	return html.Attribute{Key: "class", Val: name}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
