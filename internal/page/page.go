// Package page reads dashboard data out of an HTML document and applies render
// actions back onto it.
package page

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/schema"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attributes written onto mounted hosts.
const (
	KindAttr      = "data-dashviz-kind"
	ConfigAttr    = "data-dashviz-config"
	BootstrapID   = "dashviz-bootstrap"
	MutedClass    = "text-muted"
	ChartKind     = "chart"
	WordCloudKind = "wordcloud"
)

// ErrHostNotFound is returned when an action targets an element the page does not have.
var ErrHostNotFound = errors.New("host element not found")

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

var _ contract.Renderer = (*Document)(nil)

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse page")
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for in-memory pages.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the document back out as HTML.
func (d *Document) Render(w io.Writer) error {
	return errors.Wrap(html.Render(w, d.root), "failed to render page")
}

// String renders the document to a string, returning "" on failure.
func (d *Document) String() string {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}

// ElementByID returns the first element in document order whose id matches, or nil.
func (d *Document) ElementByID(id string) *html.Node {
	return findFirst(d.root, func(n *html.Node) bool {
		v, ok := getAttr(n, "id")
		return ok && v == id
	})
}

// PageData reads both hosts and their data attributes.
func (d *Document) PageData() schema.PageData {
	return schema.PageData{
		Radar:     d.hostData(schema.RadarElementID, schema.RoleScoresAttr),
		WordCloud: d.hostData(schema.WordCloudElementID, schema.KeywordsAttr),
	}
}

func (d *Document) hostData(id, attr string) schema.HostData {
	n := d.ElementByID(id)
	if n == nil {
		return schema.HostData{}
	}
	v, _ := getAttr(n, attr)
	return schema.HostData{Present: true, Attr: v}
}

// DetectCapabilities reports a library as loaded when any <script src> matches its pattern.
func (d *Document) DetectCapabilities(patterns contract.LibraryPatterns) schema.Capabilities {
	var caps schema.Capabilities
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Script {
			return
		}
		src, ok := getAttr(n, "src")
		if !ok || src == "" {
			return
		}
		if patterns.Chart != nil && patterns.Chart.MatchString(src) {
			caps.Chart = true
		}
		if patterns.WordCloud != nil && patterns.WordCloud.MatchString(src) {
			caps.WordCloud = true
		}
	})
	return caps
}

// MountChart marks the host for a chart and makes sure the bootstrap script is present.
func (d *Document) MountChart(elementID string, cfg *schema.ChartConfig) error {
	return d.mount(elementID, ChartKind, cfg)
}

// MountWordCloud marks the host for a word cloud and makes sure the bootstrap script is present.
func (d *Document) MountWordCloud(elementID string, cfg *schema.WordCloudConfig) error {
	return d.mount(elementID, WordCloudKind, cfg)
}

func (d *Document) mount(elementID, kind string, cfg any) error {
	host := d.ElementByID(elementID)
	if host == nil {
		return errors.Wrapf(ErrHostNotFound, "mount %s on #%s", kind, elementID)
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s config", kind)
	}
	setAttr(host, KindAttr, kind)
	setAttr(host, ConfigAttr, string(data))
	d.ensureBootstrap()
	return nil
}

// ShowText replaces the host's content with a muted status message.
func (d *Document) ShowText(elementID string, message string) error {
	host := d.ElementByID(elementID)
	if host == nil {
		return errors.Wrapf(ErrHostNotFound, "show text on #%s", elementID)
	}
	for c := host.FirstChild; c != nil; c = host.FirstChild {
		host.RemoveChild(c)
	}
	span := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr:     []html.Attribute{{Key: "class", Val: MutedClass}},
	}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: message})
	host.AppendChild(span)
	return nil
}

// ensureBootstrap appends the bootstrap script to <body> once per document.
func (d *Document) ensureBootstrap() {
	if d.ElementByID(BootstrapID) != nil {
		return
	}
	parent := findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
	if parent == nil {
		parent = d.root
	}
	script := &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr:     []html.Attribute{{Key: "id", Val: BootstrapID}},
	}
	script.AppendChild(&html.Node{Type: html.TextNode, Data: bootstrapScript})
	parent.AppendChild(script)
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
