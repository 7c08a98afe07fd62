package tizen

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

const (
	// ManifestNamespace is the XML namespace of tizen-manifest.xml.
	ManifestNamespace = "http://tizen.org/ns/packages"
	// ManifestPrefix is the prefix bound to ManifestNamespace in manifest queries.
	ManifestPrefix = "ns"
)

// Manifest is a parsed application manifest answering namespaced XPath queries.
type Manifest struct {
	root *xmlquery.Node
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest '%s': %w", path, err)
	}
	defer f.Close()

	m, err := ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest '%s': %w", path, err)
	}
	return m, nil
}

// ParseManifest parses a manifest document from r.
func ParseManifest(r io.Reader) (*Manifest, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Manifest{root: root}, nil
}

// Query evaluates an absolute expression against the document root and returns its
// string value. Invalid expressions, evaluation failures and empty results are misses.
func (m *Manifest) Query(expr string) (value string, found bool) {
	if m == nil || m.root == nil {
		return "", false
	}

	compiled, err := xpath.CompileWithNS(expr, map[string]string{ManifestPrefix: ManifestNamespace})
	if err != nil {
		return "", false
	}

	defer func() {
		// xpath reports some evaluation errors by panicking
		if recover() != nil {
			value, found = "", false
		}
	}()

	var s string
	switch v := compiled.Evaluate(xmlquery.CreateXPathNavigator(m.root)).(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	case *xpath.NodeIterator:
		// String value of a node-set is the string value of its first node
		if v.MoveNext() {
			s = v.Current().Value()
		}
	}

	if s == "" {
		return "", false
	}
	return s, true
}
