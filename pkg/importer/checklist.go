package importer

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/toshiba/sw360/pkg/model"
)

// checklistNode is one parsed line of an OSADL checklist with its nested
// sub-lines. The root node carries no line of its own.
type checklistNode struct {
	Line     string
	Children []*checklistNode
}

// nodeRecord is the persisted shape of an obligation tree: node ids wired to
// their children, serialized as JSON onto the obligation document.
type nodeRecord struct {
	ID       string       `json:"id"`
	Children []nodeRecord `json:"children"`
}

// Obligation language elements, longest match first.
var langElements = []string{"YOU MUST NOT", "YOU MUST", "YOU SHOULD"}

// Compound checklist node types that span more than one word.
var compoundNodeTypes = []string{
	"USE CASE", "PATENT HINTS", "COPYLEFT CLAUSE", "DEPENDING COMPATIBILITY",
}

// parseChecklist parses an OSADL checklist, rendered as a nested markdown
// list, into a line tree.
func parseChecklist(src []byte) *checklistNode {
	root := &checklistNode{}
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		if list, ok := child.(*ast.List); ok {
			appendListItems(list, root, src)
		}
	}
	return root
}

func appendListItems(list *ast.List, parent *checklistNode, src []byte) {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		node := &checklistNode{}
		for block := item.FirstChild(); block != nil; block = block.NextSibling() {
			if nested, ok := block.(*ast.List); ok {
				appendListItems(nested, node, src)
				continue
			}
			if node.Line == "" {
				node.Line = blockText(block, src)
			}
		}
		if node.Line != "" || len(node.Children) > 0 {
			parent.Children = append(parent.Children, node)
		}
	}
}

func blockText(n ast.Node, src []byte) string {
	block, ok := n.(interface{ Lines() *text.Segments })
	if !ok {
		return ""
	}
	var sb strings.Builder
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(src))
	}
	return strings.TrimSpace(sb.String())
}

// classifyLine splits a checklist line into either an obligation element
// (subject-action-object) or a plain node (type and free text).
func classifyLine(line string) (*model.ObligationElement, *model.ObligationNode) {
	for _, lang := range langElements {
		if line == lang || strings.HasPrefix(line, lang+" ") {
			rest := strings.TrimSpace(strings.TrimPrefix(line, lang))
			action, object := splitFirstWord(rest)
			return &model.ObligationElement{
				LangElement: lang,
				Action:      action,
				Object:      object,
				Status:      model.ObligationElementStatusDefined,
			}, nil
		}
	}

	for _, nodeType := range compoundNodeTypes {
		if line == nodeType || strings.HasPrefix(line, nodeType+" ") {
			return nil, &model.ObligationNode{
				NodeType: nodeType,
				NodeText: strings.TrimSpace(strings.TrimPrefix(line, nodeType)),
			}
		}
	}

	nodeType, nodeText := splitFirstWord(line)
	return nil, &model.ObligationNode{NodeType: nodeType, NodeText: nodeText}
}

func splitFirstWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, ' '); idx > 0 {
		return s[:idx], strings.TrimSpace(s[idx+1:])
	}
	return s, ""
}
