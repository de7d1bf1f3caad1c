package ast

import (
	"fmt"
	"strings"

	"github.com/jscomp/typedast/wire"
)

// Dump returns a human-readable listing of the tree, one node per line.
// The output is deterministic, so it doubles as a golden-test format.
func Dump(root *Node) string {
	var sb strings.Builder
	writeNode(&sb, root, 0)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Token.String())
	sb.WriteString(fmt.Sprintf(" %d:%d", n.Line, n.Column))

	switch n.Token {
	case TokenName, TokenStringLit, TokenStringKey, TokenGetterDef, TokenSetterDef,
		TokenLabelName, TokenGetProp, TokenOptChainGetProp,
		TokenMemberFunctionDef, TokenMemberFieldDef, TokenImportStar:
		sb.WriteString(fmt.Sprintf(" %q", n.Str))
	case TokenNumber:
		sb.WriteString(fmt.Sprintf(" %v", n.Num))
	case TokenBigInt:
		if n.BigInt != nil {
			sb.WriteString(fmt.Sprintf(" %sn", n.BigInt.String()))
		}
	case TokenTemplateLitString:
		if n.HasCooked {
			sb.WriteString(fmt.Sprintf(" cooked=%q", n.Cooked))
		}
		sb.WriteString(fmt.Sprintf(" raw=%q", n.Raw))
	}

	props := wire.PropertyNames(n.Props)
	if n.IsQuotedKey() {
		props = append(props, "quoted")
	}
	if n.IsPostfix() {
		props = append(props, "postfix")
	}
	if len(props) > 0 {
		sb.WriteString(fmt.Sprintf(" [%s]", strings.Join(props, " ")))
	}

	var meta []string
	if n.OriginalName != "" {
		meta = append(meta, "orig="+n.OriginalName)
	}
	if n.Color != nil {
		meta = append(meta, "color="+n.Color.ID)
	}
	if n.Doc != nil {
		meta = append(meta, "doc")
	}
	if n.Token == TokenScript && n.File != nil {
		meta = append(meta, "file="+n.File.Name)
	}
	if n.Token == TokenScript && !n.Features.Empty() {
		meta = append(meta, "features="+n.Features.String())
	}
	if len(meta) > 0 {
		sb.WriteString(" ; " + strings.Join(meta, " "))
	}
	sb.WriteString("\n")

	if n.Shadow != nil {
		sb.WriteString(strings.Repeat("  ", indent+1))
		sb.WriteString("shadow:\n")
		writeNode(sb, n.Shadow, indent+2)
	}
	for _, child := range n.Children {
		writeNode(sb, child, indent+1)
	}
}
